/*
Package main (doc.go) :
This is a CLI tool to create direct links of files on Google Drive, which can be streamed by media players like VLC.

When the size of a file is large, Google Drive doesn't return the file but a page with "Virus scan warning", because the file cannot be scanned. The download link of the page includes 2 values (confirm and uuid). gdlink retrieves them and creates the link, which can be directly used.

- For a file, the file information (name, mimeType, size and whether it is public) and the direct link are shown.

- For a folder, a playlist (m3u) of the video files in the folder is created. Files which cannot be resolved are skipped.

- By using API key, shared files and folders can be used without OAuth2.

---------------------------------------------------------------

# Usage
At first run, the authorization is done in the browser using credentials.json of your project at Google Cloud Console. The token is saved to token.json.

$ gdlink [URL of file on Google Drive or file ID]

$ gdlink [URL of folder on Google Drive]

The playlist is created as "playlists/[folder name].m3u".

When URLs are given with stdin, all of them are processed.

$ cat urls.txt | gdlink

---------------------------------------------------------------
*/
package main
