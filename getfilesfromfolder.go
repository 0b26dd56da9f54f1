// Package main (getfilesfromfolder.go) :
// These methods create a playlist from the video files of a folder of Google Drive.
package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	drive "google.golang.org/api/drive/v3"
)

// resolveLink : Resolve the link of a file of a folder. An error only concerns this file.
func (p *para) resolveLink(ctx context.Context, file *drive.File) ResolvedLink {
	link := ResolvedLink{ID: file.Id, Name: file.Name}
	link.URL, link.Err = p.Links.resolve(ctx, file.Id)
	if link.Err != nil {
		link.URL = ""
	}
	return link
}

// getFilesFromFolder : Main method for creating the playlist of a folder. The path of the playlist is returned.
func (p *para) getFilesFromFolder(ctx context.Context, id string) (string, error) {
	folder, err := p.API.getFile(ctx, id)
	if err != nil {
		return "", err
	}
	if folder.MimeType != mimeTypeFolder {
		return "", fmt.Errorf("'%s' (fileId: %s) is not a folder", folder.Name, id)
	}
	files, err := p.API.listVideos(ctx, id, p.Config.Recursive)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(p.Out, "Folder '%s': %d video files.\n", folder.Name, len(files))
	playlist := &Playlist{Name: folder.Name}
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		link := p.resolveLink(ctx, file)
		if playlist.Add(link) {
			fmt.Fprintf(p.Out, "[%d/%d] %s\n", i+1, len(files), file.Name)
			continue
		}
		color.New(color.FgYellow).Fprintf(p.Out, "[%d/%d] %s was skipped: %v\n", i+1, len(files), file.Name, link.Err)
		p.Logger.Warn("Skipped file", "id", file.Id, "name", file.Name, "err", link.Err)
	}
	if len(playlist.Entries) == 0 {
		fmt.Fprintf(p.Out, "No video files found in folder '%s'.\n", folder.Name)
		return "", ErrNoVideoFiles
	}
	name, err := savePlaylist(p.Fs, p.Config.PlaylistDir, playlist)
	if err != nil {
		return "", err
	}
	color.New(color.FgGreen).Fprintf(p.Out, "Playlist of %d videos created: %s\n", len(playlist.Entries), name)
	p.Logger.Info("Playlist created", "file", name, "entries", len(playlist.Entries), "skipped", len(files)-len(playlist.Entries))
	return name, nil
}
