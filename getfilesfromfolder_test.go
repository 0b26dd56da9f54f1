package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	drive "google.golang.org/api/drive/v3"
)

func videoFolder(children ...*drive.File) *fakeDrive {
	return &fakeDrive{
		files: map[string]*drive.File{
			"folder1": {Id: "folder1", Name: "Holidays", MimeType: mimeTypeFolder},
			"movie1":  {Id: "movie1", Name: "movie.mp4", MimeType: "video/mp4"},
		},
		children: map[string][]*drive.File{"folder1": children},
	}
}

func TestGetFilesFromFolder(t *testing.T) {
	api := videoFolder(
		&drive.File{Id: "v1", Name: "first.mp4", MimeType: "video/mp4"},
		&drive.File{Id: "v2", Name: "second.mkv", MimeType: "video/x-matroska"},
		&drive.File{Id: "v3", Name: "third.mp4", MimeType: "video/mp4"},
	)
	p, out := newTestPara(t, api, map[string]string{
		"v1": "binary",
		"v2": `<title>Virus scan warning</title><form></form>`,
		"v3": warningPage,
	})

	name, err := p.getFilesFromFolder(context.Background(), "folder1")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("playlists", "Holidays.m3u"), name)

	content, err := afero.ReadFile(p.Fs, name)
	require.NoError(t, err)
	require.Equal(t, "#EXTM3U\n"+
		"#EXTINF:-1,first.mp4\n"+p.Links.exportURL("v1")+"\n"+
		"#EXTINF:-1,third.mp4\n"+
		"https://drive.usercontent.google.com/download?id=v3&export=download&confirm=t&uuid=0f2b7c1e-5b2a-4c3d-9e8f-123456789abc\n",
		string(content))

	require.Contains(t, out.String(), "second.mkv was skipped")
	require.Contains(t, out.String(), "Playlist of 2 videos created")
	require.False(t, api.recursive)
}

func TestGetFilesFromFolderWithoutVideos(t *testing.T) {
	t.Run("empty folder", func(t *testing.T) {
		p, out := newTestPara(t, videoFolder(), nil)

		name, err := p.getFilesFromFolder(context.Background(), "folder1")
		require.ErrorIs(t, err, ErrNoVideoFiles)
		require.Empty(t, name)
		require.Contains(t, out.String(), "No video files found in folder 'Holidays'")

		exists, err := afero.DirExists(p.Fs, "playlists")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("every link failed", func(t *testing.T) {
		api := videoFolder(&drive.File{Id: "v1", Name: "first.mp4", MimeType: "video/mp4"})
		p, _ := newTestPara(t, api, map[string]string{})

		_, err := p.getFilesFromFolder(context.Background(), "folder1")
		require.ErrorIs(t, err, ErrNoVideoFiles)

		files, err := afero.Glob(p.Fs, "playlists/*")
		require.NoError(t, err)
		require.Empty(t, files)
	})
}

func TestGetFilesFromFolderErrors(t *testing.T) {
	t.Run("not a folder", func(t *testing.T) {
		p, _ := newTestPara(t, videoFolder(), nil)

		_, err := p.getFilesFromFolder(context.Background(), "movie1")
		require.ErrorContains(t, err, "is not a folder")
	})

	t.Run("unknown folder", func(t *testing.T) {
		p, _ := newTestPara(t, videoFolder(), nil)

		_, err := p.getFilesFromFolder(context.Background(), "nope")

		var apiErr *DriveAPICallError
		require.ErrorAs(t, err, &apiErr)
	})

	t.Run("canceled", func(t *testing.T) {
		api := videoFolder(&drive.File{Id: "v1", Name: "first.mp4", MimeType: "video/mp4"})
		p, _ := newTestPara(t, api, map[string]string{"v1": "binary"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.getFilesFromFolder(ctx, "folder1")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestGetFilesFromFolderRecursive(t *testing.T) {
	api := videoFolder(&drive.File{Id: "v1", Name: "first.mp4", MimeType: "video/mp4"})
	p, _ := newTestPara(t, api, map[string]string{"v1": "binary"})
	p.Config.Recursive = true
	p.Config.PlaylistDir = "out"

	name, err := p.getFilesFromFolder(context.Background(), "folder1")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("out", "Holidays.m3u"), name)
	require.True(t, api.recursive)
}
