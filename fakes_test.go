package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	drive "google.golang.org/api/drive/v3"

	"github.com/tanaikech/gdlink/log"
)

type fakeDrive struct {
	files     map[string]*drive.File
	public    map[string]bool
	children  map[string][]*drive.File
	err       error
	recursive bool
}

func (f *fakeDrive) getFile(_ context.Context, id string) (*drive.File, error) {
	if f.err != nil {
		return nil, f.err
	}
	file, ok := f.files[id]
	if !ok {
		return nil, &DriveAPICallError{Call: "Files.Get", Err: errNotFound}
	}
	return file, nil
}

func (f *fakeDrive) isPublic(_ context.Context, id string) (bool, error) {
	return f.public[id], nil
}

func (f *fakeDrive) listVideos(_ context.Context, folderID string, recursive bool) ([]*drive.File, error) {
	f.recursive = recursive
	return f.children[folderID], nil
}

var errNotFound = errors.New("googleapi: Error 404: File not found")

func newTestPara(t *testing.T, api driveAPI, pages map[string]string) (*para, *bytes.Buffer) {
	t.Helper()

	srv := newDriveStub(t, pages)
	out := &bytes.Buffer{}
	cfg := DefaultConfig()
	cfg.CheckTimeout = time.Second

	return &para{
		Config: cfg,
		API:    api,
		Links:  newTestLinkResolver(srv),
		Fs:     afero.NewMemMapFs(),
		Out:    out,
		Logger: log.Nothing(),
	}, out
}
