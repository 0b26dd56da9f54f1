package main

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	getfilelist "github.com/tanaikech/go-getfilelist"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/tanaikech/gdlink/cache"
	"github.com/tanaikech/gdlink/log"
)

const (
	mimeTypeFolder = "application/vnd.google-apps.folder"
	videoPrefix    = "video/"
)

// videoMimeTypes is used for recursive listing, which can only filter on exact mimeTypes.
var videoMimeTypes = []string{
	"video/mp4",
	"video/x-matroska",
	"video/webm",
	"video/quicktime",
	"video/x-msvideo",
	"video/x-ms-wmv",
	"video/x-flv",
	"video/mpeg",
	"video/mp2t",
	"video/3gpp",
	"video/ogg",
}

var (
	fileInfoFields = []googleapi.Field{"id", "name", "mimeType", "size"}
	listFields     = googleapi.Field(fmt.Sprintf("nextPageToken, files(%s)", googleapi.CombineFields(fileInfoFields)))
)

// driveAPI is what the commands need from Google Drive
type driveAPI interface {
	getFile(ctx context.Context, id string) (*drive.File, error)
	isPublic(ctx context.Context, id string) (bool, error)
	listVideos(ctx context.Context, folderID string, recursive bool) ([]*drive.File, error)
}

// APIWrapper wraps the Drive API calls, counts them and caches file metadata
type APIWrapper struct {
	srv    *drive.Service
	cache  *cache.Cache[*drive.File]
	logger log.Logger
	calls  map[string]*int32
	// APIKey is true when the service is authorized by an API key, which can't read permissions
	APIKey bool
}

// NewAPIWrapper instantiates a new APIWrapper
func NewAPIWrapper(srv *drive.Service, logger log.Logger) *APIWrapper {
	return &APIWrapper{
		srv:    srv,
		cache:  cache.NewCache[*drive.File](),
		logger: logger,
		calls: map[string]*int32{
			"Files.Get":        new(int32),
			"Files.List":       new(int32),
			"Permissions.List": new(int32),
		},
	}
}

func (a *APIWrapper) calling(apiName string) {
	atomic.AddInt32(a.calls[apiName], 1)
}

// TotalNbCalls returns the total number of calls performed to the API
func (a *APIWrapper) TotalNbCalls() int {
	nb := int32(0)
	for _, c := range a.calls {
		nb += atomic.LoadInt32(c)
	}

	return int(nb)
}

// getFile wraps a call to Files.Get
func (a *APIWrapper) getFile(ctx context.Context, id string) (*drive.File, error) {
	return a.cache.GetOrLoad(id, func() (*drive.File, error) {
		a.calling("Files.Get")

		file, err := a.srv.Files.Get(id).
			SupportsAllDrives(true).
			Fields(fileInfoFields...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, &DriveAPICallError{Call: "Files.Get", Err: err}
		}

		return file, nil
	})
}

// isPublic tells if anyone with the link can read the file
func (a *APIWrapper) isPublic(ctx context.Context, id string) (bool, error) {
	if a.APIKey {
		return true, nil
	}

	a.calling("Permissions.List")

	var perms []*drive.Permission

	err := a.srv.Permissions.List(id).
		SupportsAllDrives(true).
		Fields("nextPageToken, permissions(type,role)").
		Pages(ctx, func(list *drive.PermissionList) error {
			perms = append(perms, list.Permissions...)
			return nil
		})
	if err != nil {
		return false, &DriveAPICallError{Call: "Permissions.List", Err: err}
	}

	return hasPublicAccess(perms), nil
}

func hasPublicAccess(perms []*drive.Permission) bool {
	for _, p := range perms {
		if p.Type == "anyone" && (p.Role == "reader" || p.Role == "writer") {
			return true
		}
	}

	return false
}

// listVideos returns the video files of a folder in the order of the listing
func (a *APIWrapper) listVideos(ctx context.Context, folderID string, recursive bool) ([]*drive.File, error) {
	if recursive {
		return a.listVideosRecursive(folderID)
	}

	a.calling("Files.List")

	query := fmt.Sprintf("'%s' in parents and mimeType contains '%s' and trashed = false",
		strings.ReplaceAll(folderID, "'", `\'`), videoPrefix)

	var files []*drive.File

	err := a.srv.Files.List().
		Q(query).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Fields(listFields).
		Pages(ctx, func(list *drive.FileList) error {
			files = append(files, list.Files...)
			return nil
		})
	if err != nil {
		return nil, &DriveAPICallError{Call: "Files.List", Err: err}
	}

	a.logger.Debug("Listed folder", "folderId", folderID, "videos", len(files))

	return files, nil
}

func (a *APIWrapper) listVideosRecursive(folderID string) ([]*drive.File, error) {
	a.calling("Files.List")

	fileList, err := getfilelist.Folder(folderID).MimeType(videoMimeTypes).Do(a.srv)
	if err != nil {
		return nil, &DriveAPICallError{Call: "Files.List", Err: err}
	}

	var files []*drive.File

	for _, e := range fileList.FileList {
		for _, file := range e.Files {
			if strings.HasPrefix(file.MimeType, videoPrefix) {
				files = append(files, file)
			}
		}
	}

	a.logger.Debug("Listed folder tree",
		"folderId", folderID,
		"folders", fileList.TotalNumberOfFolders,
		"videos", len(files),
	)

	return files, nil
}
