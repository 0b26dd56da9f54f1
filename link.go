// Package main (link.go) :
// These methods build a direct download link and get through the virus scan warning page of large files.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/tanaikech/gdlink/log"
)

const (
	anyurl      = "https://drive.google.com/uc"
	usercontent = "https://drive.usercontent.google.com/download"

	// The warning page is a few KB. A file without warning is never read entirely.
	maxPageSize = 1 << 20
)

// Markup of the warning page. Google changes it without notice, so this is the only place to update.
var (
	warningMarker  = []byte("Virus scan warning")
	confirmPattern = regexp.MustCompile(`name="confirm"\s+value="([^"]+)"`)
	uuidPattern    = regexp.MustCompile(`name="uuid"\s+value="([^"]+)"`)
)

// linkResolver : Resolve file IDs to download links.
type linkResolver struct {
	Client      *http.Client
	DownloadURL string
	ConfirmURL  string
	Logger      log.Logger
}

func newLinkResolver(timeout time.Duration, logger log.Logger) *linkResolver {
	return &linkResolver{
		Client:      &http.Client{Timeout: timeout},
		DownloadURL: anyurl,
		ConfirmURL:  usercontent,
		Logger:      logger,
	}
}

// exportURL : Standard download URL of a file.
func (l *linkResolver) exportURL(id string) string {
	return l.DownloadURL + "?export=download&id=" + url.QueryEscape(id)
}

// confirmedURL : Download URL including the values of the warning form.
func (l *linkResolver) confirmedURL(id, confirm, uuid string) string {
	return fmt.Sprintf("%s?id=%s&export=download&confirm=%s&uuid=%s",
		l.ConfirmURL, url.QueryEscape(id), url.QueryEscape(confirm), url.QueryEscape(uuid))
}

// fetch : Fetch data from Google Drive
func (l *linkResolver) fetch(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return l.Client.Do(req)
}

// resolve : Retrieve a link which can be streamed. The request is done only once.
func (l *linkResolver) resolve(ctx context.Context, id string) (string, error) {
	u := l.exportURL(id)
	res, err := l.fetch(ctx, u)
	if err != nil {
		return "", err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode >= http.StatusBadRequest {
		return "", &StatusError{URL: u, StatusCode: res.StatusCode}
	}
	page, err := io.ReadAll(io.LimitReader(res.Body, maxPageSize))
	if err != nil {
		return "", err
	}
	if !bytes.Contains(page, warningMarker) {
		return u, nil
	}
	l.Logger.Debug("Detected virus scan warning", "id", id)
	confirm, uuid, err := extractConfirmation(page)
	if err != nil {
		return "", err
	}
	return l.confirmedURL(id, confirm, uuid), nil
}

// extractConfirmation : Retrieve the values of the hidden inputs of the warning form.
func extractConfirmation(page []byte) (confirm, uuid string, err error) {
	c := confirmPattern.FindSubmatch(page)
	u := uuidPattern.FindSubmatch(page)
	if c == nil || u == nil {
		return "", "", ErrNoConfirmTokens
	}
	return string(c[1]), string(u[1]), nil
}
