// Package main (fileinf.go) :
// These methods retrieve the file information and show the direct link of a single file.
package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// fileReport : What is shown for a single file.
type fileReport struct {
	Name     string
	MimeType string
	Size     int64
	Public   bool
	Link     string
	Err      error
}

// showFileInf : Retrieve the file information and the direct link, and show them.
// Without link, the file can't be streamed, so an error is returned.
func (p *para) showFileInf(ctx context.Context, id string) (string, error) {
	file, err := p.API.getFile(ctx, id)
	if err != nil {
		return "", err
	}
	public, err := p.API.isPublic(ctx, id)
	if err != nil {
		return "", err
	}
	link, err := p.Links.resolve(ctx, id)
	r := &fileReport{
		Name:     file.Name,
		MimeType: file.MimeType,
		Size:     file.Size,
		Public:   public,
		Link:     link,
		Err:      err,
	}
	r.print(p.Out)
	if err != nil {
		p.Logger.Error("Link resolution failed", "id", id, "err", err)
		return "", fmt.Errorf("%w for %s: %w", ErrNoLink, id, err)
	}
	return link, nil
}

func (r *fileReport) size() string {
	if r.Size == 0 && strings.HasPrefix(r.MimeType, "application/vnd.google-apps") {
		return "Unknown"
	}
	return strconv.FormatInt(r.Size, 10) + " bytes"
}

func (r *fileReport) access() string {
	if r.Public {
		return "Yes"
	}
	return "No (Private)"
}

// print : Show the report.
func (r *fileReport) print(w io.Writer) {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintln(w, "Google Drive Direct Link Generator")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	st := [][]string{
		{"File Name", r.Name},
		{"MIME Type", r.MimeType},
		{"File Size", r.size()},
		{"Public Access", r.access()},
	}
	fmt.Fprintf(w, "%s\n\n", getMsg(setIndent(st, 0), " : "))
	heading.Fprintln(w, "Direct Download Links:")
	if r.Err != nil {
		color.New(color.FgRed).Fprintf(w, "Could not generate working download link: %v\n", r.Err)
		return
	}
	fmt.Fprintf(w, "VLC Stream: %s\n", r.Link)
	color.New(color.FgGreen).Fprintln(w, "This link should work for streaming!")
	fmt.Fprintln(w)
	heading.Fprintln(w, "How to stream in VLC:")
	fmt.Fprintln(w, "1. Copy the VLC Stream link above")
	fmt.Fprintln(w, "2. Open VLC Media Player")
	fmt.Fprintln(w, "3. Media -> Open Network Stream")
	fmt.Fprintln(w, "4. Paste the link and click Play")
}

// setIndent : Set indent of each element using the maximum length of element.
// st is 2 dimensional array including values.
// k is the index of each element for setting indent.
func setIndent(st [][]string, k int) [][]string {
	maxLen := 0
	for _, e := range st {
		if len(e[k]) > maxLen {
			maxLen = len(e[k])
		}
	}
	for i, e := range st {
		st[i][k] = e[k] + strings.Repeat(" ", maxLen-len(e[k]))
	}
	return st
}

// getMsg : Convert 2D array to string using delimiter.
func getMsg(st [][]string, delim string) string {
	temp := make([]string, 0, len(st))
	for _, e := range st {
		temp = append(temp, strings.Join(e, delim))
	}
	return strings.Join(temp, "\n")
}
