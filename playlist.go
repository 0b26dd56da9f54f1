// Package main (playlist.go) :
// These methods render the resolved links of a folder as an M3U playlist.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const playlistExt = ".m3u"

// ResolvedLink : Result of the link resolution of one file. URL is empty when Err is set.
type ResolvedLink struct {
	ID   string
	Name string
	URL  string
	Err  error
}

// OK tells if the link can be used
func (r ResolvedLink) OK() bool {
	return r.URL != "" && r.Err == nil
}

// Playlist : Resolved links in the order of the folder listing.
type Playlist struct {
	Name    string
	Entries []ResolvedLink
}

// Add appends a usable link. Failed links are ignored.
func (p *Playlist) Add(link ResolvedLink) bool {
	if !link.OK() {
		return false
	}
	p.Entries = append(p.Entries, link)
	return true
}

// WriteTo writes the playlist in the extended M3U format.
func (p *Playlist) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	write := func(format string, a ...interface{}) error {
		n, err := fmt.Fprintf(bw, format, a...)
		total += int64(n)
		return err
	}
	if err := write("#EXTM3U\n"); err != nil {
		return total, err
	}
	for _, e := range p.Entries {
		if err := write("#EXTINF:-1,%s\n%s\n", oneLine(e.Name), e.URL); err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// Filename : Name of the playlist file, usable on the local file system.
func (p *Playlist) Filename() string {
	name := strings.TrimSpace(sanitizeName(p.Name))
	if name == "" || name == "." || name == ".." {
		name = "playlist"
	}
	return name + playlistExt
}

// savePlaylist : Write the playlist under dir and return its path.
func savePlaylist(fs afero.Fs, dir string, p *Playlist) (string, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := filepath.Join(dir, p.Filename())
	file, err := fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := p.WriteTo(file); err != nil {
		_ = file.Close()
		return "", err
	}
	return name, file.Close()
}

func sanitizeName(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|' || r < ' ' {
			runes[i] = '_'
		}
	}
	return string(runes)
}

// oneLine : EXTINF titles must not break the line structure.
func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
