// Package main (identifier.go) :
// These methods classify the inputted URL or ID.
package main

import (
	"regexp"
)

// ResourceKind : Kind of the Drive resource an input points to.
type ResourceKind int

const (
	// KindFile is a single file
	KindFile ResourceKind = iota
	// KindFolder is a folder
	KindFolder
)

func (k ResourceKind) String() string {
	if k == KindFolder {
		return "folder"
	}
	return "file"
}

// ResourceReference : Parsed input.
type ResourceReference struct {
	Kind ResourceKind
	ID   string
}

var (
	fileURL   = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)
	idParam   = regexp.MustCompile(`google\.com/(?:open|uc)\?(?:[^#]*&)?id=([a-zA-Z0-9_-]+)`)
	folderURL = regexp.MustCompile(`/drive/(?:u/\d+/)?folders/([a-zA-Z0-9_-]+)`)
)

// parseReference : Parse inputted URL. Anything which is not a known URL is used as a file ID as it is.
func parseReference(s string) ResourceReference {
	if res := fileURL.FindStringSubmatch(s); res != nil {
		return ResourceReference{Kind: KindFile, ID: res[1]}
	}
	if res := idParam.FindStringSubmatch(s); res != nil {
		return ResourceReference{Kind: KindFile, ID: res[1]}
	}
	if res := folderURL.FindStringSubmatch(s); res != nil {
		return ResourceReference{Kind: KindFolder, ID: res[1]}
	}
	return ResourceReference{Kind: KindFile, ID: s}
}
