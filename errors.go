package main

import (
	"errors"
	"fmt"
)

// ErrNoConfirmTokens is returned when the warning page doesn't carry both confirm and uuid values
var ErrNoConfirmTokens = errors.New("could not extract confirmation parameters")

// ErrNoLink is returned when no working download link could be generated for a file
var ErrNoLink = errors.New("could not generate working download link")

// ErrNoVideoFiles is returned when a folder doesn't produce any playlist entry
var ErrNoVideoFiles = errors.New("no video files")

// ErrCredentialsNotFound is returned when the OAuth client secret file is missing
var ErrCredentialsNotFound = errors.New("client secret file not found")

// ErrNoInput is returned when neither an argument nor stdin data was given
var ErrNoInput = errors.New("no input")

// DriveAPICallError wraps an error returned by the Drive API
type DriveAPICallError struct {
	Call string
	Err  error
}

func (e *DriveAPICallError) Error() string {
	return fmt.Sprintf("drive api %s: %v", e.Call, e.Err)
}

func (e *DriveAPICallError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the download endpoint answers with an error status
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s answered with status %d", e.URL, e.StatusCode)
}
