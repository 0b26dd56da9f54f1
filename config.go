// Package main (config.go) :
// Run configuration and its loading from an Hjson file.
package main

import (
	"fmt"
	"time"

	"github.com/hjson/hjson-go"
	"github.com/spf13/afero"
	drive "google.golang.org/api/drive/v3"
)

const (
	defaultCredentials  = "credentials.json"
	defaultToken        = "token.json"
	defaultPlaylistDir  = "playlists"
	defaultCheckTimeout = 10 * time.Second
)

// Config : Parameters of a run, given to the authentication at startup.
type Config struct {
	Scopes          []string
	CredentialsFile string
	TokenFile       string
	PlaylistDir     string
	CheckTimeout    time.Duration
	APIKey          string
	Recursive       bool
	Verbose         bool
}

// DefaultConfig returns the configuration used when nothing is specified
func DefaultConfig() *Config {
	return &Config{
		Scopes:          []string{drive.DriveReadonlyScope},
		CredentialsFile: defaultCredentials,
		TokenFile:       defaultToken,
		PlaylistDir:     defaultPlaylistDir,
		CheckTimeout:    defaultCheckTimeout,
	}
}

// loadFile : Overlay the values of an Hjson file.
//
//	{
//	  credentials: secrets/credentials.json
//	  token: secrets/token.json
//	  output: playlists
//	  timeout: 15s
//	  recursive: true
//	}
func (c *Config) loadFile(fs afero.Fs, file string) error {
	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return err
	}
	var values map[string]interface{}
	if err := hjson.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("unable to parse %s: %w", file, err)
	}
	for key, val := range values {
		if err := c.set(key, val); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

func (c *Config) set(key string, val interface{}) error {
	var err error
	switch key {
	case "credentials":
		c.CredentialsFile, err = asString(key, val)
	case "token":
		c.TokenFile, err = asString(key, val)
	case "output":
		c.PlaylistDir, err = asString(key, val)
	case "apikey":
		c.APIKey, err = asString(key, val)
	case "timeout":
		var s string
		if s, err = asString(key, val); err == nil {
			c.CheckTimeout, err = time.ParseDuration(s)
		}
	case "recursive":
		c.Recursive, err = asBool(key, val)
	case "verbose":
		c.Verbose, err = asBool(key, val)
	case "scopes":
		list, ok := val.([]interface{})
		if !ok {
			return fmt.Errorf("key `%s' is not a list but a %T", key, val)
		}
		scopes := make([]string, 0, len(list))
		for _, e := range list {
			s, err := asString(key, e)
			if err != nil {
				return err
			}
			scopes = append(scopes, s)
		}
		c.Scopes = scopes
	default:
		return fmt.Errorf("unknown key `%s'", key)
	}
	return err
}

func asString(key string, val interface{}) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("key `%s' is not a string but a %T", key, val)
	}
	return s, nil
}

func asBool(key string, val interface{}) (bool, error) {
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("key `%s' is not a boolean but a %T", key, val)
	}
	return b, nil
}
