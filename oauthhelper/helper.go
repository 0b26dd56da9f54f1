// Package oauthhelper provide an OAuth2 authentication and token management helper
package oauthhelper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/oauth2"
)

// ErrNoAuthenticate is returned when a token is required but no Authenticate func was set
var ErrNoAuthenticate = errors.New("no token and no authenticate callback")

// AuthenticateFunc defines the signature of the authentication function used
type AuthenticateFunc func(url string) (code string, err error)

// Auth defines the authentication parameters
type Auth struct {
	// Config is the installed-app client configuration, usually parsed from the
	// client secret file with google.ConfigFromJSON
	Config *oauth2.Config
	// Token holds the token that should be used for authentication (optional)
	// if the token is nil the callback func Authenticate will be called and after Authorization this token will be set
	Token        *oauth2.Token
	Authenticate AuthenticateFunc
}

// NewHTTPClient instantiates a new authentication client
func (auth *Auth) NewHTTPClient(ctx context.Context) (*http.Client, error) {
	if auth.Token == nil {
		var err error

		auth.Token, err = auth.getTokenFromWeb(ctx)
		if err != nil {
			return nil, err
		}
	}

	return auth.Config.Client(ctx, auth.Token), nil
}

func (auth *Auth) getTokenFromWeb(ctx context.Context) (*oauth2.Token, error) {
	if auth.Authenticate == nil {
		return nil, ErrNoAuthenticate
	}

	authURL := auth.Config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	code, err := auth.Authenticate(authURL)
	if err != nil {
		return nil, fmt.Errorf("authenticate error: %w", err)
	}

	tok, err := auth.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}

	return tok, nil
}

// LoadTokenFromFile loads an OAuth2 token from a JSON file
func LoadTokenFromFile(fs afero.Fs, file string) (*oauth2.Token, error) {
	f, err := fs.Open(filepath.Clean(file))
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	var token oauth2.Token
	if err = json.NewDecoder(f).Decode(&token); err != nil {
		return nil, fmt.Errorf("unable to decode token: %w", err)
	}

	return &token, nil
}

// StoreTokenToFile stores an OAuth2 token to a JSON file readable only by its owner
func StoreTokenToFile(fs afero.Fs, file string, token *oauth2.Token) error {
	f, err := fs.OpenFile(filepath.Clean(file), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	defer func() { _ = f.Close() }()

	if err = json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("unable to encode token: %w", err)
	}

	return nil
}
