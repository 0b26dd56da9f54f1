// Package main (auth.go) :
// These methods create the authorized Drive service.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/tanaikech/gdlink/log"
	"github.com/tanaikech/gdlink/oauthhelper"
)

// newDriveService : Create the Drive service with the API key, or with OAuth2 when there is no API key.
func newDriveService(ctx context.Context, cfg *Config, fs afero.Fs, in io.Reader, out io.Writer, logger log.Logger) (*drive.Service, error) {
	if cfg.APIKey != "" {
		logger.Debug("Using API key")
		return drive.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	}
	secret, err := afero.ReadFile(fs, cfg.CredentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s. Please download it from Google Cloud Console", ErrCredentialsNotFound, cfg.CredentialsFile)
		}
		return nil, err
	}
	conf, err := google.ConfigFromJSON(secret, cfg.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	helper := oauthhelper.Auth{
		Config:       conf,
		Authenticate: promptCode(in, out),
	}
	helper.Token, err = oauthhelper.LoadTokenFromFile(fs, cfg.TokenFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Ignoring cached token", "file", cfg.TokenFile, "err", err)
		}
		helper.Token = nil
	}
	fresh := helper.Token == nil
	client, err := helper.NewHTTPClient(ctx)
	if err != nil {
		return nil, err
	}
	if fresh {
		if err := oauthhelper.StoreTokenToFile(fs, cfg.TokenFile, helper.Token); err != nil {
			return nil, fmt.Errorf("unable to store token: %w", err)
		}
		logger.Info("Token stored", "file", cfg.TokenFile)
	}
	return drive.NewService(ctx, option.WithHTTPClient(client))
}

// promptCode : Show the consent URL and read the authorization code pasted by the user.
func promptCode(in io.Reader, out io.Writer) oauthhelper.AuthenticateFunc {
	return func(authURL string) (string, error) {
		fmt.Fprintf(out, "Open the following URL in a browser and authorize the access to your Drive.\n%s\n", authURL)
		fmt.Fprintf(out, "After the authorization, paste the code (or the URL of the page you were redirected to): ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("unable to read authorization code: %w", err)
		}
		return authCode(line), nil
	}
}

// authCode : Retrieve the code from the pasted redirect URL or use the pasted value as it is.
func authCode(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "code="); i >= 0 {
		s = s[i+len("code="):]
		if j := strings.IndexAny(s, "&#"); j >= 0 {
			s = s[:j]
		}
		if u, err := url.QueryUnescape(s); err == nil {
			s = u
		}
	}
	return s
}
