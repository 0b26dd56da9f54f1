package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/tanaikech/gdlink/log"
)

func TestAuthCode(t *testing.T) {
	require.Equal(t, "4/0Abc", authCode(" 4/0Abc \n"))
	require.Equal(t, "4/0Abc", authCode("http://localhost/?state=state-token&code=4/0Abc&scope=drive"))
	require.Equal(t, "xyz", authCode("http://localhost/?code=xyz#frag"))
	require.Equal(t, "4/0Abc", authCode("http://localhost/?code=4%2F0Abc"))
}

func TestPromptCode(t *testing.T) {
	var out bytes.Buffer

	code, err := promptCode(strings.NewReader("the-code\n"), &out)("https://accounts.google.com/o/oauth2/auth?x=1")
	require.NoError(t, err)
	require.Equal(t, "the-code", code)
	require.Contains(t, out.String(), "https://accounts.google.com/o/oauth2/auth?x=1")

	_, err = promptCode(strings.NewReader(""), &out)("https://accounts.google.com/")
	require.Error(t, err)
}

func TestNewDriveServiceMissingCredentials(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CredentialsFile = "nowhere/credentials.json"

	_, err := newDriveService(context.Background(), cfg, afero.NewMemMapFs(), strings.NewReader(""), &bytes.Buffer{}, log.Nothing())
	require.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestNewDriveServiceWithCachedToken(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "credentials.json", []byte(`{"installed":{
		"client_id":"id.apps.googleusercontent.com","client_secret":"secret",
		"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token",
		"redirect_uris":["http://localhost"]}}`), 0o600))
	require.NoError(t, afero.WriteFile(fs, "token.json", []byte(`{"access_token":"cached","token_type":"Bearer","refresh_token":"r"}`), 0o600))

	var out bytes.Buffer
	srv, err := newDriveService(context.Background(), DefaultConfig(), fs, strings.NewReader(""), &out, log.Nothing())
	require.NoError(t, err)
	require.NotNil(t, srv)
	require.Empty(t, out.String())
}

func TestNewDriveServiceWithAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = "key"

	srv, err := newDriveService(context.Background(), cfg, afero.NewMemMapFs(), strings.NewReader(""), &bytes.Buffer{}, log.Nothing())
	require.NoError(t, err)
	require.NotNil(t, srv)
}
