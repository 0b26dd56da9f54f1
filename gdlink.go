// Package main (gdlink.go) :
// These methods are the command line of gdlink.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/tanaikech/gdlink/log"
)

const (
	appname = "gdlink"
	envval  = "GDLINK_APIKEY"
)

// para : Structure for a run
type para struct {
	Config *Config
	API    driveAPI
	Links  *linkResolver
	Fs     afero.Fs
	Out    io.Writer
	Logger log.Logger
}

// process : Main method for one input.
func (p *para) process(ctx context.Context, input string) error {
	ref := parseReference(input)
	p.Logger.Debug("Processing", "kind", ref.Kind.String(), "id", ref.ID)
	if ref.Kind == KindFolder {
		_, err := p.getFilesFromFolder(ctx, ref.ID)
		if errors.Is(err, ErrNoVideoFiles) {
			return nil
		}
		return err
	}
	_, err := p.showFileInf(ctx, ref.ID)
	return err
}

// processAll : Process the inputs of the batch mode. A failed input doesn't stop the others.
func (p *para) processAll(ctx context.Context, inputs []string) error {
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.process(ctx, input); err != nil {
			fmt.Fprintf(p.Out, "## Skipped: Error: %v\n", err)
		}
	}
	return nil
}

// readInputs : The inputs are the argument, or the lines of stdin when stdin is not a terminal.
func readInputs(args cli.Args, stdin io.Reader, isTerminal bool) ([]string, error) {
	if args.Present() {
		return []string{args.First()}, nil
	}
	if isTerminal {
		return nil, ErrNoInput
	}
	var inputs []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "end" {
			break
		}
		if line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}
	return inputs, nil
}

// loadConfig : Defaults, then the config file, then the flags and the environment.
func loadConfig(c *cli.Context, fs afero.Fs) (*Config, error) {
	cfg := DefaultConfig()
	if file := c.String("config"); file != "" {
		if err := cfg.loadFile(fs, file); err != nil {
			return nil, err
		}
	}
	if c.IsSet("credentials") {
		cfg.CredentialsFile = c.String("credentials")
	}
	if c.IsSet("token") {
		cfg.TokenFile = c.String("token")
	}
	if c.IsSet("output") {
		cfg.PlaylistDir = c.String("output")
	}
	if c.IsSet("timeout") {
		cfg.CheckTimeout = c.Duration("timeout")
	}
	if c.IsSet("apikey") {
		cfg.APIKey = strings.TrimSpace(c.String("apikey"))
	}
	if c.IsSet("recursive") {
		cfg.Recursive = c.Bool("recursive")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	if cfg.CheckTimeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.CheckTimeout)
	}
	return cfg, nil
}

// handler : Initialize of "para".
func handler(c *cli.Context) error {
	fs := afero.NewOsFs()
	cfg, err := loadConfig(c, fs)
	if err != nil {
		return err
	}
	stdinIsTerminal := term.IsTerminal(int(os.Stdin.Fd()))
	inputs, err := readInputs(c.Args(), os.Stdin, stdinIsTerminal)
	if err != nil {
		if errors.Is(err, ErrNoInput) {
			return fmt.Errorf("%w\nusage: %s <Drive file URL, folder URL or file ID>\nexample: %s 1ABC123xyz456DEF789", err, appname, appname)
		}
		return err
	}
	logger := log.NewGKLoggerWriter(os.Stderr, cfg.Verbose)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv, err := newDriveService(ctx, cfg, fs, os.Stdin, os.Stderr, logger)
	if err != nil {
		return err
	}
	api := NewAPIWrapper(srv, logger)
	api.APIKey = cfg.APIKey != ""
	p := &para{
		Config: cfg,
		API:    api,
		Links:  newLinkResolver(cfg.CheckTimeout, logger),
		Fs:     fs,
		Out:    c.App.Writer,
		Logger: logger,
	}
	defer func() {
		hits, misses := api.cache.Stats()
		logger.Debug("Drive API usage", "calls", api.TotalNbCalls(), "cacheHits", hits, "cacheMisses", misses)
	}()
	if len(inputs) == 1 {
		return p.process(ctx, inputs[0])
	}
	return p.processAll(ctx, inputs)
}

// createHelp : Create help document.
func createHelp() *cli.App {
	a := cli.NewApp()
	a.Name = appname
	a.Authors = []cli.Author{
		{Name: "tanaike [ https://github.com/tanaikech/" + appname + " ] ", Email: "tanaike@hotmail.com"},
	}
	a.Usage = "Create direct links and playlists for streaming files on Google Drive."
	a.UsageText = appname + " [options] <Drive file URL, folder URL or file ID>"
	a.Version = "1.0.0"
	a.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "credentials, c",
			Usage: "OAuth client secret file downloaded from Google Cloud Console.",
			Value: defaultCredentials,
		},
		cli.StringFlag{
			Name:  "token, t",
			Usage: "File the OAuth token is cached in. When it is not existing, the authorization is done in the browser.",
			Value: defaultToken,
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "Directory the playlists of folders are created in.",
			Value: defaultPlaylistDir,
		},
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "Timeout of the request checking the virus scan warning.",
			Value: defaultCheckTimeout,
		},
		cli.StringFlag{
			Name:   "apikey, key",
			Usage:  "API key. When it is used, OAuth is not used and only shared files and folders can be retrieved.",
			EnvVar: envval,
		},
		cli.BoolFlag{
			Name:  "recursive, r",
			Usage: "Include the videos in the subfolders of a folder.",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "Hjson file with the options (credentials, token, output, timeout, apikey, recursive, verbose, scopes).",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Show debug logs.",
		},
	}
	return a
}

// main : Main of this script
func main() {
	a := createHelp()
	a.Action = handler
	err := a.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
