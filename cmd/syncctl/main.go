package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/sphere-sync/internal/adapter"
	"github.com/MKhiriev/sphere-sync/internal/client"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/tui"
	"github.com/MKhiriev/sphere-sync/models"
)

// environment holds the defaults syncctl reads from SYNCCTL_* variables.
type environment struct {
	Server  string        `env:"SERVER" envDefault:"localhost:8080"`
	Token   string        `env:"TOKEN"`
	SignKey string        `env:"SIGN_KEY"`
	Issuer  string        `env:"ISSUER" envDefault:"sphere-sync"`
	UserID  string        `env:"USER_ID"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

func main() {
	var defaults environment
	if err := env.ParseWithOptions(&defaults, env.Options{Prefix: "SYNCCTL_"}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var (
		opts    client.Options
		timeout time.Duration
		verbose bool
		rawType string
	)
	flag.StringVar(&opts.Server, "server", defaults.Server, "sync server address")
	flag.StringVar(&opts.Token, "token", defaults.Token, "bearer token")
	flag.StringVar(&opts.SignKey, "sign-key", defaults.SignKey, "token signing key used to mint a token")
	flag.StringVar(&opts.Issuer, "issuer", defaults.Issuer, "token issuer")
	flag.StringVar(&opts.UserID, "user", defaults.UserID, "user id to mint a token for")
	flag.DurationVar(&opts.TTL, "ttl", time.Hour, "lifetime of a minted token")
	flag.StringVar(&rawType, "type", "", "sync type: FULL, REQUEST or REPLY")
	flag.StringVar(&opts.Scope, "scope", "", "comma separated categories to sync")
	flag.StringVar(&opts.AppVersion, "app-version", "", "firmware app version sent in the sync header")
	flag.StringVar(&opts.SphereID, "sphere", "", "restrict the sync to one sphere")
	flag.StringVar(&opts.StoneID, "stone", "", "restrict the sync to one stone (needs -sphere)")
	flag.StringVar(&opts.RequestFile, "f", "", "JSON file with the sync envelope")
	flag.BoolVar(&opts.JSON, "json", false, "print raw JSON")
	flag.DurationVar(&timeout, "timeout", defaults.Timeout, "request timeout")
	flag.BoolVar(&verbose, "v", false, "debug logging to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: syncctl [flags] version|token|sync\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	opts.Type = models.SyncType(rawType)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.Nop()
	if verbose {
		log = logger.NewLogger("syncctl")
		log.Logger = log.Output(os.Stderr)
	}

	syncClient, err := adapter.NewHTTPSyncClient(opts.Server, timeout, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := client.NewApp(opts, syncClient, os.Stdout, log)
	if err = app.Run(ctx, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}
}
