package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smite-community/smite-go/internal/config"
	"github.com/smite-community/smite-go/internal/logger"
	"github.com/smite-community/smite-go/pkg/httpclient"
	"github.com/smite-community/smite-go/pkg/smite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "smite: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	if len(args) == 0 {
		return fmt.Errorf("usage: smite <method> [param ...]  (e.g. smite getplayer Weak3n)")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	endpoint, err := smite.ParseEndpoint(cfg.Endpoint)
	if err != nil {
		return err
	}

	client, err := smite.New(cfg.DevID, cfg.AuthKey,
		smite.WithLanguage(cfg.Lang),
		smite.WithEndpoint(endpoint),
		smite.WithHTTPClient(httpclient.NewRestyClient(cfg.HTTPTimeout)),
		smite.WithLogger(log),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	method, params := args[0], args[1:]

	var raw json.RawMessage
	if method == "ping" {
		raw, err = client.Ping(ctx)
	} else {
		raw, err = client.Request(ctx, method, params...)
	}
	if err != nil {
		var empty *smite.EmptyResultError
		if errors.As(err, &empty) {
			fmt.Println("no data")
			return nil
		}
		return err
	}

	out, err := prettyJSON(raw)
	if err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	fmt.Println(out)
	return nil
}

func prettyJSON(raw json.RawMessage) (string, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
