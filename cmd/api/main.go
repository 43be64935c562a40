package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quill/internal/app/bootstrap"
	"quill/internal/platform/config"

	"github.com/urfave/cli/v2"
)

//go:generate swag init -g main.go -d ./,../../contexts,../../internal -o ../../internal/platform/httpserver/docs --parseInternal

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Serve HTTP until SIGINT/SIGTERM.
//
// @title quill API
// @version 1.0
// @description Blogging backend with JWT authentication, users, posts and categories.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML configuration file",
		EnvVars: []string{"QUILL_CONFIG"},
	}
	return &cli.App{
		Name:   "quill",
		Usage:  "Blogging backend API",
		Flags:  []cli.Flag{configFlag},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "Create or update the database schema and exit",
				Action: migrate,
			},
		},
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	app, err := bootstrap.BuildAPI(cfg)
	if err != nil {
		return fmt.Errorf("build api: %w", err)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}

func migrate(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return bootstrap.Migrate(c.Context, cfg)
}
