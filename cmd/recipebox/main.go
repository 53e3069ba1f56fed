// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/poiesic/recipebox"
	"github.com/poiesic/recipebox/config"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "recipebox",
		Usage:     "Manage a local recipe collection",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{config.EnvPrefix + "_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (default ~/.recipebox or $RECIPEBOX_DB_PATH)",
			},
			&cli.BoolFlag{
				Name:  "in-memory",
				Usage: "Use a throwaway in-memory database",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			initCommand(),
			addCommand(),
			listCommand(),
			showCommand(),
			editCommand(),
			deleteCommand(),
			favoriteCommand(),
			searchCommand(),
			categoriesCommand(),
			tagsCommand(),
			videoCommand(),
			shoppingCommand(),
			importCommand(),
			exportCommand(),
		},
	}
}

func setupLogger(c *cli.Context) error {
	level, err := config.ParseLogLevel(c.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.String("log-level"))
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// openBox opens the database named by the global flags, falling back to the
// RECIPEBOX_* environment and then the defaults.
func openBox(c *cli.Context) (*recipebox.Box, error) {
	var opts []config.ConfigOption
	if c.IsSet("db") {
		opts = append(opts, config.WithDBPath(c.String("db")))
	}
	if c.IsSet("in-memory") {
		opts = append(opts, config.WithInMemory(c.Bool("in-memory")))
	}
	if c.IsSet("log-level") {
		opts = append(opts, config.WithLogLevel(c.String("log-level")))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}
	return recipebox.Open(c.Context, cfg, recipebox.WithLogger(slog.Default()))
}

// withBox runs fn against an open database and closes it afterwards.
func withBox(fn func(c *cli.Context, box *recipebox.Box) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		box, err := openBox(c)
		if err != nil {
			return err
		}
		defer box.Close()
		return fn(c, box)
	}
}

func requireArgs(c *cli.Context, n int, usage string) error {
	if c.NArg() < n {
		return fmt.Errorf("usage: %s %s", c.Command.HelpName, usage)
	}
	return nil
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create the database and seed default categories and tags",
		Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
			cfg := box.Config()
			if cfg.InMemory {
				fmt.Fprintln(c.App.Writer, "Initialized in-memory database")
				return nil
			}
			fmt.Fprintf(c.App.Writer, "Initialized database at %s\n", cfg.DBPath)
			return nil
		}),
	}
}
