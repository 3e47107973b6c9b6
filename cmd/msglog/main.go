// Command msglog writes catalog log lines from the shell and validates
// catalog sources.
//
//	msglog --config config.properties --messages messages.properties emit --caller Worker greet World
//	msglog --config config.properties --messages messages.properties check
package main

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/philipp01105/msglog/catalog"
	"github.com/philipp01105/msglog/logger"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		logger.Fault("msglog", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "msglog",
		Usage:     "Write catalog log lines and check catalog sources",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Settings source (.properties or .toml)",
				Value: "config.properties",
			},
			&cli.StringFlag{
				Name:  "messages",
				Usage: "Message catalog source (.properties or .toml)",
				Value: "messages.properties",
			},
		},
		Commands: []*cli.Command{
			emitCommand(),
			faultCommand(),
			checkCommand(),
		},
	}
}

// loadCatalog loads the catalog named by the global flags
func loadCatalog(c *cli.Command) (*catalog.Catalog, error) {
	return catalog.Load(c.String("config"), c.String("messages"))
}

// newLogger builds a logger over the command's output streams
func newLogger(c *cli.Command, cat *catalog.Catalog) *logger.Logger {
	root := c.Root()
	return logger.New(cat, logger.Config{Stdout: root.Writer, Stderr: root.ErrWriter})
}
