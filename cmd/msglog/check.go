package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/philipp01105/msglog/catalog"
)

// sampleTime is rendered with the configured date format
var sampleTime = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Load the catalog and print its settings and messages",
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}
			return printCatalog(c, cat)
		},
	}
}

func printCatalog(c *cli.Command, cat *catalog.Catalog) error {
	s := cat.Settings()
	w := tabwriter.NewWriter(c.Root().Writer, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%t\n", catalog.KeyWriteLogFiles, s.WriteLogFiles)
	fmt.Fprintf(w, "%s\t%s\n", catalog.KeyLogFileDir, s.LogFileDir)
	fmt.Fprintf(w, "%s\t%s\t(e.g. %s)\n", catalog.KeyDateFormat, s.DateFormat, cat.DateFormat().Format(sampleTime))
	fmt.Fprintf(w, "messages\t%d\n", cat.Len())
	for _, key := range cat.Keys() {
		tmpl, _ := cat.Resolve(key)
		fmt.Fprintf(w, "  %s\t%s\n", key, tmpl)
	}
	return w.Flush()
}
