package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v3"

	"github.com/philipp01105/msglog/logger"
	"github.com/philipp01105/msglog/metrics"
)

func emitCommand() *cli.Command {
	return &cli.Command{
		Name:      "emit",
		Usage:     "Log a catalog message",
		ArgsUsage: "<key> [args...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "level",
				Usage: "debug, info, warn or error",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "caller",
				Usage: "Name the line is tagged with",
				Value: "msglog",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "Print the logger metrics after the line",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return errors.New("emit: missing message key")
			}
			level, err := logger.ParseLevel(c.String("level"))
			if err != nil {
				return errors.Wrap(err, "emit")
			}

			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}
			l := newLogger(c, cat)
			defer l.Close()

			rest := c.Args().Tail()
			args := make([]any, len(rest))
			for i, a := range rest {
				args[i] = a
			}
			l.Log(level, c.String("caller"), c.Args().First(), args...)

			if c.Bool("metrics") {
				return writeMetrics(c, l)
			}
			return nil
		},
	}
}

func faultCommand() *cli.Command {
	return &cli.Command{
		Name:      "fault",
		Usage:     "Log an error message with its call stack",
		ArgsUsage: "<message>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "caller",
				Usage: "Name the line is tagged with",
				Value: "msglog",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return errors.New("fault: expected exactly one message")
			}
			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}
			l := newLogger(c, cat)
			defer l.Close()

			l.Fault(c.String("caller"), errors.New(c.Args().First()))
			return nil
		},
	}
}

// writeMetrics prints the metrics of l in the Prometheus text format
func writeMetrics(c *cli.Command, l *logger.Logger) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(metrics.ForLogger(l)); err != nil {
		return errors.Wrap(err, "registering metrics")
	}
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(c.Root().Writer, mf); err != nil {
			return errors.Wrap(err, "writing metrics")
		}
	}
	return nil
}
