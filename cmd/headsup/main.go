package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"holdem-showdown/internal/config"
	"holdem-showdown/internal/simulator"
	"holdem-showdown/pkg/model"
)

// CLI deals random heads-up hands and reports which starting hands win
type CLI struct {
	Trials  int    `default:"${trials}" help:"Number of hands to deal"`
	Workers int    `default:"${workers}" help:"Number of concurrent workers"`
	Seed    int64  `default:"${seed}" help:"RNG seed (0 for random)"`
	Top     int    `default:"${top}" help:"Number of starting hands to list"`
	Verbose bool   `short:"v" help:"Print every deal"`
	Format  string `default:"table" enum:"table,yaml" help:"Report format: table, yaml"`
	Persist bool   `help:"Save the run to postgres"`
}

func main() {
	cfg := config.Instance().Simulation

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("headsup"),
		kong.Description("Simulate heads-up Texas Hold'em showdowns."),
		kong.Vars{
			"trials":  strconv.Itoa(cfg.Trials),
			"workers": strconv.Itoa(cfg.Workers),
			"seed":    strconv.FormatInt(cfg.Seed, 10),
			"top":     strconv.Itoa(cfg.Top),
		},
	)

	if lvl, err := logrus.ParseLevel(config.Instance().Log.Level); err == nil {
		logrus.SetLevel(lvl)
	}
	logrus.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx.FatalIfErrorf(cli.Run(ctx, os.Stdout))
}

// Run runs the simulation and writes the report to w
func (c *CLI) Run(ctx context.Context, w io.Writer) error {
	opts := simulator.Options{
		Trials:  c.Trials,
		Workers: c.Workers,
		Seed:    c.Seed,
	}

	if c.Verbose {
		opts.Transcript = w
	}

	sim, err := simulator.New(opts)
	if err != nil {
		return err
	}

	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	switch c.Format {
	case "yaml":
		err = writeYAML(w, result.Report(c.Top))
	default:
		err = writeTable(w, result, c.Top)
	}
	if err != nil {
		return err
	}

	if c.Persist {
		run := model.NewSimulationRun(result, c.Top)
		if err := run.Save(ctx, result.Wins); err != nil {
			return fmt.Errorf("could not save run: %w", err)
		}

		logrus.WithField("uuid", run.UUID).Info("saved simulation run")
	}

	return nil
}
