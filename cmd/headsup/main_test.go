package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"holdem-showdown/internal/simulator"
)

func TestCLI_Run_table(t *testing.T) {
	a := assert.New(t)

	var buf bytes.Buffer
	cli := CLI{Trials: 500, Workers: 2, Seed: 7, Top: 3, Format: "table"}
	require.NoError(t, cli.Run(context.Background(), &buf))

	out := buf.String()
	a.Regexp(`Trials:\s+500`, out)
	a.Regexp(`Seed:\s+7`, out)
	a.Contains(out, "Winning category")
	a.Contains(out, "Royal Flush")
	a.Contains(out, "High Card")
}

func TestCLI_Run_yaml(t *testing.T) {
	a := assert.New(t)

	var buf bytes.Buffer
	cli := CLI{Trials: 300, Workers: 3, Seed: 11, Top: 5, Format: "yaml"}
	require.NoError(t, cli.Run(context.Background(), &buf))

	var report simulator.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	a.Equal(300, report.Trials)
	a.Equal(int64(11), report.Seed)
	a.Equal(300, report.P1Wins+report.P2Wins+report.Splits)
	a.LessOrEqual(len(report.TopHands), 5)
	a.Len(report.Categories, 10)
}

func TestCLI_Run_invalidTrials(t *testing.T) {
	cli := CLI{Trials: 0, Format: "table"}
	err := cli.Run(context.Background(), &bytes.Buffer{})
	assert.ErrorIs(t, err, simulator.ErrInvalidTrials)
}

func TestCLI_Run_verbose(t *testing.T) {
	var buf bytes.Buffer
	cli := CLI{Trials: 2, Workers: 1, Seed: 3, Top: 1, Verbose: true, Format: "table"}
	require.NoError(t, cli.Run(context.Background(), &buf))
	assert.Contains(t, buf.String(), "P1:")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, percent(1, 0))
	assert.Equal(t, 25.0, percent(1, 4))
}
