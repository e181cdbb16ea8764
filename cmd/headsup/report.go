package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v2"

	"holdem-showdown/internal/simulator"
)

func writeYAML(w io.Writer, report simulator.Report) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(report); err != nil {
		return err
	}

	return enc.Close()
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(n) * 100 / float64(total)
}

func writeTable(w io.Writer, result *simulator.Result, top int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "Trials:\t%d\t\n", result.Trials)
	fmt.Fprintf(tw, "Seed:\t%d\t\n", result.Seed)
	fmt.Fprintf(tw, "Workers:\t%d\t\n", result.Workers)
	fmt.Fprintf(tw, "Elapsed:\t%s\t\n", result.Elapsed)
	fmt.Fprintf(tw, "P1 wins:\t%d\t%.2f%%\t\n", result.P1Wins, percent(result.P1Wins, result.Trials))
	fmt.Fprintf(tw, "P2 wins:\t%d\t%.2f%%\t\n", result.P2Wins, percent(result.P2Wins, result.Trials))
	fmt.Fprintf(tw, "Splits:\t%d\t%.2f%%\t\n", result.Splits, percent(result.Splits, result.Trials))
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Hand\tWins\t")
	for _, tally := range result.Top(top) {
		fmt.Fprintf(tw, "%s\t%d\t\n", tally.Shorthand, tally.Wins)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Winning category\tCount\t")
	for _, cc := range result.Histogram() {
		fmt.Fprintf(tw, "%s\t%d\t\n", cc.Category, cc.Count)
	}

	return tw.Flush()
}
