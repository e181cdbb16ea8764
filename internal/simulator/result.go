package simulator

import (
	"sort"
	"time"

	"holdem-showdown/pkg/poker"
)

// Result holds the tallies of a simulation
type Result struct {
	Trials int
	P1Wins int
	P2Wins int
	Splits int
	// Wins counts the wins for each starting hand shorthand
	Wins map[string]int
	// Categories counts the category of the winning holding, splits are counted once
	Categories map[poker.Category]int

	Seed    int64
	Workers int
	Elapsed time.Duration
}

// NewResult returns an empty result
func NewResult() *Result {
	return &Result{
		Wins:       make(map[string]int),
		Categories: make(map[poker.Category]int),
	}
}

// Add tallies a single deal
func (r *Result) Add(deal Deal) {
	r.Trials++

	winner, ok := deal.Winner()
	if !ok {
		r.Splits++
		r.Categories[deal.Holdings[0].Category()]++
		return
	}

	if winner == 0 {
		r.P1Wins++
	} else {
		r.P2Wins++
	}

	r.Wins[deal.Hole[winner].Shorthand()]++
	r.Categories[deal.Holdings[winner].Category()]++
}

// Merge adds the tallies of other into r
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}

	r.Trials += other.Trials
	r.P1Wins += other.P1Wins
	r.P2Wins += other.P2Wins
	r.Splits += other.Splits

	for k, v := range other.Wins {
		r.Wins[k] += v
	}

	for k, v := range other.Categories {
		r.Categories[k] += v
	}
}

// Tally is the number of wins for a starting hand
type Tally struct {
	Shorthand string `yaml:"hand" json:"hand"`
	Wins      int    `yaml:"wins" json:"wins"`
}

// Top returns the n starting hands with the most wins
// Ties are ordered by shorthand. A non-positive n returns every hand.
func (r *Result) Top(n int) []Tally {
	tallies := make([]Tally, 0, len(r.Wins))
	for shorthand, wins := range r.Wins {
		tallies = append(tallies, Tally{Shorthand: shorthand, Wins: wins})
	}

	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Wins != tallies[j].Wins {
			return tallies[i].Wins > tallies[j].Wins
		}

		return tallies[i].Shorthand < tallies[j].Shorthand
	})

	if n > 0 && n < len(tallies) {
		tallies = tallies[:n]
	}

	return tallies
}

// CategoryCount is the number of pots won with a category
type CategoryCount struct {
	Category string `yaml:"category" json:"category"`
	Count    int    `yaml:"count" json:"count"`
}

// Histogram returns the category counts from strongest to weakest
// Categories that never won are included with a zero count
func (r *Result) Histogram() []CategoryCount {
	counts := make([]CategoryCount, len(poker.Categories))
	for i, c := range poker.Categories {
		counts[i] = CategoryCount{Category: c.String(), Count: r.Categories[c]}
	}

	return counts
}

// Report is a serializable summary of a result
type Report struct {
	Trials     int             `yaml:"trials" json:"trials"`
	Workers    int             `yaml:"workers" json:"workers"`
	Seed       int64           `yaml:"seed" json:"seed"`
	P1Wins     int             `yaml:"p1Wins" json:"p1Wins"`
	P2Wins     int             `yaml:"p2Wins" json:"p2Wins"`
	Splits     int             `yaml:"splits" json:"splits"`
	Elapsed    string          `yaml:"elapsed" json:"elapsed"`
	TopHands   []Tally         `yaml:"topHands" json:"topHands"`
	Categories []CategoryCount `yaml:"categories" json:"categories"`
}

// Report summarizes the result with the top n starting hands
func (r *Result) Report(top int) Report {
	return Report{
		Trials:     r.Trials,
		Workers:    r.Workers,
		Seed:       r.Seed,
		P1Wins:     r.P1Wins,
		P2Wins:     r.P2Wins,
		Splits:     r.Splits,
		Elapsed:    r.Elapsed.String(),
		TopHands:   r.Top(top),
		Categories: r.Histogram(),
	}
}
