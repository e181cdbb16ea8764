package model

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"holdem-showdown/internal/simulator"
	"holdem-showdown/pkg/db"
)

const simulationRunColumns = `
simulation_runs.id,
simulation_runs.uuid,
simulation_runs.trials,
simulation_runs.workers,
simulation_runs.seed,
simulation_runs.p1_wins,
simulation_runs.p2_wins,
simulation_runs.splits,
simulation_runs.elapsed_ms,
simulation_runs.top_hands,
simulation_runs.report,
simulation_runs.created`

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrDuplicateKey happens if a run is saved twice
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

// SimulationRun is a record in the `simulation_runs` table
type SimulationRun struct {
	ID       int64            `json:"-"`
	UUID     string           `json:"uuid"`
	Trials   int              `json:"trials"`
	Workers  int              `json:"workers"`
	Seed     int64            `json:"seed"`
	P1Wins   int              `json:"p1Wins"`
	P2Wins   int              `json:"p2Wins"`
	Splits   int              `json:"splits"`
	Elapsed  time.Duration    `json:"elapsedNs"`
	TopHands []string         `json:"topHands"`
	Report   simulator.Report `json:"report"`
	Created  time.Time        `json:"created"`
}

// NewSimulationRun builds an unsaved record from a simulation result
func NewSimulationRun(result *simulator.Result, top int) *SimulationRun {
	report := result.Report(top)
	topHands := make([]string, len(report.TopHands))
	for i, tally := range report.TopHands {
		topHands[i] = tally.Shorthand
	}

	return &SimulationRun{
		UUID:     uuid.New().String(),
		Trials:   result.Trials,
		Workers:  result.Workers,
		Seed:     result.Seed,
		P1Wins:   result.P1Wins,
		P2Wins:   result.P2Wins,
		Splits:   result.Splits,
		Elapsed:  result.Elapsed,
		TopHands: topHands,
		Report:   report,
	}
}

func getSimulationRunByRow(row db.Scanner) (*SimulationRun, error) {
	var run SimulationRun
	var elapsedMS int64
	var report []byte
	if err := row.Scan(&run.ID, &run.UUID, &run.Trials, &run.Workers, &run.Seed, &run.P1Wins, &run.P2Wins, &run.Splits, &elapsedMS, pq.Array(&run.TopHands), &report, &run.Created); err != nil {
		return nil, err
	}

	run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	if err := json.Unmarshal(report, &run.Report); err != nil {
		return nil, err
	}

	return &run, nil
}

// Save inserts the run and the win count of every starting hand
func (s *SimulationRun) Save(ctx context.Context, wins map[string]int) error {
	report, err := json.Marshal(s.Report)
	if err != nil {
		return err
	}

	tx, err := db.Instance().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
INSERT INTO simulation_runs (uuid, trials, workers, seed, p1_wins, p2_wins, splits, elapsed_ms, top_hands, report)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, created`

	row := tx.QueryRowContext(ctx, query, s.UUID, s.Trials, s.Workers, s.Seed, s.P1Wins, s.P2Wins, s.Splits, s.Elapsed.Milliseconds(), pq.Array(s.TopHands), report)
	if err := row.Scan(&s.ID, &s.Created); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqDuplicateKeyErrorCode {
			return ErrDuplicateKey
		}

		return err
	}

	const winsQuery = `
INSERT INTO simulation_hand_wins (run_id, shorthand, wins)
VALUES ($1, $2, $3)`

	for shorthand, n := range wins {
		if _, err := tx.ExecContext(ctx, winsQuery, s.ID, shorthand, n); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetSimulationRunByUUID returns a run by its UUID
func GetSimulationRunByUUID(ctx context.Context, id string) (*SimulationRun, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, sql.ErrNoRows
	}

	const query = `
SELECT ` + simulationRunColumns + `
FROM simulation_runs
WHERE uuid = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return getSimulationRunByRow(row)
}

// GetSimulationRuns returns the most recent runs first
func GetSimulationRuns(ctx context.Context, start int64, rows int) ([]*SimulationRun, error) {
	const query = `
SELECT ` + simulationRunColumns + `
FROM simulation_runs
ORDER BY created DESC, id DESC
OFFSET $1
LIMIT $2`

	res, err := db.Instance().QueryContext(ctx, query, start, rows)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	runs := make([]*SimulationRun, 0, rows)
	for res.Next() {
		run, err := getSimulationRunByRow(res)
		if err != nil {
			return nil, err
		}

		runs = append(runs, run)
	}

	return runs, res.Err()
}

// GetHandWins returns the win count of every starting hand for the run
func (s *SimulationRun) GetHandWins(ctx context.Context) (map[string]int, error) {
	const query = `
SELECT shorthand, wins
FROM simulation_hand_wins
WHERE run_id = $1`

	res, err := db.Instance().QueryContext(ctx, query, s.ID)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	wins := make(map[string]int)
	for res.Next() {
		var shorthand string
		var n int
		if err := res.Scan(&shorthand, &n); err != nil {
			return nil, err
		}

		wins[shorthand] = n
	}

	return wins, res.Err()
}
