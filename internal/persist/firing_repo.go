package persist

import (
	"context"
	"fmt"
)

// Firing records one script firing.
type Firing struct {
	Mission string
	Script  string
	Frame   uint32
}

// FiringLogRepo is the append-only log of script firings.
type FiringLogRepo struct {
	db *DB
}

func NewFiringLogRepo(db *DB) *FiringLogRepo {
	return &FiringLogRepo{db: db}
}

// Write appends a batch of firings in a single transaction.
func (r *FiringLogRepo) Write(ctx context.Context, entries []Firing) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("firing log begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		if _, err := tx.Exec(ctx,
			`INSERT INTO script_firings (mission, script, frame) VALUES ($1, $2, $3)`,
			e.Mission, e.Script, int64(e.Frame),
		); err != nil {
			return fmt.Errorf("firing log insert: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Count returns how many firings were logged for mission.
func (r *FiringLogRepo) Count(ctx context.Context, mission string) (int, error) {
	var n int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM script_firings WHERE mission = $1`, mission,
	).Scan(&n)
	return n, err
}
