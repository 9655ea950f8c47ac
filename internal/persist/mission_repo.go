package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zerohour/missiond/internal/script"
)

// MissionState is everything a restarted daemon needs to resume a
// mission's bookkeeping.
type MissionState struct {
	Mission string
	Frame   uint32
	Book    script.Snapshot
	Names   []string // historical object names
}

type MissionStateRepo struct {
	db *DB
}

func NewMissionStateRepo(db *DB) *MissionStateRepo {
	return &MissionStateRepo{db: db}
}

// Load returns nil, nil when nothing was saved for mission.
func (r *MissionStateRepo) Load(ctx context.Context, mission string) (*MissionState, error) {
	st := &MissionState{
		Mission: mission,
		Book: script.Snapshot{
			Counters: make(map[string]int),
			Flags:    make(map[string]bool),
			Timers:   make(map[string]uint32),
		},
	}
	var frame int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT attempts, frame FROM mission_state WHERE mission = $1`, mission,
	).Scan(&st.Book.Attempts, &frame)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load mission state: %w", err)
	}
	st.Frame = uint32(frame)

	if err := r.scanPairs(ctx, `SELECT name, value FROM mission_counters WHERE mission = $1`, mission,
		func(rows pgx.Rows) error {
			var name string
			var v int
			if err := rows.Scan(&name, &v); err != nil {
				return err
			}
			st.Book.Counters[name] = v
			return nil
		}); err != nil {
		return nil, fmt.Errorf("load counters: %w", err)
	}
	if err := r.scanPairs(ctx, `SELECT name, value FROM mission_flags WHERE mission = $1`, mission,
		func(rows pgx.Rows) error {
			var name string
			var v bool
			if err := rows.Scan(&name, &v); err != nil {
				return err
			}
			st.Book.Flags[name] = v
			return nil
		}); err != nil {
		return nil, fmt.Errorf("load flags: %w", err)
	}
	if err := r.scanPairs(ctx, `SELECT name, frames_left FROM mission_timers WHERE mission = $1`, mission,
		func(rows pgx.Rows) error {
			var name string
			var left int64
			if err := rows.Scan(&name, &left); err != nil {
				return err
			}
			st.Book.Timers[name] = uint32(left)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("load timers: %w", err)
	}
	if err := r.scanPairs(ctx, `SELECT name FROM mission_object_names WHERE mission = $1 ORDER BY name`, mission,
		func(rows pgx.Rows) error {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			st.Names = append(st.Names, name)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("load object names: %w", err)
	}
	return st, nil
}

func (r *MissionStateRepo) scanPairs(ctx context.Context, sql, mission string, fn func(pgx.Rows) error) error {
	rows, err := r.db.Pool.Query(ctx, sql, mission)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Save replaces the stored state of st.Mission in one transaction.
func (r *MissionStateRepo) Save(ctx context.Context, st *MissionState) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("save mission state begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO mission_state (mission, attempts, frame, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (mission) DO UPDATE
		 SET attempts = EXCLUDED.attempts, frame = EXCLUDED.frame, updated_at = now()`,
		st.Mission, st.Book.Attempts, int64(st.Frame),
	); err != nil {
		return fmt.Errorf("save mission state: %w", err)
	}

	for _, table := range []string{"mission_counters", "mission_flags", "mission_timers", "mission_object_names"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE mission = $1`, st.Mission); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	batch := &pgx.Batch{}
	for name, v := range st.Book.Counters {
		batch.Queue(`INSERT INTO mission_counters (mission, name, value) VALUES ($1, $2, $3)`, st.Mission, name, v)
	}
	for name, v := range st.Book.Flags {
		batch.Queue(`INSERT INTO mission_flags (mission, name, value) VALUES ($1, $2, $3)`, st.Mission, name, v)
	}
	for name, left := range st.Book.Timers {
		batch.Queue(`INSERT INTO mission_timers (mission, name, frames_left) VALUES ($1, $2, $3)`, st.Mission, name, int64(left))
	}
	for _, name := range st.Names {
		batch.Queue(`INSERT INTO mission_object_names (mission, name) VALUES ($1, $2)`, st.Mission, name)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("save mission rows: %w", err)
		}
	}

	return tx.Commit(ctx)
}
