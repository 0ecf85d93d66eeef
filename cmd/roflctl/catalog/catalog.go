// Package catalog keeps an sqlite index of replay summaries so large replay
// folders can be listed without re-reading every file.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/joshuapare/roflkit/pkg/rofl"
)

// Entry is one indexed replay.
type Entry struct {
	Path      string       `json:"path"`
	Summary   rofl.Summary `json:"summary"`
	IndexedAt time.Time    `json:"indexed_at"`
}

// Catalog manages the index database.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the index at path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	c := &Catalog{db: db}
	if err := c.init(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Catalog) init() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS replays (
			path         TEXT PRIMARY KEY,
			file_name    TEXT NOT NULL,
			match_id     INTEGER NOT NULL,
			map          TEXT NOT NULL,
			patch        TEXT NOT NULL,
			game_length  INTEGER NOT NULL,
			blue_victory INTEGER NOT NULL,
			blue_players TEXT NOT NULL,
			red_players  TEXT NOT NULL,
			indexed_at   INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close releases the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Put stores or replaces the summary indexed under path.
func (c *Catalog) Put(ctx context.Context, path string, s rofl.Summary, at time.Time) error {
	blue, err := json.Marshal(s.BluePlayers)
	if err != nil {
		return fmt.Errorf("encode blue roster: %w", err)
	}
	red, err := json.Marshal(s.RedPlayers)
	if err != nil {
		return fmt.Errorf("encode red roster: %w", err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO replays
			(path, file_name, match_id, map, patch, game_length, blue_victory, blue_players, red_players, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		path, s.FileName, int64(s.MatchID), s.Map, s.Patch, s.GameLength, s.BlueVictory, string(blue), string(red), at.Unix(),
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", path, err)
	}
	return nil
}

// List returns every entry ordered by path.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT path, file_name, match_id, map, patch, game_length, blue_victory, blue_players, red_players, indexed_at
		FROM replays ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("query replays: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			matchID   int64
			blue, red string
			indexedAt int64
		)
		if err := rows.Scan(&e.Path, &e.Summary.FileName, &matchID, &e.Summary.Map, &e.Summary.Patch,
			&e.Summary.GameLength, &e.Summary.BlueVictory, &blue, &red, &indexedAt); err != nil {
			return nil, fmt.Errorf("scan replay row: %w", err)
		}
		e.Summary.MatchID = uint64(matchID)
		if err := json.Unmarshal([]byte(blue), &e.Summary.BluePlayers); err != nil {
			return nil, fmt.Errorf("decode blue roster of %s: %w", e.Path, err)
		}
		if err := json.Unmarshal([]byte(red), &e.Summary.RedPlayers); err != nil {
			return nil, fmt.Errorf("decode red roster of %s: %w", e.Path, err)
		}
		e.IndexedAt = time.Unix(indexedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
