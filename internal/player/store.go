// Package player owns persisted player state: the progress snapshot
// blob, the submission log, and the HTTP surface around them.
package player

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/promptquest/backend/internal/models"
)

// Store persists player progress snapshots and submission history.
type Store interface {
	// Load returns the raw progress snapshot for the key. The bool is
	// false when no snapshot exists yet.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error

	LogSubmission(ctx context.Context, sub models.QuestSubmission) error
	ListSubmissions(ctx context.Context, key string, limit int) ([]models.QuestSubmission, error)
}

// SQLStore backs the Store interface with Postgres or SQLite. Queries
// are written with $n placeholders and rebound for SQLite.
type SQLStore struct {
	db     *sql.DB
	driver string
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// rebind rewrites $n placeholders to ? for drivers that need it.
func (s *SQLStore) rebind(query string) string {
	if s.driver != "sqlite3" {
		return query
	}
	var b strings.Builder
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '1' && query[i+1] <= '9' {
			b.WriteByte('?')
			for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
				i++
			}
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT progress FROM player_progress WHERE player_key = $1`),
		key,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load progress %q: %w", key, err)
	}
	return data, true, nil
}

func (s *SQLStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		s.rebind(`INSERT INTO player_progress (player_key, progress, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (player_key) DO UPDATE SET progress = excluded.progress, updated_at = excluded.updated_at`),
		key, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save progress %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) LogSubmission(ctx context.Context, sub models.QuestSubmission) error {
	_, err := s.db.ExecContext(ctx,
		s.rebind(`INSERT INTO quest_submissions
		 (id, player_key, quest_id, user_prompt, score, earned_xp, fallback, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`),
		sub.ID, sub.PlayerKey, sub.QuestID, sub.UserPrompt,
		sub.Score, sub.EarnedXP, sub.Fallback, sub.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("log submission: %w", err)
	}
	return nil
}

func (s *SQLStore) ListSubmissions(ctx context.Context, key string, limit int) ([]models.QuestSubmission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT id, player_key, quest_id, user_prompt, score, earned_xp, fallback, submitted_at
		 FROM quest_submissions
		 WHERE player_key = $1
		 ORDER BY submitted_at DESC
		 LIMIT `+strconv.Itoa(limit)),
		key,
	)
	if err != nil {
		return nil, fmt.Errorf("list submissions %q: %w", key, err)
	}
	defer rows.Close()

	subs := []models.QuestSubmission{}
	for rows.Next() {
		var sub models.QuestSubmission
		if err := rows.Scan(&sub.ID, &sub.PlayerKey, &sub.QuestID, &sub.UserPrompt,
			&sub.Score, &sub.EarnedXP, &sub.Fallback, &sub.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
