package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/mathforge/internal/engine"
)

// HistoryRepo records generated questions and answers queries over them.
// The recent-type query drives variety: callers pass its result back as
// the exclusion list on the next generation request.
type HistoryRepo interface {
	// Record appends one generated question to the history and returns
	// the new row's id.
	Record(ctx context.Context, q *engine.Question) (string, error)

	// RecentTypes returns the distinct template types of the most recent
	// generations for a chapter, newest first, at most limit entries.
	RecentTypes(ctx context.Context, chapterID string, limit int) ([]string, error)

	// CountByDifficulty returns how many questions have been generated
	// per difficulty level for a chapter.
	CountByDifficulty(ctx context.Context, chapterID string) (map[int]int, error)

	// Prune deletes all but the newest keep rows.
	Prune(ctx context.Context, keep int) error
}

type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) Record(ctx context.Context, q *engine.Question) (string, error) {
	id := uuid.NewString()
	regenerated := 0
	if q.IsRegenerated {
		regenerated = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generations
			(id, question_id, chapter_id, question_type, difficulty,
			 cognitive_domain, representation, regenerated, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, q.ID, q.ChapterID, q.Type, q.Difficulty,
		string(q.Domain), string(q.Representation), regenerated,
		q.GeneratedAt.UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("record generation: %w", err)
	}
	return id, nil
}

func (r *historyRepo) RecentTypes(ctx context.Context, chapterID string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT question_type FROM generations
		 WHERE chapter_id = ?
		 GROUP BY question_type
		 ORDER BY MAX(created_at) DESC, MAX(rowid) DESC
		 LIMIT ?`,
		chapterID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent types: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *historyRepo) CountByDifficulty(ctx context.Context, chapterID string) (map[int]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT difficulty, COUNT(*) FROM generations
		 WHERE chapter_id = ?
		 GROUP BY difficulty`,
		chapterID,
	)
	if err != nil {
		return nil, fmt.Errorf("count by difficulty: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var level, n int
		if err := rows.Scan(&level, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[level] = n
	}
	return counts, rows.Err()
}

func (r *historyRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM generations WHERE id NOT IN (
			SELECT id FROM generations
			ORDER BY created_at DESC, rowid DESC
			LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}
