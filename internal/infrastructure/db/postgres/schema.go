package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied on startup when MigrateOnStart is set. Statements are
// idempotent so repeated boots are safe.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          TEXT PRIMARY KEY,
		username    TEXT NOT NULL UNIQUE,
		email       TEXT NOT NULL UNIQUE,
		password    TEXT NOT NULL,
		role        TEXT NOT NULL DEFAULT 'user',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		author_id   TEXT NOT NULL REFERENCES users(id),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS question_tags (
		question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		tag_id      TEXT NOT NULL REFERENCES tags(id),
		PRIMARY KEY (question_id, tag_id)
	)`,
	`CREATE TABLE IF NOT EXISTS answers (
		id          TEXT PRIMARY KEY,
		content     TEXT NOT NULL,
		question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		author_id   TEXT NOT NULL REFERENCES users(id),
		vote_count  INTEGER NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		content    TEXT NOT NULL,
		read       BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_created_at ON questions (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers (question_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications (user_id)`,
	// Starter tag set so fresh installs have something to attach.
	`INSERT INTO tags (id, name) VALUES
		('tag_go', 'go'),
		('tag_sql', 'sql'),
		('tag_http', 'http'),
		('tag_testing', 'testing'),
		('tag_general', 'general')
	ON CONFLICT (id) DO NOTHING`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
