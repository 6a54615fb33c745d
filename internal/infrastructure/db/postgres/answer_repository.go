package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stackit/community-api/internal/core/domain"
)

// AnswerRepository is the PostgreSQL-backed ports.AnswerRepository.
type AnswerRepository struct {
	pool *pgxpool.Pool
}

func NewAnswerRepository(pool *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{pool: pool}
}

func (r *AnswerRepository) Create(ctx context.Context, a *domain.Answer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO answers (id, content, question_id, author_id, vote_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.Content, a.QuestionID, a.AuthorID, a.VoteCount, a.CreatedAt)
	if err != nil {
		return dbErr("insert answer", err)
	}
	return nil
}

func (r *AnswerRepository) FindByID(ctx context.Context, id string) (*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Answer
	err := r.pool.QueryRow(ctx, `
		SELECT id, content, question_id, author_id, vote_count, created_at
		FROM answers WHERE id = $1
	`, id).Scan(&a.ID, &a.Content, &a.QuestionID, &a.AuthorID, &a.VoteCount, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, dbErr("find answer", err)
	}
	return &a, nil
}

// ListByQuestion returns answers newest first with author projections.
func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID string) ([]domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.content, a.question_id, a.author_id, a.vote_count, a.created_at, u.username
		FROM answers a
		JOIN users u ON u.id = a.author_id
		WHERE a.question_id = $1
		ORDER BY a.created_at DESC
	`, questionID)
	if err != nil {
		return nil, dbErr("list answers", err)
	}
	defer rows.Close()

	answers := make([]domain.Answer, 0)
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.Content, &a.QuestionID, &a.AuthorID, &a.VoteCount, &a.CreatedAt, &a.Author.Username); err != nil {
			return nil, dbErr("scan answer", err)
		}
		a.Author.ID = a.AuthorID
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("list answers", err)
	}
	return answers, nil
}

func (r *AnswerRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Answer
	err := r.pool.QueryRow(ctx, `
		UPDATE answers SET content = $2 WHERE id = $1
		RETURNING id, content, question_id, author_id, vote_count, created_at
	`, id, content).Scan(&a.ID, &a.Content, &a.QuestionID, &a.AuthorID, &a.VoteCount, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, dbErr("update answer", err)
	}
	return &a, nil
}

func (r *AnswerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM answers WHERE id = $1`, id)
	if err != nil {
		return dbErr("delete answer", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAnswerNotFound
	}
	return nil
}

// AddVote applies delta in a single UPDATE so concurrent votes on the same
// answer serialize inside the database and no increment is lost.
func (r *AnswerRepository) AddVote(ctx context.Context, id string, delta int) (*domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Answer
	err := r.pool.QueryRow(ctx, `
		UPDATE answers SET vote_count = vote_count + $2 WHERE id = $1
		RETURNING id, content, question_id, author_id, vote_count, created_at
	`, id, delta).Scan(&a.ID, &a.Content, &a.QuestionID, &a.AuthorID, &a.VoteCount, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, dbErr("apply vote", err)
	}
	return &a, nil
}
