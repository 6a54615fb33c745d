package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stackit/community-api/internal/core/domain"
)

// QuestionRepository is the PostgreSQL-backed ports.QuestionRepository.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// Create inserts the question and its tag associations in one transaction.
// An unknown tag id surfaces as a foreign-key failure wrapped as a database
// error.
func (r *QuestionRepository) Create(ctx context.Context, q *domain.Question, tagIDs []string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return dbErr("begin insert question", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO questions (id, title, description, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, q.ID, q.Title, q.Description, q.AuthorID, q.CreatedAt)
	if err != nil {
		return dbErr("insert question", err)
	}

	for _, tagID := range tagIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO question_tags (question_id, tag_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, q.ID, tagID)
		if err != nil {
			return dbErr("insert question tag", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return dbErr("commit insert question", err)
	}
	return nil
}

// FindByID retrieves the bare question row, for existence and ownership checks.
func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var q domain.Question
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, description, author_id, created_at
		FROM questions WHERE id = $1
	`, id).Scan(&q.ID, &q.Title, &q.Description, &q.AuthorID, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, dbErr("find question", err)
	}
	return &q, nil
}

// GetDetail retrieves a question with tags, author projection, and nested
// answers.
func (r *QuestionRepository) GetDetail(ctx context.Context, id string) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var q domain.Question
	err := r.pool.QueryRow(ctx, `
		SELECT q.id, q.title, q.description, q.author_id, q.created_at, u.username
		FROM questions q
		JOIN users u ON u.id = q.author_id
		WHERE q.id = $1
	`, id).Scan(&q.ID, &q.Title, &q.Description, &q.AuthorID, &q.CreatedAt, &q.Author.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, dbErr("get question", err)
	}
	q.Author.ID = q.AuthorID

	tagsByQuestion, err := r.tagsFor(ctx, []string{q.ID})
	if err != nil {
		return nil, err
	}
	q.Tags = tagsByQuestion[q.ID]

	answersByQuestion, err := r.answersFor(ctx, []string{q.ID})
	if err != nil {
		return nil, err
	}
	q.Answers = answersByQuestion[q.ID]

	return &q, nil
}

// List returns all questions newest first with tags, author projections, and
// nested answers. Associations load in two batch queries over the id set.
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT q.id, q.title, q.description, q.author_id, q.created_at, u.username
		FROM questions q
		JOIN users u ON u.id = q.author_id
		ORDER BY q.created_at DESC
	`)
	if err != nil {
		return nil, dbErr("list questions", err)
	}
	defer rows.Close()

	questions := make([]domain.Question, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.AuthorID, &q.CreatedAt, &q.Author.Username); err != nil {
			return nil, dbErr("scan question", err)
		}
		q.Author.ID = q.AuthorID
		questions = append(questions, q)
		ids = append(ids, q.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("list questions", err)
	}
	if len(questions) == 0 {
		return questions, nil
	}

	tagsByQuestion, err := r.tagsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	answersByQuestion, err := r.answersFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range questions {
		questions[i].Tags = tagsByQuestion[questions[i].ID]
		questions[i].Answers = answersByQuestion[questions[i].ID]
	}
	return questions, nil
}

// Update applies a partial update; nil fields keep their stored values.
func (r *QuestionRepository) Update(ctx context.Context, id string, title, description *string) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var q domain.Question
	err := r.pool.QueryRow(ctx, `
		UPDATE questions
		SET title = COALESCE($2, title), description = COALESCE($3, description)
		WHERE id = $1
		RETURNING id, title, description, author_id, created_at
	`, id, title, description).Scan(&q.ID, &q.Title, &q.Description, &q.AuthorID, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, dbErr("update question", err)
	}
	return &q, nil
}

// Delete removes the question; answers and tag links cascade.
func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return dbErr("delete question", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) tagsFor(ctx context.Context, questionIDs []string) (map[string][]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT qt.question_id, t.id, t.name
		FROM question_tags qt
		JOIN tags t ON t.id = qt.tag_id
		WHERE qt.question_id = ANY($1)
	`, questionIDs)
	if err != nil {
		return nil, dbErr("load question tags", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Tag)
	for rows.Next() {
		var questionID string
		var t domain.Tag
		if err := rows.Scan(&questionID, &t.ID, &t.Name); err != nil {
			return nil, dbErr("scan question tag", err)
		}
		out[questionID] = append(out[questionID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("load question tags", err)
	}
	return out, nil
}

func (r *QuestionRepository) answersFor(ctx context.Context, questionIDs []string) (map[string][]domain.Answer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.content, a.question_id, a.author_id, a.vote_count, a.created_at, u.username
		FROM answers a
		JOIN users u ON u.id = a.author_id
		WHERE a.question_id = ANY($1)
		ORDER BY a.created_at DESC
	`, questionIDs)
	if err != nil {
		return nil, dbErr("load answers", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Answer)
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.Content, &a.QuestionID, &a.AuthorID, &a.VoteCount, &a.CreatedAt, &a.Author.Username); err != nil {
			return nil, dbErr("scan answer", err)
		}
		a.Author.ID = a.AuthorID
		out[a.QuestionID] = append(out[a.QuestionID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("load answers", err)
	}
	return out, nil
}
