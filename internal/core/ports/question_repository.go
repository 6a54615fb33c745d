package ports

import (
	"context"

	"github.com/stackit/community-api/internal/core/domain"
)

// QuestionRepository defines persistence operations for questions.
// Single-row lookups return domain.ErrQuestionNotFound when no row matches.
type QuestionRepository interface {
	// Create inserts the question and its tag associations.
	Create(ctx context.Context, q *domain.Question, tagIDs []string) error
	// FindByID retrieves the bare question row, without tags, author
	// projection, or answers. Used for existence and ownership checks.
	FindByID(ctx context.Context, id string) (*domain.Question, error)
	// GetDetail retrieves a question with tags, author projection, and
	// nested answers (each with its own author projection).
	GetDetail(ctx context.Context, id string) (*domain.Question, error)
	// List returns all questions newest first, with tags, author
	// projections, and nested answers.
	List(ctx context.Context) ([]domain.Question, error)
	// Update applies a partial update; nil fields are left untouched.
	Update(ctx context.Context, id string, title, description *string) (*domain.Question, error)
	Delete(ctx context.Context, id string) error
}
