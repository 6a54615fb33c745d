package ports

import (
	"context"

	"github.com/stackit/community-api/internal/core/domain"
)

// AnswerRepository defines persistence operations for answers.
// Single-row lookups return domain.ErrAnswerNotFound when no row matches.
type AnswerRepository interface {
	Create(ctx context.Context, a *domain.Answer) error
	FindByID(ctx context.Context, id string) (*domain.Answer, error)
	// ListByQuestion returns a question's answers newest first, with
	// author projections.
	ListByQuestion(ctx context.Context, questionID string) ([]domain.Answer, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Answer, error)
	Delete(ctx context.Context, id string) error
	// AddVote applies delta to the stored vote count in a single
	// in-database increment and returns the updated answer. The increment
	// must be atomic: concurrent votes on the same answer may never lose
	// an update.
	AddVote(ctx context.Context, id string, delta int) (*domain.Answer, error)
}
