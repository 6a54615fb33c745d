package ports

import (
	"context"

	"github.com/stackit/community-api/internal/core/domain"
)

// CreateAnswerInput carries all data needed to post an answer. AuthorID is
// taken from the request body, matching the established API contract, and is
// verified to reference an existing user.
type CreateAnswerInput struct {
	Content    string
	QuestionID string
	AuthorID   string
}

// AnswerService defines use-case operations for answers and votes.
type AnswerService interface {
	Create(ctx context.Context, input CreateAnswerInput) (*domain.Answer, error)
	ListByQuestion(ctx context.Context, questionID string) ([]domain.Answer, error)
	Update(ctx context.Context, subjectID, answerID, content string) (*domain.Answer, error)
	Delete(ctx context.Context, subjectID, answerID string) error
	// Vote applies value (+1 or -1) to the answer's vote count. Any
	// authenticated user may vote, on any answer, any number of times.
	Vote(ctx context.Context, answerID string, value int) (*domain.Answer, error)
}
