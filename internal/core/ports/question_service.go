package ports

import (
	"context"

	"github.com/stackit/community-api/internal/core/domain"
)

// CreateQuestionInput carries all data needed to post a new question.
type CreateQuestionInput struct {
	AuthorID    string
	Title       string
	Description string
	TagIDs      []string
}

// UpdateQuestionInput carries a partial update. Nil fields are left as-is.
// SubjectID is the authenticated caller, checked against the question's
// author before anything is written.
type UpdateQuestionInput struct {
	SubjectID   string
	QuestionID  string
	Title       *string
	Description *string
}

// QuestionService defines use-case operations for questions.
type QuestionService interface {
	Create(ctx context.Context, input CreateQuestionInput) (*domain.Question, error)
	Get(ctx context.Context, id string) (*domain.Question, error)
	List(ctx context.Context) ([]domain.Question, error)
	Update(ctx context.Context, input UpdateQuestionInput) (*domain.Question, error)
	Delete(ctx context.Context, subjectID, questionID string) error
}
