package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/stackit/community-api/internal/core/domain"
	"github.com/stackit/community-api/internal/core/ports"
)

// AnswerService implements answer and vote use cases.
type AnswerService struct {
	answers   ports.AnswerRepository
	questions ports.QuestionRepository
	users     ports.UserRepository
	notifier  ports.NotificationDispatcher
	cache     ports.QuestionCache
	logger    zerolog.Logger
}

func NewAnswerService(
	answers ports.AnswerRepository,
	questions ports.QuestionRepository,
	users ports.UserRepository,
	notifier ports.NotificationDispatcher,
	cache ports.QuestionCache,
	logger zerolog.Logger,
) *AnswerService {
	return &AnswerService{
		answers:   answers,
		questions: questions,
		users:     users,
		notifier:  notifier,
		cache:     cache,
		logger:    logger,
	}
}

// Create posts an answer against an existing question. Both the target
// question and the declared author must exist before anything is written.
// The question's author is notified asynchronously unless they answered
// their own question.
func (s *AnswerService) Create(ctx context.Context, input ports.CreateAnswerInput) (*domain.Answer, error) {
	question, err := s.questions.FindByID(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, input.AuthorID)
	if err != nil {
		return nil, err
	}

	answer := &domain.Answer{
		ID:         xid.New().String(),
		Content:    input.Content,
		QuestionID: input.QuestionID,
		AuthorID:   input.AuthorID,
		CreatedAt:  time.Now().UTC(),
		Author:     author.Ref(),
	}

	if err := s.answers.Create(ctx, answer); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	if s.notifier != nil && question.AuthorID != input.AuthorID {
		s.notifier.Enqueue(ports.NotificationInput{
			UserID:  question.AuthorID,
			Content: fmt.Sprintf("%s answered your question: %s", author.Username, question.Title),
		})
	}

	s.logger.Info().
		Str("answer_id", answer.ID).
		Str("question_id", input.QuestionID).
		Str("author_id", input.AuthorID).
		Msg("answer created")

	return answer, nil
}

// ListByQuestion returns a question's answers newest first. The question must
// exist.
func (s *AnswerService) ListByQuestion(ctx context.Context, questionID string) ([]domain.Answer, error) {
	if _, err := s.questions.FindByID(ctx, questionID); err != nil {
		return nil, err
	}
	return s.answers.ListByQuestion(ctx, questionID)
}

// Update rewrites an answer's content after the existence and ownership gates.
func (s *AnswerService) Update(ctx context.Context, subjectID, answerID, content string) (*domain.Answer, error) {
	existing, err := s.answers.FindByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != subjectID {
		return nil, domain.ErrNotOwner
	}

	updated, err := s.answers.UpdateContent(ctx, answerID, content)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	return updated, nil
}

// Delete removes an answer after the existence and ownership gates.
func (s *AnswerService) Delete(ctx context.Context, subjectID, answerID string) error {
	existing, err := s.answers.FindByID(ctx, answerID)
	if err != nil {
		return err
	}
	if existing.AuthorID != subjectID {
		return domain.ErrNotOwner
	}

	if err := s.answers.Delete(ctx, answerID); err != nil {
		return err
	}
	s.invalidate(ctx)

	s.logger.Info().Str("answer_id", answerID).Msg("answer deleted")
	return nil
}

// Vote applies a +1/-1 to the answer's vote count. The increment happens in a
// single in-database update, so concurrent votes on the same answer never
// lose an update. Repeat votes by the same user are allowed.
func (s *AnswerService) Vote(ctx context.Context, answerID string, value int) (*domain.Answer, error) {
	if value != 1 && value != -1 {
		return nil, domain.NewValidationError("vote must be 1 or -1")
	}

	if _, err := s.answers.FindByID(ctx, answerID); err != nil {
		return nil, err
	}

	updated, err := s.answers.AddVote(ctx, answerID, value)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	return updated, nil
}

func (s *AnswerService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
