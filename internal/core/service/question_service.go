package service

import (
	"context"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/stackit/community-api/internal/core/domain"
	"github.com/stackit/community-api/internal/core/ports"
)

// QuestionService implements question use cases. The cache is optional; a nil
// cache disables listing memoisation without changing behaviour.
type QuestionService struct {
	repo   ports.QuestionRepository
	cache  ports.QuestionCache
	logger zerolog.Logger
}

func NewQuestionService(repo ports.QuestionRepository, cache ports.QuestionCache, logger zerolog.Logger) *QuestionService {
	return &QuestionService{repo: repo, cache: cache, logger: logger}
}

// Create persists a new question owned by input.AuthorID.
func (s *QuestionService) Create(ctx context.Context, input ports.CreateQuestionInput) (*domain.Question, error) {
	q := &domain.Question{
		ID:          xid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		AuthorID:    input.AuthorID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, q, input.TagIDs); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info().
		Str("question_id", q.ID).
		Str("author_id", q.AuthorID).
		Msg("question created")

	created, err := s.repo.GetDetail(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns a single question with tags, author, and nested answers.
func (s *QuestionService) Get(ctx context.Context, id string) (*domain.Question, error) {
	return s.repo.GetDetail(ctx, id)
}

// List returns all questions newest first, serving from the cache when warm.
func (s *QuestionService) List(ctx context.Context) ([]domain.Question, error) {
	if s.cache != nil {
		if questions, ok := s.cache.GetList(ctx); ok {
			return questions, nil
		}
	}

	questions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetList(ctx, questions)
	}
	return questions, nil
}

// Update applies a partial update after the existence and ownership gates.
func (s *QuestionService) Update(ctx context.Context, input ports.UpdateQuestionInput) (*domain.Question, error) {
	existing, err := s.repo.FindByID(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != input.SubjectID {
		return nil, domain.ErrNotOwner
	}

	updated, err := s.repo.Update(ctx, input.QuestionID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	return updated, nil
}

// Delete removes a question after the existence and ownership gates.
func (s *QuestionService) Delete(ctx context.Context, subjectID, questionID string) error {
	existing, err := s.repo.FindByID(ctx, questionID)
	if err != nil {
		return err
	}
	if existing.AuthorID != subjectID {
		return domain.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, questionID); err != nil {
		return err
	}
	s.invalidate(ctx)

	s.logger.Info().Str("question_id", questionID).Msg("question deleted")
	return nil
}

func (s *QuestionService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
