package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stackit/community-api/internal/core/domain"
	"github.com/stackit/community-api/internal/core/ports"
)

type stubQuestionRepo struct {
	mu        sync.Mutex
	questions map[string]*domain.Question
	tags      map[string][]string // question ID → tag IDs
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{
		questions: make(map[string]*domain.Question),
		tags:      make(map[string][]string),
	}
}

func cloneQuestion(q *domain.Question) *domain.Question {
	if q == nil {
		return nil
	}
	clone := *q
	return &clone
}

func (r *stubQuestionRepo) Create(_ context.Context, q *domain.Question, tagIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions[q.ID] = cloneQuestion(q)
	r.tags[q.ID] = tagIDs
	return nil
}

func (r *stubQuestionRepo) FindByID(_ context.Context, id string) (*domain.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q, ok := r.questions[id]; ok {
		return cloneQuestion(q), nil
	}
	return nil, domain.ErrQuestionNotFound
}

func (r *stubQuestionRepo) GetDetail(ctx context.Context, id string) (*domain.Question, error) {
	return r.FindByID(ctx, id)
}

func (r *stubQuestionRepo) List(_ context.Context) ([]domain.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Question, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, *q)
	}
	return out, nil
}

func (r *stubQuestionRepo) Update(_ context.Context, id string, title, description *string) (*domain.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	if title != nil {
		q.Title = *title
	}
	if description != nil {
		q.Description = *description
	}
	return cloneQuestion(q), nil
}

func (r *stubQuestionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(r.questions, id)
	return nil
}

type stubCache struct {
	mu          sync.Mutex
	list        []domain.Question
	warm        bool
	sets        int
	invalidates int
}

func (c *stubCache) GetList(_ context.Context) ([]domain.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.warm {
		return nil, false
	}
	return c.list, true
}

func (c *stubCache) SetList(_ context.Context, questions []domain.Question) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = questions
	c.warm = true
	c.sets++
}

func (c *stubCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warm = false
	c.invalidates++
}

func TestQuestionService_Create(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, nil, zerolog.Nop())

	q, err := svc.Create(context.Background(), ports.CreateQuestionInput{
		AuthorID:    "user-1",
		Title:       "How do channels work?",
		Description: "I keep deadlocking on unbuffered channels.",
		TagIDs:      []string{"tag-go"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if q.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if q.AuthorID != "user-1" {
		t.Fatalf("unexpected author: %s", q.AuthorID)
	}
	if got := repo.tags[q.ID]; len(got) != 1 || got[0] != "tag-go" {
		t.Fatalf("tag associations not stored: %v", got)
	}
}

func TestQuestionService_List_ServesFromCache(t *testing.T) {
	repo := newStubQuestionRepo()
	cache := &stubCache{}
	svc := NewQuestionService(repo, cache, zerolog.Nop())

	repo.questions["q1"] = &domain.Question{ID: "q1", Title: "cached?", CreatedAt: time.Now()}

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("first List failed: %v", err)
	}
	if len(first) != 1 || cache.sets != 1 {
		t.Fatalf("expected cold list to fill cache, got %d items, %d sets", len(first), cache.sets)
	}

	// a repo-side write without invalidation must not be visible while warm
	repo.questions["q2"] = &domain.Question{ID: "q2"}

	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("second List failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected warm cache to serve stale list, got %d items", len(second))
	}
}

func TestQuestionService_Create_InvalidatesCache(t *testing.T) {
	repo := newStubQuestionRepo()
	cache := &stubCache{warm: true}
	svc := NewQuestionService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateQuestionInput{
		AuthorID:    "user-1",
		Title:       "Fresh question",
		Description: "This should drop the cached listing.",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if cache.invalidates == 0 {
		t.Fatalf("expected cache invalidation on create")
	}
}

func TestQuestionService_Update_OwnershipGate(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, nil, zerolog.Nop())

	repo.questions["q1"] = &domain.Question{ID: "q1", AuthorID: "owner", Title: "original"}

	title := "changed"
	if _, err := svc.Update(context.Background(), ports.UpdateQuestionInput{
		SubjectID:  "intruder",
		QuestionID: "q1",
		Title:      &title,
	}); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if repo.questions["q1"].Title != "original" {
		t.Fatalf("non-owner update must not write")
	}

	updated, err := svc.Update(context.Background(), ports.UpdateQuestionInput{
		SubjectID:  "owner",
		QuestionID: "q1",
		Title:      &title,
	})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "changed" {
		t.Fatalf("unexpected title: %s", updated.Title)
	}
}

func TestQuestionService_Update_PartialFields(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo, nil, zerolog.Nop())

	repo.questions["q1"] = &domain.Question{ID: "q1", AuthorID: "owner", Title: "keep me", Description: "old"}

	desc := "new description"
	updated, err := svc.Update(context.Background(), ports.UpdateQuestionInput{
		SubjectID:   "owner",
		QuestionID:  "q1",
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "keep me" {
		t.Fatalf("nil title must leave the stored title untouched, got %q", updated.Title)
	}
	if updated.Description != "new description" {
		t.Fatalf("unexpected description: %q", updated.Description)
	}
}

func TestQuestionService_Update_NotFound(t *testing.T) {
	svc := NewQuestionService(newStubQuestionRepo(), nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), ports.UpdateQuestionInput{
		SubjectID:  "anyone",
		QuestionID: "missing",
	}); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestQuestionService_Delete(t *testing.T) {
	repo := newStubQuestionRepo()
	cache := &stubCache{warm: true}
	svc := NewQuestionService(repo, cache, zerolog.Nop())

	repo.questions["q1"] = &domain.Question{ID: "q1", AuthorID: "owner"}

	if err := svc.Delete(context.Background(), "intruder", "q1"); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "owner", "q1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.questions["q1"]; ok {
		t.Fatalf("question not deleted")
	}
	if cache.invalidates == 0 {
		t.Fatalf("expected cache invalidation on delete")
	}
}
