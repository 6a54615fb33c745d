package ports

import (
	"context"

	"github.com/stackit/community-api/internal/core/domain"
)

// QuestionCache is a best-effort cache for the unfiltered question listing.
// A miss or a backend failure both report ok=false; callers fall through to
// the repository and never fail a request on cache errors.
type QuestionCache interface {
	GetList(ctx context.Context) (questions []domain.Question, ok bool)
	SetList(ctx context.Context, questions []domain.Question)
	// Invalidate drops the cached listing after any mutation that would
	// change it (question create/update/delete, answer writes, votes).
	Invalidate(ctx context.Context)
}
