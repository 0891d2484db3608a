package driven

import (
	"context"

	"github.com/arkivio/docload/internal/core/domain"
)

// SpaceGroupStore persists space groups and their membership.
// Name uniqueness is enforced by the store; violations surface as
// domain.ErrAlreadyExists. No automatic retry is performed.
type SpaceGroupStore interface {
	// Create inserts a new group with no members.
	Create(ctx context.Context, orgID int64, name, summary string) error

	// List returns the org's groups with members joined, newest first.
	// nameMatch, when non-empty, is a substring filter on the name.
	List(ctx context.Context, orgID int64, nameMatch string) ([]domain.SpaceGroup, error)

	// Update applies a partial update: only non-empty name/summary are
	// changed, updated_at is always refreshed, and membership is
	// replaced wholesale with members (delete-then-reinsert).
	Update(ctx context.Context, id, orgID int64, members []int64, name, summary string) error

	// Delete removes the group's membership rows then the group row.
	// Scoped to orgID to prevent cross-tenant deletion.
	Delete(ctx context.Context, id, orgID int64) error
}
