package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
)

// spaceGroupStore implements driven.SpaceGroupStore.
type spaceGroupStore struct {
	store *Store
}

var _ driven.SpaceGroupStore = (*spaceGroupStore)(nil)

// Create inserts a new group with no members. Name uniqueness is
// enforced by the table constraint.
func (s *spaceGroupStore) Create(ctx context.Context, orgID int64, name, summary string) error {
	now := time.Now().UTC()
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO space_groups (org_id, name, summary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, orgID, name, summary, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("space group %q: %w", name, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("creating space group: %w", err)
	}
	return nil
}

// List returns the org's groups, newest first, with members attached.
func (s *spaceGroupStore) List(ctx context.Context, orgID int64, nameMatch string) ([]domain.SpaceGroup, error) {
	query := `
		SELECT id, org_id, name, summary, created_at, updated_at
		FROM space_groups
		WHERE org_id = ?
	`
	args := []any{orgID}
	if nameMatch != "" {
		query += " AND name LIKE ?"
		args = append(args, "%"+nameMatch+"%")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing space groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.SpaceGroup
	byID := make(map[int64]int)
	for rows.Next() {
		var g domain.SpaceGroup
		var name, summary sql.NullString
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&g.ID, &g.OrgID, &name, &summary, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning space group: %w", err)
		}
		g.Name = name.String
		g.Summary = summary.String
		if createdAt.Valid {
			g.CreatedAt = createdAt.Time
		}
		if updatedAt.Valid {
			g.UpdatedAt = updatedAt.Time
		}
		byID[g.ID] = len(groups)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating space groups: %w", err)
	}
	if len(groups) == 0 {
		return groups, nil
	}

	// Membership is joined in application code rather than with a
	// three-way SQL join, keeping one row per group above.
	if err := s.attachMembers(ctx, groups, byID); err != nil {
		return nil, err
	}
	return groups, nil
}

// attachMembers loads membership rows for the given groups and fills in
// their Members slices, resolving space names from the catalogue.
func (s *spaceGroupStore) attachMembers(ctx context.Context, groups []domain.SpaceGroup, byID map[int64]int) error {
	placeholders := make([]string, 0, len(groups))
	args := make([]any, 0, len(groups))
	for _, g := range groups {
		placeholders = append(placeholders, "?")
		args = append(args, g.ID)
	}

	rows, err := s.store.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT m.group_id, m.space_id, COALESCE(sp.name, '')
		FROM space_group_members m
		LEFT JOIN spaces sp ON sp.id = m.space_id
		WHERE m.group_id IN (%s)
		ORDER BY m.space_id
	`, strings.Join(placeholders, ", ")), args...)
	if err != nil {
		return fmt.Errorf("listing space group members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var groupID int64
		var member domain.SpaceGroupMember
		if err := rows.Scan(&groupID, &member.SpaceID, &member.SpaceName); err != nil {
			return fmt.Errorf("scanning space group member: %w", err)
		}
		if idx, ok := byID[groupID]; ok {
			groups[idx].Members = append(groups[idx].Members, member)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating space group members: %w", err)
	}
	return nil
}

// Update applies a partial update to the group row and replaces its
// membership wholesale. Concurrent updates to the same group can
// interleave between the delete and the reinsert.
func (s *spaceGroupStore) Update(ctx context.Context, id, orgID int64, members []int64, name, summary string) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning update: %w", err)
	}
	defer tx.Rollback()

	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	if name != "" {
		sets = append(sets, "name = ?")
		args = append(args, name)
	}
	if summary != "" {
		sets = append(sets, "summary = ?")
		args = append(args, summary)
	}
	args = append(args, id, orgID)

	res, err := tx.ExecContext(ctx, fmt.Sprintf(`
		UPDATE space_groups SET %s WHERE id = ? AND org_id = ?
	`, strings.Join(sets, ", ")), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("space group %q: %w", name, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("updating space group: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating space group: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM space_group_members WHERE group_id = ?`, id); err != nil {
		return fmt.Errorf("clearing space group members: %w", err)
	}
	for _, spaceID := range members {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO space_group_members (group_id, space_id) VALUES (?, ?)
		`, id, spaceID); err != nil {
			return fmt.Errorf("adding space %d to group %d: %w", spaceID, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update: %w", err)
	}
	return nil
}

// Delete removes the group's membership rows and then the group row.
func (s *spaceGroupStore) Delete(ctx context.Context, id, orgID int64) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM space_group_members WHERE group_id = ?`, id); err != nil {
		return fmt.Errorf("deleting space group members: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM space_groups WHERE id = ? AND org_id = ?`, id, orgID)
	if err != nil {
		return fmt.Errorf("deleting space group: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting space group: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit()
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
