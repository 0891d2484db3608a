package domain

import "time"

// SpaceGroup is a named collection of spaces used to grant bulk access.
// Group names are unique across the system. Membership is replaced
// wholesale on update, never diffed.
type SpaceGroup struct {
	// ID is the group's numeric identifier.
	ID int64

	// OrgID scopes the group to an organisation.
	OrgID int64

	// Name is the system-unique group name.
	Name string

	// Summary is an optional free-text description.
	Summary string

	// Members are the spaces currently in the group.
	Members []SpaceGroupMember

	// CreatedAt is when the group was created.
	CreatedAt time.Time

	// UpdatedAt is refreshed on every update.
	UpdatedAt time.Time
}

// SpaceGroupMember is a space belonging to a group. The space itself is
// an external entity; only its id and display name are referenced here.
type SpaceGroupMember struct {
	SpaceID   int64
	SpaceName string
}
