package domain

import "github.com/google/uuid"

// Permission predicates are pure functions over a loaded board snapshot.
// Soft deletion is checked before the owner check: a user who hid the board
// for themselves has no member-level access, owner included. Owner-only
// operations use IsOwner directly and are unaffected.

// IsMember reports whether userID may view and act on the board as a member
func IsMember(b *Board, userID uuid.UUID) bool {
	for _, id := range b.DeletedFor {
		if id == userID {
			return false
		}
	}
	if b.CreatedBy == userID {
		return true
	}
	return b.FindMember(userID) != nil
}

// IsAdmin reports whether userID is the owner or an admin member
func IsAdmin(b *Board, userID uuid.UUID) bool {
	if b.CreatedBy == userID {
		return true
	}
	m := b.FindMember(userID)
	return m != nil && m.Role == RoleAdmin
}

// IsOwner reports whether userID created the board
func IsOwner(b *Board, userID uuid.UUID) bool {
	return b.CreatedBy == userID
}

// IsCommentAuthor reports whether userID wrote the comment
func IsCommentAuthor(c *Comment, userID uuid.UUID) bool {
	return c.UserID == userID
}
