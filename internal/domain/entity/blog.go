package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlogState is the publication state of a blog. There are exactly two
// states: every blog starts as a draft and may move to published once.
type BlogState string

const (
	// StateDraft marks a blog visible only to its owner.
	StateDraft BlogState = "draft"
	// StatePublished marks a blog visible to everyone.
	StatePublished BlogState = "published"
)

// Valid reports whether s is one of the two known states.
func (s BlogState) Valid() bool {
	return s == StateDraft || s == StatePublished
}

// Blog is a single post. The author reference is set at creation and
// never reassigned; ReadingTime is derived from Body and recomputed
// whenever the body changes.
type Blog struct {
	ID          uuid.UUID
	Title       string
	Description string
	Tags        []string
	Body        string
	AuthorID    uuid.UUID
	Author      *User // populated on public reads, nil otherwise
	State       BlogState
	ReadingTime string
	ReadCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPublished reports whether the blog is visible through the public
// endpoints.
func (b *Blog) IsPublished() bool {
	return b.State == StatePublished
}

// IsOwnedBy reports whether userID is the blog's author. Only the owner
// may update, delete or publish a blog.
func (b *Blog) IsOwnedBy(userID uuid.UUID) bool {
	return b.AuthorID == userID
}

// Publish moves the blog to the published state. Publishing an already
// published blog is a no-op; there is no transition back to draft.
func (b *Blog) Publish() {
	b.State = StatePublished
}

// HasAnyTag reports whether the blog carries at least one of the given
// tags. An empty requested list matches nothing.
func (b *Blog) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range b.Tags {
			if have == want {
				return true
			}
		}
	}

	return false
}
