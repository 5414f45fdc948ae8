package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogNotFound is a domain-specific error returned when a blog is not found.
var ErrBlogNotFound = errors.New("blog not found")

// PublishedFilter narrows the public listing. Title and tags are pushed
// into the store query; the author-name filter is applied in-process by
// the use case after the sorted rows come back.
type PublishedFilter struct {
	// Title keeps blogs whose title contains the substring,
	// case-insensitively. Empty means no title filter.
	Title string

	// Tags keeps blogs whose tag set intersects this list. Empty means
	// no tag filter.
	Tags []string

	// OrderBy names the sort column, always descending. Unknown or
	// empty values fall back to the creation timestamp.
	OrderBy string
}

// OwnedPage selects a page of a single author's blogs.
type OwnedPage struct {
	AuthorID uuid.UUID
	State    *entity.BlogState // nil means both states
	Offset   int
	Limit    int
}

// BlogRepository defines the standard operations for blog persistence.
type BlogRepository interface {
	// Create persists a new blog and backfills the generated ID and
	// timestamps on the entity.
	Create(ctx context.Context, blog *entity.Blog) error

	// FindByID retrieves a single blog with its author populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// Update persists the given fields of an existing blog.
	Update(ctx context.Context, blog *entity.Blog) error

	// Delete removes a blog record.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateReadCount stores a new read counter value. This is the write
	// half of a read-modify-write with no isolation: concurrent public
	// reads of the same blog may undercount, which is accepted.
	UpdateReadCount(ctx context.Context, id uuid.UUID, readCount int) error

	// ListPublished returns every published blog matching the filter,
	// sorted descending by the requested column, authors populated.
	ListPublished(ctx context.Context, filter PublishedFilter) ([]*entity.Blog, error)

	// ListByAuthor returns one page of an author's blogs, newest first.
	ListByAuthor(ctx context.Context, page OwnedPage) ([]*entity.Blog, error)

	// CountByAuthor counts an author's blogs, optionally by state.
	CountByAuthor(ctx context.Context, authorID uuid.UUID, state *entity.BlogState) (int64, error)
}
