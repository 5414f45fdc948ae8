package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBlogInput defines the data required to create a blog. The state
// is never caller-settable: every new blog starts as a draft.
type CreateBlogInput struct {
	AuthorID    uuid.UUID
	Title       string
	Description string
	Tags        []string
	Body        string
}

// ListPublishedInput narrows and pages the public listing.
type ListPublishedInput struct {
	Page    int      // 1-based; values below 1 are treated as 1
	Limit   int      // page size; values below 1 fall back to the default
	Author  string   // substring of the author's "first last" name
	Title   string   // substring of the title, case-insensitive
	Tags    []string // keep blogs carrying at least one of these tags
	OrderBy string   // sort column, descending; empty means newest first
}

// ListPublishedOutput carries one page of the public listing plus the
// pagination bookkeeping computed over the fully filtered set.
type ListPublishedOutput struct {
	Blogs       []*entity.Blog
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

// ListMineInput pages the owner listing, optionally by state.
type ListMineInput struct {
	AuthorID uuid.UUID
	State    *entity.BlogState
	Page     int
	Limit    int
}

// ListMineOutput carries one page of the owner listing.
type ListMineOutput struct {
	Blogs      []*entity.Blog
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UpdateBlogInput is a partial update: only non-nil fields are applied.
type UpdateBlogInput struct {
	Title       *string
	Description *string
	Tags        []string
	Body        *string
}

// BlogUsecase defines the contract the delivery layer depends on for
// blog operations. Every mutation takes the acting user's ID and
// enforces ownership before touching the record.
type BlogUsecase interface {
	// Create stores a new draft with its reading time computed and the
	// read counter at zero.
	Create(ctx context.Context, input CreateBlogInput) (*entity.Blog, error)

	// ListPublished returns the filtered, sorted, paginated public view.
	ListPublished(ctx context.Context, input ListPublishedInput) (*ListPublishedOutput, error)

	// GetPublished returns a single published blog and bumps its read
	// counter. Missing and unpublished blogs yield the same error.
	GetPublished(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// ListMine returns a page of the acting user's own blogs, drafts
	// included.
	ListMine(ctx context.Context, input ListMineInput) (*ListMineOutput, error)

	// Update applies a partial update to an owned blog, recomputing the
	// reading time when the body changes.
	Update(ctx context.Context, actorID, blogID uuid.UUID, input UpdateBlogInput) (*entity.Blog, error)

	// Delete removes an owned blog.
	Delete(ctx context.Context, actorID, blogID uuid.UUID) error

	// Publish moves an owned blog to the published state; publishing an
	// already published blog succeeds unchanged.
	Publish(ctx context.Context, actorID, blogID uuid.UUID) (*entity.Blog, error)
}
