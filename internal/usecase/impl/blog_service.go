package impl

import (
	"context"
	"log/slog"
	"strings"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPublishedLimit = 20
	defaultOwnedLimit     = 10
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogRepo repository.BlogRepository
	logger   *slog.Logger
}

// BlogServiceParams holds dependencies for blogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	BlogRepo repository.BlogRepository
	Logger   *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		blogRepo: params.BlogRepo,
		logger:   params.Logger,
	}
}

// Create stores a new draft. The state and read counter are forced here
// regardless of what the caller sent.
func (srv *blogService) Create(ctx context.Context, input usecase.CreateBlogInput) (*entity.Blog, error) {
	blog := &entity.Blog{
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		Body:        input.Body,
		AuthorID:    input.AuthorID,
		State:       entity.StateDraft,
		ReadingTime: service.ReadingTime(input.Body),
		ReadCount:   0,
	}

	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "failed to create blog")
	}

	srv.logger.Debug("Blog created", slog.Any("blogID", blog.ID), slog.Any("authorID", input.AuthorID))

	return blog, nil
}

// ListPublished builds the public view. Title and tag filters run in the
// store; the author-name filter runs here over the already sorted rows,
// and the total is counted after that filter, before slicing the page.
func (srv *blogService) ListPublished(ctx context.Context, input usecase.ListPublishedInput) (*usecase.ListPublishedOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPublishedLimit
	}

	blogs, err := srv.blogRepo.ListPublished(ctx, repository.PublishedFilter{
		Title:   input.Title,
		Tags:    input.Tags,
		OrderBy: input.OrderBy,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published blogs")
	}

	if input.Author != "" {
		blogs = filterByAuthorName(blogs, input.Author)
	}

	total := len(blogs)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &usecase.ListPublishedOutput{
		Blogs:       blogs[start:end],
		TotalCount:  total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
	}, nil
}

// filterByAuthorName keeps blogs whose author's lower-cased full name
// contains the given substring.
func filterByAuthorName(blogs []*entity.Blog, author string) []*entity.Blog {
	needle := strings.ToLower(author)
	filtered := make([]*entity.Blog, 0, len(blogs))
	for _, blog := range blogs {
		if blog.Author == nil {
			continue
		}
		if strings.Contains(strings.ToLower(blog.Author.FullName()), needle) {
			filtered = append(filtered, blog)
		}
	}

	return filtered
}

// GetPublished fetches one published blog and bumps its read counter.
// A missing blog and a draft produce the same error, so drafts cannot be
// probed through the public endpoint.
func (srv *blogService) GetPublished(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotVisible.WrapMessage("public fetch failed")
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	if !blog.IsPublished() {
		return nil, domainerrors.ErrBlogNotVisible.WrapMessage("public fetch of draft")
	}

	// Read-modify-write with no isolation: concurrent readers may lose
	// an increment, which is accepted for this counter.
	blog.ReadCount++
	if err := srv.blogRepo.UpdateReadCount(ctx, blog.ID, blog.ReadCount); err != nil {
		return nil, errors.Wrap(err, "failed to store read count")
	}

	return blog, nil
}

// ListMine pages the acting user's own blogs, drafts included.
func (srv *blogService) ListMine(ctx context.Context, input usecase.ListMineInput) (*usecase.ListMineOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultOwnedLimit
	}

	total, err := srv.blogRepo.CountByAuthor(ctx, input.AuthorID, input.State)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count blogs by author")
	}

	blogs, err := srv.blogRepo.ListByAuthor(ctx, repository.OwnedPage{
		AuthorID: input.AuthorID,
		State:    input.State,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs by author")
	}

	return &usecase.ListMineOutput{
		Blogs:      blogs,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(int(total), limit),
	}, nil
}

// Update applies a partial update to an owned blog. Only supplied fields
// are overwritten; a new body recomputes the reading time.
func (srv *blogService) Update(ctx context.Context, actorID, blogID uuid.UUID, input usecase.UpdateBlogInput) (*entity.Blog, error) {
	blog, err := srv.loadOwned(ctx, actorID, blogID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Description != nil {
		blog.Description = *input.Description
	}
	if input.Tags != nil {
		blog.Tags = input.Tags
	}
	if input.Body != nil {
		blog.Body = *input.Body
		blog.ReadingTime = service.ReadingTime(*input.Body)
	}

	if err := srv.blogRepo.Update(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "failed to update blog")
	}

	return blog, nil
}

// Delete removes an owned blog.
func (srv *blogService) Delete(ctx context.Context, actorID, blogID uuid.UUID) error {
	blog, err := srv.loadOwned(ctx, actorID, blogID)
	if err != nil {
		return err
	}

	if err := srv.blogRepo.Delete(ctx, blog.ID); err != nil {
		return errors.Wrap(err, "failed to delete blog")
	}

	srv.logger.Debug("Blog deleted", slog.Any("blogID", blogID), slog.Any("actorID", actorID))

	return nil
}

// Publish moves an owned blog to published. Re-publishing succeeds and
// leaves the blog published.
func (srv *blogService) Publish(ctx context.Context, actorID, blogID uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.loadOwned(ctx, actorID, blogID)
	if err != nil {
		return nil, err
	}

	blog.Publish()

	if err := srv.blogRepo.Update(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "failed to publish blog")
	}

	return blog, nil
}

// loadOwned fetches a blog for mutation. A missing blog and a blog owned
// by someone else collapse into the same error, so callers cannot tell
// which records exist.
func (srv *blogService) loadOwned(ctx context.Context, actorID, blogID uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogUnauthorized.WrapMessage("blog does not exist")
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	if !blog.IsOwnedBy(actorID) {
		srv.logger.Warn("Mutation by non-owner rejected", slog.Any("blogID", blogID), slog.Any("actorID", actorID))

		return nil, domainerrors.ErrBlogUnauthorized.WrapMessage("caller is not the owner")
	}

	return blog, nil
}

// totalPages mirrors Math.ceil(total/limit): zero records mean zero pages.
func totalPages(total, limit int) int {
	if total <= 0 {
		return 0
	}

	return (total + limit - 1) / limit
}
