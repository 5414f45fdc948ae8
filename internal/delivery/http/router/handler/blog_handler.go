package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createBlogRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Body        string   `json:"body" validate:"required,min=10"`
}

type updateBlogRequest struct {
	Title       *string  `json:"title" validate:"required_without_all=Description Tags Body,omitempty,min=3,max=255"`
	Description *string  `json:"description" validate:"required_without_all=Title Tags Body"`
	Tags        []string `json:"tags" validate:"required_without_all=Title Description Body"`
	Body        *string  `json:"body" validate:"required_without_all=Title Description Tags,omitempty,min=10"`
}

type listMineRequest struct {
	State string `query:"state" validate:"omitempty,oneof=draft published"`
	Page  int    `query:"page" validate:"omitempty,min=1"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type authorResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type blogResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Body        string          `json:"body"`
	Author      *authorResponse `json:"author,omitempty"`
	AuthorID    uuid.UUID       `json:"author_id"`
	State       string          `json:"state"`
	ReadCount   int             `json:"read_count"`
	ReadingTime string          `json:"reading_time"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toBlogResponse(blog *entity.Blog) *blogResponse {
	resp := &blogResponse{
		ID:          blog.ID,
		Title:       blog.Title,
		Description: blog.Description,
		Tags:        blog.Tags,
		Body:        blog.Body,
		AuthorID:    blog.AuthorID,
		State:       string(blog.State),
		ReadCount:   blog.ReadCount,
		ReadingTime: blog.ReadingTime,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}
	if blog.Author != nil {
		resp.Author = &authorResponse{
			FirstName: blog.Author.FirstName,
			LastName:  blog.Author.LastName,
			Email:     blog.Author.Email,
		}
	}

	return resp
}

func toBlogResponses(blogs []*entity.Blog) []*blogResponse {
	out := make([]*blogResponse, 0, len(blogs))
	for _, blog := range blogs {
		out = append(out, toBlogResponse(blog))
	}

	return out
}

// BlogHandler holds dependencies for blog-related handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{uc: uc, logger: logger}
}

// Create handles the draft creation request.
func (h *BlogHandler) Create(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return response.Message(c, http.StatusUnauthorized, "Invalid user ID in token")
	}

	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Invalid blog input"))
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	blog, err := h.uc.Create(c.Request().Context(), usecase.CreateBlogInput{
		AuthorID:    actorID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Body:        req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, toBlogResponse(blog))
}

// ListPublished handles the public listing request. Malformed page and
// limit values fall back to defaults rather than failing the request.
func (h *BlogHandler) ListPublished(c echo.Context) error {
	input := usecase.ListPublishedInput{
		Author:  c.QueryParam("author"),
		Title:   c.QueryParam("title"),
		OrderBy: c.QueryParam("orderBy"),
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		input.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		input.Limit = limit
	}
	if tags := c.QueryParam("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				input.Tags = append(input.Tags, tag)
			}
		}
	}

	output, err := h.uc.ListPublished(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"blogs":       toBlogResponses(output.Blogs),
		"totalCount":  output.TotalCount,
		"totalPages":  output.TotalPages,
		"currentPage": output.CurrentPage,
	})
}

// GetPublished handles the single public blog request. An unparseable
// ID is indistinguishable from a missing blog.
func (h *BlogHandler) GetPublished(c echo.Context) error {
	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrBlogNotVisible)
	}

	blog, err := h.uc.GetPublished(c.Request().Context(), blogID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toBlogResponse(blog))
}

// ListMine handles the owner listing request, drafts included.
func (h *BlogHandler) ListMine(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return response.Message(c, http.StatusUnauthorized, "Invalid user ID in token")
	}

	var req listMineRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.ListMineInput{
		AuthorID: actorID,
		Page:     req.Page,
		Limit:    req.Limit,
	}
	if req.State != "" {
		state := entity.BlogState(req.State)
		input.State = &state
	}

	output, err := h.uc.ListMine(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"status":     "success",
		"total":      output.Total,
		"page":       output.Page,
		"limit":      output.Limit,
		"totalPages": output.TotalPages,
		"blogs":      toBlogResponses(output.Blogs),
	})
}

// Update handles the partial update request.
func (h *BlogHandler) Update(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return response.Message(c, http.StatusUnauthorized, "Invalid user ID in token")
	}

	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrBlogUnauthorized)
	}

	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Invalid blog input"))
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	blog, err := h.uc.Update(c.Request().Context(), actorID, blogID, usecase.UpdateBlogInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Body:        req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toBlogResponse(blog))
}

// Delete handles the blog deletion request.
func (h *BlogHandler) Delete(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return response.Message(c, http.StatusUnauthorized, "Invalid user ID in token")
	}

	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrBlogUnauthorized)
	}

	if err := h.uc.Delete(c.Request().Context(), actorID, blogID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Blog deleted")
}

// Publish handles the draft publication request.
func (h *BlogHandler) Publish(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return response.Message(c, http.StatusUnauthorized, "Invalid user ID in token")
	}

	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrBlogUnauthorized)
	}

	blog, err := h.uc.Publish(c.Request().Context(), actorID, blogID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toBlogResponse(blog))
}

// Root is a plain banner so a browser hit on the bare host shows the
// service is alive.
func Root(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Blogging API is running")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
