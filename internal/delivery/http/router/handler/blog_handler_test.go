package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quill/internal/domain/entity"
	mockusecase "quill/internal/mocks/usecase"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authedContext(t *testing.T, method, target, body string, actorID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	c, rec := newTestContext(t, method, target, body)
	c.Set("userID", actorID)

	return c, rec
}

func sampleBlog(authorID uuid.UUID) *entity.Blog {
	return &entity.Blog{
		ID:       uuid.New(),
		Title:    "Go for the Impatient",
		Tags:     []string{"go", "tutorial"},
		Body:     "A quick tour through the language for people in a hurry.",
		AuthorID: authorID,
		Author: &entity.User{
			ID:        authorID,
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		},
		State:       entity.StateDraft,
		ReadingTime: "1 min read",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestBlogHandler_Create(t *testing.T) {
	actorID := uuid.New()
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	blog := sampleBlog(actorID)
	uc.On("Create", mock.Anything, usecase.CreateBlogInput{
		AuthorID: actorID,
		Title:    "Go for the Impatient",
		Tags:     []string{"go", "tutorial"},
		Body:     "A quick tour through the language for people in a hurry.",
	}).Return(blog, nil)

	c, rec := authedContext(t, http.MethodPost, "/api/v1/blogs",
		`{"title":"Go for the Impatient","tags":["go","tutorial"],"body":"A quick tour through the language for people in a hurry."}`,
		actorID)

	err := handler.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"draft"`)
	assert.Contains(t, rec.Body.String(), `"reading_time":"1 min read"`)
	uc.AssertExpectations(t)
}

func TestBlogHandler_Create_TitleTooShort(t *testing.T) {
	actorID := uuid.New()
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	c, rec := authedContext(t, http.MethodPost, "/api/v1/blogs",
		`{"title":"Go","body":"A quick tour through the language for people in a hurry."}`,
		actorID)

	err := handler.Create(c)
	assert.Error(t, err)

	renderError(t, err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `\"title\" must be at least 3 characters long`)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBlogHandler_ListPublished_ParsesQuery(t *testing.T) {
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	uc.On("ListPublished", mock.Anything, usecase.ListPublishedInput{
		Page:    2,
		Limit:   5,
		Author:  "ada",
		Title:   "go",
		Tags:    []string{"go", "web"},
		OrderBy: "read_count",
	}).Return(&usecase.ListPublishedOutput{
		Blogs:       nil,
		TotalCount:  0,
		TotalPages:  0,
		CurrentPage: 2,
	}, nil)

	c, rec := newTestContext(t, http.MethodGet,
		"/api/v1/blogs/published?page=2&limit=5&author=ada&title=go&tags=go,%20web&orderBy=read_count", "")

	err := handler.ListPublished(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currentPage":2`)
	uc.AssertExpectations(t)
}

func TestBlogHandler_ListPublished_MalformedPaging(t *testing.T) {
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	// Unparseable page and limit are dropped, not rejected.
	uc.On("ListPublished", mock.Anything, usecase.ListPublishedInput{}).
		Return(&usecase.ListPublishedOutput{CurrentPage: 1}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/blogs/published?page=abc&limit=xyz", "")

	err := handler.ListPublished(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestBlogHandler_GetPublished(t *testing.T) {
	authorID := uuid.New()
	blog := sampleBlog(authorID)
	blog.State = entity.StatePublished
	blog.ReadCount = 42

	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())
	uc.On("GetPublished", mock.Anything, blog.ID).Return(blog, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/blogs/published/"+blog.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(blog.ID.String())

	err := handler.GetPublished(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"read_count":42`)
	assert.Contains(t, rec.Body.String(), `"first_name":"Ada"`)
}

func TestBlogHandler_GetPublished_BadID(t *testing.T) {
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/blogs/published/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.GetPublished(c)
	assert.Error(t, err)

	renderError(t, err, c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog not found")
	uc.AssertNotCalled(t, "GetPublished", mock.Anything, mock.Anything)
}

func TestBlogHandler_ListMine(t *testing.T) {
	actorID := uuid.New()
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	draft := entity.StateDraft
	uc.On("ListMine", mock.Anything, usecase.ListMineInput{
		AuthorID: actorID,
		State:    &draft,
		Page:     2,
		Limit:    10,
	}).Return(&usecase.ListMineOutput{
		Total:      15,
		Page:       2,
		Limit:      10,
		TotalPages: 2,
	}, nil)

	c, rec := authedContext(t, http.MethodGet, "/api/v1/blogs/my-blogs?state=draft&page=2&limit=10", "", actorID)

	err := handler.ListMine(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	assert.Contains(t, rec.Body.String(), `"total":15`)
	uc.AssertExpectations(t)
}

func TestBlogHandler_ListMine_LimitTooLarge(t *testing.T) {
	actorID := uuid.New()
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	c, rec := authedContext(t, http.MethodGet, "/api/v1/blogs/my-blogs?limit=101", "", actorID)

	err := handler.ListMine(c)
	assert.Error(t, err)

	renderError(t, err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `\"limit\" must be at most 100`)
	uc.AssertNotCalled(t, "ListMine", mock.Anything, mock.Anything)
}

func TestBlogHandler_ListMine_BadState(t *testing.T) {
	actorID := uuid.New()
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	c, rec := authedContext(t, http.MethodGet, "/api/v1/blogs/my-blogs?state=archived", "", actorID)

	err := handler.ListMine(c)
	assert.Error(t, err)

	renderError(t, err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "ListMine", mock.Anything, mock.Anything)
}

func TestBlogHandler_Update(t *testing.T) {
	actorID := uuid.New()
	blog := sampleBlog(actorID)
	blog.Title = "Go for the Patient"

	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	title := "Go for the Patient"
	uc.On("Update", mock.Anything, actorID, blog.ID, usecase.UpdateBlogInput{
		Title: &title,
	}).Return(blog, nil)

	c, rec := authedContext(t, http.MethodPut, "/api/v1/blogs/"+blog.ID.String(),
		`{"title":"Go for the Patient"}`, actorID)
	c.SetParamNames("id")
	c.SetParamValues(blog.ID.String())

	err := handler.Update(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Go for the Patient")
	uc.AssertExpectations(t)
}

func TestBlogHandler_Update_EmptyBody(t *testing.T) {
	actorID := uuid.New()
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	c, rec := authedContext(t, http.MethodPut, "/api/v1/blogs/"+uuid.NewString(), `{}`, actorID)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := handler.Update(c)
	assert.Error(t, err)

	renderError(t, err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBlogHandler_Update_BadID(t *testing.T) {
	actorID := uuid.New()
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	c, rec := authedContext(t, http.MethodPut, "/api/v1/blogs/not-a-uuid",
		`{"title":"Go for the Patient"}`, actorID)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Update(c)
	assert.Error(t, err)

	renderError(t, err, c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestBlogHandler_Delete(t *testing.T) {
	actorID := uuid.New()
	blogID := uuid.New()
	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())

	uc.On("Delete", mock.Anything, actorID, blogID).Return(nil)

	c, rec := authedContext(t, http.MethodDelete, "/api/v1/blogs/"+blogID.String(), "", actorID)
	c.SetParamNames("id")
	c.SetParamValues(blogID.String())

	err := handler.Delete(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog deleted")
	uc.AssertExpectations(t)
}

func TestBlogHandler_Publish(t *testing.T) {
	actorID := uuid.New()
	blog := sampleBlog(actorID)
	blog.State = entity.StatePublished

	uc := new(mockusecase.MockBlogUsecase)
	handler := NewBlogHandler(uc, slog.Default())
	uc.On("Publish", mock.Anything, actorID, blog.ID).Return(blog, nil)

	c, rec := authedContext(t, http.MethodPatch, "/api/v1/blogs/"+blog.ID.String()+"/publish", "", actorID)
	c.SetParamNames("id")
	c.SetParamValues(blog.ID.String())

	err := handler.Publish(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"published"`)
	uc.AssertExpectations(t)
}
