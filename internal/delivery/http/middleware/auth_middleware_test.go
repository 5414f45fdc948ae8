package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/domain/service"
	mockservice "quill/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/my-blogs", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		userID      uuid.UUID
		userIDSet   bool
		nextReached bool
	)
	next := func(c echo.Context) error {
		nextReached = true
		userID, userIDSet = UserID(c)

		return nil
	}

	mw := NewAuthMiddleware(tokenSvc)
	err := mw.Authenticate(next)(c)
	assert.NoError(t, err)

	return rec, userID, userIDSet, nextReached
}

func TestAuthenticate_ValidToken(t *testing.T) {
	wantID := uuid.New()
	tokenSvc := mockservice.NewMockTokenService()
	tokenSvc.On("ValidateToken", "good-token").Return(&service.Claims{UserID: wantID}, nil)

	_, userID, userIDSet, nextReached := runAuthenticate(t, tokenSvc, "Bearer good-token")

	assert.True(t, nextReached)
	assert.True(t, userIDSet)
	assert.Equal(t, wantID, userID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService()

	rec, _, _, nextReached := runAuthenticate(t, tokenSvc, "")

	assert.False(t, nextReached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService()

	rec, _, _, nextReached := runAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, nextReached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenSvc.AssertNotCalled(t, "ValidateToken")
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService()
	tokenSvc.On("ValidateToken", "bad-token").Return(nil, errors.New("token is malformed"))

	rec, _, _, nextReached := runAuthenticate(t, tokenSvc, "Bearer bad-token")

	assert.False(t, nextReached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}
