package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/jwt"
	jwtMocks "lodge/infras/jwt/mocks"
	"lodge/infras/otel/mocks"
	"lodge/permissions"
	"lodge/shared/constant"
	"lodge/transport/http/middleware"
)

func newAuthRouter(t *testing.T, claims *jwt.Claims, validateErr error) (*chi.Mux, *bool) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockJWT.EXPECT().
		ValidateToken(gomock.Any(), gomock.Any(), jwt.AccessToken).
		Return(claims, validateErr).
		AnyTimes()

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, mocks.NewOtel(), permissions.Get(), &config.Config{})

	handlerCalled := false

	router := chi.NewRouter()
	router.Use(authRole.Auth)
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	return router, &handlerCalled
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token reaches the handler", func(t *testing.T) {
		router, handlerCalled := newAuthRouter(t, &jwt.Claims{
			UserID:  "user-1",
			Email:   "desk@lodge.test",
			Role:    constant.RoleFrontDesk,
			TokenID: "token-1",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer some-token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *handlerCalled)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		router, handlerCalled := newAuthRouter(t, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *handlerCalled)
	})

	t.Run("empty user id claim stops the request", func(t *testing.T) {
		router, handlerCalled := newAuthRouter(t, &jwt.Claims{
			Email:   "desk@lodge.test",
			TokenID: "token-1",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer some-token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *handlerCalled)
	})

	t.Run("empty email claim stops the request", func(t *testing.T) {
		router, handlerCalled := newAuthRouter(t, &jwt.Claims{
			UserID:  "user-1",
			TokenID: "token-1",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer some-token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *handlerCalled)
	})

	t.Run("expired token", func(t *testing.T) {
		router, handlerCalled := newAuthRouter(t, nil, jwt.ErrExpiredToken)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer some-token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *handlerCalled)
	})
}
