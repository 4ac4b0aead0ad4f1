package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "stridelog/internal/errors"
	"stridelog/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- mock auth service ---

type mockAuthService struct {
	loginFn func(password string) (bool, error)
}

func (m *mockAuthService) Login(password string) (bool, error) {
	if m.loginFn != nil {
		return m.loginFn(password)
	}
	return false, nil
}

var _ services.AuthServicer = (*mockAuthService)(nil)

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", handler.Login)
	return r
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with token on success", func(t *testing.T) {
		svc := &mockAuthService{
			loginFn: func(password string) (bool, error) {
				if password != "hunter2" {
					t.Errorf("expected password hunter2, got %q", password)
				}
				return false, nil
			},
		}
		router := setupAuthRouter(NewAuthHandler(svc))

		w := performRequest(router, http.MethodPost, "/auth/login", `{"password":"hunter2"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp LoginResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Token == "" {
			t.Error("expected a session token in the response")
		}
		if resp.Created {
			t.Error("expected created=false for an existing account")
		}
	})

	t.Run("reports account creation on first login", func(t *testing.T) {
		svc := &mockAuthService{
			loginFn: func(string) (bool, error) { return true, nil },
		}
		router := setupAuthRouter(NewAuthHandler(svc))

		w := performRequest(router, http.MethodPost, "/auth/login", `{"password":"hunter2"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp LoginResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !resp.Created {
			t.Error("expected created=true on first login")
		}
	})

	t.Run("returns 401 on wrong password", func(t *testing.T) {
		svc := &mockAuthService{
			loginFn: func(string) (bool, error) { return false, apperrors.ErrInvalidCredentials },
		}
		router := setupAuthRouter(NewAuthHandler(svc))

		w := performRequest(router, http.MethodPost, "/auth/login", `{"password":"wrong"}`)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
		}

		var resp ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode error response: %v", err)
		}
		if resp.Error.Code != "INVALID_CREDENTIALS" {
			t.Errorf("expected INVALID_CREDENTIALS, got %s", resp.Error.Code)
		}
	})

	t.Run("returns 400 on missing password", func(t *testing.T) {
		router := setupAuthRouter(NewAuthHandler(&mockAuthService{}))

		w := performRequest(router, http.MethodPost, "/auth/login", `{}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
