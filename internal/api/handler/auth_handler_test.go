package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linkshrink/linkshrink/internal/api/middleware"
	"github.com/linkshrink/linkshrink/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.User, error)
	getUserFn  func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getUserFn(ctx, id)
}

type stubSessionStore struct {
	sessions  map[string]string
	destroyed []string
	createErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Create(_ context.Context, userID string) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	token := fmt.Sprintf("token-%d", len(s.sessions)+1)
	s.sessions[token] = userID
	return token, nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (string, error) {
	userID, ok := s.sessions[token]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return userID, nil
}

func (s *stubSessionStore) Destroy(_ context.Context, token string) error {
	s.destroyed = append(s.destroyed, token)
	delete(s.sessions, token)
	return nil
}

func newFormContext(e *echo.Echo, method, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	sessions := newStubSessionStore()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			if username != "alice" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.User{ID: "u1", Username: username}, nil
		},
	}
	h := NewAuthHandler(stub, sessions, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodPost, "/register", url.Values{"username": {"alice"}, "password": {"pw1"}})

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %s", loc)
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("expected session cookie")
	}
	if sessions.sessions[cookie.Value] != "u1" {
		t.Fatalf("session not bound to user: %v", sessions.sessions)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, newStubSessionStore(), zerolog.Nop())

	c, _ := newFormContext(e, http.MethodPost, "/register", url.Values{"username": {"bob"}, "password": {"pw"}})

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, newStubSessionStore(), zerolog.Nop())

	c, _ := newFormContext(e, http.MethodPost, "/register", url.Values{"username": {"bob"}})

	var he *echo.HTTPError
	if err := h.Register(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	sessions := newStubSessionStore()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return &domain.User{ID: "u1", Username: username}, nil
		},
	}
	h := NewAuthHandler(stub, sessions, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodPost, "/login", url.Values{"username": {"alice"}, "password": {"pw1"}})

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %s", loc)
	}
	if sessionCookie(rec) == nil {
		t.Fatalf("expected session cookie")
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	sessions := newStubSessionStore()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, sessions, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodPost, "/login", url.Values{"username": {"alice"}, "password": {"bad"}})

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("no session should be created on failure")
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("no cookie should be set on failure")
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	sessions := newStubSessionStore()
	sessions.sessions["tok1"] = "u1"
	h := NewAuthHandler(&stubAuthService{}, sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %s", loc)
	}
	if len(sessions.destroyed) != 1 || sessions.destroyed[0] != "tok1" {
		t.Fatalf("expected session destroyed, got %v", sessions.destroyed)
	}

	cookie := sessionCookie(rec)
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("expected expired session cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, newStubSessionStore(), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}
