package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linkshrink/linkshrink/internal/api/middleware"
	"github.com/linkshrink/linkshrink/internal/core/domain"
)

func TestPageHandler_Home_Anonymous(t *testing.T) {
	e := echo.New()
	e.Renderer = NewRenderer()

	links := &stubLinkService{
		listFn: func(ctx context.Context) ([]domain.ShortURL, error) {
			return []domain.ShortURL{
				{ID: "l1", ShortCode: "Ab3xY9z", TargetURL: "https://example.com", OwnerID: "u1"},
			}, nil
		},
	}
	auth := &stubAuthService{
		getUserFn: func(ctx context.Context, id string) (*domain.User, error) {
			t.Fatalf("should not resolve a user for anonymous requests")
			return nil, nil
		},
	}
	h := NewPageHandler(links, auth, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Home(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Ab3xY9z") {
		t.Fatalf("expected link code in page, got: %s", body)
	}
	if !strings.Contains(body, "/login") {
		t.Fatalf("expected login link for anonymous visitor")
	}
}

func TestPageHandler_Home_Authenticated(t *testing.T) {
	e := echo.New()
	e.Renderer = NewRenderer()

	links := &stubLinkService{
		listFn: func(ctx context.Context) ([]domain.ShortURL, error) {
			return []domain.ShortURL{}, nil
		},
	}
	auth := &stubAuthService{
		getUserFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "u1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{ID: "u1", Username: "alice"}, nil
		},
	}
	h := NewPageHandler(links, auth, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, "u1")

	if err := h.Home(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "alice") {
		t.Fatalf("expected username in page, got: %s", body)
	}
	if !strings.Contains(body, "/logout") {
		t.Fatalf("expected logout link for authenticated visitor")
	}
}

func TestPageHandler_Home_StaleSession(t *testing.T) {
	e := echo.New()
	e.Renderer = NewRenderer()

	links := &stubLinkService{
		listFn: func(ctx context.Context) ([]domain.ShortURL, error) {
			return []domain.ShortURL{}, nil
		},
	}
	auth := &stubAuthService{
		getUserFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewPageHandler(links, auth, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, "gone")

	if err := h.Home(c); err != nil {
		t.Fatalf("stale session should render as anonymous: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "/login") {
		t.Fatalf("expected anonymous view")
	}
}
