package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

// stubVerifier accepts "good" and maps a few fixed tokens to errors.
type stubVerifier struct {
	calls int
}

func (s *stubVerifier) Verify(token string) (domain.Identity, error) {
	s.calls++
	switch token {
	case "good":
		return domain.Identity{ID: 7, Username: "alice"}, nil
	case "expired":
		return domain.Identity{}, domain.ErrTokenExpired
	case "payload":
		return domain.Identity{}, domain.ErrTokenPayload
	default:
		return domain.Identity{}, fmt.Errorf("%w: signature is invalid", domain.ErrTokenMalformed)
	}
}

func runGate(t *testing.T, v *stubVerifier, authHeader string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, Auth(v)(next)(c)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	v := &stubVerifier{}
	called := false

	rec, err := runGate(t, v, "Bearer good", func(c echo.Context) error {
		called = true
		id, ok := c.Get(IdentityContextKey).(domain.Identity)
		if !ok || id.Username != "alice" || id.ID != 7 {
			t.Fatalf("identity not set on echo context: %+v", c.Get(IdentityContextKey))
		}
		fromCtx, ok := domain.IdentityFromContext(c.Request().Context())
		if !ok || fromCtx != id {
			t.Fatalf("identity not set on request context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	v := &stubVerifier{}
	_, err := runGate(t, v, "bearer good", func(c echo.Context) error { return nil })
	if err != nil {
		t.Fatalf("expected lowercase scheme to be accepted, got %v", err)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantMsg    string
		wantErr    error
		wantVerify bool
	}{
		{"missing header", "", "Not authenticated", nil, false},
		{"basic scheme", "Basic dXNlcjpwdw==", "Not authenticated", nil, false},
		{"expired", "Bearer expired", "Token expired", domain.ErrTokenExpired, true},
		{"malformed", "Bearer garbage", "Invalid token", domain.ErrTokenMalformed, true},
		{"bad payload", "Bearer payload", "Invalid token payload", domain.ErrTokenPayload, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &stubVerifier{}
			rec, err := runGate(t, v, tt.header, func(c echo.Context) error {
				t.Fatalf("next must not be called")
				return nil
			})

			var he *echo.HTTPError
			if !errors.As(err, &he) {
				t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
			}
			if he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", he.Code)
			}
			if he.Message != tt.wantMsg {
				t.Fatalf("expected message %q, got %v", tt.wantMsg, he.Message)
			}
			if tt.wantErr != nil && !errors.Is(he.Internal, tt.wantErr) {
				t.Fatalf("expected internal %v, got %v", tt.wantErr, he.Internal)
			}
			if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
				t.Fatalf("expected WWW-Authenticate: Bearer, got %q", got)
			}
			if (v.calls > 0) != tt.wantVerify {
				t.Fatalf("verifier called %d times, want called=%v", v.calls, tt.wantVerify)
			}
		})
	}
}
