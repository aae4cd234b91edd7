package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slot_client/pkg/token"
)

type testJWTConfig struct{}

func (testJWTConfig) AccessTokenSecretKey() []byte       { return []byte("test-secret") }
func (testJWTConfig) AccessTokenDuration() time.Duration { return time.Hour }

func protected() (http.Handler, *bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	return Auth(testJWTConfig{})(next), &reached
}

func TestAuthPassesValidToken(t *testing.T) {
	handler, reached := protected()

	tokenStr, err := token.GenerateAccessToken("operator", []byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/game/state", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !*reached {
		t.Errorf("status = %d, reached = %v", rec.Code, *reached)
	}
}

func TestAuthRejects(t *testing.T) {
	expired, err := token.GenerateAccessToken("operator", []byte("test-secret"), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	foreign, err := token.GenerateAccessToken("operator", []byte("other-key"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"wrong key", "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, reached := protected()

			req := httptest.NewRequest(http.MethodGet, "/game/state", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if *reached {
				t.Error("protected handler reached")
			}
		})
	}
}
