package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

type contextKey string

const adminSubjectKey contextKey = "admin_subject"

// AdminFromContext は context から管理者の subject を取得する
func AdminFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminSubjectKey).(string)
	return v, ok
}

// WithAdmin は context に管理者の subject をセットする
func WithAdmin(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

// RequireAdmin は管理者トークン必須ミドルウェア。
// Authorization: Bearer <token> を検証し、subject を context にセットする
func RequireAdmin(secret []byte) func(http.Handler) http.Handler {
	return requireAdmin(secret, time.Now)
}

func requireAdmin(secret []byte, now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "unauthorized")
				return
			}

			subject, err := VerifyAdminToken(token, secret, now())
			if errors.Is(err, ErrExpired) {
				unauthorized(w, "token_expired")
				return
			}
			if err != nil {
				unauthorized(w, "invalid_token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), subject)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
