package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "testsecret"

func signToken(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestJWTMiddleware(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int64
		wantRole   string
	}{
		{
			name:       "валидный токен пользователя",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"user_id": 7, "exp": exp}, jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusOK,
			wantUserID: 7,
		},
		{
			name:       "токен оператора",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"user_id": "1", "role": "admin", "exp": exp}, jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusOK,
			wantUserID: 1,
			wantRole:   RoleAdmin,
		},
		{
			name:       "нет заголовка",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "не Bearer",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "чужой ключ",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"user_id": 7, "exp": exp}, jwt.SigningMethodHS256, []byte("other")),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "просроченный токен",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"user_id": 7, "exp": time.Now().Add(-time.Hour).Unix()}, jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "без срока действия",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"user_id": 7}, jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "нет user_id",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"exp": exp}, jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "user_id не число",
			header:     "Bearer " + signToken(t, jwt.MapClaims{"user_id": "abc", "exp": exp}, jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var gotRole string
			h := JWTMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = GetUserID(r.Context())
				gotRole, _ = r.Context().Value(RoleKey).(string)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUserID, gotUserID)
				assert.Equal(t, tt.wantRole, gotRole)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	h := JWTMiddleware(testSecret)(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	for role, want := range map[string]int{
		"admin": http.StatusNoContent,
		"user":  http.StatusForbidden,
		"":      http.StatusForbidden,
	} {
		t.Run("role="+strconv.Quote(role), func(t *testing.T) {
			claims := jwt.MapClaims{"user_id": 1, "exp": exp}
			if role != "" {
				claims["role"] = role
			}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, claims, jwt.SigningMethodHS256, []byte(testSecret)))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, want, w.Code)
		})
	}
}
