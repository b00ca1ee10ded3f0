// apps/go-server/internal/httpserver/auth.go
//
// Device identity. There are no user accounts: a device asks for a
// signed token once and presents it for destructive operations, so a
// stray cross-origin request can't wipe a player's progress.

package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const deviceCookieName = "trisudoku_device"

type ctxDeviceKey struct{}

// genDeviceID returns a compact 16-hex-char identifier.
func genDeviceID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// signDeviceToken issues an HS256 token for a device id.
func (s *Server) signDeviceToken(id string) (string, time.Time, error) {
	exp := time.Now().Add(365 * 24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"device": id,
		"exp":    exp.Unix(),
		"iat":    time.Now().Unix(),
	})
	ss, err := token.SignedString(s.secret)
	return ss, exp, err
}

// bearerOrCookie extracts a token from the Authorization header or the
// device cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(deviceCookieName); err == nil {
		return c.Value
	}
	return ""
}

// requireDevice enforces presence and validity of a device token and
// stashes the device id in the request context.
func (s *Server) requireDevice() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerOrCookie(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return s.secret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
				return
			}
			id, _ := claims["device"].(string)
			if id == "" {
				http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxDeviceKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type deviceRes struct {
	DeviceID  string `json:"deviceId"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// handleNewDevice issues a fresh device token and mirrors it into an
// HttpOnly cookie for browser clients.
func (s *Server) handleNewDevice(w http.ResponseWriter, r *http.Request) {
	id := genDeviceID()
	token, exp, err := s.signDeviceToken(id)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     deviceCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
	_ = json.NewEncoder(w).Encode(deviceRes{DeviceID: id, Token: token, ExpiresAt: exp.Unix()})
}
