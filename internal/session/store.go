package session

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"

	"facilitywatch/internal/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"golang.org/x/crypto/hkdf"
)

const keySalt = "facilitywatch-session-v1"

// DeriveKeys expands the configured secret into an HMAC key and an AES-256
// key. The cookie carries the API bearer token, so it is encrypted as well
// as signed.
func DeriveKeys(secret string) (hashKey, blockKey []byte, err error) {
	if secret == "" {
		return nil, nil, fmt.Errorf("session secret is empty")
	}
	r := hkdf.New(sha256.New, []byte(secret), []byte(keySalt), []byte("cookie"))

	hashKey = make([]byte, 32)
	blockKey = make([]byte, 32)
	if _, err := io.ReadFull(r, hashKey); err != nil {
		return nil, nil, fmt.Errorf("derive hash key: %w", err)
	}
	if _, err := io.ReadFull(r, blockKey); err != nil {
		return nil, nil, fmt.Errorf("derive block key: %w", err)
	}
	return hashKey, blockKey, nil
}

// NewStore builds the cookie store used by sessions.Sessions.
func NewStore(cfg config.SessionConfig) (sessions.Store, error) {
	hashKey, blockKey, err := DeriveKeys(cfg.Secret)
	if err != nil {
		return nil, err
	}

	store := cookie.NewStore(hashKey, blockKey)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
