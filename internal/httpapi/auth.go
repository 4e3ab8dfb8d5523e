package httpapi

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// ErrInvalidHash is returned for a stored hash that is not in the
// $argon2id$v=19$m=...,t=...,p=...$salt$hash format.
var ErrInvalidHash = errors.New("invalid argon2id hash")

// Auth is a single user allowed to change entries.
type Auth struct {
	User string
	Hash string
}

// ParseAuth parses a "user:hash" line and checks the hash format.
func ParseAuth(line string) (*Auth, error) {
	user, hash, ok := strings.Cut(strings.TrimSpace(line), ":")
	if !ok || user == "" || hash == "" {
		return nil, errors.New("invalid auth line (expected user:hash)")
	}
	if _, err := parseHash(hash); err != nil {
		return nil, err
	}
	return &Auth{User: user, Hash: hash}, nil
}

// LoadAuth reads a file holding one "user:hash" line. A missing file yields
// nil and no error.
func LoadAuth(path string) (*Auth, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading auth file: %w", err)
	}
	return ParseAuth(string(data))
}

// HashPassword returns an Argon2id hash of password with a random salt.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

// argon2Hash is a decoded Argon2id hash.
type argon2Hash struct {
	memory, time uint32
	threads      uint8
	salt, key    []byte
}

func parseHash(hash string) (argon2Hash, error) {
	var h argon2Hash
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return h, ErrInvalidHash
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.memory, &h.time, &h.threads); err != nil {
		return h, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	// argon2.IDKey panics below one pass or one thread.
	if h.time < 1 || h.threads < 1 {
		return h, fmt.Errorf("%w: t and p must be at least 1", ErrInvalidHash)
	}
	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return h, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return h, fmt.Errorf("%w: hash: %v", ErrInvalidHash, err)
	}
	if len(h.key) == 0 {
		return h, fmt.Errorf("%w: empty hash", ErrInvalidHash)
	}
	return h, nil
}

// VerifyPassword reports whether password matches hash.
func VerifyPassword(password, hash string) (bool, error) {
	h, err := parseHash(hash)
	if err != nil {
		return false, err
	}
	got := argon2.IDKey([]byte(password), h.salt, h.time, h.memory, h.threads, uint32(len(h.key)))
	return subtle.ConstantTimeCompare(h.key, got) == 1, nil
}

// requireAuth enforces Basic Auth on next when credentials are configured.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := s.cfg.Auth
		if auth == nil {
			next.ServeHTTP(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(auth.User)) == 1
		passMatch := false
		if ok && userMatch {
			var err error
			if passMatch, err = VerifyPassword(pass, auth.Hash); err != nil {
				s.log.Printf("Error verifying password: %v", err)
			}
		}
		if !ok || !userMatch || !passMatch {
			w.Header().Set("WWW-Authenticate", `Basic realm="jpholiday"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			s.log.Printf("Failed auth attempt from %s (user: %s)", r.RemoteAddr, user)
			return
		}
		next.ServeHTTP(w, r)
	})
}
