package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	"hostup.co.in/hostup-web/internal/booking"
	"hostup.co.in/hostup-web/internal/observability"
)

const (
	sessionCookieName = "HOSTUP_SESSION"
	maxFlashes        = 5
	minSigningKeyLen  = 32
	// encoded value limit; name and attributes must still fit in 4096 bytes
	maxSessionValueLen = 3800
)

var (
	// ErrWeakSigningKey is returned by ConfigureSession for keys shorter than 32 bytes.
	ErrWeakSigningKey = errors.New("session: signing key must be at least 32 bytes")
	// ErrBadBlockKey is returned for block keys that are not 16, 24 or 32 bytes.
	ErrBadBlockKey = errors.New("session: block key must be 16, 24 or 32 bytes")
)

// SessionData is the per-visitor state carried in the signed session cookie.
type SessionData struct {
	ID        string        `json:"id"`
	CSRFToken string        `json:"csrf,omitempty"`
	Booking   booking.State `json:"booking"`
	Flashes   []Flash       `json:"flashes,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	// internal dirty flag; not serialized
	dirty bool
}

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Kind    string `json:"k"` // success | error | info
	Message string `json:"m"`
}

// SessionOptions configures cookie signing and attributes. BlockKey is
// optional; when set the cookie is also encrypted.
type SessionOptions struct {
	SigningKey string
	BlockKey   string
	Secure     bool
	MaxAge     time.Duration
}

var (
	sessionCodec  *securecookie.SecureCookie
	sessionSecure bool
	sessionMaxAge = 30 * 24 * time.Hour
)

func init() {
	// process-ephemeral key until ConfigureSession runs
	sessionCodec = newSessionCodec(securecookie.GenerateRandomKey(32), nil, sessionMaxAge)
}

func newSessionCodec(hashKey, blockKey []byte, maxAge time.Duration) *securecookie.SecureCookie {
	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(maxAge / time.Second))
	codec.MaxLength(maxSessionValueLen)
	return codec
}

// ConfigureSession installs the cookie keys and attributes. An empty signing
// key falls back to a random per-process key, which invalidates every session
// on restart. Call it once during startup.
func ConfigureSession(opts SessionOptions) error {
	hashKey := []byte(strings.TrimSpace(opts.SigningKey))
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	} else if len(hashKey) < minSigningKeyLen {
		return ErrWeakSigningKey
	}
	var blockKey []byte
	if key := strings.TrimSpace(opts.BlockKey); key != "" {
		switch len(key) {
		case 16, 24, 32:
			blockKey = []byte(key)
		default:
			return ErrBadBlockKey
		}
	}
	if opts.MaxAge > 0 {
		sessionMaxAge = opts.MaxAge
	}
	sessionCodec = newSessionCodec(hashKey, blockKey, sessionMaxAge)
	sessionSecure = opts.Secure
	return nil
}

// Session loads or initializes a session and stores it in request context.
// The cookie is rewritten just before the first byte of the response when the
// session is new or was marked dirty.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sd, fromCookie := readSessionCookie(r)
		if sd.ID == "" {
			sd.ID = randID()
			sd.CreatedAt = time.Now().UTC()
			sd.UpdatedAt = sd.CreatedAt
			sd.CSRFToken = newCSRFToken()
			sd.dirty = true
		}
		ctx := context.WithValue(r.Context(), ctxKeySession, sd)
		persist := func(w http.ResponseWriter) {
			if err := writeSessionCookie(w, sd); err != nil {
				observability.FromContext(r.Context()).Warn("session not persisted",
					zap.String("session_id", sd.ID), zap.Error(err))
			}
		}
		rw := NewResponseRecorder(w)
		rw.SetBeforeWrite(func(w http.ResponseWriter) {
			if sd.dirty || !fromCookie {
				persist(w)
			}
		})
		next.ServeHTTP(rw, r.WithContext(ctx))
		// nothing written (e.g. HEAD): persist now
		if !rw.Wrote() && (sd.dirty || !fromCookie) {
			persist(w)
		}
	})
}

// GetSession returns session data from context. Outside the Session
// middleware it returns a detached empty session.
func GetSession(r *http.Request) *SessionData {
	if sd, ok := r.Context().Value(ctxKeySession).(*SessionData); ok && sd != nil {
		return sd
	}
	return &SessionData{}
}

// MarkDirty flags the session for writing before the response is sent.
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// AddFlash queues a notice for the next render. Only the newest notices are
// kept to bound the cookie size.
func (s *SessionData) AddFlash(kind, message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	s.Flashes = append(s.Flashes, Flash{Kind: kind, Message: message})
	if len(s.Flashes) > maxFlashes {
		s.Flashes = s.Flashes[len(s.Flashes)-maxFlashes:]
	}
	s.MarkDirty()
}

// PopFlashes returns and clears the queued notices.
func (s *SessionData) PopFlashes() []Flash {
	if len(s.Flashes) == 0 {
		return nil
	}
	out := s.Flashes
	s.Flashes = nil
	s.MarkDirty()
	return out
}

// readSessionCookie decodes and verifies the session cookie.
func readSessionCookie(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := sessionCodec.Decode(sessionCookieName, c.Value, &sd); err != nil {
		return &SessionData{}, false
	}
	return &sd, true
}

// encodeSession returns the signed cookie value for sd. Sessions whose value
// would exceed the cookie size limit fail with an error.
func encodeSession(sd *SessionData) (string, error) {
	return sessionCodec.Encode(sessionCookieName, sd)
}

// writeSessionCookie sets the session cookie. An oversize session first drops
// the booking contact draft; if it still does not fit nothing is written and
// the visitor keeps the previous cookie.
func writeSessionCookie(w http.ResponseWriter, sd *SessionData) error {
	value, err := encodeSession(sd)
	if err != nil && sd.Booking.Contact != (booking.Contact{}) {
		sd.Booking.Contact = booking.Contact{}
		value, err = encodeSession(sd)
	}
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   sessionSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionMaxAge),
	})
	return nil
}

func randID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
