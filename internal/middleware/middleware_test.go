package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"hostup.co.in/hostup-web/internal/booking"
	"hostup.co.in/hostup-web/internal/observability"
)

func stack(h http.Handler) http.Handler {
	return HTMX(Session(CSRF(h)))
}

func cookieNamed(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSessionRoundTrip(t *testing.T) {
	h := stack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		if r.URL.Query().Get("set") != "" {
			s.Booking.Time = "3:00 PM"
			s.Booking.Date = booking.Day{Year: 2026, Month: time.October, Day: 20}
			s.AddFlash("success", "saved")
		}
		_, _ = w.Write([]byte(s.Booking.Time))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?set=1", nil))
	sess := cookieNamed(rec.Result().Cookies(), sessionCookieName)
	require.NotNil(t, sess, "new session must be persisted")
	assert.True(t, sess.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sess)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "3:00 PM", rec.Body.String())
	assert.Nil(t, cookieNamed(rec.Result().Cookies(), sessionCookieName), "clean session is not rewritten")

	decoded, ok := readSessionCookie(req)
	require.True(t, ok)
	assert.Equal(t, booking.Day{Year: 2026, Month: time.October, Day: 20}, decoded.Booking.Date)
	require.Len(t, decoded.Flashes, 1)
	assert.Equal(t, "saved", decoded.PopFlashes()[0].Message)
	assert.Empty(t, decoded.Flashes)
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	sd := &SessionData{ID: "abc", CSRFToken: "tok"}
	val, err := encodeSession(sd)
	require.NoError(t, err)
	mid := len(val) / 2
	flip := "A"
	if val[mid] == 'A' {
		flip = "B"
	}
	tampered := val[:mid] + flip + val[mid+1:]

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tampered})
	got, ok := readSessionCookie(req)
	assert.False(t, ok)
	assert.Empty(t, got.ID)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: val})
	got, ok = readSessionCookie(req)
	require.True(t, ok)
	assert.Equal(t, "abc", got.ID)
}

func TestSessionCookieSignedWithConfiguredKeys(t *testing.T) {
	prev := sessionCodec
	t.Cleanup(func() { sessionCodec = prev })

	require.NoError(t, ConfigureSession(SessionOptions{
		SigningKey: strings.Repeat("k", 32),
		BlockKey:   strings.Repeat("b", 32),
	}))
	val, err := encodeSession(&SessionData{ID: "enc", CSRFToken: "secret-token"})
	require.NoError(t, err)
	raw, err := base64.URLEncoding.DecodeString(val)
	require.NoError(t, err)
	parts := strings.SplitN(string(raw), "|", 3)
	require.Len(t, parts, 3)
	inner, err := base64.URLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.NotContains(t, string(inner), "secret-token", "block key encrypts the payload")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: val})
	got, ok := readSessionCookie(req)
	require.True(t, ok)
	assert.Equal(t, "enc", got.ID)

	// a different hash key rejects the old cookie
	require.NoError(t, ConfigureSession(SessionOptions{SigningKey: strings.Repeat("z", 32)}))
	_, ok = readSessionCookie(req)
	assert.False(t, ok)
}

func TestOversizeSessionDropsContactDraft(t *testing.T) {
	h := stack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		s.Booking.Time = "3:00 PM"
		s.Booking.Contact = booking.Contact{Name: "Asha", Notes: strings.Repeat("<", 4000)}
		s.AddFlash("error", "Please fill in all required fields")
		_, _ = w.Write([]byte("ok"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var header string
	for _, v := range rec.Result().Header.Values("Set-Cookie") {
		if strings.HasPrefix(v, sessionCookieName+"=") {
			header = v
		}
	}
	require.NotEmpty(t, header, "session is still written without the draft")
	assert.Less(t, len(header), 4096)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookieNamed(rec.Result().Cookies(), sessionCookieName))
	got, ok := readSessionCookie(req)
	require.True(t, ok)
	assert.Equal(t, "3:00 PM", got.Booking.Time)
	assert.Empty(t, got.Booking.Contact.Notes)
	require.Len(t, got.Flashes, 1)
}

func TestAddFlashKeepsNewest(t *testing.T) {
	s := &SessionData{}
	for i := 0; i < maxFlashes+2; i++ {
		s.AddFlash("info", string(rune('a'+i)))
	}
	s.AddFlash("info", "  ")
	require.Len(t, s.Flashes, maxFlashes)
	assert.Equal(t, "c", s.Flashes[0].Message)
	assert.True(t, s.dirty)
}

func TestConfigureSessionRejectsBadKeys(t *testing.T) {
	assert.ErrorIs(t, ConfigureSession(SessionOptions{SigningKey: "short"}), ErrWeakSigningKey)
	assert.ErrorIs(t, ConfigureSession(SessionOptions{
		SigningKey: strings.Repeat("k", 32),
		BlockKey:   "not-an-aes-key",
	}), ErrBadBlockKey)
}

func csrfSession(t *testing.T, h http.Handler) (*http.Cookie, *http.Cookie) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()
	sess := cookieNamed(cookies, sessionCookieName)
	csrf := cookieNamed(cookies, csrfCookieName)
	require.NotNil(t, sess)
	require.NotNil(t, csrf)
	return sess, csrf
}

func TestCSRF(t *testing.T) {
	h := stack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	sess, csrf := csrfSession(t, h)

	post := func(body string, header string, htmx bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if header != "" {
			req.Header.Set("X-CSRF-Token", header)
		}
		if htmx {
			req.Header.Set("HX-Request", "true")
		}
		req.AddCookie(sess)
		req.AddCookie(csrf)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusForbidden, post("", "", false).Code)
	assert.Equal(t, http.StatusNoContent, post("", csrf.Value, false).Code)
	assert.Equal(t, http.StatusNoContent, post(url.Values{CSRFFieldName: {csrf.Value}}.Encode(), "", false).Code)

	rec := post("", "wrong", true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"error":"invalid CSRF token"}`, rec.Body.String())
}

func TestRedirect(t *testing.T) {
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Redirect(w, r, "/contact")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "/contact", rec.Header().Get("HX-Redirect"))
}

func TestSetTrigger(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, SetTrigger(rec, map[string]any{"booking:alert": map[string]string{"message": "Please select a date."}}))
	assert.JSONEq(t, `{"booking:alert":{"message":"Please select a date."}}`, rec.Header().Get("HX-Trigger"))

	rec = httptest.NewRecorder()
	require.NoError(t, SetTrigger(rec, nil))
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
}

func TestLoggerWritesAccessEntry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(HTMX)
	r.Use(Logger(zap.New(core)))
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		observability.FromContext(r.Context()).Debug("inside")
		http.NotFound(w, r)
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("HX-Request", "true")
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 2, logs.Len())
	inside := logs.All()[0]
	assert.NotEmpty(t, inside.ContextMap()["request_id"])

	entry := logs.All()[1]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, "/missing", fields["path"])
	assert.Equal(t, true, fields["htmx"])
}

func TestAssetsWithCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))

	h := AssetsWithCache("/assets", dir, false)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)

	rec = httptest.NewRecorder()
	AssetsWithCache("/assets", dir, true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Empty(t, rec.Header().Get("ETag"))
}
