// Package content loads the site's editable copy: markdown pages with YAML
// front matter, the FAQ list and the site data file. Everything is read from
// a local directory and cached in memory; built-in fallbacks cover missing
// files so the site still renders from an empty checkout.
package content

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when neither a file nor a fallback exists.
var ErrNotFound = errors.New("content: not found")

const (
	defaultDir      = "content"
	defaultCacheTTL = 5 * time.Minute
	pagesDir        = "pages"
	faqsFile        = "faqs.yaml"
	siteFile        = "site.yaml"
)

// Page is a static page rendered from markdown.
type Page struct {
	Slug      string
	Title     string
	Summary   string
	Body      string
	HTML      template.HTML
	UpdatedAt time.Time
	SEO       SEO
}

// SEO holds optional metadata overrides for a page.
type SEO struct {
	Title       string
	Description string
	OGImage     string
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	UpdatedAt string `yaml:"updated_at"`
	SEO       struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		OGImage     string `yaml:"og_image"`
	} `yaml:"seo"`
}

// Store reads content from disk with an in-memory TTL cache. It is safe for
// concurrent use.
type Store struct {
	dir      string
	ttl      time.Duration
	now      func() time.Time
	renderer *Renderer

	mu    sync.RWMutex
	items map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithCacheTTL overrides how long loaded content is reused. Non-positive
// values fall back to one minute.
func WithCacheTTL(d time.Duration) Option {
	return func(s *Store) {
		if d <= 0 {
			d = time.Minute
		}
		s.ttl = d
	}
}

// WithClock overrides the cache clock (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string, opts ...Option) *Store {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultDir
	}
	s := &Store{
		dir:      dir,
		ttl:      defaultCacheTTL,
		now:      time.Now,
		renderer: NewRenderer(),
		items:    map[string]cacheEntry{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the content root.
func (s *Store) Dir() string { return s.dir }

// Renderer returns the markdown renderer used for page bodies.
func (s *Store) Renderer() *Renderer { return s.renderer }

// Purge drops every cached item.
func (s *Store) Purge() {
	s.mu.Lock()
	s.items = map[string]cacheEntry{}
	s.mu.Unlock()
}

// Page returns the page for slug from content/pages/<slug>.md, or the
// built-in fallback when the file does not exist.
func (s *Store) Page(ctx context.Context, slug string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	key := "page|" + slug
	if v, ok := s.cached(key); ok {
		return v.(Page), nil
	}
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	page, err := s.readPage(slug)
	if errors.Is(err, ErrNotFound) {
		fb, ok := fallbackPages[slug]
		if !ok {
			return Page{}, ErrNotFound
		}
		page, err = s.buildPage(slug, fb, time.Time{})
	}
	if err != nil {
		return Page{}, err
	}
	s.store(key, page)
	return page, nil
}

func (s *Store) readPage(slug string) (Page, error) {
	file := filepath.Join(s.dir, pagesDir, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}
	var mod time.Time
	if info, statErr := os.Stat(file); statErr == nil {
		mod = info.ModTime()
	}
	page, err := s.buildPage(slug, string(data), mod)
	if err != nil {
		return Page{}, fmt.Errorf("content: %s: %w", file, err)
	}
	return page, nil
}

func (s *Store) buildPage(slug, raw string, mod time.Time) (Page, error) {
	fm, body := splitFrontMatter(raw)
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("parse front matter: %w", err)
		}
	}
	rendered, err := s.renderer.Render(body)
	if err != nil {
		return Page{}, err
	}
	page := Page{
		Slug:    slug,
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    body,
		HTML:    rendered,
		SEO: SEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
	}
	page.UpdatedAt = parseDate(front.UpdatedAt)
	if page.UpdatedAt.IsZero() {
		page.UpdatedAt = mod
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	if page.SEO.Description == "" {
		page.SEO.Description = page.Summary
	}
	return page, nil
}

// FAQs returns the FAQ list from content/faqs.yaml, or the built-in list.
func (s *Store) FAQs(ctx context.Context) ([]FAQ, error) {
	const key = "faqs"
	if v, ok := s.cached(key); ok {
		return cloneFAQs(v.([]FAQ)), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var doc struct {
		FAQs []FAQ `yaml:"faqs"`
	}
	err := s.readYAML(faqsFile, &doc)
	switch {
	case errors.Is(err, ErrNotFound):
		doc.FAQs = cloneFAQs(fallbackFAQs)
	case err != nil:
		return nil, err
	}
	faqs, err := s.prepareFAQs(doc.FAQs)
	if err != nil {
		return nil, err
	}
	s.store(key, faqs)
	return cloneFAQs(faqs), nil
}

// Site returns the site data from content/site.yaml, or the built-in data.
func (s *Store) Site(ctx context.Context) (Site, error) {
	const key = "site"
	if v, ok := s.cached(key); ok {
		return v.(Site).clone(), nil
	}
	if err := ctx.Err(); err != nil {
		return Site{}, err
	}
	var site Site
	err := s.readYAML(siteFile, &site)
	switch {
	case errors.Is(err, ErrNotFound):
		site = fallbackSite.clone()
	case err != nil:
		return Site{}, err
	}
	site.normalize()
	s.store(key, site)
	return site.clone(), nil
}

func (s *Store) readYAML(name string, dst any) error {
	file := filepath.Join(s.dir, name)
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("content: parse %s: %w", file, err)
	}
	return nil
}

func (s *Store) cached(key string) (any, bool) {
	now := s.now()
	s.mu.RLock()
	entry, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || now.After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (s *Store) store(key string, v any) {
	s.mu.Lock()
	s.items[key] = cacheEntry{value: v, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}
