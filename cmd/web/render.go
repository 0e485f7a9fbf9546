package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"hostup.co.in/hostup-web/internal/booking"
	"hostup.co.in/hostup-web/internal/format"
	"hostup.co.in/hostup-web/internal/handlers"
	mw "hostup.co.in/hostup-web/internal/middleware"
	"hostup.co.in/hostup-web/internal/nav"
	"hostup.co.in/hostup-web/internal/observability"
	"hostup.co.in/hostup-web/internal/seo"
)

// templateSet keeps the shared layouts and partials in base and one clone
// of base per page, so every page can define its own "content" block.
type templateSet struct {
	base  *template.Template
	pages map[string]*template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"now":           time.Now,
		"locationLabel": booking.LocationLabel,
		"fieldError": func(inputID, msg string) FieldError {
			return FieldError{ID: fieldErrorID(inputID), Message: msg}
		},
	}
}

func parseTemplates() (*templateSet, error) {
	// Recursively discover all .tmpl files. Note: ParseGlob doesn't support **.
	var shared, pages []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) == "pages" {
			pages = append(pages, path)
		} else {
			shared = append(shared, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(shared) == 0 || len(pages) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	base, err := template.New("_root").Funcs(templateFuncs()).ParseFiles(shared...)
	if err != nil {
		return nil, err
	}
	set := &templateSet{base: base, pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		set.pages[strings.TrimSuffix(filepath.Base(p), ".tmpl")] = clone
	}
	return set, nil
}

// templates returns the cached set, or a fresh parse in dev mode.
func templates() (*templateSet, error) {
	if devMode {
		return parseTemplates()
	}
	if tmplCache == nil {
		return nil, fmt.Errorf("template not initialized")
	}
	return tmplCache, nil
}

// render executes the base layout of page with status. Output is buffered so
// a failing template never leaves a half-written page behind.
func render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	ts, err := templates()
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	t, ok := ts.pages[page]
	if !ok {
		renderFailure(w, r, fmt.Errorf("unknown page %q", page))
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		renderFailure(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderFragment executes a named partial without the layout, for htmx swaps.
func renderFragment(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	ts, err := templates()
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := ts.base.ExecuteTemplate(&buf, name, data); err != nil {
		renderFailure(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("template", zap.Error(err))
	mw.WriteError(w, r, http.StatusInternalServerError, "template error")
}

// pageData fills the fields shared by every page rendered with the layout.
// Flashes are consumed here, so it must run before anything is written.
func (a *app) pageData(r *http.Request, title, description string) handlers.PageData {
	sess := mw.GetSession(r)
	path := r.URL.Path
	cfg := a.cfg

	meta := seo.Build(cfg.Business.Name, cfg.Server.BaseURL, path, title, description, "")
	meta.Add(seo.LocalBusiness(seo.Business{
		Name:      cfg.Business.Name,
		URL:       cfg.Server.BaseURL,
		Email:     cfg.Business.ContactEmail,
		Telephone: format.FmtPhoneIN(cfg.Business.WhatsAppNumber),
		Cities:    []string{"Jaipur", "Delhi", "Mumbai"},
	}))
	crumbs := nav.Breadcrumbs(path)
	if len(crumbs) > 1 {
		items := make([]seo.BreadcrumbItem, 0, len(crumbs))
		for _, c := range crumbs {
			items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: strings.TrimRight(cfg.Server.BaseURL, "/") + c.Href})
		}
		meta.Add(seo.BreadcrumbList(items))
	}

	return handlers.PageData{
		Title:     title,
		SEO:       meta,
		Analytics: handlers.Analytics{GA4MeasurementID: cfg.Analytics.GAMeasurementID, Debug: devMode},
		Business: handlers.NewBusinessInfo(
			cfg.Business.Name,
			cfg.Business.ContactEmail,
			cfg.Business.WhatsAppNumber,
			cfg.Business.SupportNumbers,
		),
		Path:            path,
		Nav:             nav.Build(path),
		Breadcrumbs:     crumbs,
		CSRFToken:       mw.CSRFToken(r),
		Flashes:         sess.PopFlashes(),
		NoticeDismissMs: cfg.UI.NoticeDismiss.Milliseconds(),
		Chat: handlers.ChatWidget{
			QuickOptions: a.chat.QuickOptions(),
		},
		Year: time.Now().Year(),
	}
}
