package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hostup.co.in/hostup-web/internal/chat"
	"hostup.co.in/hostup-web/internal/content"
	"hostup.co.in/hostup-web/internal/handlers"
	mw "hostup.co.in/hostup-web/internal/middleware"
	"hostup.co.in/hostup-web/internal/observability"
	"hostup.co.in/hostup-web/internal/seo"
)

// contentPage loads slug and its shared site data into a fresh PageData.
// Failures are logged and the page renders with whatever loaded.
func (a *app) contentPage(r *http.Request, slug string) handlers.PageData {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	page, err := a.content.Page(ctx, slug)
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		logger.Warn("load page", zap.String("slug", slug), zap.Error(err))
	}
	site, err := a.content.Site(ctx)
	if err != nil {
		logger.Warn("load site data", zap.Error(err))
	}

	title := page.SEO.Title
	if title == "" {
		title = page.Title
	}
	description := page.SEO.Description
	if description == "" {
		description = page.Summary
	}
	data := a.pageData(r, title, description)
	if page.SEO.OGImage != "" {
		data.SEO.OG.Image = page.SEO.OGImage
		data.SEO.Twitter = seo.Twitter{Card: "summary_large_image", Image: page.SEO.OGImage}
	}
	data.Page = page
	data.Site = site
	return data
}

// HomeHandler renders the landing page.
func (a *app) HomeHandler(w http.ResponseWriter, r *http.Request) {
	data := a.contentPage(r, "home")
	data.Breadcrumbs = nil
	render(w, r, http.StatusOK, "home", data)
}

func (a *app) AboutHandler(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "about", a.contentPage(r, "about"))
}

func (a *app) ServicesHandler(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "services", a.contentPage(r, "services"))
}

func (a *app) TestimonialsHandler(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "testimonials", a.contentPage(r, "testimonials"))
}

// FAQsHandler renders the accordion and the matching FAQPage JSON-LD.
func (a *app) FAQsHandler(w http.ResponseWriter, r *http.Request) {
	data := a.contentPage(r, "faqs")
	faqs, err := a.content.FAQs(r.Context())
	if err != nil {
		observability.FromContext(r.Context()).Warn("load faqs", zap.Error(err))
	}
	data.FAQs = faqs
	if len(faqs) > 0 {
		qa := make([]seo.QA, 0, len(faqs))
		for _, f := range faqs {
			qa = append(qa, seo.QA{Question: f.Question, Answer: chat.PlainText(string(f.AnswerHTML))})
		}
		data.SEO.Add(seo.FAQPage(qa))
	}
	render(w, r, http.StatusOK, "faqs", data)
}

func (a *app) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	a.renderStatus(w, r, http.StatusNotFound)
}

func (a *app) MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	a.renderStatus(w, r, http.StatusMethodNotAllowed)
}

// renderStatus renders the error page for code. htmx requests get the short
// JSON error instead of a full document.
func (a *app) renderStatus(w http.ResponseWriter, r *http.Request, code int) {
	view := statusView(code)
	if code >= http.StatusInternalServerError {
		view.RequestID, _ = mw.RequestID(r.Context())
	}
	if mw.IsHTMX(r.Context()) {
		mw.WriteError(w, r, code, view.Heading)
		return
	}
	data := a.pageData(r, view.Heading, view.Message)
	data.SEO.Robots = "noindex"
	data.Breadcrumbs = nil
	data.Status = &view
	render(w, r, code, "error", data)
}

func statusView(code int) handlers.StatusView {
	switch code {
	case http.StatusNotFound:
		return handlers.StatusView{
			Code:    code,
			Heading: "Page not found",
			Message: "The page you are looking for does not exist or has moved.",
		}
	case http.StatusMethodNotAllowed:
		return handlers.StatusView{
			Code:    code,
			Heading: "Method not allowed",
			Message: "This address does not accept that kind of request.",
		}
	default:
		return handlers.StatusView{
			Code:    http.StatusInternalServerError,
			Heading: "Something went wrong",
			Message: "An unexpected error occurred. Please try again or reach us on WhatsApp.",
		}
	}
}

// recoverPage turns a handler panic into the 500 page. chi's Recoverer stays
// outermost for panics raised before the session is available.
func (a *app) recoverPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			observability.FromContext(r.Context()).Error("panic",
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			a.renderStatus(w, r, http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
