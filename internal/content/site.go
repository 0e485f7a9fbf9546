package content

import (
	"html/template"
	"strconv"
	"strings"

	"hostup.co.in/hostup-web/internal/format"
)

// FAQ is one accordion entry. Answer is markdown; AnswerHTML is filled when
// the list is loaded.
type FAQ struct {
	ID         string        `yaml:"id"`
	Question   string        `yaml:"question"`
	Answer     string        `yaml:"answer"`
	AnswerHTML template.HTML `yaml:"-"`
}

// Site is the structured data shared by several pages.
type Site struct {
	Tagline      string        `yaml:"tagline"`
	Stats        []Stat        `yaml:"stats"`
	Services     []Service     `yaml:"services"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Cities       []City        `yaml:"cities"`
}

// Stat is an animated counter. The page renders the final value so it reads
// correctly without scripts; the counter tween starts from zero.
type Stat struct {
	Label  string `yaml:"label"`
	Value  int64  `yaml:"value"`
	Suffix string `yaml:"suffix"`
}

// Display returns the formatted final value.
func (s Stat) Display() string { return format.FmtCount(s.Value, s.Suffix) }

type Service struct {
	Slug    string   `yaml:"slug"`
	Title   string   `yaml:"title"`
	Icon    string   `yaml:"icon"`
	Summary string   `yaml:"summary"`
	Points  []string `yaml:"points"`
}

type Testimonial struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	City   string `yaml:"city"`
	Quote  string `yaml:"quote"`
	Rating int    `yaml:"rating"`
}

// Stars returns the rating as a star string.
func (t Testimonial) Stars() string { return strings.Repeat("★", t.Rating) }

type City struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Blurb string `yaml:"blurb"`
}

func (s *Site) normalize() {
	s.Tagline = strings.TrimSpace(s.Tagline)
	stats := s.Stats[:0]
	for _, st := range s.Stats {
		st.Label = strings.TrimSpace(st.Label)
		if st.Label == "" {
			continue
		}
		stats = append(stats, st)
	}
	s.Stats = stats
	for i := range s.Services {
		svc := &s.Services[i]
		svc.Title = strings.TrimSpace(svc.Title)
		if svc.Slug == "" {
			svc.Slug = slugify(svc.Title)
		}
	}
	for i := range s.Testimonials {
		t := &s.Testimonials[i]
		if t.Rating <= 0 || t.Rating > 5 {
			t.Rating = 5
		}
		t.Quote = strings.TrimSpace(t.Quote)
	}
}

func (s Site) clone() Site {
	cp := s
	cp.Stats = append([]Stat(nil), s.Stats...)
	cp.Services = make([]Service, len(s.Services))
	for i, svc := range s.Services {
		svc.Points = append([]string(nil), svc.Points...)
		cp.Services[i] = svc
	}
	cp.Testimonials = append([]Testimonial(nil), s.Testimonials...)
	cp.Cities = append([]City(nil), s.Cities...)
	return cp
}

func (s *Store) prepareFAQs(in []FAQ) ([]FAQ, error) {
	out := make([]FAQ, 0, len(in))
	for i, f := range in {
		f.Question = strings.TrimSpace(f.Question)
		if f.Question == "" {
			continue
		}
		html, err := s.renderer.Render(f.Answer)
		if err != nil {
			return nil, err
		}
		f.AnswerHTML = html
		if f.ID == "" {
			f.ID = "faq-" + strconv.Itoa(i+1)
		}
		out = append(out, f)
	}
	return out, nil
}

func cloneFAQs(in []FAQ) []FAQ {
	return append([]FAQ(nil), in...)
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
