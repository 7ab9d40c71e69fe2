package httpapi

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"slices"
	"strings"
	"time"

	"fyyur/shared/go/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutTemplate   = "templates/layout.html"
	partialsTemplate = "templates/partials.html"
)

// Choices offered by the venue and artist forms.
var (
	genreChoices = []string{
		"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
		"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop",
		"Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
	}
	stateChoices = []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "ID",
		"IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH", "NJ", "NM",
		"NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA",
		"RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	}
)

// pageData is handed to every template.
type pageData struct {
	Title   string
	Flashes []string
	Data    any
}

// formView is the Data of the create and edit form pages.
type formView struct {
	Action string
	ID     int64
	Form   any
	Errors fieldErrors
}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	funcs := template.FuncMap{
		"datetime": formatDatetime,
		"join":     strings.Join,
		"contains": func(list []string, item string) bool { return slices.Contains(list, item) },
		"genres":   genreOptions,
		"states":   func() []string { return stateChoices },
	}

	r := &renderer{pages: make(map[string]*template.Template)}
	for _, page := range pages {
		if page == layoutTemplate || page == partialsTemplate {
			continue
		}
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutTemplate, partialsTemplate, page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[strings.TrimPrefix(page, "templates/")] = tmpl
	}
	return r, nil
}

// render writes the named page with the given status. The page is executed
// into a buffer first so a template error never leaves a half-written body.
func (rd *renderer) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	tmpl, ok := rd.pages[page]
	if !ok {
		logging.WithContext(r.Context()).Error().Str("template", page).Msg("Template not found")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("template", page).Msg("Failed to render template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// genreOptions lists the checkbox choices followed by any stored genre the
// choices lack, so editing a record never drops a genre it already has.
func genreOptions(selected []string) []string {
	options := slices.Clone(genreChoices)
	for _, genre := range selected {
		if genre != "" && !slices.Contains(options, genre) {
			options = append(options, genre)
		}
	}
	return options
}

// formatDatetime renders show times. "full" gives the long form used on
// detail pages; anything else gives the medium form.
func formatDatetime(t time.Time, format ...string) string {
	if len(format) > 0 && format[0] == "full" {
		return t.Format("Monday January, 2, 2006 at 3:04PM")
	}
	return t.Format("Mon 01, 02, 2006 3:04PM")
}
