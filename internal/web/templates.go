// Package web renders the console pages. Every page shares the layout shell
// (navigation, identity, flash notice region); the page templates only fill
// the content block.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"quiz_admin_console/internal/api/middleware"
	"quiz_admin_console/internal/domain/model"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

// mdRenderer previews announcement bodies and the welcome message. Raw HTML
// in the markdown input stays escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var pageTemplates = []string{
	"login.html",
	"dashboard.html",
	"users.html",
	"user_form.html",
	"confirm_delete.html",
	"quizzes.html",
	"quiz_form.html",
	"transactions.html",
	"notifications.html",
	"analytics.html",
	"settings.html",
}

var funcMap = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("Jan 2, 2006")
	},
	"formatMoney": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"formatPercent": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	},
	"pageNumbers": func(pages int) []int {
		if pages < 1 {
			pages = 1
		}
		out := make([]int, pages)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"renderMarkdown": func(md string) template.HTML {
		var buf bytes.Buffer
		if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(md))
		}
		return template.HTML(buf.String())
	},
}

// PageData is the envelope every template receives.
type PageData struct {
	Title     string
	Active    string // nav highlight
	Session   *model.Session
	Notice    string
	Error     string
	CSRFField template.HTML
	Data      interface{}
}

type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		tpl, err := template.New("layout.html").Funcs(funcMap).
			ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tpl
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named page. Session identity and the flash notice come
// from the request; the notice query parameter survives redirects.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, page string, data PageData) {
	tpl, ok := rd.templates[page]
	if !ok {
		slog.Error("unknown template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if data.Session == nil {
		if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
			data.Session = sess
		}
	}
	if data.Notice == "" {
		data.Notice = r.URL.Query().Get("notice")
	}
	if data.Error == "" {
		data.Error = r.URL.Query().Get("error")
	}
	data.CSRFField = csrf.TemplateField(r)

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		slog.Error("template execution failed", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
