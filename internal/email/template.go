package email

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/aymerick/raymond"

	"github.com/jjanuszczak/Genetic-Insights/pkg/logger"
)

//go:embed templates
var templateFS embed.FS

// TemplateService renders Handlebars email templates embedded in the binary.
//
// Layout:
//   - layouts/<name>.html.hbs wraps HTML bodies, receiving the body as {{{body}}}
//   - <name>.html.hbs is the HTML body
//   - <name>.txt.hbs is the plain-text alternative (optional)
type TemplateService struct {
	fsys fs.FS
	log  *slog.Logger

	mu    sync.RWMutex
	cache map[string]*raymond.Template
}

// TemplateRenderResult contains the rendered email content
type TemplateRenderResult struct {
	HTML string
	Text string
}

// TemplateContext is the data passed to templates
type TemplateContext map[string]interface{}

// NewTemplateService creates a template service over the embedded templates.
func NewTemplateService(log *slog.Logger) *TemplateService {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return NewTemplateServiceFS(sub, log)
}

// NewTemplateServiceFS creates a template service over fsys.
func NewTemplateServiceFS(fsys fs.FS, log *slog.Logger) *TemplateService {
	return &TemplateService{
		fsys:  fsys,
		log:   log.With(logger.Scope("email.template")),
		cache: make(map[string]*raymond.Template),
	}
}

func (ts *TemplateService) load(path string) (*raymond.Template, error) {
	ts.mu.RLock()
	tmpl, ok := ts.cache[path]
	ts.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(ts.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("template not found: %s", path)
	}

	tmpl, err = raymond.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	ts.mu.Lock()
	ts.cache[path] = tmpl
	ts.mu.Unlock()

	return tmpl, nil
}

// Render renders templateName with ctx, wrapping the HTML in layoutName when set.
func (ts *TemplateService) Render(templateName string, ctx TemplateContext, layoutName string) (*TemplateRenderResult, error) {
	tmpl, err := ts.load(templateName + ".html.hbs")
	if err != nil {
		return nil, err
	}

	body, err := tmpl.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", templateName, err)
	}

	html := body
	if layoutName != "" {
		layout, err := ts.load("layouts/" + layoutName + ".html.hbs")
		if err != nil {
			return nil, err
		}

		layoutCtx := make(TemplateContext, len(ctx)+1)
		for k, v := range ctx {
			layoutCtx[k] = v
		}
		layoutCtx["body"] = body

		html, err = layout.Exec(layoutCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to render layout %s: %w", layoutName, err)
		}
	}

	result := &TemplateRenderResult{HTML: html}

	if textTmpl, err := ts.load(templateName + ".txt.hbs"); err == nil {
		text, err := textTmpl.Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to render text template %s: %w", templateName, err)
		}
		result.Text = strings.TrimSpace(text)
	} else {
		ts.log.Debug("no text template", slog.String("template", templateName))
	}

	return result, nil
}
