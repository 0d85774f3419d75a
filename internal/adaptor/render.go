package adaptor

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// renderPage writes an HTML page. Render failures after the header is written
// can only be logged.
func renderPage(w http.ResponseWriter, log *zap.Logger, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("Failed to render page",
			zap.String("template", name),
			zap.Error(err))
	}
}
