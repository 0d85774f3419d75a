package adaptor

import (
	"net/http"

	"go.uber.org/zap"
)

type PageHandler struct {
	log *zap.Logger
}

func NewPageHandler(log *zap.Logger) *PageHandler {
	return &PageHandler{
		log: log.With(zap.String("handler", "page")),
	}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.log, "index.html", nil)
}
