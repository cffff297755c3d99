package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/aaronzipp/rock-paper-showdown/internal/service"
	"github.com/aaronzipp/rock-paper-showdown/internal/sse"
)

// Context holds shared application dependencies
type Context struct {
	Service   *service.Service
	Hub       *sse.Hub
	BaseURL   string
	StaticDir string
}

// HandleIndex serves the game page
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(ctx.StaticDir, "index.html"))
}
