package handlers

import (
	"fmt"
	"log"
	"net/http"
)

// HandleEvents streams game events via Server-Sent Events
func (ctx *Context) HandleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := ctx.Hub.Subscribe()
	defer ctx.Hub.Unsubscribe(client)

	if debug {
		log.Printf("sse client connected (%d total)", ctx.Hub.ClientCount())
	}

	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-client:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}
