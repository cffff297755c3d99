package handlers

import (
	"log"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the side length of the generated QR image in pixels.
const qrSize = 256

// HandleShareQR returns a QR code for the game URL, so the second player can
// open the page on a phone.
func (ctx *Context) HandleShareQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	png, err := qrcode.Encode(ctx.BaseURL, qrcode.Medium, qrSize)
	if err != nil {
		log.Printf("HandleShareQR: encode %q: %v", ctx.BaseURL, err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		log.Printf("HandleShareQR: write response: %v", err)
	}
}
