package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/initify/callconnect/internal/app"
)

var routerFromEnv = sync.OnceValues(app.RouterFromEnv)

// Handler is the Vercel serverless function entrypoint for the answer webhook.
func Handler(w http.ResponseWriter, r *http.Request) {
	router, err := routerFromEnv()
	if err != nil {
		slog.Error("config error", "error", err)
		http.Error(w, "config error", http.StatusInternalServerError)
		return
	}
	// Delegate to the shared Gin router.
	router.ServeHTTP(w, r)
}
