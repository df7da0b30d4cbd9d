package handler

import (
	"net/http"

	"github.com/awantoch/edgebridge/adapter"

	// The backend registers its application when imported.
	_ "github.com/awantoch/edgebridge/backend"
)

// app is bound while the function instance starts; a load failure panics here
// and the host reports a cold-start error.
var app = adapter.MustLoad()

// Handler is the entry point for Vercel serverless functions.
func Handler(w http.ResponseWriter, r *http.Request) {
	app.ServeHTTP(w, r)
}
