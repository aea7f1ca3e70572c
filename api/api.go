package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/campus-rides/config"
	"github.com/linesmerrill/campus-rides/databases"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router *mux.Router
	Client databases.ClientHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	// healthchex
	r.HandleFunc("/health", a.healthCheckHandler).Methods("GET")

	a.Router = r
	return r
}

func (a *App) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if a.Client == nil {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.Client.Ping(ctx); err != nil {
		config.ErrorStatus("database down", http.StatusServiceUnavailable, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, `{"alive": true, "database": "up"}`)
}
