// Package routes assembles the complete route table of the API.
package routes

import (
	"database/sql"
	"net/http"

	hhttp "qa-forum/internal/handler/http"
	"qa-forum/internal/handler/http/answer"
	"qa-forum/internal/handler/http/comment"
	"qa-forum/internal/handler/http/question"
	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

// Deps carries what the route table needs beyond the forum service.
// DB, PoolStats and Breaker stay nil when the in-memory store is used.
type Deps struct {
	Forum     *forum.Service
	DB        hhttp.Pinger
	PoolStats func() sql.DBStats
	Breaker   hhttp.BreakerState
	Name      string
	Version   string
}

// Register installs every route on mux. Paths that match no route answer 404
// with an empty body.
func Register(mux *http.ServeMux, d Deps) {
	question.Register(mux, d.Forum)
	answer.Register(mux, d.Forum)
	comment.Register(mux, d.Forum)

	mux.Handle("GET /{$}", hhttp.IndexHandler{Name: d.Name, Version: d.Version})
	mux.Handle("GET /health", &hhttp.HealthHandler{
		DB:        d.DB,
		PoolStats: d.PoolStats,
		Breaker:   d.Breaker,
		Version:   d.Version,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: d.DB})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		respond.Status(w, http.StatusNotFound)
	})
}

// NewMux returns a mux with every route registered.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	Register(mux, d)
	return mux
}
