package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amakane-hakari/capset/internal/capset"
	ilog "github.com/amakane-hakari/capset/internal/log"
)

// NewRouter はセットの操作面をそのまま公開するルーターを作成します。
func NewRouter(st *capset.Synced, l ilog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware())
	r.Use(RecoverMiddleware())
	r.Use(AccessLog(l))

	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	h := &elementHandler{st: st}
	h.mount(r)

	return r
}
