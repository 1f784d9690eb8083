package main

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/dekarrin/bnflr/internal/bnf"
	"github.com/dekarrin/bnflr/internal/diag"
	"github.com/dekarrin/bnflr/internal/firstset"
	"github.com/dekarrin/bnflr/internal/gpf"
	"github.com/dekarrin/bnflr/internal/grammar"
	"github.com/dekarrin/bnflr/internal/lr1"
	"github.com/dekarrin/bnflr/internal/lrtable"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// NewServer assembles the router for bnflrd. Every request is tagged with a
// fresh UUID for log correlation, the way the teacher's API layer threads
// google/uuid through request handling (server/endpoints.go), adapted here
// into a request-logging middleware instead of a resource-ID parser since
// this server has no resources to name.
func NewServer(strict bool) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)

	r.Post("/generate", handleGenerate(strict))
	r.Get("/healthz", handleHealthz)

	return r
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, req)
		log.Printf("request %s %s %s %s", id, req.Method, req.URL.Path, time.Since(start))
	})
}

func handleHealthz(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleGenerate reads a BNF grammar from the request body and responds
// with the GPF artifact built from it. A malformed grammar is a 400; a
// grammar that loads but produces conflict diagnostics is a 200 unless
// strict is set, in which case it is a 422 with the diagnostics listed in
// the response body instead of the artifact.
func handleGenerate(strict bool) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		records, err := bnf.Parse(req.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		collector := diag.NewCollector()
		g, err := grammar.Load(records, collector)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		fe := firstset.New(g, collector)
		coll := lr1.Build(g, fe, collector)
		table := lrtable.Assemble(g, coll, collector)

		if strict && !collector.Empty() {
			w.WriteHeader(http.StatusUnprocessableEntity)
			for _, d := range collector.All() {
				w.Write([]byte(d.String() + "\n"))
			}
			return
		}

		var buf bytes.Buffer
		if err := gpf.Write(&buf, g, table); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write(buf.Bytes())
	}
}
