package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

/////////////////////
// Response helpers

func RespondInternalServiceError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(err.Error()))
}

func RespondNotFoundError(w http.ResponseWriter, body string) {
	w.WriteHeader(http.StatusNotFound)
	if body == "" {
		body = "Not found"
	}
	RespondText(w, body)
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusBadRequest)
	RespondText(w, message)
}

func RespondText(w http.ResponseWriter, body string) {
	w.Write([]byte(body))
}

func RespondJSON(w http.ResponseWriter, body any) {
	RespondJSONStatus(w, http.StatusOK, body)
}

func RespondJSONStatus(w http.ResponseWriter, status int, body any) {
	js, err := json.Marshal(body)
	if err != nil {
		RespondInternalServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
}

// respondResult maps an action outcome to a status code. Invalid input is
// a 400, a delete that removed nothing is a 404.
func respondResult(w http.ResponseWriter, res Result, err error) {
	switch {
	case errors.Is(err, ErrInvalidValue):
		RespondJSONStatus(w, http.StatusBadRequest, res)
	case err != nil:
		RespondInternalServiceError(w, err)
	case res.Action == ActionDelete && !res.OK:
		RespondJSONStatus(w, http.StatusNotFound, res)
	default:
		RespondJSON(w, res)
	}
}

type valueRequest struct {
	Value string `json:"value"`
}

func decodeValue(r *http.Request) (string, error) {
	var req valueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", err
	}
	return req.Value, nil
}

type BuildInfo struct {
	Version    string    `json:"version"`
	BuildTime  time.Time `json:"build_time"`
	CommitHash string    `json:"commit_hash"`
}

func NewRouter(config *Config, buildInfo BuildInfo, sim *Simulator) http.Handler {
	r := chi.NewRouter()
	r.Use(LoggerMiddleware(&log.Logger))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		tmpl, err := GetIndexTemplate(config.NoEmbed())
		if err != nil {
			RespondInternalServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, sim.Snapshot()); err != nil {
			log.Err(err).Msg("Failed to render index")
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			RespondJSON(w, buildInfo)
		})

		r.Get("/ws", createWebsocketHandler(sim))

		r.Route("/list", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				RespondJSON(w, sim.Snapshot())
			})

			r.Post("/front", func(w http.ResponseWriter, r *http.Request) {
				value, err := decodeValue(r)
				if err != nil {
					RespondBadRequest(w, "malformed request body")
					return
				}
				res, err := sim.InsertFront(value)
				respondResult(w, res, err)
			})

			r.Post("/end", func(w http.ResponseWriter, r *http.Request) {
				value, err := decodeValue(r)
				if err != nil {
					RespondBadRequest(w, "malformed request body")
					return
				}
				res, err := sim.InsertEnd(value)
				respondResult(w, res, err)
			})

			r.Post("/reset", func(w http.ResponseWriter, r *http.Request) {
				RespondJSON(w, sim.Reset())
			})

			r.Get("/search/{value}", func(w http.ResponseWriter, r *http.Request) {
				res, err := sim.Search(chi.URLParam(r, "value"))
				respondResult(w, res, err)
			})

			r.Delete("/{value}", func(w http.ResponseWriter, r *http.Request) {
				res, err := sim.Delete(chi.URLParam(r, "value"))
				respondResult(w, res, err)
			})
		})
	})

	return r
}

// StartServer blocks until ctx is cancelled or the listener fails
func StartServer(ctx context.Context, config *Config, buildInfo BuildInfo, sim *Simulator) error {
	srv := &http.Server{
		Addr:    config.Address(),
		Handler: NewRouter(config, buildInfo, sim),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("listen", srv.Addr).Msg("launching server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
