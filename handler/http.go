package handler

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"portfolio-assistant/internal/logging"
)

// NewRouter exposes the same routes as Handle over plain HTTP for local runs.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	for path, route := range h.routes {
		r.Handle(path, h.httpRoute(path, route)).Methods(http.MethodPost)
	}
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeResult(w, result{http.StatusNotFound, errorResponse{Error: msgNotFound}}, correlationIDFromRequest(req))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeResult(w, result{http.StatusMethodNotAllowed, errorResponse{Error: msgMethodNotAllowed}}, correlationIDFromRequest(req))
	})
	return r
}

func (h *Handler) httpRoute(path string, route routeFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		corrID := correlationIDFromRequest(req)
		log := logging.WithRequest(h.log, corrID, path)

		body, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes+1))
		if err != nil || len(body) > maxBodyBytes {
			writeResult(w, result{http.StatusBadRequest, errorResponse{Error: msgInvalidBody}}, corrID)
			return
		}
		writeResult(w, route(req.Context(), log, body), corrID)
	})
}

func correlationIDFromRequest(req *http.Request) string {
	return correlationID(map[string]string{correlationHeader: req.Header.Get(correlationHeader)})
}

func writeResult(w http.ResponseWriter, r result, corrID string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(correlationHeader, corrID)
	w.WriteHeader(r.status)
	_, _ = w.Write(encode(r.body))
}
