// Package api exposes the concert collection over HTTP.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"concertflow/pkg/clientid"
	"concertflow/pkg/concert"
	"concertflow/pkg/logger"
	"concertflow/pkg/otel"
	"concertflow/pkg/web"
)

// Handlers serves the concert resource.
type Handlers struct {
	repo    concert.Repository
	log     *logger.Logger
	clients *clientid.Issuer
	tracer  trace.Tracer
}

// New creates Handlers. tracer may be nil, in which case spans come from the
// global provider.
func New(repo concert.Repository, log *logger.Logger, clients *clientid.Issuer, tracer trace.Tracer) *Handlers {
	return &Handlers{repo: repo, log: log, clients: clients, tracer: tracer}
}

// Router builds the service router.
func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.traceMiddleware, h.logMiddleware)
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/concerts").Subrouter()
	api.Use(h.clients.Middleware)
	api.HandleFunc("", h.createConcert).Methods(http.MethodPost)
	api.HandleFunc("", h.listConcerts).Methods(http.MethodGet)
	api.HandleFunc("", h.deleteConcerts).Methods(http.MethodDelete)
	api.HandleFunc("/{id:[0-9]+}", h.getConcert).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

// getConcert retrieves a concert by ID.
// @Summary Get concert
// @Produce json,xml
// @Param id path int true "Concert ID"
// @Success 200 {object} concert.Concert
// @Failure 404 {object} web.Problem
// @Router /concerts/{id} [get]
func (h *Handlers) getConcert(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getConcert")
	defer span.End()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		web.WriteProblem(w, http.StatusNotFound, "unknown concert id")
		return
	}
	span.SetAttributes(attribute.Int64("concert.id", id))

	c, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, concert.ErrNotFound) {
			web.WriteProblem(w, http.StatusNotFound, fmt.Sprintf("concert %d not found", id))
			return
		}
		h.internalError(w, r, "get concert", err)
		return
	}
	h.respond(w, r, http.StatusOK, c)
}

// listConcerts returns a page of concerts in ascending ID order.
// @Summary List concerts
// @Produce json,xml
// @Param start query int false "Lowest concert ID to include"
// @Param size query int false "Maximum number of concerts"
// @Success 200 {array} concert.Concert
// @Failure 400 {object} web.Problem
// @Router /concerts [get]
func (h *Handlers) listConcerts(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listConcerts")
	defer span.End()

	q := r.URL.Query()
	start, err := queryInt(q.Get("start"), 64)
	if err != nil {
		web.WriteProblem(w, http.StatusBadRequest, "start must be an integer")
		return
	}
	size, err := queryInt(q.Get("size"), strconv.IntSize)
	if err != nil {
		web.WriteProblem(w, http.StatusBadRequest, "size must be an integer")
		return
	}
	span.SetAttributes(attribute.Int64("page.start", start), attribute.Int64("page.size", size))

	list, err := h.repo.Range(ctx, start, int(size))
	if err != nil {
		h.internalError(w, r, "list concerts", err)
		return
	}
	h.respond(w, r, http.StatusOK, list)
}

// createConcert stores a new concert under a server-assigned ID.
// @Summary Create concert
// @Accept json,xml
// @Param concert body concert.Concert true "Concert; any id is ignored"
// @Success 201
// @Header 201 {string} Location "/concerts/{id}"
// @Failure 400 {object} web.Problem
// @Router /concerts [post]
func (h *Handlers) createConcert(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createConcert")
	defer span.End()

	var in *concert.Concert
	if err := web.Decode(r, &in); err != nil {
		h.log.Warn(ctx, "invalid concert body", "error", err)
		web.WriteProblem(w, http.StatusBadRequest, err.Error())
		return
	}
	if in == nil {
		web.WriteProblem(w, http.StatusBadRequest, web.ErrEmptyBody.Error())
		return
	}

	c, err := h.repo.Create(ctx, *in)
	if err != nil {
		h.internalError(w, r, "create concert", err)
		return
	}
	span.SetAttributes(attribute.Int64("concert.id", c.ID))
	h.log.Debug(ctx, "concert created", "id", c.ID, "client_id", clientid.FromContext(ctx))

	w.Header().Set("Location", fmt.Sprintf("/concerts/%d", c.ID))
	w.WriteHeader(http.StatusCreated)
}

// deleteConcerts removes every concert.
// @Summary Delete all concerts
// @Success 204
// @Router /concerts [delete]
func (h *Handlers) deleteConcerts(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteConcerts")
	defer span.End()

	if err := h.repo.DeleteAll(ctx); err != nil {
		h.internalError(w, r, "delete concerts", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// health reports liveness.
// @Summary Health check
// @Produce json
// @Success 200
// @Router /health [get]
func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	web.Encode(w, web.MediaJSON, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := web.Encode(w, web.Negotiate(r.Header.Get("Accept")), status, v); err != nil {
		h.log.Error(r.Context(), "encode response", "error", err)
	}
}

func (h *Handlers) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.log.Error(r.Context(), op, "error", err)
	web.WriteProblem(w, http.StatusInternalServerError, "unexpected store failure")
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(s string, bits int) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, bits)
}
