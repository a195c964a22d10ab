package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
	"github.com/goliatone/go-admin-widgets/components/widgets/commands"
	"github.com/goliatone/go-admin-widgets/components/widgets/queries"
	gocommand "github.com/goliatone/go-command"
)

// Handlers exposes HTTP endpoints backed by shared commands and queries.
// Successful commands answer with the page snapshot when Snapshot is set.
type Handlers struct {
	Executor  Executor
	Snapshot  gocommand.Querier[queries.PageInput, widgets.PageSnapshot]
	Lookup    gocommand.Querier[queries.SearchInput, []widgets.SearchRecord]
	Broadcast *widgets.BroadcastHook
}

// NewPageHandlers wires handlers for a single page.
func NewPageHandlers(page *widgets.AdminPage, broadcast *widgets.BroadcastHook, telemetry commands.Telemetry) *Handlers {
	return &Handlers{
		Executor:  NewPageExecutor(page, telemetry),
		Snapshot:  queries.NewPageQuery(page),
		Lookup:    queries.NewSearchQuery(page.Search),
		Broadcast: broadcast,
	}
}

// Mount registers the endpoints on mux under prefix.
func (h *Handlers) Mount(mux *http.ServeMux, prefix string) {
	prefix = strings.TrimRight(prefix, "/")
	mux.HandleFunc("GET "+prefix+"/state", h.HandleState)
	mux.HandleFunc("GET "+prefix+"/search", h.HandleLookup)
	mux.HandleFunc("POST "+prefix+"/page", h.HandleGoToPage)
	mux.HandleFunc("POST "+prefix+"/page/size", h.HandleSetPageSize)
	mux.HandleFunc("POST "+prefix+"/search/input", h.HandleSearchInput)
	mux.HandleFunc("POST "+prefix+"/search/key", h.HandleSearchKey)
	mux.HandleFunc("POST "+prefix+"/search/select", h.HandleSelectResult)
	mux.HandleFunc("POST "+prefix+"/search/filter", h.HandleSetFilter)
	mux.HandleFunc("POST "+prefix+"/language", h.HandleSetLanguage)
	mux.HandleFunc("POST "+prefix+"/color", h.HandleChangeColor)
	mux.HandleFunc("POST "+prefix+"/toasts", h.HandleShowToast)
	mux.HandleFunc("POST "+prefix+"/table/sort", h.HandleSortTable)
	mux.HandleFunc("POST "+prefix+"/tabs", h.HandleSwitchTab)
	if h.Broadcast != nil {
		mux.HandleFunc("GET "+prefix+"/toasts/events", h.Broadcast.ServeSSE)
		mux.HandleFunc("GET "+prefix+"/toasts/ws", h.Broadcast.ServeWebSocket)
	}
}

func (h *Handlers) HandleGoToPage(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.GoToPage)
}

func (h *Handlers) HandleSetPageSize(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.SetPageSize)
}

func (h *Handlers) HandleSearchInput(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.SearchInput)
}

func (h *Handlers) HandleSearchKey(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.SearchKey)
}

func (h *Handlers) HandleSelectResult(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.SelectResult)
}

func (h *Handlers) HandleSetFilter(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.SetFilter)
}

func (h *Handlers) HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.SetLanguage)
}

func (h *Handlers) HandleChangeColor(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.ChangeColor)
}

func (h *Handlers) HandleShowToast(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.ShowToast)
}

func (h *Handlers) HandleSortTable(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.SortTable)
}

func (h *Handlers) HandleSwitchTab(w http.ResponseWriter, r *http.Request) {
	serveCommand(h, w, r, h.Executor.SwitchTab)
}

// HandleState writes the page snapshot.
func (h *Handlers) HandleState(w http.ResponseWriter, r *http.Request) {
	if h.Snapshot == nil {
		http.Error(w, ErrCommandUnavailable.Error(), http.StatusNotImplemented)
		return
	}
	h.writeSnapshot(w, r, http.StatusOK)
}

// HandleLookup runs a one-shot search from the q and filter query parameters.
func (h *Handlers) HandleLookup(w http.ResponseWriter, r *http.Request) {
	if h.Lookup == nil {
		http.Error(w, ErrCommandUnavailable.Error(), http.StatusNotImplemented)
		return
	}
	input := queries.SearchInput{
		Query:  r.URL.Query().Get("q"),
		Filter: r.URL.Query().Get("filter"),
	}
	records, err := h.Lookup.Query(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []widgets.SearchRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": input.Query, "results": records})
}

func serveCommand[T any](h *Handlers, w http.ResponseWriter, r *http.Request, exec func(context.Context, T) error) {
	if h.Executor == nil {
		http.Error(w, ErrCommandUnavailable.Error(), http.StatusNotImplemented)
		return
	}
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := exec(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), StatusFor(err))
		return
	}
	if h.Snapshot == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeSnapshot(w, r, http.StatusOK)
}

func (h *Handlers) writeSnapshot(w http.ResponseWriter, r *http.Request, status int) {
	snapshot, err := h.Snapshot.Query(r.Context(), queries.PageInput{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, snapshot)
}

// StatusFor maps command errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrCommandUnavailable):
		return http.StatusNotImplemented
	case errors.Is(err, commands.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrInvalidPageTarget),
		errors.Is(err, commands.ErrUnknownKey),
		errors.Is(err, widgets.ErrUnsupportedLanguage),
		errors.Is(err, commands.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
