// Package api serves a small HTTP debug surface: session status, the
// recent message journal and the identifiers of replicated objects.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/castlegate/frontier/pkg/journal"
	"github.com/castlegate/frontier/pkg/log"
	"github.com/castlegate/frontier/pkg/session"
)

const defaultJournalLimit = 50

// DebugServer exposes read-only debugging endpoints.
type DebugServer struct {
	server  *http.Server
	session *session.Session
	journal *journal.Journal
	objects func() []string
	object  func(id string) (interface{}, bool)
}

type NewDebugServerOptions struct {
	Addr    string
	Session *session.Session
	Journal *journal.Journal
	// Objects returns a snapshot of the replicated object identifiers.
	// It must capture the snapshot on the interactive context so the
	// read never races the delivery goroutine.
	Objects func() []string
	// Object returns a snapshot of one object, same contract.
	Object func(id string) (interface{}, bool)
}

// NewDebugServer creates the debug HTTP server.
func NewDebugServer(opts NewDebugServerOptions) *DebugServer {
	s := &DebugServer{
		session: opts.Session,
		journal: opts.Journal,
		objects: opts.Objects,
		object:  opts.Object,
	}

	r := mux.NewRouter()
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/journal", s.handleJournal).Methods(http.MethodGet)
	r.HandleFunc("/objects", s.handleObjects).Methods(http.MethodGet)
	r.HandleFunc("/objects/{id}", s.handleObject).Methods(http.MethodGet)

	s.server = &http.Server{
		Addr:    opts.Addr,
		Handler: r,
	}
	return s
}

// Start starts the DebugServer.
func (s *DebugServer) Start() {
	log.Info("Debug server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Debug server closed")
			return
		}
		log.Error("Debug server error: %v", err)
	}
}

// Stop stops the DebugServer.
func (s *DebugServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *DebugServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := struct {
		SessionID       string `json:"sessionId"`
		MyPlayerID      string `json:"myPlayerId"`
		CurrentPlayerID string `json:"currentPlayerId"`
		MyTurn          bool   `json:"myTurn"`
	}{
		SessionID:       s.session.ID().String(),
		MyPlayerID:      s.session.MyPlayerID(),
		CurrentPlayerID: s.session.CurrentPlayerID(),
		MyTurn:          s.session.CurrentPlayerIsMyPlayer(),
	}
	writeJSON(w, status)
}

func (s *DebugServer) handleJournal(w http.ResponseWriter, r *http.Request) {
	limit := defaultJournalLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	entries, err := s.journal.Recent(r.Context(), limit)
	if err != nil {
		log.Error("Failed to read journal: %v", err)
		http.Error(w, "failed to read journal", http.StatusInternalServerError)
		return
	}
	writeJSON(w, entries)
}

func (s *DebugServer) handleObjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.objects())
}

func (s *DebugServer) handleObject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	obj, ok := s.object(id)
	if !ok {
		http.Error(w, "object not found", http.StatusNotFound)
		return
	}
	writeJSON(w, obj)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response: %v", err)
	}
}
