package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"inspiration_drawer/config"
	"inspiration_drawer/drawer"
	"inspiration_drawer/generator"
	"inspiration_drawer/render"
)

// drawTimeout bounds one draw cycle, including a model call.
const drawTimeout = 60 * time.Second

type Server struct {
	session *generator.Session
	logger  *log.Logger
}

func New(session *generator.Session, logger *log.Logger) (*Server, error) {
	if session == nil {
		return nil, errors.New("draw session required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{session: session, logger: logger}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/draws", s.handleDraws)
	mux.HandleFunc("/api/draws/", s.handleDrawByID)
	mux.HandleFunc("/api/boxes", s.handleBoxes)
	mux.HandleFunc("/", s.handleIndex)
	return logMiddleware(s.logger, mux)
}

// --- Handlers ---

type drawReq struct {
	Boxes []drawer.Box `json:"boxes"`
}

type historyResp struct {
	Entries []drawer.LogEntry `json:"entries"`
}

func (s *Server) handleDraws(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		entries, err := s.session.History()
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, historyResp{Entries: entries})
	case http.MethodPost:
		s.handleDrawCreate(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleDrawCreate(w http.ResponseWriter, r *http.Request) {
	var req drawReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	boxes := s.session.Boxes()
	if req.Boxes != nil {
		if err := config.ValidateBoxes(req.Boxes); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		boxes = req.Boxes
	}

	ctx, cancel := context.WithTimeout(r.Context(), drawTimeout)
	defer cancel()
	entry, err := s.session.DrawBoxes(ctx, boxes)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleDrawByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/draws/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	entry, ok, err := s.session.Lookup(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	if !ok {
		http.Error(w, "draw not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleBoxes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Boxes())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	entries, err := s.session.History()
	if err != nil {
		s.fail(w, err)
		return
	}
	page, err := render.Page(entries)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// fail maps errors to statuses: the title model failing is a gateway
// problem, everything else (such as a broken log file) is ours.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, generator.ErrSuggest) {
		status = http.StatusBadGateway
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
	}
	s.logger.Printf("[http] error status=%d: %v", status, err)
	http.Error(w, err.Error(), status)
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Printf("[http] %s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}
