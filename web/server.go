// Package web serves the single-page question form.
//
// One turn is processed per request, synchronously. The page shows the
// generated SQL, the raw rows, and the natural-language answer; a JSON
// API exposes the same Turn record for programmatic use.
package web

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/askdb/askdb/agent"
	"github.com/askdb/askdb/applog"
	"github.com/askdb/askdb/db"
	"github.com/rs/cors"
)

// ExampleQuestions pre-fills the question dropdown.
var ExampleQuestions = []string{
	"Show me all employees in the IT department",
	"Who are the highest paid employees?",
	"How many employees work in each department?",
	"Find all employees hired after 2022",
	"What projects are currently running?",
	"Show me employees with salary greater than 70000",
	"List all departments and their locations",
}

// Server handles the web interface for one agent.
type Server struct {
	agent *agent.Agent
	store *db.Store
	tmpl  *template.Template
}

// NewServer builds the handler set around an agent and its store.
func NewServer(a *agent.Agent, store *db.Store) (*Server, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, err
	}
	return &Server{agent: a, store: store, tmpl: tmpl}, nil
}

// Handler returns the CORS-wrapped route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ask", s.handleAsk)
	mux.HandleFunc("/api/ask", s.handleAPIAsk)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
	})
	return c.Handler(mux)
}

// ListenAndServe blocks serving the web interface on addr.
func (s *Server) ListenAndServe(addr string) error {
	applog.Info("web interface listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// pageData is everything the template needs for one render.
type pageData struct {
	Provider string
	Schema   string
	Stats    *db.Stats
	Examples []string
	Question string
	Turn     *agent.Turn
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, question string, turn *agent.Turn) {
	ctx := r.Context()

	data := pageData{
		Provider: s.agent.Provider(),
		Examples: ExampleQuestions,
		Question: question,
		Turn:     turn,
	}

	if schema, err := s.agent.SchemaInfo(ctx); err == nil {
		data.Schema = schema
	}
	if stats, err := s.store.QuickStats(ctx); err == nil {
		data.Stats = stats
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		applog.Error("template render: %v", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, r, "", nil)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	question := strings.TrimSpace(r.FormValue("question"))
	if question == "" {
		s.render(w, r, "", nil)
		return
	}

	turn := s.agent.Ask(r.Context(), question)
	s.render(w, r, question, turn)
}

// askRequest is the JSON API request body.
type askRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleAPIAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	turn := s.agent.Ask(r.Context(), question)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(turn); err != nil {
		applog.Error("api response encode: %v", err)
	}
}
