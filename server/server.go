// Package server exposes the four-stage article workflow over HTTP: JSON
// request bodies in, server-sent-event streams out, plus a synchronous save
// endpoint and the embedded front-end.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dialagents/seogen/config"
	"github.com/dialagents/seogen/exporter"
	"github.com/dialagents/seogen/generator"
)

//go:embed web/dist
var embeddedStatic embed.FS

type Server struct {
	llm      generator.LLMClient
	exporter *exporter.Exporter
	cfg      config.Config
	log      *logrus.Logger
	staticFS http.Handler
}

func New(llm generator.LLMClient, exp *exporter.Exporter, cfg config.Config, logger *logrus.Logger) (*Server, error) {
	if llm == nil {
		return nil, errors.New("llm client required")
	}
	if exp == nil {
		return nil, errors.New("exporter required")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	sub, err := fs.Sub(embeddedStatic, "web/dist")
	if err != nil {
		return nil, err
	}

	return &Server{
		llm:      llm,
		exporter: exp,
		cfg:      cfg,
		log:      logger,
		staticFS: http.FileServer(http.FS(sub)),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/keywords", s.handleKeywords)
	mux.HandleFunc("/api/brief", s.handleBrief)
	mux.HandleFunc("/api/article", s.handleArticle)
	mux.HandleFunc("/api/refine", s.handleRefine)
	mux.HandleFunc("/api/save", s.handleSave)
	mux.Handle("/", s.staticHandler())
	return s.logMiddleware(mux)
}

func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// fall back to index.html for SPA-ish behavior
		upath := r.URL.Path
		if upath == "/" || !strings.HasPrefix(upath, "/api/") {
			p := upath
			if p == "/" {
				p = "/index.html"
			}
			r.URL.Path = p
			s.staticFS.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// --- Handlers ---

// generateReq covers the keywords, brief, and article stages; each stage
// reads the subset of fields it needs. Prior-stage outputs are echoed back
// by the browser.
type generateReq struct {
	generator.Context
	BriefOutput string `json:"brief_output,omitempty"`
}

type refineReq struct {
	CurrentArticle string `json:"current_article"`
	Refinement     string `json:"refinement"`
	PrimaryKeyword string `json:"primary_keyword"`
}

type saveReq struct {
	RawArticle string            `json:"raw_article"`
	Context    generator.Context `json:"context"`
}

type saveResp struct {
	Success  bool                 `json:"success"`
	MDPath   string               `json:"md_path"`
	JSONPath string               `json:"json_path"`
	HTMLPath string               `json:"html_path"`
	Sections generator.SectionSet `json:"sections"`
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !decodePost(w, r, &req) {
		return
	}
	p := generator.BuildKeywordsPrompt(req.Context)
	p.MaxTokens = s.cfg.LLM.MaxTokens.Keywords
	s.streamStage(w, r, "keywords", p)
}

func (s *Server) handleBrief(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !decodePost(w, r, &req) {
		return
	}
	p := generator.BuildBriefPrompt(req.Context, req.KeywordsOutput)
	p.MaxTokens = s.cfg.LLM.MaxTokens.Brief
	s.streamStage(w, r, "brief", p)
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !decodePost(w, r, &req) {
		return
	}
	p := generator.BuildArticlePrompt(req.Context, req.KeywordsOutput, req.BriefOutput)
	p.MaxTokens = s.cfg.LLM.MaxTokens.Article
	s.streamStage(w, r, "article", p)
}

func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	var req refineReq
	if !decodePost(w, r, &req) {
		return
	}
	p := generator.BuildRefinePrompt(req.CurrentArticle, req.Refinement, req.PrimaryKeyword)
	p.MaxTokens = s.cfg.LLM.MaxTokens.Refine
	s.streamStage(w, r, "refine", p)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveReq
	if !decodePost(w, r, &req) {
		return
	}
	sections := generator.ExtractSections(req.RawArticle)
	res, err := s.exporter.Save(req.Context, sections)
	if err != nil {
		s.log.WithError(err).Error("save failed")
		writeJSONStatus(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	writeJSON(w, saveResp{
		Success:  true,
		MDPath:   res.MDPath,
		JSONPath: res.JSONPath,
		HTMLPath: res.HTMLPath,
		Sections: sections,
	})
}

// --- Streaming ---

// streamStage relays model output as server-sent events: one
// data: {"text": ...} frame per fragment, then data: [DONE]. An upstream
// failure before any output becomes a 502; a mid-stream failure becomes one
// data: {"error": ...} frame and the stream closes without [DONE].
func (s *Server) streamStage(w http.ResponseWriter, r *http.Request, stage string, p generator.Prompt) {
	frags, err := s.llm.Stream(r.Context(), p)
	if err != nil {
		s.log.WithError(err).WithField("stage", stage).Error("upstream call failed")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	headerSent := false
	count := 0
	for frag := range frags {
		if frag.Err != nil {
			s.log.WithError(frag.Err).WithFields(logrus.Fields{
				"stage":     stage,
				"fragments": count,
			}).Error("upstream stream failed")
			if !headerSent {
				http.Error(w, frag.Err.Error(), http.StatusBadGateway)
				return
			}
			writeEvent(w, map[string]string{"error": frag.Err.Error()})
			flusher.Flush()
			return
		}
		if !headerSent {
			writeSSEHeaders(w)
			headerSent = true
		}
		writeEvent(w, map[string]string{"text": frag.Text})
		flusher.Flush()
		count++
	}

	if !headerSent {
		writeSSEHeaders(w)
	}
	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
	s.log.WithFields(logrus.Fields{"stage": stage, "fragments": count}).Info("stream complete")
}

func writeSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
}

func writeEvent(w http.ResponseWriter, v any) {
	b, _ := json.Marshal(v)
	fmt.Fprintf(w, "data: %s\n\n", b)
}

// --- Helpers ---

// decodePost enforces POST and decodes the JSON body; it writes the error
// response itself and reports whether the handler should continue.
func decodePost(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).Round(time.Millisecond).String(),
		}).Info("request")
	})
}

// statusRecorder captures the response status for the request log while
// still exposing Flush to the streaming handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
