// Package server exposes the trajectory generator over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	camprofile "github.com/tphakala/go-cam-profile"
	"github.com/tphakala/go-cam-profile/internal/config"
	"github.com/tphakala/go-cam-profile/internal/metrics"
	"github.com/tphakala/go-cam-profile/internal/plot"
	"github.com/tphakala/go-cam-profile/internal/session"
)

// Endpoint labels used in logs and metrics.
const (
	endpointIndex  = "index"
	endpointGen    = "generate"
	endpointExport = "export_csv"
)

const (
	msgPostOnly    = "POST only"
	msgNoRows      = "No rows"
	msgNoTable     = "generate a profile first"
	contentJSON    = "application/json"
	contentCSV     = "text/csv"
	csvDisposition = `attachment; filename="` + camprofile.CSVFilename + `"`
)

// ErrTooLarge indicates a request beyond the configured generator limits.
var ErrTooLarge = errors.New("request exceeds generator limits")

// Server handles the HTTP endpoints. Create it with New.
type Server struct {
	cfg      *config.Config
	sessions *session.Store
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	verbose  bool
	mux      *http.ServeMux
}

// Options are optional collaborators of a Server.
type Options struct {
	// Registry receives the server collectors and backs the metrics
	// endpoint. Nil disables both.
	Registry *prometheus.Registry

	// Verbose logs every generated trajectory.
	Verbose bool
}

// New builds a server from a validated configuration.
func New(cfg *config.Config, opts Options) *Server {
	s := &Server{
		cfg:      cfg,
		sessions: session.NewStore(cfg.Session.TTL, cfg.Session.MaxSessions),
		verbose:  opts.Verbose,
		mux:      http.NewServeMux(),
	}

	if opts.Registry != nil {
		s.metrics = metrics.New(opts.Registry)
		s.gatherer = opts.Registry
	} else {
		s.metrics = metrics.New(nil)
	}

	s.mux.HandleFunc("/{$}", s.handleIndex)
	s.mux.HandleFunc("/generate/", s.handleGenerate)
	s.mux.HandleFunc("/export_csv/", s.handleExport)
	if s.gatherer != nil {
		s.mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type profileInfo struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

type indexResponse struct {
	Profiles []profileInfo `json:"profiles"`
	Columns  []string      `json:"columns"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	profiles := camprofile.Profiles()
	resp := indexResponse{
		Profiles: make([]profileInfo, 0, len(profiles)),
		Columns:  camprofile.Columns(),
	}
	for _, p := range profiles {
		resp.Profiles = append(resp.Profiles, profileInfo{Name: p.String(), Index: int(p)})
	}
	s.metrics.ObserveRequest(endpointIndex, metrics.OutcomeOK)
	writeJSON(w, resp)
}

type generateResponse struct {
	OK      bool                         `json:"ok"`
	Error   string                       `json:"error,omitempty"`
	Preview []camprofile.TrajectoryPoint `json:"preview,omitempty"`
	Img1    string                       `json:"img1,omitempty"`
	Img2    string                       `json:"img2,omitempty"`
	Img3    string                       `json:"img3,omitempty"`
}

// handleGenerate reports generation failures as {"ok": false} with status
// 200; only a wrong method is an HTTP error.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.metrics.ObserveRequest(endpointGen, metrics.OutcomeRejected)
		http.Error(w, msgPostOnly, http.StatusBadRequest)
		return
	}

	start := time.Now()
	table, err := s.generate(w, r)
	if err != nil {
		s.metrics.ObserveRequest(endpointGen, metrics.OutcomeRejected)
		if s.verbose {
			log.Printf("generate: %v", err)
		}
		writeJSON(w, generateResponse{Error: err.Error()})
		return
	}
	if table.Empty() {
		s.metrics.ObserveRequest(endpointGen, metrics.OutcomeRejected)
		writeJSON(w, generateResponse{Error: msgNoRows})
		return
	}
	elapsed := time.Since(start)

	resp := generateResponse{OK: true, Preview: table.Head(s.cfg.Generator.PreviewRows)}
	if !s.cfg.Plots.Disabled {
		imgs, err := plot.Render(table, plot.Size{Width: s.cfg.Plots.Width, Height: s.cfg.Plots.Height})
		if err != nil {
			s.metrics.ObserveRequest(endpointGen, metrics.OutcomeError)
			log.Printf("generate: rendering plots: %v", err)
			writeJSON(w, generateResponse{Error: err.Error()})
			return
		}
		resp.Img1, resp.Img2, resp.Img3 = imgs[0], imgs[1], imgs[2]
	}

	s.sessions.Put(s.sessionID(w, r), table)
	s.metrics.SetSessions(s.sessions.Len())
	s.metrics.ObserveGenerate(table.Len(), elapsed)
	s.metrics.ObserveRequest(endpointGen, metrics.OutcomeOK)

	if s.verbose {
		sum := table.Summary()
		log.Printf("generate: %d segments, %d points in %v (peak vel %.3g mm/s)",
			sum.Segments, sum.Points, elapsed, sum.PeakVelocity)
	}

	writeJSON(w, resp)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) (*camprofile.Table, error) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	req, err := camprofile.DecodeRequest(body)
	if err != nil {
		return nil, err
	}

	gen := s.cfg.Generator
	if len(req.Rows) > gen.MaxWaypoints {
		return nil, fmt.Errorf("%w: %d rows (max %d)", ErrTooLarge, len(req.Rows), gen.MaxWaypoints)
	}

	genCfg := req.Config()
	if req.PointsPerSegment == nil {
		genCfg.PointsPerSegment = gen.DefaultPointsPerSegment
	}
	if genCfg.PointsPerSegment > gen.MaxPointsPerSegment {
		return nil, fmt.Errorf("%w: %d points per segment (max %d)",
			ErrTooLarge, genCfg.PointsPerSegment, gen.MaxPointsPerSegment)
	}
	genCfg.EnableParallel = gen.EnableParallel

	waypoints, err := req.Waypoints()
	if err != nil {
		return nil, err
	}
	return camprofile.Generate(waypoints, genCfg)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	table, ok := s.lookup(r)
	if !ok {
		s.metrics.ObserveRequest(endpointExport, metrics.OutcomeRejected)
		http.Error(w, msgNoTable, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", contentCSV)
	w.Header().Set("Content-Disposition", csvDisposition)
	if err := table.WriteCSV(w); err != nil {
		s.metrics.ObserveRequest(endpointExport, metrics.OutcomeError)
		log.Printf("export_csv: %v", err)
		return
	}
	s.metrics.ObserveRequest(endpointExport, metrics.OutcomeOK)
}

// sessionID returns the caller's session id, issuing a cookie when the
// request carries none.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(s.cfg.Session.CookieName); err == nil && session.ValidID(c.Value) {
		return c.Value
	}

	id := session.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Session.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.cfg.Session.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *Server) lookup(r *http.Request) (*camprofile.Table, bool) {
	c, err := r.Cookie(s.cfg.Session.CookieName)
	if err != nil {
		return nil, false
	}
	return s.sessions.Get(c.Value)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", contentJSON)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}
