// Package chi implements the HTTP transport over the go-chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/meeplelab/gamescout/internal/domain"
	"github.com/meeplelab/gamescout/internal/session"
	compareuc "github.com/meeplelab/gamescout/internal/usecase/compare"
	discoveruc "github.com/meeplelab/gamescout/internal/usecase/discover"
	exploreuc "github.com/meeplelab/gamescout/internal/usecase/explore"
	healthuc "github.com/meeplelab/gamescout/internal/usecase/health"
	insightsuc "github.com/meeplelab/gamescout/internal/usecase/insights"
	searchuc "github.com/meeplelab/gamescout/internal/usecase/search"
)

// Error codes returned in JSON error bodies.
const (
	codeBadRequest    = "bad_request"
	codeNotFound      = "not_found"
	codeNoSelection   = "no_selection"
	codeInternalError = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the use case services into HTTP handlers.
type Server struct {
	explore       *exploreuc.Service
	search        *searchuc.Service
	discover      *discoveruc.Service
	compare       *compareuc.Service
	insights      *insightsuc.Service
	health        *healthuc.Service
	state         *session.State
	dispatcher    *session.Dispatcher
	logger        *zap.Logger
	maxLimit      int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	explore *exploreuc.Service,
	search *searchuc.Service,
	discover *discoveruc.Service,
	compare *compareuc.Service,
	insights *insightsuc.Service,
	health *healthuc.Service,
	state *session.State,
	dispatcher *session.Dispatcher,
	maxLimit int,
	logger *zap.Logger,
) *Server {
	s := &Server{
		explore:    explore,
		search:     search,
		discover:   discover,
		compare:    compare,
		insights:   insights,
		health:     health,
		state:      state,
		dispatcher: dispatcher,
		maxLimit:   maxLimit,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrGameNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrNoCandidates, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrNoSelection, http.StatusConflict, codeNoSelection),
		sentinelHandler(domain.ErrUnknownFacet, http.StatusBadRequest, codeBadRequest),
	}
	return s
}

// Routes mounts every endpoint on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/games/{name}", s.GetGame)
		r.Get("/games/{name}/similar", s.SearchSimilar)
		r.Get("/suggest", s.Suggest)
		r.Get("/facets/{facet}", s.FacetValues)

		r.Post("/discover", s.Discover)
		r.Post("/discover/count", s.DiscoverCount)

		r.Get("/compare", s.Compare)

		r.Get("/session", s.GetSession)
		r.Put("/session/comparison", s.PutComparison)

		r.Route("/charts", func(r chi.Router) {
			r.Get("/ratings", s.ChartRatings)
			r.Get("/mechanics", s.ChartMechanics)
			r.Get("/categories", s.ChartCategories)
			r.Get("/publications", s.ChartPublications)
			r.Get("/wordcloud", s.ChartWordCloud)
			r.Get("/graph", s.ChartGraph)
			r.Get("/network", s.ChartNetwork)
		})
	})
}

// GetGame handles GET /api/games/{name}.
func (s *Server) GetGame(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid game name")
		return
	}

	rec, err := s.explore.Game(name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gameToDTO(rec))
}

// SearchSimilar handles GET /api/games/{name}/similar. An unknown base is
// not an error: the response carries an empty list and cleared=true so the
// client drops any stale selection.
func (s *Server) SearchSimilar(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid game name")
		return
	}

	filters, err := filterParams(r, s.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	_, lookupErr := s.explore.Game(name)
	known := lookupErr == nil

	res := s.search.Search(r.Context(), name, &filters)

	s.dispatcher.Publish(session.Outcome{BaseGame: name, Result: res, Known: known})

	writeJSON(w, http.StatusOK, similarToDTO(name, res, !known))
}

// Suggest handles GET /api/suggest.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusOK, suggestResponse{Items: []string{}})
		return
	}
	writeJSON(w, http.StatusOK, suggestResponse{Items: emptyNotNull(s.explore.Suggest(q))})
}

// FacetValues handles GET /api/facets/{facet}.
func (s *Server) FacetValues(w http.ResponseWriter, r *http.Request) {
	facet := chi.URLParam(r, "facet")

	values, err := s.explore.Facet(exploreuc.Facet(facet), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, facetResponse{Facet: facet, Values: emptyNotNull(values)})
}

// Discover handles POST /api/discover.
func (s *Server) Discover(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	pick, err := s.discover.Find(req.criteria())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pickToDTO(pick))
}

// DiscoverCount handles POST /api/discover/count.
func (s *Server) DiscoverCount(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, discoverCountResponse{Count: s.discover.Count(req.criteria())})
}

// Compare handles GET /api/compare.
func (s *Server) Compare(w http.ResponseWriter, r *http.Request) {
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	if a == "" || b == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "both a and b game names are required")
		return
	}

	report, err := s.compare.Compare(a, b)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, compareToDTO(report))
}

// GetSession handles GET /api/session.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	var sel *session.Selection
	if cur, err := s.state.Current(); err == nil {
		sel = &cur
	}
	var pair *session.ComparisonPair
	if p, err := s.state.Comparison(); err == nil {
		pair = &p
	}
	writeJSON(w, http.StatusOK, sessionToDTO(sel, pair))
}

// PutComparison handles PUT /api/session/comparison.
func (s *Server) PutComparison(w http.ResponseWriter, r *http.Request) {
	var req comparisonPair
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.A == "" || req.B == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "both a and b game names are required")
		return
	}

	// Validate both names before persisting the pair.
	if _, err := s.compare.Compare(req.A, req.B); err != nil {
		s.handleDomainError(w, err)
		return
	}

	s.state.SetComparison(session.ComparisonPair{A: req.A, B: req.B})
	w.WriteHeader(http.StatusNoContent)
}

// ChartRatings handles GET /api/charts/ratings.
func (s *Server) ChartRatings(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.selection(w)
	if !ok {
		return
	}
	ratings := s.insights.Ratings(sel.Items)
	if ratings == nil {
		ratings = []float64{}
	}
	writeJSON(w, http.StatusOK, ratingsResponse{Ratings: ratings})
}

// ChartMechanics handles GET /api/charts/mechanics.
func (s *Server) ChartMechanics(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.selection(w)
	if !ok {
		return
	}
	counts := s.insights.Mechanics(sel.BaseGame, sel.Items)
	items := make([]tagCount, len(counts))
	for i, c := range counts {
		items[i] = tagCount{Tag: c.Tag, Count: c.Count, OnBase: c.OnBase}
	}
	writeJSON(w, http.StatusOK, tagCountsResponse{Items: items})
}

// ChartCategories handles GET /api/charts/categories.
func (s *Server) ChartCategories(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.selection(w)
	if !ok {
		return
	}
	shares := s.insights.Categories(sel.Items)
	items := make([]categoryShare, len(shares))
	for i, c := range shares {
		items[i] = categoryShare{Tag: c.Tag, Count: c.Count, Share: c.Share}
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Items: items})
}

// ChartPublications handles GET /api/charts/publications.
func (s *Server) ChartPublications(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.selection(w)
	if !ok {
		return
	}
	years := s.insights.Publications(sel.Items)
	items := make([]yearCount, len(years))
	for i, y := range years {
		items[i] = yearCount{Year: y.Year, Count: y.Count}
	}
	writeJSON(w, http.StatusOK, publicationsResponse{Items: items})
}

// ChartWordCloud handles GET /api/charts/wordcloud.
func (s *Server) ChartWordCloud(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.selection(w)
	if !ok {
		return
	}
	words := s.insights.WordCloud(sel.BaseGame, sel.Items)
	items := make([]wordCount, len(words))
	for i, wc := range words {
		items[i] = wordCount{Word: wc.Word, Count: wc.Count}
	}
	writeJSON(w, http.StatusOK, wordCloudResponse{Items: items})
}

// ChartGraph handles GET /api/charts/graph.
func (s *Server) ChartGraph(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.selection(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, graphToDTO(s.insights.SimilarityGraph(sel.BaseGame, sel.Items)))
}

// ChartNetwork handles GET /api/charts/network. Catalog-wide, no selection
// required.
func (s *Server) ChartNetwork(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, networkToDTO(s.insights.MechanicsNetwork()))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{Status: string(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// selection fetches the current session selection, writing the no-selection
// error when absent.
func (s *Server) selection(w http.ResponseWriter) (session.Selection, bool) {
	sel, err := s.state.Current()
	if err != nil {
		s.handleDomainError(w, err)
		return session.Selection{}, false
	}
	return sel, true
}

func pathName(r *http.Request, key string) (string, error) {
	return url.PathUnescape(chi.URLParam(r, key))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrGameNotFound,
		domain.ErrNotReady,
		domain.ErrNoSelection,
		domain.ErrNoCandidates,
		domain.ErrUnknownFacet,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
