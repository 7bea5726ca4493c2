package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"trustdesk/internal/api"
	"trustdesk/internal/domain"
	"trustdesk/internal/ports"
	"trustdesk/internal/services/review"
	"trustdesk/internal/services/scorecards"
	"trustdesk/internal/workers/streampoller"
)

// Server implements the generated StrictServerInterface.
type Server struct {
	baseCtx    context.Context
	feed       ports.LiveFeed
	connector  ports.FeedConnector
	reviews    *review.Service
	scorecards *scorecards.Service
	heatmap    []domain.HeatmapCell
	streams    *streampoller.Poller
	journal    ports.DecisionJournal
	log        *logrus.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

// Deps are the server's collaborators. Connector, Streams and Journal are
// optional.
type Deps struct {
	Feed       ports.LiveFeed
	Connector  ports.FeedConnector
	Reviews    *review.Service
	Scorecards *scorecards.Service
	Heatmap    []domain.HeatmapCell
	Streams    *streampoller.Poller
	Journal    ports.DecisionJournal
	Log        *logrus.Logger
}

// New builds the server. baseCtx outlives requests and scopes anything a
// request starts in the background, such as a push-channel connection.
func New(baseCtx context.Context, d Deps) *Server {
	return &Server{
		baseCtx:    baseCtx,
		feed:       d.Feed,
		connector:  d.Connector,
		reviews:    d.Reviews,
		scorecards: d.Scorecards,
		heatmap:    d.Heatmap,
		streams:    d.Streams,
		journal:    d.Journal,
		log:        d.Log,
	}
}

// Routes returns a chi.Router with every endpoint of api/openapi.yaml mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// Generated handler wiring
	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.requestError,
	})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

type runtimeError struct {
	code int
	msg  string
}

func (e *runtimeError) Error() string { return e.msg }

// requestError answers parameter binding and body decoding failures.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

// responseError answers errors returned by a handler instead of a typed
// response.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	var re *runtimeError
	if errors.As(err, &re) {
		writeError(w, re.code, re.msg)
		return
	}
	s.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}
