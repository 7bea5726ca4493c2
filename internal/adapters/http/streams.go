package httpadapter

import (
	"context"

	"trustdesk/internal/api"
)

const defaultDecisionLimit = 50

func (s *Server) GetFeed(ctx context.Context, _ api.GetFeedRequestObject) (api.GetFeedResponseObject, error) {
	return api.GetFeed200JSONResponse(connectionState(s.feed.Connected())), nil
}

// ConnectFeed reopens the push channel when it is down. It does nothing while
// a connection is live.
func (s *Server) ConnectFeed(ctx context.Context, _ api.ConnectFeedRequestObject) (api.ConnectFeedResponseObject, error) {
	if s.connector == nil {
		return api.ConnectFeed501JSONResponse{Error: "push channel not configured"}, nil
	}
	started := s.connector.Start(s.baseCtx)
	state := connectionState(s.connector.Connected())
	return api.ConnectFeed202JSONResponse{Started: started, Connected: state.Connected, Label: state.Label}, nil
}

var streamsNotConfigured = api.NotConfiguredJSONResponse{Error: "stream inspection not configured"}

func (s *Server) GetStreams(ctx context.Context, _ api.GetStreamsRequestObject) (api.GetStreamsResponseObject, error) {
	if s.streams == nil {
		return api.GetStreams501JSONResponse{NotConfiguredJSONResponse: streamsNotConfigured}, nil
	}
	return api.GetStreams200JSONResponse{
		StreamStateJSONResponse: api.StreamStateJSONResponse(toStreamSnapshot(s.streams.Snapshot())),
	}, nil
}

func (s *Server) RefreshStreams(ctx context.Context, _ api.RefreshStreamsRequestObject) (api.RefreshStreamsResponseObject, error) {
	if s.streams == nil {
		return api.RefreshStreams501JSONResponse{NotConfiguredJSONResponse: streamsNotConfigured}, nil
	}
	s.streams.PollOnce(ctx)
	return api.RefreshStreams200JSONResponse{
		StreamStateJSONResponse: api.StreamStateJSONResponse(toStreamSnapshot(s.streams.Snapshot())),
	}, nil
}

func (s *Server) ListDecisions(ctx context.Context, request api.ListDecisionsRequestObject) (api.ListDecisionsResponseObject, error) {
	limit := defaultDecisionLimit
	if request.Params.Limit != nil {
		limit = *request.Params.Limit
	}
	if s.journal == nil {
		// without a journal only this process's submissions are known
		out := s.feed.Decisions()
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return api.ListDecisions200JSONResponse{Source: api.Memory, Decisions: toDecisions(out)}, nil
	}
	out, err := s.journal.Recent(ctx, limit)
	if err != nil {
		s.log.WithError(err).Error("read decision journal")
		return api.ListDecisions502JSONResponse{Error: err.Error()}, nil
	}
	return api.ListDecisions200JSONResponse{Source: api.Journal, Decisions: toDecisions(out)}, nil
}
