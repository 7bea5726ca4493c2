package httpadapter

import (
	"context"
	"errors"
	"net/http"

	"trustdesk/internal/api"
	"trustdesk/internal/services/review"
)

var reviewNotFound = api.NotFoundJSONResponse{Error: "review not found"}

func (s *Server) OpenReview(ctx context.Context, request api.OpenReviewRequestObject) (api.OpenReviewResponseObject, error) {
	if request.Body == nil || request.Body.TransactionId == "" {
		return api.OpenReview400JSONResponse{Error: "transaction_id is required"}, nil
	}
	sess, err := s.reviews.Open(request.Body.TransactionId)
	if errors.Is(err, review.ErrNotFound) {
		return api.OpenReview404JSONResponse{Error: "transaction not found"}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.OpenReview201JSONResponse(toReview(sess.View())), nil
}

func (s *Server) GetReview(ctx context.Context, request api.GetReviewRequestObject) (api.GetReviewResponseObject, error) {
	sess, err := s.reviews.Get(request.Id)
	if err != nil {
		return api.GetReview404JSONResponse{NotFoundJSONResponse: reviewNotFound}, nil
	}
	return api.GetReview200JSONResponse{ReviewStateJSONResponse: reviewState(sess)}, nil
}

func (s *Server) CloseReview(ctx context.Context, request api.CloseReviewRequestObject) (api.CloseReviewResponseObject, error) {
	if !s.reviews.Close(request.Id) {
		return api.CloseReview404JSONResponse{NotFoundJSONResponse: reviewNotFound}, nil
	}
	return api.CloseReview204Response{}, nil
}

func (s *Server) PlayReview(ctx context.Context, request api.PlayReviewRequestObject) (api.PlayReviewResponseObject, error) {
	sess, err := s.reviews.Get(request.Id)
	if err != nil {
		return api.PlayReview404JSONResponse{NotFoundJSONResponse: reviewNotFound}, nil
	}
	sess.Playback().Play()
	return api.PlayReview200JSONResponse{ReviewStateJSONResponse: reviewState(sess)}, nil
}

func (s *Server) PauseReview(ctx context.Context, request api.PauseReviewRequestObject) (api.PauseReviewResponseObject, error) {
	sess, err := s.reviews.Get(request.Id)
	if err != nil {
		return api.PauseReview404JSONResponse{NotFoundJSONResponse: reviewNotFound}, nil
	}
	sess.Playback().Pause()
	return api.PauseReview200JSONResponse{ReviewStateJSONResponse: reviewState(sess)}, nil
}

func (s *Server) SeekReview(ctx context.Context, request api.SeekReviewRequestObject) (api.SeekReviewResponseObject, error) {
	sess, err := s.reviews.Get(request.Id)
	if err != nil {
		return api.SeekReview404JSONResponse{NotFoundJSONResponse: reviewNotFound}, nil
	}
	sess.Playback().Seek(request.Params.T)
	return api.SeekReview200JSONResponse{ReviewStateJSONResponse: reviewState(sess)}, nil
}

func (s *Server) SkipReview(ctx context.Context, request api.SkipReviewRequestObject) (api.SkipReviewResponseObject, error) {
	sess, err := s.reviews.Get(request.Id)
	if err != nil {
		return api.SkipReview404JSONResponse{NotFoundJSONResponse: reviewNotFound}, nil
	}
	sess.Playback().Skip(request.Params.S)
	return api.SkipReview200JSONResponse{ReviewStateJSONResponse: reviewState(sess)}, nil
}

func (s *Server) GetEvidence(ctx context.Context, request api.GetEvidenceRequestObject) (api.GetEvidenceResponseObject, error) {
	sess, err := s.reviews.Get(request.Id)
	if err != nil {
		return api.GetEvidence404JSONResponse{NotFoundJSONResponse: reviewNotFound}, nil
	}
	return api.GetEvidence200JSONResponse(toEvidence(sess.Evidence(s.reviews.Now()))), nil
}

// SubmitDecision validates the form and forwards it upstream. A rejected form
// never leaves the process.
func (s *Server) SubmitDecision(ctx context.Context, request api.SubmitDecisionRequestObject) (api.SubmitDecisionResponseObject, error) {
	if request.Body == nil {
		return nil, &runtimeError{code: http.StatusBadRequest, msg: "missing body"}
	}
	d, err := s.reviews.Submit(ctx, request.Id, fromDecisionForm(*request.Body))
	var verr *review.ValidationError
	switch {
	case err == nil:
		return api.SubmitDecision200JSONResponse(toDecision(d)), nil
	case errors.As(err, &verr):
		fields := verr.Fields
		return api.SubmitDecision422JSONResponse{Error: review.ErrValidation.Error(), Fields: &fields}, nil
	case errors.Is(err, review.ErrNotFound):
		return api.SubmitDecision404JSONResponse{NotFoundJSONResponse: reviewNotFound}, nil
	case errors.Is(err, review.ErrSubmitting):
		return api.SubmitDecision409JSONResponse{Error: err.Error()}, nil
	default:
		return api.SubmitDecision502JSONResponse{Error: err.Error()}, nil
	}
}

func reviewState(sess *review.Session) api.ReviewStateJSONResponse {
	return api.ReviewStateJSONResponse(toReview(sess.View()))
}
