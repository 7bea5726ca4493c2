package httpadapter

import (
	"context"

	"trustdesk/internal/api"
	"trustdesk/internal/feed"
	"trustdesk/internal/services/heatmap"
)

func (s *Server) GetDashboard(ctx context.Context, _ api.GetDashboardRequestObject) (api.GetDashboardResponseObject, error) {
	return api.GetDashboard200JSONResponse{
		Stats:        toStats(feed.ComputeStats(s.feed.Transactions())),
		ActiveAlerts: len(feed.ActiveAlerts(s.feed.Alerts())),
		Connection:   connectionState(s.feed.Connected()),
	}, nil
}

func (s *Server) ListTransactions(ctx context.Context, request api.ListTransactionsRequestObject) (api.ListTransactionsResponseObject, error) {
	view := feed.DefaultView()
	if request.Params.Search != nil {
		view = view.WithSearch(*request.Params.Search)
	}
	if request.Params.Filter != nil {
		f, err := feed.ParseFilter(*request.Params.Filter)
		if err != nil {
			return api.ListTransactions400JSONResponse{Error: err.Error()}, nil
		}
		view = view.WithFilter(f)
	}

	all := s.feed.Transactions()
	out := feed.FilterTransactions(all, view)
	return api.ListTransactions200JSONResponse{
		Filter:       string(view.Filter),
		FilterLabel:  view.Filter.Label(),
		Showing:      len(out),
		Total:        len(all),
		Transactions: toTransactions(out),
	}, nil
}

func (s *Server) GetTransaction(ctx context.Context, request api.GetTransactionRequestObject) (api.GetTransactionResponseObject, error) {
	t, ok := s.feed.Transaction(request.Id)
	if !ok {
		return api.GetTransaction404JSONResponse{Error: "transaction not found"}, nil
	}
	return api.GetTransaction200JSONResponse(toTransaction(t)), nil
}

func (s *Server) ListAlerts(ctx context.Context, _ api.ListAlertsRequestObject) (api.ListAlertsResponseObject, error) {
	alerts := s.feed.Alerts()
	return api.ListAlerts200JSONResponse{
		Alerts:   toAlerts(alerts),
		NewCount: len(feed.ActiveAlerts(alerts)),
	}, nil
}

func (s *Server) ListActiveAlerts(ctx context.Context, _ api.ListActiveAlertsRequestObject) (api.ListActiveAlertsResponseObject, error) {
	return api.ListActiveAlerts200JSONResponse(toAlerts(feed.ActiveAlerts(s.feed.Alerts()))), nil
}

func (s *Server) DismissAlert(ctx context.Context, request api.DismissAlertRequestObject) (api.DismissAlertResponseObject, error) {
	if !s.feed.Dismiss(request.Id) {
		return api.DismissAlert404JSONResponse{Error: "alert not found"}, nil
	}
	return api.DismissAlert204Response{}, nil
}

func (s *Server) ListEmployees(ctx context.Context, request api.ListEmployeesRequestObject) (api.ListEmployeesResponseObject, error) {
	term := ""
	if request.Params.Search != nil {
		term = *request.Params.Search
	}
	sum := s.scorecards.Summary()
	return api.ListEmployees200JSONResponse{
		Summary: api.EmployeeSummary{
			Employees:     sum.Employees,
			AvgFraudRate:  sum.AvgFraudRate,
			HighRiskCount: sum.HighRiskCount,
		},
		Employees: toScorecards(s.scorecards.List(term)),
	}, nil
}

func (s *Server) GetHeatmap(ctx context.Context, _ api.GetHeatmapRequestObject) (api.GetHeatmapResponseObject, error) {
	return api.GetHeatmap200JSONResponse(toHeatmap(heatmap.Build(s.heatmap))), nil
}
