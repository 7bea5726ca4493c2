package httpadapter

import (
	"trustdesk/internal/api"
	"trustdesk/internal/domain"
	"trustdesk/internal/feed"
	"trustdesk/internal/services/heatmap"
	"trustdesk/internal/services/review"
	"trustdesk/internal/services/scorecards"
	"trustdesk/internal/workers/streampoller"
)

// Conversions from domain values to the generated API models.

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toTransaction(t domain.Transaction) api.Transaction {
	return api.Transaction{
		Id:                    t.ID,
		ShopId:                t.ShopID,
		CamId:                 t.CamID,
		PosId:                 t.PosID,
		CashierName:           t.CashierName,
		Timestamp:             t.Timestamp,
		TransactionTotal:      t.TransactionTotal,
		FraudProbabilityScore: t.FraudScore,
		Risk:                  api.RiskLevel(t.Risk()),
		Status:                optional(string(t.Status)),
		FraudCategory:         optional(t.FraudCategory),
		Notes:                 optional(t.Notes),
	}
}

func toTransactions(txns []domain.Transaction) []api.Transaction {
	out := make([]api.Transaction, len(txns))
	for i, t := range txns {
		out[i] = toTransaction(t)
	}
	return out
}

func toAlerts(alerts []domain.Alert) []api.Alert {
	out := make([]api.Alert, len(alerts))
	for i, a := range alerts {
		out[i] = api.Alert{
			Id:                    a.ID,
			TransactionId:         a.TransactionID,
			ShopId:                a.ShopID,
			CashierName:           a.CashierName,
			FraudProbabilityScore: a.FraudScore,
			Timestamp:             a.Timestamp,
			Status:                string(a.Status),
		}
	}
	return out
}

func toStats(st feed.Stats) api.Stats {
	return api.Stats{Total: st.Total, HighRisk: st.High, MediumRisk: st.Medium, Pending: st.Pending}
}

func connectionState(connected bool) api.ConnectionState {
	if connected {
		return api.ConnectionState{Connected: true, Label: "System Active"}
	}
	return api.ConnectionState{Connected: false, Label: "Disconnected"}
}

func toScorecards(rows []scorecards.Row) []api.EmployeeScorecard {
	out := make([]api.EmployeeScorecard, len(rows))
	for i, r := range rows {
		out[i] = api.EmployeeScorecard{
			Id:                  r.ID,
			Name:                r.Name,
			ShopId:              r.ShopID,
			TotalTransactions:   r.TotalTransactions,
			FlaggedTransactions: r.FlaggedTransactions,
			FraudRate:           r.FraudRate,
			AverageFraudScore:   r.AverageFraudScore,
			LastIncident:        r.LastIncident,
			Tier:                string(r.Tier),
		}
	}
	return out
}

func toHeatmap(cells []heatmap.Cell) []api.HeatmapCell {
	out := make([]api.HeatmapCell, len(cells))
	for i, c := range cells {
		out[i] = api.HeatmapCell{
			CameraId:     c.CameraID,
			Lane:         c.Lane,
			X:            c.X,
			Y:            c.Y,
			FlaggedCount: c.FlaggedCount,
			Intensity:    c.Intensity,
			Level:        string(c.Level),
		}
	}
	return out
}

func toReceiptItem(it domain.ReceiptItem) api.ReceiptItem {
	return api.ReceiptItem{
		Id:              it.ID,
		Name:            it.Name,
		Quantity:        it.Quantity,
		Price:           it.Price,
		TimestampOffset: it.TimestampOffset,
		Scanned:         it.Scanned,
	}
}

func toReceiptItems(items []domain.ReceiptItem) []api.ReceiptItem {
	out := make([]api.ReceiptItem, len(items))
	for i, it := range items {
		out[i] = toReceiptItem(it)
	}
	return out
}

func toMarkers(markers []domain.VideoMarker) []api.VideoMarker {
	out := make([]api.VideoMarker, len(markers))
	for i, m := range markers {
		out[i] = api.VideoMarker{Time: m.Time, Label: m.Label, Type: string(m.Type)}
	}
	return out
}

func toReview(v review.SessionView) api.Review {
	out := api.Review{
		Id:           v.ID,
		Transaction:  toTransaction(v.Transaction),
		Risk:         api.RiskLevel(v.Risk),
		CurrentTime:  v.CurrentTime,
		Duration:     v.Duration,
		Playing:      v.Playing,
		ProgressPct:  v.ProgressPct,
		Clock:        v.Clock,
		FraudOverlay: toMarkers(v.FraudOverlay),
		Markers:      make([]api.TimelineMarker, len(v.Markers)),
		ReceiptItems: toReceiptItems(v.ReceiptItems),
	}
	if v.CurrentItem != nil {
		it := toReceiptItem(*v.CurrentItem)
		out.CurrentItem = &it
	}
	for i, m := range v.Markers {
		out.Markers[i] = api.TimelineMarker{Time: m.Time, Label: m.Label, Type: string(m.Type), PositionPct: m.PositionPct}
	}
	return out
}

func toEvidence(ev review.Evidence) api.Evidence {
	return api.Evidence{
		Transaction:    toTransaction(ev.Transaction),
		ReceiptItems:   toReceiptItems(ev.ReceiptItems),
		UnscannedItems: toReceiptItems(ev.UnscannedItems),
		FraudMarkers:   toMarkers(ev.FraudMarkers),
		GeneratedAt:    ev.GeneratedAt,
	}
}

func toDecision(d domain.Decision) api.Decision {
	return api.Decision{
		Id:            d.ID,
		TransactionId: d.TransactionID,
		Status:        string(d.Status),
		FraudCategory: optional(d.FraudCategory),
		Notes:         optional(d.Notes),
		SubmittedAt:   d.SubmittedAt,
	}
}

func toDecisions(ds []domain.Decision) []api.Decision {
	out := make([]api.Decision, len(ds))
	for i, d := range ds {
		out[i] = toDecision(d)
	}
	return out
}

func toStreamSnapshot(s streampoller.Snapshot) api.StreamSnapshot {
	out := api.StreamSnapshot{
		Streams:     make(map[string][]api.StreamEvent, len(s.Streams)),
		LastUpdated: s.LastUpdated,
		Loading:     s.Loading,
	}
	for name, events := range s.Streams {
		conv := make([]api.StreamEvent, len(events))
		for i, e := range events {
			conv[i] = api.StreamEvent{StreamId: e.StreamID, Data: e.Data}
		}
		out.Streams[name] = conv
	}
	return out
}

func fromDecisionForm(f api.DecisionForm) review.DecisionForm {
	form := review.DecisionForm{Status: f.Status}
	if f.FraudCategory != nil {
		form.FraudCategory = *f.FraudCategory
	}
	if f.Notes != nil {
		form.Notes = *f.Notes
	}
	return form
}
