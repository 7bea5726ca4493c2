package heatmap

import "trustdesk/internal/domain"

type Level string

const (
	LevelCritical Level = "critical"
	LevelHigh     Level = "high"
	LevelModerate Level = "moderate"
	LevelLow      Level = "low"
)

type Cell struct {
	domain.HeatmapCell
	Intensity float64 `json:"intensity"`
	Level     Level   `json:"level"`
}

// Build scores every lane relative to the busiest one.
func Build(cells []domain.HeatmapCell) []Cell {
	out := make([]Cell, 0, len(cells))
	maxFlagged := 0
	for _, c := range cells {
		if c.FlaggedCount > maxFlagged {
			maxFlagged = c.FlaggedCount
		}
	}
	for _, c := range cells {
		var intensity float64
		if maxFlagged > 0 {
			intensity = float64(c.FlaggedCount) / float64(maxFlagged)
		}
		out = append(out, Cell{HeatmapCell: c, Intensity: intensity, Level: levelFor(intensity)})
	}
	return out
}

func levelFor(intensity float64) Level {
	switch {
	case intensity >= 0.7:
		return LevelCritical
	case intensity >= 0.5:
		return LevelHigh
	case intensity >= 0.3:
		return LevelModerate
	default:
		return LevelLow
	}
}
