package phase

import (
	"math"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
)

// Progress summarises match completion inside a phase.
type Progress struct {
	Total                int
	Scheduled            int
	Live                 int
	Finished             int
	CompletionPercentage float64
}

func NewProgress(matches []match.Match) Progress {
	var out Progress
	for _, m := range matches {
		out.Total++
		switch m.Status {
		case match.StatusScheduled:
			out.Scheduled++
		case match.StatusLive:
			out.Live++
		case match.StatusFinished:
			out.Finished++
		}
	}
	if out.Total > 0 {
		pct := float64(out.Finished) / float64(out.Total) * 100
		out.CompletionPercentage = math.Round(pct*100) / 100
	}
	return out
}

// ShouldAutoComplete is advisory: the phase is active and every match is finished.
func (p Phase) ShouldAutoComplete(progress Progress) bool {
	return p.Status == StatusActive && progress.Total > 0 && progress.Finished == progress.Total
}
