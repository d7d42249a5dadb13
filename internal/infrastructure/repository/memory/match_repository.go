package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-tournament/internal/domain/match"
)

type matchRecord struct {
	seq  int
	item match.Match
}

type MatchRepository struct {
	mu      sync.RWMutex
	seq     int
	matches map[string]matchRecord
}

func NewMatchRepository(items []match.Match) *MatchRepository {
	r := &MatchRepository{matches: make(map[string]matchRecord, len(items))}
	for _, item := range items {
		r.insertLocked(item)
	}

	return r
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.matches[matchID]
	return record.item, ok, nil
}

func (r *MatchRepository) ListByPhase(_ context.Context, phaseID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(func(m match.Match) bool { return m.PhaseID == phaseID }), nil
}

func (r *MatchRepository) ListFinishedByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(func(m match.Match) bool {
		return m.TournamentID == tournamentID && m.Status == match.StatusFinished
	}), nil
}

func (r *MatchRepository) ReplaceByPhase(_ context.Context, phaseID string, items []match.Match) error {
	for _, item := range items {
		if item.PhaseID != phaseID {
			return fmt.Errorf("match %s belongs to phase %s, not %s", item.ID, item.PhaseID, phaseID)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleteByPhaseLocked(phaseID)
	for _, item := range items {
		r.insertLocked(item)
	}

	return nil
}

func (r *MatchRepository) DeleteByPhase(_ context.Context, phaseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleteByPhaseLocked(phaseID)
	return nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.matches[item.ID]
	if !ok {
		return fmt.Errorf("match %s not found", item.ID)
	}
	record.item = item
	r.matches[item.ID] = record

	return nil
}

func (r *MatchRepository) insertLocked(item match.Match) {
	r.seq++
	r.matches[item.ID] = matchRecord{seq: r.seq, item: item}
}

func (r *MatchRepository) deleteByPhaseLocked(phaseID string) {
	for matchID, record := range r.matches {
		if record.item.PhaseID == phaseID {
			delete(r.matches, matchID)
		}
	}
}

// listLocked returns matches in schedule order: round, group, bracket position, leg, insertion.
func (r *MatchRepository) listLocked(keep func(match.Match) bool) []match.Match {
	records := make([]matchRecord, 0)
	for _, record := range r.matches {
		if keep(record.item) {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i].item, records[j].item
		switch {
		case a.Round != b.Round:
			return a.Round < b.Round
		case a.GroupNumber != b.GroupNumber:
			return a.GroupNumber < b.GroupNumber
		case a.BracketPosition != b.BracketPosition:
			return a.BracketPosition < b.BracketPosition
		case a.Leg != b.Leg:
			return a.Leg < b.Leg
		default:
			return records[i].seq < records[j].seq
		}
	})

	out := make([]match.Match, 0, len(records))
	for _, record := range records {
		out = append(out, record.item)
	}
	return out
}
