package brackets

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/google/uuid"
)

var (
	ErrInsufficientCompetitors = errors.New("at least 2 active competitors are required to generate a round")
	ErrInternalConsistency     = errors.New("competitor left unpaired after the bye was already issued")
)

type SwissGenerator struct{}

func NewSwissGenerator() BracketGenerator {
	return &SwissGenerator{}
}

func (g *SwissGenerator) GetName() string {
	return "Swiss"
}

func (g *SwissGenerator) GenerateRound(ctx context.Context, params GenerateRoundParams) ([]*models.Pairing, error) {
	return GenerateRound(params.Competitors, params.RoundNumber, params.History)
}

// GenerateRound pairs an already ranked list of active competitors in a single
// greedy pass. For every unpaired competitor it scans forward and takes the first
// opponent with the same score it has not met yet; failing that, the unmet
// opponent with the smallest score difference (first one wins on ties). If every
// forward candidate is a rematch, the first unpaired one is taken anyway. The last
// competitor without any forward candidate gets the bye; only one bye per round.
func GenerateRound(ranked []*models.Competitor, roundNumber int, history *History) ([]*models.Pairing, error) {
	n := len(ranked)
	if n < 2 {
		return nil, fmt.Errorf("%w (found %d)", ErrInsufficientCompetitors, n)
	}

	used := make([]bool, n)
	byeIssued := false
	pairings := make([]*models.Pairing, 0, (n+1)/2)

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		current := ranked[i]

		opponent := findOpponent(ranked, used, i, history)
		if opponent < 0 {
			opponent = firstUnused(used, i)
		}

		if opponent >= 0 {
			used[i], used[opponent] = true, true
			pairings = append(pairings, newPairing(current, ranked[opponent], roundNumber, len(pairings)+1))
			continue
		}

		if byeIssued {
			return nil, fmt.Errorf("%w: competitor %d in round %d", ErrInternalConsistency, current.ID, roundNumber)
		}
		used[i] = true
		byeIssued = true
		pairings = append(pairings, newPairing(current, nil, roundNumber, len(pairings)+1))
	}

	return pairings, nil
}

// findOpponent returns the index of the best forward candidate that has not
// played ranked[i] yet, or -1.
func findOpponent(ranked []*models.Competitor, used []bool, i int, history *History) int {
	current := ranked[i]
	best := -1
	bestDiff := math.Inf(1)

	for j := i + 1; j < len(ranked); j++ {
		if used[j] {
			continue
		}
		candidate := ranked[j]
		if history.Played(current.ID, candidate.ID) {
			continue
		}
		diff := math.Abs(current.Score - candidate.Score)
		if diff == 0 {
			return j
		}
		if diff < bestDiff {
			best = j
			bestDiff = diff
		}
	}
	return best
}

func firstUnused(used []bool, i int) int {
	for j := i + 1; j < len(used); j++ {
		if !used[j] {
			return j
		}
	}
	return -1
}

func newPairing(first, second *models.Competitor, roundNumber, board int) *models.Pairing {
	p := &models.Pairing{
		ID:           uuid.NewString(),
		TournamentID: first.TournamentID,
		RoundNumber:  roundNumber,
		Board:        board,
		FirstID:      first.ID,
		FirstName:    first.Name,
	}
	if second == nil {
		bye := models.ResultFirstWins
		p.Result = &bye
		return p
	}
	secondID := second.ID
	secondName := second.Name
	p.SecondID = &secondID
	p.SecondName = &secondName
	return p
}
