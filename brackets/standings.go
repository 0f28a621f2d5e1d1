package brackets

import (
	"sort"

	"github.com/Dosada05/swiss-tournament/models"
)

// RankForPairing returns the active competitors ordered by score, then rating,
// both descending. Ties beyond that keep the input order, so callers that need
// reproducible pairings must pass competitors in a stable order.
func RankForPairing(competitors []*models.Competitor) []*models.Competitor {
	active := make([]*models.Competitor, 0, len(competitors))
	for _, c := range competitors {
		if c != nil && c.Active {
			active = append(active, c)
		}
	}
	sortStandings(active)
	return active
}

// RankStandings is RankForPairing without the active filter (public table).
func RankStandings(competitors []*models.Competitor) []*models.Competitor {
	all := make([]*models.Competitor, 0, len(competitors))
	for _, c := range competitors {
		if c != nil {
			all = append(all, c)
		}
	}
	sortStandings(all)
	return all
}

func sortStandings(list []*models.Competitor) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Score != list[j].Score {
			return list[i].Score > list[j].Score
		}
		return list[i].Rating > list[j].Rating
	})
}

// PointsFor returns what a single pairing is worth to the competitor.
func PointsFor(competitorID int, p models.Pairing) float64 {
	if p.Result == nil {
		return 0
	}
	isFirst := p.FirstID == competitorID
	isSecond := p.SecondID != nil && *p.SecondID == competitorID
	switch *p.Result {
	case models.ResultFirstWins:
		if isFirst {
			return 1
		}
	case models.ResultSecondWins:
		if isSecond {
			return 1
		}
	case models.ResultDraw:
		if isFirst || isSecond {
			return 0.5
		}
	}
	return 0
}

// RecomputeScore sums the competitor's points over every pairing of the tournament.
func RecomputeScore(competitorID int, pairings []models.Pairing) float64 {
	var score float64
	for _, p := range pairings {
		score += PointsFor(competitorID, p)
	}
	return score
}

// RecomputeScores runs RecomputeScore for every competitor.
func RecomputeScores(competitors []*models.Competitor, pairings []models.Pairing) map[int]float64 {
	scores := make(map[int]float64, len(competitors))
	for _, c := range competitors {
		scores[c.ID] = 0
	}
	for _, p := range pairings {
		if _, ok := scores[p.FirstID]; ok {
			scores[p.FirstID] += PointsFor(p.FirstID, p)
		}
		if p.SecondID != nil {
			if _, ok := scores[*p.SecondID]; ok {
				scores[*p.SecondID] += PointsFor(*p.SecondID, p)
			}
		}
	}
	return scores
}
