package brackets

import (
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(list []*models.Competitor) []int {
	out := make([]int, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func TestRankForPairing(t *testing.T) {
	absent := competitor(5, "E", 3, 2500)
	absent.Active = false
	input := []*models.Competitor{
		competitor(1, "A", 1, 1500),
		competitor(2, "B", 2, 1400),
		competitor(3, "C", 1, 1600),
		competitor(4, "D", 1, 1500),
		absent,
	}

	ranked := RankForPairing(input)

	assert.Equal(t, []int{2, 3, 1, 4}, ids(ranked))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(input), "input must not be reordered")
}

func TestRankStandingsIncludesInactive(t *testing.T) {
	absent := competitor(2, "B", 3, 1500)
	absent.Active = false

	ranked := RankStandings([]*models.Competitor{competitor(1, "A", 1, 1500), absent})

	assert.Equal(t, []int{2, 1}, ids(ranked))
}

func result(r models.PairingResult) *models.PairingResult { return &r }

func intPtr(v int) *int { return &v }

func TestRecomputeScore(t *testing.T) {
	pairings := []models.Pairing{
		{FirstID: 1, SecondID: intPtr(2), Result: result(models.ResultFirstWins)},
		{FirstID: 3, SecondID: intPtr(1), Result: result(models.ResultDraw)},
		{FirstID: 1, SecondID: intPtr(4), Result: result(models.ResultSecondWins)},
		{FirstID: 1, SecondID: intPtr(5)}, // not played yet
		{FirstID: 1, Result: result(models.ResultFirstWins)}, // bye
	}

	assert.Equal(t, 2.5, RecomputeScore(1, pairings))
	assert.Equal(t, 0.0, RecomputeScore(2, pairings))
	assert.Equal(t, 0.5, RecomputeScore(3, pairings))
	assert.Equal(t, 1.0, RecomputeScore(4, pairings))
	assert.Equal(t, 2.5, RecomputeScore(1, pairings), "recompute must be idempotent")
}

func TestRecomputeScores_DrawAddsHalfToBothSides(t *testing.T) {
	competitors := []*models.Competitor{competitor(1, "A", 0, 1500), competitor(2, "B", 0, 1500), competitor(3, "C", 0, 1500)}
	pairings := []models.Pairing{
		{FirstID: 1, SecondID: intPtr(2), Result: result(models.ResultFirstWins)},
		{FirstID: 3, Result: result(models.ResultFirstWins)},
		{FirstID: 2, SecondID: intPtr(3)},
	}

	before := RecomputeScores(competitors, pairings)
	require.Equal(t, map[int]float64{1: 1, 2: 0, 3: 1}, before)

	pairings[2].Result = result(models.ResultDraw)
	after := RecomputeScores(competitors, pairings)

	assert.Equal(t, before[1], after[1])
	assert.Equal(t, before[2]+0.5, after[2])
	assert.Equal(t, before[3]+0.5, after[3])
}
