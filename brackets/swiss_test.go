package brackets

import (
	"context"
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func competitor(id int, name string, score float64, rating int) *models.Competitor {
	return &models.Competitor{ID: id, TournamentID: 1, Name: name, Score: score, Rating: rating, Active: true}
}

type board struct {
	first  int
	second int // 0 = bye
}

func boards(pairings []*models.Pairing) []board {
	out := make([]board, 0, len(pairings))
	for _, p := range pairings {
		b := board{first: p.FirstID}
		if p.SecondID != nil {
			b.second = *p.SecondID
		}
		out = append(out, b)
	}
	return out
}

func TestGenerateRound_DistinctScoresPairAdjacent(t *testing.T) {
	ranked := []*models.Competitor{
		competitor(1, "A", 3, 1500),
		competitor(2, "B", 2.5, 1500),
		competitor(3, "C", 2, 1500),
		competitor(4, "D", 1.5, 1500),
		competitor(5, "E", 1, 1500),
		competitor(6, "F", 0, 1500),
	}

	pairings, err := GenerateRound(ranked, 4, NewHistory())
	require.NoError(t, err)
	assert.Equal(t, []board{{1, 2}, {3, 4}, {5, 6}}, boards(pairings))
}

func TestGenerateRound_AvoidsRematch(t *testing.T) {
	ranked := []*models.Competitor{
		competitor(1, "A", 2, 1800),
		competitor(2, "B", 2, 1700),
		competitor(3, "C", 1, 1600),
		competitor(4, "D", 1, 1500),
	}
	history := NewHistory()
	history.Record(1, 2)

	pairings, err := GenerateRound(ranked, 2, history)
	require.NoError(t, err)
	assert.Equal(t, []board{{1, 3}, {2, 4}}, boards(pairings))
}

func TestGenerateRound_IdenticalScoreWinsOverEarlierCandidate(t *testing.T) {
	ranked := []*models.Competitor{
		competitor(1, "A", 2, 1500),
		competitor(2, "B", 1.5, 1500),
		competitor(3, "C", 2, 1400),
	}

	pairings, err := GenerateRound(ranked, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []board{{1, 3}, {2, 0}}, boards(pairings))
}

func TestGenerateRound_ClosestScoreFirstEncounteredOnTie(t *testing.T) {
	ranked := []*models.Competitor{
		competitor(1, "A", 2, 1500),
		competitor(2, "B", 1, 1500),
		competitor(3, "C", 1, 1500),
		competitor(4, "D", 0, 1500),
	}

	pairings, err := GenerateRound(ranked, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []board{{1, 2}, {3, 4}}, boards(pairings))
}

func TestGenerateRound_ForcedRematch(t *testing.T) {
	ranked := []*models.Competitor{
		competitor(1, "A", 0, 1500),
		competitor(2, "B", 0, 1500),
		competitor(3, "C", 0, 1500),
		competitor(4, "D", 0, 1500),
	}
	history := NewHistory()
	history.Record(1, 2)
	history.Record(1, 3)
	history.Record(1, 4)

	pairings, err := GenerateRound(ranked, 4, history)
	require.NoError(t, err)
	assert.Equal(t, []board{{1, 2}, {3, 4}}, boards(pairings))
}

func TestGenerateRound_TwoCompetitorsWhoAlreadyMet(t *testing.T) {
	ranked := []*models.Competitor{competitor(1, "A", 1, 1500), competitor(2, "B", 0, 1500)}
	history := NewHistory()
	history.Record(2, 1)

	pairings, err := GenerateRound(ranked, 2, history)
	require.NoError(t, err)
	assert.Equal(t, []board{{1, 2}}, boards(pairings))
}

func TestGenerateRound_OddCountGivesLastCompetitorTheBye(t *testing.T) {
	ranked := []*models.Competitor{
		competitor(1, "A", 0, 2000),
		competitor(2, "B", 0, 1900),
		competitor(3, "C", 0, 1800),
	}

	pairings, err := GenerateRound(ranked, 1, NewHistory())
	require.NoError(t, err)
	require.Len(t, pairings, 2)

	bye := pairings[1]
	assert.True(t, bye.IsBye())
	assert.Equal(t, 3, bye.FirstID)
	assert.Nil(t, bye.SecondName)
	require.NotNil(t, bye.Result)
	assert.Equal(t, models.ResultFirstWins, *bye.Result)
	assert.Nil(t, pairings[0].Result)
}

func TestGenerateRound_ExactlyTwoCompetitors(t *testing.T) {
	for _, round := range []int{1, 5, 12} {
		ranked := []*models.Competitor{competitor(1, "A", 0, 1500), competitor(2, "B", 0, 1400)}

		pairings, err := GenerateRound(ranked, round, nil)
		require.NoError(t, err)
		require.Len(t, pairings, 1)
		assert.False(t, pairings[0].IsBye())
		assert.Equal(t, round, pairings[0].RoundNumber)
	}
}

func TestGenerateRound_InsufficientCompetitors(t *testing.T) {
	for _, ranked := range [][]*models.Competitor{nil, {competitor(1, "A", 0, 1500)}} {
		pairings, err := GenerateRound(ranked, 1, nil)
		require.ErrorIs(t, err, ErrInsufficientCompetitors)
		assert.Nil(t, pairings)
	}
}

func TestGenerateRound_CoversEveryCompetitorOnce(t *testing.T) {
	for n := 2; n <= 13; n++ {
		ranked := make([]*models.Competitor, 0, n)
		history := NewHistory()
		for id := 1; id <= n; id++ {
			ranked = append(ranked, competitor(id, "P", float64((n-id)/2)*0.5, 1500))
			// every odd competitor has already met its neighbour
			if id%2 == 0 {
				history.Record(id-1, id)
			}
		}

		pairings, err := GenerateRound(ranked, 2, history)
		require.NoError(t, err, "n=%d", n)

		seen := make(map[int]int)
		byes := 0
		for _, p := range pairings {
			seen[p.FirstID]++
			if p.IsBye() {
				byes++
				continue
			}
			seen[*p.SecondID]++
		}
		assert.Len(t, seen, n, "n=%d", n)
		for id, count := range seen {
			assert.Equal(t, 1, count, "n=%d competitor %d", n, id)
		}
		assert.Equal(t, n%2, byes, "n=%d", n)
	}
}

func TestGenerateRound_Deterministic(t *testing.T) {
	ranked := []*models.Competitor{
		competitor(1, "A", 2, 1500),
		competitor(2, "B", 1.5, 1500),
		competitor(3, "C", 1.5, 1500),
		competitor(4, "D", 1, 1500),
		competitor(5, "E", 0.5, 1500),
	}
	history := NewHistory()
	history.Record(1, 2)
	history.Record(3, 4)

	first, err := GenerateRound(ranked, 3, history)
	require.NoError(t, err)
	second, err := GenerateRound(ranked, 3, history)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.NotEqual(t, first[i].ID, second[i].ID)
		a, b := *first[i], *second[i]
		a.ID, b.ID = "", ""
		assert.Equal(t, a, b)
	}
}

func TestGenerateRound_SnapshotsNames(t *testing.T) {
	a := competitor(1, "Alice", 0, 1500)
	b := competitor(2, "Bob", 0, 1500)

	pairings, err := GenerateRound([]*models.Competitor{a, b}, 1, nil)
	require.NoError(t, err)

	a.Name = "Alicia"
	assert.Equal(t, "Alice", pairings[0].FirstName)
	require.NotNil(t, pairings[0].SecondName)
	assert.Equal(t, "Bob", *pairings[0].SecondName)
	assert.Equal(t, 1, pairings[0].Board)
}

func TestSwissGenerator(t *testing.T) {
	gen := NewSwissGenerator()
	assert.Equal(t, "Swiss", gen.GetName())

	pairings, err := gen.GenerateRound(context.Background(), GenerateRoundParams{
		RoundNumber: 1,
		Competitors: []*models.Competitor{competitor(1, "A", 0, 1500), competitor(2, "B", 0, 1500)},
	})
	require.NoError(t, err)
	assert.Len(t, pairings, 1)
}
