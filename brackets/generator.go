package brackets

import (
	"context"

	"github.com/Dosada05/swiss-tournament/models"
)

type GenerateRoundParams struct {
	RoundNumber int
	// Competitors must already be filtered and ranked (see RankForPairing).
	Competitors []*models.Competitor
	History     *History
}

type BracketGenerator interface {
	GenerateRound(ctx context.Context, params GenerateRoundParams) ([]*models.Pairing, error)

	GetName() string
}
