package services

import (
	"context"

	"github.com/Dosada05/swiss-tournament/storage"
)

// Notifier tells other viewers of a tournament that they should refetch.
type Notifier interface {
	TournamentChanged(ctx context.Context, tournamentID int) error
}

// RoundArchiver stores a standings snapshot after each generated round.
type RoundArchiver interface {
	ArchiveRound(ctx context.Context, snapshot storage.RoundSnapshot) (*storage.UploadResult, error)
	RemoveRound(ctx context.Context, tournamentID, roundNumber int) error
}

type noopNotifier struct{}

func (noopNotifier) TournamentChanged(context.Context, int) error { return nil }
