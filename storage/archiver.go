package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
)

// RoundSnapshot is the archived state of a tournament right after a round was paired.
type RoundSnapshot struct {
	TournamentID int                  `json:"tournament_id"`
	RoundNumber  int                  `json:"round_number"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Standings    []models.StandingRow `json:"standings"`
	Pairings     []models.Pairing     `json:"pairings"`
}

type StandingsArchiver struct {
	uploader FileUploader
}

func NewStandingsArchiver(uploader FileUploader) *StandingsArchiver {
	return &StandingsArchiver{uploader: uploader}
}

func SnapshotKey(tournamentID, roundNumber int) string {
	return fmt.Sprintf("tournaments/%d/rounds/%d/standings.json", tournamentID, roundNumber)
}

func (a *StandingsArchiver) ArchiveRound(ctx context.Context, snapshot RoundSnapshot) (*UploadResult, error) {
	body, err := json.MarshalIndent(snapshot, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal round snapshot: %w", err)
	}
	return a.uploader.Upload(ctx, SnapshotKey(snapshot.TournamentID, snapshot.RoundNumber), "application/json", bytes.NewReader(body))
}

// RemoveRound deletes the snapshot of a round that no longer exists.
func (a *StandingsArchiver) RemoveRound(ctx context.Context, tournamentID, roundNumber int) error {
	return a.uploader.Delete(ctx, SnapshotKey(tournamentID, roundNumber))
}
