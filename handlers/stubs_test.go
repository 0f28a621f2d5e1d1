package handlers

import (
	"context"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/services"
)

type stubAuthService struct {
	register func(services.RegisterInput) (*models.User, error)
	login    func(models.Credentials) (*models.User, error)
}

func (s stubAuthService) Register(_ context.Context, input services.RegisterInput) (*models.User, error) {
	return s.register(input)
}

func (s stubAuthService) Login(_ context.Context, input models.Credentials) (*models.User, error) {
	return s.login(input)
}

type stubTokenIssuer struct{ token string }

func (s stubTokenIssuer) Issue(*models.User) (string, error) { return s.token, nil }

type stubTournamentService struct {
	services.TournamentService
	exists    func(id int) error
	list      func(repositories.ListTournamentsFilter) ([]models.Tournament, error)
	standings func(id int) ([]models.StandingRow, error)
}

func (s stubTournamentService) EnsureExists(_ context.Context, id int) error {
	return s.exists(id)
}

func (s stubTournamentService) ListTournaments(_ context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	return s.list(filter)
}

func (s stubTournamentService) GetStandings(_ context.Context, id int) ([]models.StandingRow, error) {
	return s.standings(id)
}

type stubRoundService struct {
	services.RoundService
	generate func(userID, tournamentID int) (*models.Round, error)
	record   func(userID, tournamentID int, pairingID string, result *models.PairingResult) (*models.Pairing, error)
}

func (s stubRoundService) GenerateNextRound(_ context.Context, userID, tournamentID int) (*models.Round, error) {
	return s.generate(userID, tournamentID)
}

func (s stubRoundService) RecordResult(_ context.Context, userID, tournamentID int, pairingID string, result *models.PairingResult) (*models.Pairing, error) {
	return s.record(userID, tournamentID, pairingID, result)
}

type stubCompetitorService struct {
	services.CompetitorService
	update func(userID, tournamentID, competitorID int, input services.UpdateCompetitorInput) (*models.Competitor, error)
}

func (s stubCompetitorService) UpdateCompetitor(_ context.Context, userID, tournamentID, competitorID int, input services.UpdateCompetitorInput) (*models.Competitor, error) {
	return s.update(userID, tournamentID, competitorID, input)
}
