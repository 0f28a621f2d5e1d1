package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
)

var ErrPairingNotFound = errors.New("pairing not found")

type PairingRepository interface {
	GetByID(ctx context.Context, exec SQLExecutor, tournamentID int, id string) (*models.Pairing, error)
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Pairing, error)
	UpdateResult(ctx context.Context, exec SQLExecutor, id string, result *models.PairingResult) error
	Delete(ctx context.Context, exec SQLExecutor, id string) error
}

type postgresPairingRepository struct {
	db *sql.DB
}

func NewPostgresPairingRepository(db *sql.DB) PairingRepository {
	return &postgresPairingRepository{db: db}
}

const pairingSelect = `
	SELECT p.id, r.tournament_id, p.round_id, r.number, p.board, p.first_id, p.first_name,
	       p.second_id, p.second_name, p.result, p.created_at
	FROM pairings p
	JOIN rounds r ON r.id = p.round_id`

func (r *postgresPairingRepository) GetByID(ctx context.Context, exec SQLExecutor, tournamentID int, id string) (*models.Pairing, error) {
	query := pairingSelect + ` WHERE p.id = $1 AND r.tournament_id = $2`
	p, err := scanPairing(executorOr(exec, r.db).QueryRowContext(ctx, query, id, tournamentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPairingNotFound
		}
		if pqErr, ok := pqError(err); ok && pqErr.Code == pqInvalidTextRepr {
			return nil, ErrPairingNotFound // не UUID
		}
		return nil, fmt.Errorf("failed to scan pairing %s: %w", id, err)
	}
	return p, nil
}

func (r *postgresPairingRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Pairing, error) {
	return listPairings(ctx, executorOr(exec, r.db), tournamentID)
}

func (r *postgresPairingRepository) UpdateResult(ctx context.Context, exec SQLExecutor, id string, result *models.PairingResult) error {
	res, err := executorOr(exec, r.db).ExecContext(ctx, `UPDATE pairings SET result = $1 WHERE id = $2`, result, id)
	if err != nil {
		return fmt.Errorf("UpdateResult: failed to execute query for pairing %s: %w", id, err)
	}
	return checkAffectedRows(res, ErrPairingNotFound)
}

func (r *postgresPairingRepository) Delete(ctx context.Context, exec SQLExecutor, id string) error {
	res, err := executorOr(exec, r.db).ExecContext(ctx, `DELETE FROM pairings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pairing %s: %w", id, err)
	}
	return checkAffectedRows(res, ErrPairingNotFound)
}

func listPairings(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Pairing, error) {
	query := pairingSelect + ` WHERE r.tournament_id = $1 ORDER BY r.number ASC, p.board ASC`
	rows, err := exec.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pairings for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	pairings := make([]models.Pairing, 0)
	for rows.Next() {
		p, scanErr := scanPairing(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan pairing row: %w", scanErr)
		}
		pairings = append(pairings, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during pairing rows iteration: %w", err)
	}
	return pairings, nil
}

func scanPairing(rowScanner interface{ Scan(...interface{}) error }) (*models.Pairing, error) {
	var (
		p      models.Pairing
		result sql.NullString
	)
	err := rowScanner.Scan(
		&p.ID, &p.TournamentID, &p.RoundID, &p.RoundNumber, &p.Board, &p.FirstID, &p.FirstName,
		&p.SecondID, &p.SecondName, &result, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if result.Valid {
		r := models.PairingResult(result.String)
		p.Result = &r
	}
	return &p, nil
}
