package models

import "time"

type PairingResult string

const (
	ResultFirstWins  PairingResult = "1-0"
	ResultDraw       PairingResult = "0.5-0.5"
	ResultSecondWins PairingResult = "0-1"
)

func (r PairingResult) Valid() bool {
	switch r {
	case ResultFirstWins, ResultDraw, ResultSecondWins:
		return true
	}
	return false
}

// Round owns the pairings generated for one sequence number.
type Round struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	Number       int       `json:"number" db:"number"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Pairings []Pairing `json:"pairings" db:"-"`
}

// Pairing is one board of a round. SecondID == nil marks a bye.
// Names are copied at generation time and are never re-joined.
type Pairing struct {
	ID           string         `json:"id" db:"id"`
	TournamentID int            `json:"tournament_id" db:"tournament_id"`
	RoundID      int            `json:"round_id" db:"round_id"`
	RoundNumber  int            `json:"round_number" db:"-"`
	Board        int            `json:"board" db:"board"`
	FirstID      int            `json:"first_id" db:"first_id"`
	FirstName    string         `json:"first_name" db:"first_name"`
	SecondID     *int           `json:"second_id,omitempty" db:"second_id"`
	SecondName   *string        `json:"second_name,omitempty" db:"second_name"`
	Result       *PairingResult `json:"result,omitempty" db:"result"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}

func (p Pairing) IsBye() bool {
	return p.SecondID == nil
}

// Involves reports whether the competitor sits on either side of the board.
func (p Pairing) Involves(competitorID int) bool {
	return p.FirstID == competitorID || (p.SecondID != nil && *p.SecondID == competitorID)
}
