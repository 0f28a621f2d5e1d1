package models

import "time"

// Competitor is a registered participant of a single tournament.
type Competitor struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	UserID       *int      `json:"user_id,omitempty" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Rating       int       `json:"rating" db:"rating"`
	Score        float64   `json:"score" db:"score"`   // multiple of 0.5
	Active       bool      `json:"active" db:"active"` // false = sits out the next round
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// StandingRow is a single line of the public standings table.
type StandingRow struct {
	Rank       int        `json:"rank"`
	Competitor Competitor `json:"competitor"`
}
