package models

import "time"

// Tournament представляет турнир по швейцарской системе.
type Tournament struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	OrganizerID int       `json:"organizer_id" db:"organizer_id"`
	MaxRounds   int       `json:"max_rounds" db:"max_rounds"` // 0 = без ограничения
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Опциональные связанные сущности (не мапятся напрямую)
	Organizer   *User        `json:"organizer,omitempty" db:"-"`
	Competitors []Competitor `json:"competitors,omitempty" db:"-"`
	Rounds      []Round      `json:"rounds,omitempty" db:"-"`
}
