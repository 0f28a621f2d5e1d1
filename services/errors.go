package services

import (
	"errors"

	"github.com/Dosada05/swiss-tournament/brackets"
)

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ошибки валидации и бизнес-правил
	ErrValidationFailed           = errors.New("validation failed")
	ErrPasswordTooShort           = errors.New("password is too short")
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrTournamentNameRequired     = errors.New("tournament name is required")
	ErrTournamentInvalidMaxRounds = errors.New("tournament max rounds must not be negative")
	ErrCompetitorNameRequired     = errors.New("competitor name is required")
	ErrCompetitorInvalidRating    = errors.New("competitor rating must not be negative")
	ErrInvalidResult              = errors.New("result must be one of 1-0, 0.5-0.5, 0-1")

	// Ошибки конфликтов
	ErrUserEmailConflict       = errors.New("email address is already in use")
	ErrUserNicknameConflict    = errors.New("nickname is already in use")
	ErrTournamentNameConflict  = errors.New("tournament name already exists")
	ErrCompetitorNameConflict  = errors.New("competitor name is already used in this tournament")
	ErrRoundGenerationConflict = errors.New("another round was generated concurrently")
	ErrRoundNotLatest          = errors.New("only the latest round can be deleted")
	ErrByeResultImmutable      = errors.New("the result of a bye cannot be changed")

	// Round generation (the pairing engine and the round-number allocator).
	ErrInsufficientCompetitors = brackets.ErrInsufficientCompetitors
	ErrNoRoundNumberAvailable  = errors.New("maximum number of rounds reached")
	ErrInternalConsistency     = brackets.ErrInternalConsistency

	// Ошибки аутентификации и авторизации
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// Ошибки, специфичные для сущностей
	ErrUserNotFound       = errors.New("user not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrCompetitorNotFound = errors.New("competitor not found")
	ErrRoundNotFound      = errors.New("round not found")
	ErrPairingNotFound    = errors.New("pairing not found")
)
