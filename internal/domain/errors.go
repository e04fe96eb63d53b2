package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Rarity errors
	ErrMsgItemNotInRarity = "boar not present in any rarity tier"
	ErrMsgNoRarities      = "no rarity tiers configured"

	// Store errors
	ErrMsgUnknownKind  = "unknown dataset kind"
	ErrMsgSaveFailed   = "failed to save dataset"
	ErrMsgGuildMissing = "guild data not found"

	// User errors
	ErrMsgUserNotFound = "user not found"
	ErrMsgUserBanned   = "user is banned"

	// Validation errors
	ErrMsgInvalidConfig = "invalid game configuration"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrItemNotInRarity signals the rank-0 rarity fallback: the boar ID
	// matched no configured tier. Callers receive the lowest tier alongside
	// it for defensive degradation but must log the error so configuration
	// drift stays visible in telemetry.
	ErrItemNotInRarity = errors.New(ErrMsgItemNotInRarity)
	ErrNoRarities      = errors.New(ErrMsgNoRarities)

	ErrUnknownKind  = errors.New(ErrMsgUnknownKind)
	ErrGuildMissing = errors.New(ErrMsgGuildMissing)

	ErrUserNotFound = errors.New(ErrMsgUserNotFound)
	ErrUserBanned   = errors.New(ErrMsgUserBanned)

	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)

// NoBoarID is the sentinel returned by a draw whose selected tier had no
// eligible candidates. It is a valid "nothing drawable" result, not an error.
const NoBoarID = ""
