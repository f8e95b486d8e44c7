package apperror

import "errors"

var (
	ErrAccountRequired   = errors.New("`account` field is required")
	ErrInvalidAccount    = errors.New("Invalid account provided: not a valid public key") //nolint: stylecheck // shown to wallet users as is
	ErrMoveFieldsMissing = errors.New("Required fields are missing: move and char")       //nolint: stylecheck // shown to wallet users as is
	ErrInvalidMark       = errors.New("mark must be either x or o")

	ErrGameNotFound   = errors.New("game not found")
	ErrGameFinished   = errors.New("Game is already over")                           //nolint: stylecheck // eligibility reason
	ErrOwnerFirstMove = errors.New("Waiting for an opponent to make the first move") //nolint: stylecheck // eligibility reason
	ErrNotGamePlayer  = errors.New("You are not a player in this game")              //nolint: stylecheck // eligibility reason
	ErrNotYourTurn    = errors.New("It's not your turn")                             //nolint: stylecheck // eligibility reason
	ErrNoBlockhash    = errors.New("could not get a recent blockhash")
)

// IneligibleError carries the reason returned by the eligibility check.
type IneligibleError struct {
	Reason string
}

func (that *IneligibleError) Error() string {
	return that.Reason
}

func NewIneligible(reason string) error {
	return &IneligibleError{Reason: reason}
}
