package domain

import "errors"

// Failure reasons returned by the reward core. The strings are short and
// stable so callers may match on them; boundary adapters decide how they
// are presented.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAdNotFound          = errors.New("ad not found")
	ErrAlreadyExists       = errors.New("user already exists")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("amount below minimum withdrawal")
	ErrPayoutHandleMissing = errors.New("payout handle not set")
	ErrViewTooSoon         = errors.New("ad already viewed recently")
)

// Kind classifies a failure into the taxonomy shared by all adapters.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyExists
	KindInvalidArgument
	KindInsufficientBalance
	KindBelowMinimum
	KindPayoutHandleMissing
	KindViewTooSoon
)

// KindOf reports the failure kind of err. Wrapped errors are unwrapped with
// errors.Is. Errors that are not part of the taxonomy yield KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrAdNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrInsufficientBalance):
		return KindInsufficientBalance
	case errors.Is(err, ErrBelowMinimum):
		return KindBelowMinimum
	case errors.Is(err, ErrPayoutHandleMissing):
		return KindPayoutHandleMissing
	case errors.Is(err, ErrViewTooSoon):
		return KindViewTooSoon
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInsufficientBalance:
		return "insufficient_balance"
	case KindBelowMinimum:
		return "below_minimum"
	case KindPayoutHandleMissing:
		return "payout_handle_missing"
	case KindViewTooSoon:
		return "view_too_soon"
	default:
		return "unknown"
	}
}
