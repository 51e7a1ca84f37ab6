package mailboxvalidator

import "github.com/mailboxvalidator/client-go/internal/api"

// Flag is a tri-state check outcome: FlagTrue, FlagFalse or
// FlagNotApplicable when the check could not run. FlagUnset means the
// response did not carry the field.
type Flag = api.Flag

// Flag values.
const (
	FlagUnset         = api.FlagUnset
	FlagTrue          = api.FlagTrue
	FlagFalse         = api.FlagFalse
	FlagNotApplicable = api.FlagNotApplicable
)

// CatchAll is the four-state catch-all outcome.
type CatchAll = api.CatchAll

// CatchAll values.
const (
	CatchAllUnset         = api.CatchAllUnset
	CatchAllTrue          = api.CatchAllTrue
	CatchAllFalse         = api.CatchAllFalse
	CatchAllUnknown       = api.CatchAllUnknown
	CatchAllNotApplicable = api.CatchAllNotApplicable
)

// Decimal is a decimal number in its wire text form. Use Float64 to parse it.
type Decimal = api.Decimal

// Credits is the remaining credit count in its wire text form. Use Int64 to
// parse it.
type Credits = api.Credits

// ValidationResult is the outcome of ValidateEmail.
//
// A Status of FlagFalse is a successful lookup whose verdict is negative,
// not an error.
type ValidationResult = api.ValidationResult

// DisposableResult is the outcome of IsDisposableEmail.
type DisposableResult = api.DisposableResult

// FreeResult is the outcome of IsFreeEmail.
type FreeResult = api.FreeResult
