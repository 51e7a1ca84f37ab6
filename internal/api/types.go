package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mailboxvalidator/client-go/internal/apierrors"
)

// Flag is a tri-state check outcome as reported by the API.
type Flag string

// Flag values. FlagUnset means the key was absent or empty.
const (
	FlagUnset         Flag = ""
	FlagTrue          Flag = "True"
	FlagFalse         Flag = "False"
	FlagNotApplicable Flag = "-"
)

// Bool returns the boolean value and whether the flag carries one.
func (f Flag) Bool() (value, known bool) {
	switch f {
	case FlagTrue:
		return true, true
	case FlagFalse:
		return false, true
	}
	return false, false
}

// Valid reports whether f is one of the documented values.
func (f Flag) Valid() bool {
	switch f {
	case FlagUnset, FlagTrue, FlagFalse, FlagNotApplicable:
		return true
	}
	return false
}

func (f Flag) String() string {
	return string(f)
}

// UnmarshalJSON accepts strings, booleans and null.
func (f *Flag) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	*f = Flag(s)
	return nil
}

// CatchAll is the four-state catch-all outcome.
type CatchAll string

// CatchAll values. CatchAllUnset means the key was absent or empty.
const (
	CatchAllUnset         CatchAll = ""
	CatchAllTrue          CatchAll = "True"
	CatchAllFalse         CatchAll = "False"
	CatchAllUnknown       CatchAll = "Unknown"
	CatchAllNotApplicable CatchAll = "-"
)

// Bool returns the boolean value and whether the outcome carries one.
func (c CatchAll) Bool() (value, known bool) {
	switch c {
	case CatchAllTrue:
		return true, true
	case CatchAllFalse:
		return false, true
	}
	return false, false
}

// Valid reports whether c is one of the documented values.
func (c CatchAll) Valid() bool {
	switch c {
	case CatchAllUnset, CatchAllTrue, CatchAllFalse, CatchAllUnknown, CatchAllNotApplicable:
		return true
	}
	return false
}

func (c CatchAll) String() string {
	return string(c)
}

// UnmarshalJSON accepts strings, booleans and null.
func (c *CatchAll) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	*c = CatchAll(s)
	return nil
}

// Decimal is a decimal number kept in its wire text form.
type Decimal string

// Float64 parses the value. An empty Decimal is an error.
func (d Decimal) Float64() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(d)), 64)
}

func (d Decimal) String() string {
	return string(d)
}

// UnmarshalJSON accepts numbers, strings and null.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	*d = Decimal(s)
	return nil
}

// Credits is the remaining credit count kept in its wire text form.
type Credits string

// Int64 parses the value. An empty Credits is an error.
func (c Credits) Int64() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(string(c)), 10, 64)
}

func (c Credits) String() string {
	return string(c)
}

// UnmarshalJSON accepts numbers, strings and null.
func (c *Credits) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	*c = Credits(s)
	return nil
}

// scalarText returns the text of a JSON scalar: strings are unquoted,
// numbers keep their literal form, booleans become "True"/"False", null
// becomes "".
func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return "", err
		}
		if b {
			return string(FlagTrue), nil
		}
		return string(FlagFalse), nil
	case '{', '[':
		return "", fmt.Errorf("expected JSON scalar, got %s", data)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// ValidationResult is the response of the single validation endpoint.
type ValidationResult struct {
	EmailAddress          string              `json:"email_address"`
	Domain                string              `json:"domain"`
	IsFree                Flag                `json:"is_free"`
	IsSyntax              Flag                `json:"is_syntax"`
	IsDomain              Flag                `json:"is_domain"`
	IsSMTP                Flag                `json:"is_smtp"`
	IsVerified            Flag                `json:"is_verified"`
	IsServerDown          Flag                `json:"is_server_down"`
	IsGreylisted          Flag                `json:"is_greylisted"`
	IsDisposable          Flag                `json:"is_disposable"`
	IsSuppressed          Flag                `json:"is_suppressed"`
	IsRole                Flag                `json:"is_role"`
	IsHighRisk            Flag                `json:"is_high_risk"`
	IsCatchall            CatchAll            `json:"is_catchall"`
	MailboxValidatorScore Decimal             `json:"mailboxvalidator_score"`
	TimeTaken             Decimal             `json:"time_taken"`
	Status                Flag                `json:"status"`
	CreditsAvailable      Credits             `json:"credits_available"`
	ErrorCode             apierrors.ErrorCode `json:"error_code"`
	ErrorMessage          string              `json:"error_message"`
}

// DisposableResult is the response of the disposable email endpoint.
type DisposableResult struct {
	EmailAddress     string              `json:"email_address"`
	IsDisposable     Flag                `json:"is_disposable"`
	CreditsAvailable Credits             `json:"credits_available"`
	ErrorCode        apierrors.ErrorCode `json:"error_code"`
	ErrorMessage     string              `json:"error_message"`
}

// FreeResult is the response of the free email endpoint.
type FreeResult struct {
	EmailAddress     string              `json:"email_address"`
	IsFree           Flag                `json:"is_free"`
	CreditsAvailable Credits             `json:"credits_available"`
	ErrorCode        apierrors.ErrorCode `json:"error_code"`
	ErrorMessage     string              `json:"error_message"`
}
