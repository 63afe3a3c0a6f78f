package rental

import (
	"errors"
	"strings"
)

// Code is the domain error taxonomy. AlreadyInstalled and AlreadySetup are
// idempotent no-op outcomes carried on results, not errors; they appear
// here only so callers can branch on a single enum.
type Code string

const (
	CodeUnauthenticated    Code = "unauthenticated"
	CodePreconditionFailed Code = "precondition_failed"
	CodeUserDeclined       Code = "user_declined"
	CodeInsufficientFunds  Code = "insufficient_funds"
	CodeInsufficientBudget Code = "insufficient_budget"
	CodeObjectNotFound     Code = "object_not_found"
	CodeMalformedArgument  Code = "malformed_argument"
	CodeAlreadyInstalled   Code = "already_installed"
	CodeAlreadySetup       Code = "already_setup"
	CodeUnknown            Code = "unknown"
)

// DomainError is a classified failure with a human-readable message. The
// raw cause is preserved for logging and unwrapping.
type DomainError struct {
	Code    Code
	Message string
	cause   error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// NewDomainError creates a classified error with no underlying cause.
func NewDomainError(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// ErrCode extracts the classification of err, or CodeUnknown.
func ErrCode(err error) Code {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// errUnauthenticated is the shared precondition failure for operations
// requiring a connected wallet; it is reported before any network call.
var errUnauthenticated = NewDomainError(CodeUnauthenticated, "wallet is not connected")

// classificationRule maps known substrings of ledger and wallet error text
// to a domain code with actionable guidance. Matching is best-effort by
// design: the ledger reports failures as free text.
type classificationRule struct {
	substrings []string
	code       Code
	message    string
}

var classificationRules = []classificationRule{
	{
		substrings: []string{"user rejected", "rejected the request", "rejected from user"},
		code:       CodeUserDeclined,
		message:    "the transaction was rejected in the wallet; approve it to continue",
	},
	{
		substrings: []string{"gasbudgettoolow", "gas budget", "budget too low"},
		code:       CodeInsufficientBudget,
		message:    "the transaction's gas budget was too low for this operation",
	},
	{
		substrings: []string{"insufficientgas", "insufficient gas", "insufficientcoinbalance", "insufficient funds", "gasbalancetoolow", "balance too low"},
		code:       CodeInsufficientFunds,
		message:    "insufficient balance to complete this transaction",
	},
	{
		substrings: []string{"extensionnotinstalled", "extension not installed", "extension is not installed"},
		code:       CodePreconditionFailed,
		message:    "install the rental extension on the kiosk first",
	},
	{
		substrings: []string{"policy", "protectedtp"},
		code:       CodePreconditionFailed,
		message:    "the rental policy for this asset type is missing or not configured",
	},
	{
		substrings: []string{"not found", "notexists", "does not exist", "deleted", "already consumed", "objectnotfound"},
		code:       CodeObjectNotFound,
		message:    "a referenced on-chain object is missing or was already consumed",
	},
	{
		substrings: []string{"commandargumenterror", "malformed", "invalid argument", "typemismatch", "incorrect signature", "invalidbcsbytes"},
		code:       CodeMalformedArgument,
		message:    "the ledger rejected the shape of this transaction",
	},
}

// Classify turns any failure into a DomainError by substring matching on
// the error text. Already-classified errors pass through untouched, and an
// unrecognized failure keeps its raw message.
func Classify(err error) *DomainError {
	if err == nil {
		return nil
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	text := strings.ToLower(err.Error())
	for _, rule := range classificationRules {
		for _, sub := range rule.substrings {
			if strings.Contains(text, sub) {
				return &DomainError{Code: rule.code, Message: rule.message, cause: err}
			}
		}
	}

	return &DomainError{Code: CodeUnknown, Message: err.Error(), cause: err}
}
