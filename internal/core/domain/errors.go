package domain

import "errors"

// Code is a machine-readable error code. Codes are surfaced verbatim to
// callers and must never change once published.
type Code string

const (
	CodeUnknown                Code = "UNKNOWN"
	CodeInvalidAmount          Code = "INVALID_AMOUNT"
	CodeInsufficientFunds      Code = "INSUFFICIENT_FUNDS"
	CodeUnauthorizedPublisher  Code = "UNAUTHORIZED_PUBLISHER"
	CodeUnauthorizedCloser     Code = "UNAUTHORIZED_CLOSER"
	CodeUnauthorizedAdvertiser Code = "UNAUTHORIZED_ADVERTISER"
	CodeInvalidName            Code = "INVALID_NAME"
	CodeNameTooLong            Code = "NAME_TOO_LONG"
	CodeNoPublishers           Code = "NO_PUBLISHERS"
	CodeTooManyPublishers      Code = "TOO_MANY_PUBLISHERS"
	CodeNoClicksForCommission  Code = "NO_CLICKS_FOR_COMMISSION"
	CodeNothingToWithdraw      Code = "NOTHING_TO_WITHDRAW"
	CodeInvalidUpdate          Code = "INVALID_UPDATE"
	CodeMathOverflow           Code = "MATH_OVERFLOW"
	CodeInvalidPercentage      Code = "INVALID_PERCENTAGE"
	CodeCampaignExists         Code = "CAMPAIGN_EXISTS"
	CodeCampaignNotFound       Code = "CAMPAIGN_NOT_FOUND"
	CodeAccountMismatch        Code = "ACCOUNT_MISMATCH"
	CodeMissingSignature       Code = "MISSING_SIGNATURE"
	CodeVaultNotEmpty          Code = "VAULT_NOT_EMPTY"
	CodeInvalidInstruction     Code = "INVALID_INSTRUCTION"
	CodeInvalidOperator        Code = "INVALID_OPERATOR"
	CodeCorruptRecord          Code = "CORRUPT_RECORD"
	CodeInvalidPeriod          Code = "INVALID_PERIOD"
)

// Error is a ledger error carrying a stable Code. An Error may belong to a
// broader class, in which case errors.Is matches both the error itself and
// its class.
type Error struct {
	Code    Code
	Message string
	class   *Error
}

func (e *Error) Error() string { return e.Message }

// Is reports whether target is the class e belongs to.
func (e *Error) Is(target error) bool {
	return e.class != nil && target == error(e.class)
}

var (
	ErrInvalidAmount          = &Error{Code: CodeInvalidAmount, Message: "amount must be greater than zero"}
	ErrInsufficientFunds      = &Error{Code: CodeInsufficientFunds, Message: "not enough funds to cover transfer"}
	ErrUnauthorizedPublisher  = &Error{Code: CodeUnauthorizedPublisher, Message: "publisher not authorized"}
	ErrUnauthorizedCloser     = &Error{Code: CodeUnauthorizedCloser, Message: "only the advertiser or operator can close this campaign"}
	ErrUnauthorizedAdvertiser = &Error{Code: CodeUnauthorizedAdvertiser, Message: "only the advertiser can update this campaign"}
	ErrInvalidName            = &Error{Code: CodeInvalidName, Message: "campaign name cannot be empty"}
	ErrNameTooLong            = &Error{Code: CodeNameTooLong, Message: "campaign name is too long"}
	ErrNoPublishers           = &Error{Code: CodeNoPublishers, Message: "no publishers provided"}
	ErrTooManyPublishers      = &Error{Code: CodeTooManyPublishers, Message: "too many publishers"}
	ErrNoClicksForCommission  = &Error{Code: CodeNoClicksForCommission, Message: "commission clicks are zero"}
	ErrNothingToWithdraw      = &Error{Code: CodeNothingToWithdraw, Message: "nothing to withdraw from vault"}
	ErrInvalidUpdate          = &Error{Code: CodeInvalidUpdate, Message: "either locked value or ad duration must be greater than zero"}
	ErrMathOverflow           = &Error{Code: CodeMathOverflow, Message: "arithmetic overflow", class: ErrInvalidAmount}
	ErrInvalidPercentage      = &Error{Code: CodeInvalidPercentage, Message: "commission percentage must be between 0 and 100"}
	ErrCampaignExists         = &Error{Code: CodeCampaignExists, Message: "campaign already initialized"}
	ErrCampaignNotFound       = &Error{Code: CodeCampaignNotFound, Message: "campaign not found"}
	ErrAccountMismatch        = &Error{Code: CodeAccountMismatch, Message: "account does not match derived address"}
	ErrMissingSignature       = &Error{Code: CodeMissingSignature, Message: "required signature missing"}
	ErrVaultNotEmpty          = &Error{Code: CodeVaultNotEmpty, Message: "vault still holds value"}
	ErrInvalidInstruction     = &Error{Code: CodeInvalidInstruction, Message: "invalid instruction"}
	ErrInvalidOperator        = &Error{Code: CodeInvalidOperator, Message: "commission recipient is not the operator"}
	ErrCorruptRecord          = &Error{Code: CodeCorruptRecord, Message: "campaign record is corrupt"}
	ErrInvalidPeriod          = &Error{Code: CodeInvalidPeriod, Message: "period ends before it starts"}
)

// CodeOf returns the Code of the first ledger Error in err's chain, or
// CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
