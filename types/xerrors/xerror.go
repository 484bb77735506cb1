package xerrors

import (
	"errors"
	"fmt"
	abcitypes "github.com/tendermint/tendermint/abci/types"
)

const (
	ErrCodeSuccess uint32 = abcitypes.CodeTypeOK + iota
	ErrCodeOrdinary
	ErrCodeInitChain
	ErrCodeExecute
	ErrCodeCommit
	ErrCodeNotFoundAccount
	ErrCodeInvalidAccountType
	ErrCodeInvalidAddress
	ErrCodeInvalidAmount
	ErrCodeInsufficientFund
	ErrCodeNotFoundBurnConfig
	ErrCodeDuplicatedBurnConfig
)

// burn authorization failures.
// each precondition of an autonomous burn has its own code so that
// callers can discriminate which one failed.
const (
	ErrCodeInvalidBurnPercentage uint32 = 100 + iota
	ErrCodeAuthorizationMismatch
	ErrCodeBelowMinBurnAmount
	ErrCodeProfitThresholdNotMet
	ErrCodeInsufficientBurnAmount
	ErrCodePaymentProofRejected
	ErrCodeArithmeticOverflow
	ErrCodeLedgerDelegateFailure
)

const (
	ErrCodeQuery uint32 = 1000 + iota
	ErrCodeInvalidQueryPath
	ErrCodeInvalidQueryParams
	ErrCodeNotFoundResult
	ErrLast
)

var (
	ErrCommon    = New(ErrCodeOrdinary, "autoburn error")
	ErrOverFlow  = New(ErrCodeOrdinary, "overflow")
	ErrInitChain = New(ErrCodeInitChain, "InitChain failed")
	ErrExecute   = New(ErrCodeExecute, "Execute failed")
	ErrCommit    = New(ErrCodeCommit, "Commit failed")
	ErrQuery     = New(ErrCodeQuery, "query failed")

	ErrNotFoundAccount      = New(ErrCodeNotFoundAccount, "not found account")
	ErrInvalidAccountType   = New(ErrCodeInvalidAccountType, "invalid account type")
	ErrInvalidAddress       = New(ErrCodeInvalidAddress, "invalid address")
	ErrInvalidAmount        = New(ErrCodeInvalidAmount, "invalid amount")
	ErrInsufficientFund     = New(ErrCodeInsufficientFund, "insufficient fund")
	ErrNotFoundBurnConfig   = New(ErrCodeNotFoundBurnConfig, "not found burn config")
	ErrDuplicatedBurnConfig = New(ErrCodeDuplicatedBurnConfig, "burn config already exists")

	ErrInvalidBurnPercentage  = New(ErrCodeInvalidBurnPercentage, "invalid burn percentage: must be 0-10000 (0-100%)")
	ErrAuthorizationMismatch  = New(ErrCodeAuthorizationMismatch, "caller is not the authority of the burn config")
	ErrBelowMinBurnAmount     = New(ErrCodeBelowMinBurnAmount, "burn amount below minimum threshold")
	ErrProfitThresholdNotMet  = New(ErrCodeProfitThresholdNotMet, "profit threshold not met")
	ErrInsufficientBurnAmount = New(ErrCodeInsufficientBurnAmount, "insufficient burn amount based on profit")
	ErrPaymentProofRejected   = New(ErrCodePaymentProofRejected, "payment proof rejected")
	ErrArithmeticOverflow     = New(ErrCodeArithmeticOverflow, "arithmetic overflow")
	ErrLedgerDelegateFailure  = New(ErrCodeLedgerDelegateFailure, "ledger delegate failed")

	ErrInvalidQueryPath   = New(ErrCodeInvalidQueryPath, "invalid query path")
	ErrInvalidQueryParams = New(ErrCodeInvalidQueryParams, "invalid query parameters")

	ErrNotFoundResult = New(ErrCodeNotFoundResult, "not found result")

	// new style errors
	ErrNoRight       = NewOrdinary("no right")
	ErrDuplicatedKey = NewOrdinary("already existed key")
)

type XError interface {
	Code() uint32
	Cause() error
	Error() string
	Msg() string
	Wrap(error) XError
	Wrapf(string, ...any) XError
	Contains(XError) bool
	Equal(XError) bool
}

type xerror struct {
	code  uint32
	msg   string
	cause error
}

func New(code uint32, msg string) XError {
	return &xerror{
		code: code,
		msg:  msg,
	}
}

func NewOrdinary(msg string) XError {
	return &xerror{
		code: ErrCodeOrdinary,
		msg:  msg,
	}
}

func From(err error) XError {
	if err == nil {
		return nil
	}
	return NewOrdinary(err.Error())
}

func Wrap(err error, msg string) XError {
	return &xerror{
		code:  ErrCodeOrdinary,
		msg:   msg,
		cause: err,
	}
}

func (xerr *xerror) Code() uint32 {
	return xerr.code
}

func (xerr *xerror) Error() string {
	msg := xerr.msg

	if xerr.cause != nil {
		msg += "\n\t" + xerr.cause.Error()
	}

	return msg

}

func (xerr *xerror) Msg() string {
	return xerr.msg
}

func (xerr *xerror) Cause() error {
	return xerr.cause
}

// Unwrap lets errors.Is and errors.As walk the cause chain.
func (xerr *xerror) Unwrap() error {
	return xerr.cause
}

// Is reports whether target has the same code and message,
// so that errors.Is matches a wrapped XError against its sentinel.
func (xerr *xerror) Is(target error) bool {
	if t, ok := target.(*xerror); ok {
		return xerr.code == t.code && xerr.msg == t.msg
	}
	return false
}

func (xerr *xerror) Wrap(err error) XError {
	if xerr.cause != nil {
		if cerr, ok := xerr.cause.(*xerror); ok {
			return &xerror{
				code:  xerr.code,
				msg:   xerr.msg,
				cause: cerr.Wrap(err),
			}
		}
	}
	return &xerror{
		code:  xerr.code,
		msg:   xerr.msg,
		cause: err,
	}
}

func (xerr *xerror) Wrapf(format string, args ...any) XError {
	return xerr.Wrap(New(ErrCodeOrdinary, fmt.Sprintf(format, args...)))
}

func (xerr *xerror) Contains(other XError) bool {
	if xerr.code == other.Code() && xerr.msg == other.Msg() {
		return true
	} else if xerr.cause != nil {
		if _xerr, ok := xerr.cause.(*xerror); ok {
			return _xerr.Contains(other)
		} else {
			return errors.Is(xerr.cause, other)
		}
	}
	return false
}

func (xerr *xerror) Equal(other XError) bool {
	return xerr.code == other.Code()
}

//func (xerr *xerror) DeepEqual(other XError) bool {
//	return xerr.code == other.Code() && xerr.msg == other.Error() && errors.Is(xerr.cause, other.Cause())
//}
