package types

import (
	"cosmossdk.io/errors"
)

// Error codes for the gem module
const (
	BaseErrorCode uint32 = 1
)

var (
	ErrNotFound            = errors.Register(ModuleName, BaseErrorCode+1, "not found")
	ErrInvalidConfig       = errors.Register(ModuleName, BaseErrorCode+2, "invalid collection config")
	ErrSupplyExceeded      = errors.Register(ModuleName, BaseErrorCode+3, "collection supply exceeded")
	ErrInsufficientPayment = errors.Register(ModuleName, BaseErrorCode+4, "insufficient payment")
	ErrConversionFailed    = errors.Register(ModuleName, BaseErrorCode+5, "native to wrapped conversion failed")
	ErrRefundFailed        = errors.Register(ModuleName, BaseErrorCode+6, "refund failed")
	ErrUnauthorized        = errors.Register(ModuleName, BaseErrorCode+7, "unauthorized")
	ErrPayoutFailed        = errors.Register(ModuleName, BaseErrorCode+8, "payout failed")
	ErrWithdrawFailed      = errors.Register(ModuleName, BaseErrorCode+9, "fee withdrawal failed")
	ErrOverflow            = errors.Register(ModuleName, BaseErrorCode+10, "amount overflow")
	ErrInvalidAsset        = errors.Register(ModuleName, BaseErrorCode+11, "invalid asset type")
	ErrInvalidParams       = errors.Register(ModuleName, BaseErrorCode+12, "invalid params")
	ErrInvalidRequest      = errors.Register(ModuleName, BaseErrorCode+13, "invalid request")
	ErrInvariantBroken     = errors.Register(ModuleName, BaseErrorCode+14, "ledger invariant broken")
)
