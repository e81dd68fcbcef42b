package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

// BankKeeper moves value between accounts and answers read-only balance queries.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// LiquidStakingKeeper converts native value into the wrapped staked asset in two
// distinct calls. Stake returns the intermediate staked balance credited to holder and
// Wrap turns that balance into the transferable wrapped form.
type LiquidStakingKeeper interface {
	Stake(ctx context.Context, holder sdk.AccAddress, amount math.Int) (math.Int, error)
	Wrap(ctx context.Context, holder sdk.AccAddress, stakedAmount math.Int) (math.Int, error)
}

// ApprovalVerifier checks a validator approval for a mint digest.
type ApprovalVerifier interface {
	VerifyMintApproval(digest common.Hash, sig []byte, validator common.Address) (bool, error)
}
