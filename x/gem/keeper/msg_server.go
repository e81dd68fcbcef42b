package keeper

import (
	"context"

	sdkErrors "github.com/cosmos/cosmos-sdk/types/errors"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/gem-vault/x/gem/types"
)

// MsgServer is the transaction surface of the gem module.
type MsgServer interface {
	UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) error
	CreateCollection(ctx context.Context, msg *types.MsgCreateCollection) (uint64, error)
	UpdateCollection(ctx context.Context, msg *types.MsgUpdateCollection) (types.Collection, error)
	WithdrawFees(ctx context.Context, msg *types.MsgWithdrawFees) (math.Int, error)
	Mint(ctx context.Context, msg *types.MsgMint) (uint64, error)
	Redeem(ctx context.Context, msg *types.MsgRedeem) (types.RedeemResult, error)
}

type msgServer struct {
	k Keeper
}

var _ MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the module MsgServer interface.
func NewMsgServerImpl(keeper Keeper) MsgServer {
	return &msgServer{k: keeper}
}

// UpdateParams handles MsgUpdateParams for updating module parameters.
// Only authorized governance account can execute this.
func (ms msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) error {
	if ms.k.authority != msg.Authority {
		return errors.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.k.authority, msg.Authority)
	}
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	return ms.k.UpdateParams(ctx, msg.Params)
}

// CreateCollection registers a new collection - Admin restricted.
func (ms msgServer) CreateCollection(ctx context.Context, msg *types.MsgCreateCollection) (uint64, error) {
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return 0, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return 0, err
	}

	return ms.k.CreateCollection(ctx, msg.Config)
}

// UpdateCollection changes an existing collection - Admin restricted.
func (ms msgServer) UpdateCollection(ctx context.Context, msg *types.MsgUpdateCollection) (types.Collection, error) {
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return types.Collection{}, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return types.Collection{}, err
	}

	return ms.k.UpdateCollection(ctx, msg.CollectionId, msg.Update)
}

// WithdrawFees drains one fee accumulator - Admin restricted.
func (ms msgServer) WithdrawFees(ctx context.Context, msg *types.MsgWithdrawFees) (math.Int, error) {
	if err := ms.checkAdmin(ctx, msg.Signer); err != nil {
		return math.Int{}, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return math.Int{}, err
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return math.Int{}, errors.Wrap(err, "failed to parse recipient address")
	}
	return ms.k.WithdrawFees(ctx, msg.Asset, recipient)
}

// Mint implements MsgServer.
func (ms msgServer) Mint(ctx context.Context, msg *types.MsgMint) (uint64, error) {
	if err := msg.ValidateBasic(); err != nil {
		return 0, err
	}
	payer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse payer address")
	}

	return ms.k.Mint(ctx, types.MintRequest{
		CollectionId: msg.CollectionId,
		Payer:        payer,
		Deposit:      msg.Deposit,
		Approval:     msg.Approval,
	})
}

// Redeem implements MsgServer.
func (ms msgServer) Redeem(ctx context.Context, msg *types.MsgRedeem) (types.RedeemResult, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.RedeemResult{}, err
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return types.RedeemResult{}, errors.Wrap(err, "failed to parse owner address")
	}

	return ms.k.Redeem(ctx, msg.GemId, owner)
}

func (ms msgServer) checkAdmin(ctx context.Context, signer string) error {
	// Retrieve the current Params
	params, err := ms.k.Params.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to get params")
	}

	if params.Admin == "" || params.Admin != signer {
		return errors.Wrapf(sdkErrors.ErrUnauthorized, "invalid authority; expected %s, got %s", params.Admin, signer)
	}
	return nil
}
