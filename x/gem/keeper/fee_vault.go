package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/gem-vault/x/gem/types"
)

// GetFeeBalance returns the accumulated fees for asset; zero when nothing was credited.
func (k Keeper) GetFeeBalance(ctx context.Context, asset types.AssetType) (math.Int, error) {
	if err := asset.Validate(); err != nil {
		return math.Int{}, err
	}
	amount, err := k.FeeVault.Get(ctx, int32(asset))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return amount, nil
}

// GetFeeBalances returns one balance per asset type.
func (k Keeper) GetFeeBalances(ctx context.Context) ([]types.FeeBalance, error) {
	out := make([]types.FeeBalance, 0, len(types.AllAssetTypes))
	for _, asset := range types.AllAssetTypes {
		amount, err := k.GetFeeBalance(ctx, asset)
		if err != nil {
			return nil, err
		}
		out = append(out, types.FeeBalance{Asset: asset, Amount: amount})
	}
	return out, nil
}

// creditFee adds amount to the accumulator of asset and only that accumulator.
func (k Keeper) creditFee(ctx context.Context, asset types.AssetType, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidRequest.Wrap("fee must be non-negative")
	}
	current, err := k.GetFeeBalance(ctx, asset)
	if err != nil {
		return err
	}
	updated, err := current.SafeAdd(amount)
	if err != nil {
		return errorsmod.Wrapf(types.ErrOverflow, "%s fee accumulator: %s", asset, err)
	}
	return k.FeeVault.Set(ctx, int32(asset), updated)
}

// WithdrawFees sends the whole accumulator of asset to recipient and returns the amount.
//
// The accumulator is read, then zeroed, then transferred. The steps run on a cached
// context: if the transfer fails the cache is dropped and the accumulator keeps its
// previous value, which is the re-credit for a failed withdrawal.
func (k Keeper) WithdrawFees(ctx context.Context, asset types.AssetType, recipient sdk.AccAddress) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.Params.Get(ctx)
	if err != nil {
		return math.Int{}, errorsmod.Wrap(err, "failed to get params")
	}
	denom, err := params.DenomFor(asset)
	if err != nil {
		return math.Int{}, err
	}

	tmpCtx, commit := sdkCtx.CacheContext()

	amount, err := k.GetFeeBalance(tmpCtx, asset)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.FeeVault.Set(tmpCtx, int32(asset), math.ZeroInt()); err != nil {
		return math.Int{}, err
	}

	if amount.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(tmpCtx, types.ModuleName, recipient, coins); err != nil {
			k.Logger().Error("fee withdrawal failed, accumulator left unchanged",
				"asset", asset.String(), "amount", amount.String(), "recipient", recipient.String(), "error", err.Error())
			return math.Int{}, errorsmod.Wrapf(types.ErrWithdrawFailed, "transfer of %s to %s: %s", coins, recipient, err)
		}
	}

	commit()

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFeesWithdrawn,
		sdk.NewAttribute(types.AttributeKeyAsset, asset.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
	))
	k.Logger().Info("fees withdrawn", "asset", asset.String(), "amount", amount.String(), "recipient", recipient.String())

	return amount, nil
}
