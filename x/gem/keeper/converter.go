package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/gem-vault/x/gem/types"
)

// collectDeposit moves the payer's native deposit into the module account.
func (k Keeper) collectDeposit(ctx context.Context, params types.Params, payer sdk.AccAddress, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(params.NativeDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, payer, types.ModuleName, coins); err != nil {
		return errorsmod.Wrapf(types.ErrInsufficientPayment, "failed to collect deposit of %s: %s", coins, err)
	}
	return nil
}

// depositNative keeps amount in native form. There is nothing to convert.
func (k Keeper) depositNative(amount math.Int) types.Receipt {
	return types.Receipt{Asset: types.AssetType_ASSET_TYPE_NATIVE, Amount: amount}
}

// convertNativeToWrapped stakes amount of native value held by the module and wraps the
// resulting staked balance. Each step is a separate call to the staking collaborator and
// a failure at either step fails the conversion.
func (k Keeper) convertNativeToWrapped(ctx context.Context, amount math.Int) (types.Receipt, error) {
	holder := k.ModuleAddress()

	staked, err := k.stakingKeeper.Stake(ctx, holder, amount)
	if err != nil {
		return types.Receipt{}, errorsmod.Wrapf(types.ErrConversionFailed, "stake of %s failed: %s", amount, err)
	}
	if staked.IsNil() || !staked.IsPositive() {
		return types.Receipt{}, errorsmod.Wrapf(types.ErrConversionFailed, "stake of %s returned no staked balance", amount)
	}

	wrapped, err := k.stakingKeeper.Wrap(ctx, holder, staked)
	if err != nil {
		return types.Receipt{}, errorsmod.Wrapf(types.ErrConversionFailed, "wrap of %s staked failed: %s", staked, err)
	}
	if wrapped.IsNil() || !wrapped.IsPositive() {
		return types.Receipt{}, errorsmod.Wrapf(types.ErrConversionFailed, "wrap of %s staked returned no wrapped balance", staked)
	}

	return types.Receipt{Asset: types.AssetType_ASSET_TYPE_STAKED_WRAPPED, Amount: wrapped}, nil
}

// ModuleBalance returns what the module account holds of asset. Read only.
func (k Keeper) ModuleBalance(ctx context.Context, asset types.AssetType) (sdk.Coin, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return sdk.Coin{}, errorsmod.Wrap(err, "failed to get params")
	}
	denom, err := params.DenomFor(asset)
	if err != nil {
		return sdk.Coin{}, err
	}
	return k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), denom), nil
}
