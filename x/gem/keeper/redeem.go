package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/gem-vault/x/gem/types"
)

// Redeem burns gem gemId and pays its collateral, net of the collection's redeem fee, to
// caller in the asset the collateral was recorded in. The fee goes to that asset's
// accumulator.
//
// The gem is burned before the payout is sent and everything runs on a cached context,
// so a failed payout or fee credit also restores the gem.
func (k Keeper) Redeem(ctx context.Context, gemId uint64, caller sdk.AccAddress) (types.RedeemResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// Step 1: Resolve the gem
	gem, err := k.GetGem(ctx, gemId)
	if err != nil {
		return types.RedeemResult{}, err
	}

	// Step 2: Ownership
	if !gem.IsOwnedBy(caller) {
		return types.RedeemResult{}, errorsmod.Wrapf(types.ErrUnauthorized, "gem %d is not owned by %s", gemId, caller)
	}

	// Step 3: Fee rate comes from the collection, asset from the gem
	collection, err := k.GetCollection(ctx, gem.CollectionId)
	if err != nil {
		return types.RedeemResult{}, err
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.RedeemResult{}, errorsmod.Wrap(err, "failed to get params")
	}
	denom, err := params.DenomFor(gem.CollateralAsset)
	if err != nil {
		return types.RedeemResult{}, err
	}

	// Step 4-5: Fee and payout
	fee, payout, err := types.SplitRedemption(gem.CollateralAmount, collection.RedeemFeeRateBps)
	if err != nil {
		return types.RedeemResult{}, err
	}

	// use a temporary context to not commit any state change in case of error
	tmpCtx, commit := sdkCtx.CacheContext()

	// Step 6: Burn before paying out
	if err := k.burn(tmpCtx, gemId); err != nil {
		return types.RedeemResult{}, err
	}

	// Step 7: Payout
	if payout.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(denom, payout))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(tmpCtx, types.ModuleName, caller, coins); err != nil {
			return types.RedeemResult{}, errorsmod.Wrapf(types.ErrPayoutFailed, "payout of %s to %s: %s", coins, caller, err)
		}
	}

	// Step 8: Fee goes to the accumulator of the gem's own asset
	if err := k.creditFee(tmpCtx, gem.CollateralAsset, fee); err != nil {
		return types.RedeemResult{}, err
	}

	commit()

	result := types.RedeemResult{Payout: payout, Fee: fee, Asset: gem.CollateralAsset}
	k.emitRedeemed(sdkCtx, gem, result)
	return result, nil
}

func (k Keeper) emitRedeemed(sdkCtx sdk.Context, gem types.Gem, result types.RedeemResult) {
	event, err := types.NewGemRedeemedEvent(types.GemRedeemedEvent{
		GemId:        gem.Id,
		CollectionId: gem.CollectionId,
		Owner:        gem.Owner,
		Asset:        result.Asset.String(),
		Payout:       result.Payout.String(),
		Fee:          result.Fee.String(),
	})
	if err != nil {
		k.Logger().Error("failed to build gem redeemed event", "gem_id", gem.Id, "error", err.Error())
	} else {
		sdkCtx.EventManager().EmitEvent(event)
	}

	k.Logger().Info("gem redeemed",
		"gem_id", gem.Id,
		"collection_id", gem.CollectionId,
		"owner", gem.Owner,
		"asset", result.Asset.String(),
		"payout", result.Payout.String(),
		"fee", result.Fee.String(),
	)
}
