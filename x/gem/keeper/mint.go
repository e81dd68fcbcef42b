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

// Mint creates a gem in req.CollectionId owned by req.Payer.
//
// The deposit is collected, converted if the collection is backed by the wrapped asset,
// recorded, and anything above the mint price is refunded. All of it happens on a cached
// context that is committed only when every step succeeded, so a failed mint leaves state
// and balances untouched.
func (k Keeper) Mint(ctx context.Context, req types.MintRequest) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if len(req.Payer) == 0 {
		return 0, types.ErrInvalidRequest.Wrap("payer is empty")
	}
	if req.Deposit.IsNil() || req.Deposit.IsNegative() {
		return 0, types.ErrInvalidRequest.Wrap("deposit must be non-negative")
	}

	// Step 1: Resolve the collection
	collection, err := k.GetCollection(ctx, req.CollectionId)
	if err != nil {
		return 0, err
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return 0, errorsmod.Wrap(err, "failed to get params")
	}

	// Step 2: Validator gate
	if collection.ValidatorRequired {
		if err := k.checkMintApproval(ctx, collection, req); err != nil {
			return 0, err
		}
	}

	// Step 3: Payment
	if req.Deposit.LT(collection.MintPrice) {
		return 0, errorsmod.Wrapf(types.ErrInsufficientPayment, "deposit %s below mint price %s", req.Deposit, collection.MintPrice)
	}

	// use a temporary context to not commit any state change in case of error
	tmpCtx, commit := sdkCtx.CacheContext()

	if err := k.collectDeposit(tmpCtx, params, req.Payer, req.Deposit); err != nil {
		return 0, err
	}

	// Step 4: Deposit or convert
	var receipt types.Receipt
	switch collection.BackingAsset {
	case types.AssetType_ASSET_TYPE_NATIVE:
		receipt = k.depositNative(collection.MintPrice)
	case types.AssetType_ASSET_TYPE_STAKED_WRAPPED:
		receipt, err = k.convertNativeToWrapped(tmpCtx, collection.MintPrice)
		if err != nil {
			return 0, err
		}
	default:
		return 0, collection.BackingAsset.Validate()
	}

	// Step 5: Record the gem with the asset the collateral is actually held in
	gemId, err := k.mintRecord(tmpCtx, collection.Id, req.Payer, receipt.Amount, receipt.Asset)
	if err != nil {
		return 0, err
	}

	// An approval is good for one mint
	if collection.ValidatorRequired {
		if err := k.consumeApprovalNonce(tmpCtx, collection.Id, req.Payer); err != nil {
			return 0, err
		}
	}

	// Step 6: Refund the excess
	refund := req.Deposit.Sub(collection.MintPrice)
	if refund.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(params.NativeDenom, refund))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(tmpCtx, types.ModuleName, req.Payer, coins); err != nil {
			return 0, errorsmod.Wrapf(types.ErrRefundFailed, "refund of %s to %s: %s", coins, req.Payer, err)
		}
	}

	commit()

	k.emitMinted(sdkCtx, gemId, collection.Id, req.Payer, receipt, refund)
	return gemId, nil
}

// checkMintApproval verifies that the collection's validator signed this exact mint.
func (k Keeper) checkMintApproval(ctx context.Context, collection types.Collection, req types.MintRequest) error {
	// guaranteed by collection validation, checked again so a gated mint never runs ungated
	if !collection.HasValidator() {
		return errorsmod.Wrapf(types.ErrUnauthorized, "collection %d requires a validator but has none", collection.Id)
	}
	if len(req.Approval) == 0 {
		return errorsmod.Wrapf(types.ErrUnauthorized, "collection %d requires a validator approval", collection.Id)
	}

	nonce, err := k.GetApprovalNonce(ctx, collection.Id, req.Payer)
	if err != nil {
		return err
	}
	digest, err := types.MintApprovalRequest{
		ChainId:      sdk.UnwrapSDKContext(ctx).ChainID(),
		CollectionId: collection.Id,
		Payer:        req.Payer,
		Deposit:      req.Deposit,
		Nonce:        nonce,
	}.Digest()
	if err != nil {
		return errorsmod.Wrap(types.ErrUnauthorized, err.Error())
	}

	ok, err := k.approvalVerifier.VerifyMintApproval(digest, req.Approval, collection.Validator())
	if err != nil {
		return errorsmod.Wrapf(types.ErrUnauthorized, "invalid approval: %s", err)
	}
	if !ok {
		return errorsmod.Wrapf(types.ErrUnauthorized, "approval not signed by validator %s", collection.Validator().Hex())
	}
	return nil
}

func (k Keeper) emitMinted(sdkCtx sdk.Context, gemId, collectionId uint64, owner sdk.AccAddress, receipt types.Receipt, refund math.Int) {
	if !refund.IsPositive() {
		refund = math.ZeroInt()
	}
	event, err := types.NewGemMintedEvent(types.GemMintedEvent{
		GemId:        gemId,
		CollectionId: collectionId,
		Owner:        owner.String(),
		Asset:        receipt.Asset.String(),
		Collateral:   receipt.Amount.String(),
		Refund:       refund.String(),
	})
	if err != nil {
		k.Logger().Error("failed to build gem minted event", "gem_id", gemId, "error", err.Error())
	} else {
		sdkCtx.EventManager().EmitEvent(event)
	}

	k.Logger().Info("gem minted",
		"gem_id", gemId,
		"collection_id", collectionId,
		"owner", owner.String(),
		"asset", receipt.Asset.String(),
		"collateral", receipt.Amount.String(),
		"refund", refund.String(),
	)
}

// GetApprovalNonce returns the nonce the next approval for payer in collectionId must carry.
func (k Keeper) GetApprovalNonce(ctx context.Context, collectionId uint64, payer sdk.AccAddress) (uint64, error) {
	nonce, err := k.ApprovalNonces.Get(ctx, collections.Join(collectionId, payer))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return nonce, nil
}

func (k Keeper) consumeApprovalNonce(ctx context.Context, collectionId uint64, payer sdk.AccAddress) error {
	nonce, err := k.GetApprovalNonce(ctx, collectionId, payer)
	if err != nil {
		return err
	}
	return k.ApprovalNonces.Set(ctx, collections.Join(collectionId, payer), nonce+1)
}
