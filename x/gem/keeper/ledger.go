package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/gem-vault/x/gem/types"
)

// mintRecord stores a new gem against collectionId and bumps the collection's supply.
func (k Keeper) mintRecord(ctx context.Context, collectionId uint64, owner sdk.AccAddress, amount math.Int, asset types.AssetType) (uint64, error) {
	collection, err := k.GetCollection(ctx, collectionId)
	if err != nil {
		return 0, err
	}
	if !collection.HasSupplyFor() {
		return 0, errorsmod.Wrapf(types.ErrSupplyExceeded, "collection %d at max supply %d", collectionId, collection.MaxSupply)
	}
	if err := asset.Validate(); err != nil {
		return 0, err
	}

	id, err := k.GemSeq.Next(ctx)
	if err != nil {
		return 0, errorsmod.Wrap(err, "failed to allocate gem id")
	}

	gem := types.Gem{
		Id:               id,
		CollectionId:     collectionId,
		Owner:            owner.String(),
		CollateralAmount: amount,
		CollateralAsset:  asset,
	}
	if err := k.Gems.Set(ctx, id, gem); err != nil {
		return 0, err
	}

	collection.CirculatingGems++
	collection.TotalMinted++
	if err := k.Collections.Set(ctx, collectionId, collection); err != nil {
		return 0, err
	}

	return id, nil
}

// GetGem returns gem id or ErrNotFound.
func (k Keeper) GetGem(ctx context.Context, id uint64) (types.Gem, error) {
	g, err := k.Gems.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Gem{}, errorsmod.Wrapf(types.ErrNotFound, "gem %d", id)
		}
		return types.Gem{}, err
	}
	return g, nil
}

// burn deletes gem id and decrements its collection's circulating count. A second burn
// of the same id fails with ErrNotFound.
func (k Keeper) burn(ctx context.Context, id uint64) error {
	gem, err := k.GetGem(ctx, id)
	if err != nil {
		return err
	}
	collection, err := k.GetCollection(ctx, gem.CollectionId)
	if err != nil {
		return err
	}
	// a stored gem must be counted in its collection's circulating supply
	if collection.CirculatingGems == 0 {
		return errorsmod.Wrapf(types.ErrInvariantBroken, "gem %d is live but collection %d has no circulating gems", id, collection.Id)
	}

	if err := k.Gems.Remove(ctx, id); err != nil {
		return err
	}
	collection.CirculatingGems--
	return k.Collections.Set(ctx, collection.Id, collection)
}

// ReassignOwner records a transfer of gem id to newOwner. Transfer rules live with the
// caller; this only updates the ledger.
func (k Keeper) ReassignOwner(ctx context.Context, id uint64, newOwner sdk.AccAddress) error {
	if len(newOwner) == 0 {
		return types.ErrInvalidRequest.Wrap("new owner is empty")
	}
	gem, err := k.GetGem(ctx, id)
	if err != nil {
		return err
	}
	previous := gem.Owner
	gem.Owner = newOwner.String()
	if err := k.Gems.Set(ctx, id, gem); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeGemOwnerChanged,
		sdk.NewAttribute(types.AttributeKeyGemId, strconv.FormatUint(id, 10)),
		sdk.NewAttribute("previous_owner", previous),
		sdk.NewAttribute(types.AttributeKeyOwner, gem.Owner),
	))
	return nil
}

// GetAllGems returns every live gem ordered by id.
func (k Keeper) GetAllGems(ctx context.Context) ([]types.Gem, error) {
	var out []types.Gem
	err := k.Gems.Walk(ctx, nil, func(_ uint64, g types.Gem) (bool, error) {
		out = append(out, g)
		return false, nil
	})
	return out, err
}
