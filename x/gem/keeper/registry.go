package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/gem-vault/x/gem/types"
)

// CreateCollection validates cfg, assigns the next collection id and stores the collection.
func (k Keeper) CreateCollection(ctx context.Context, cfg types.CollectionConfig) (uint64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	id, err := k.CollectionSeq.Next(ctx)
	if err != nil {
		return 0, errorsmod.Wrap(err, "failed to allocate collection id")
	}

	collection := types.Collection{Id: id, CollectionConfig: cfg}
	if err := k.Collections.Set(ctx, id, collection); err != nil {
		return 0, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(types.NewCollectionEvent(types.EventTypeCollectionCreated, collection))
	return id, nil
}

// UpdateCollection merges update onto collection id. The merged result is validated as a
// whole and nothing is written unless it passes.
func (k Keeper) UpdateCollection(ctx context.Context, id uint64, update types.CollectionUpdate) (types.Collection, error) {
	current, err := k.GetCollection(ctx, id)
	if err != nil {
		return types.Collection{}, err
	}

	merged := update.Apply(current)
	if err := merged.Validate(); err != nil {
		return types.Collection{}, err
	}

	if err := k.Collections.Set(ctx, id, merged); err != nil {
		return types.Collection{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(types.NewCollectionEvent(types.EventTypeCollectionUpdated, merged))
	return merged, nil
}

// GetCollection returns collection id or ErrNotFound. Every collection id lookup in the
// module goes through here.
func (k Keeper) GetCollection(ctx context.Context, id uint64) (types.Collection, error) {
	c, err := k.Collections.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Collection{}, errorsmod.Wrapf(types.ErrNotFound, "collection %d", id)
		}
		return types.Collection{}, err
	}
	return c, nil
}

// GetAllCollections returns every collection ordered by id.
func (k Keeper) GetAllCollections(ctx context.Context) ([]types.Collection, error) {
	var out []types.Collection
	err := k.Collections.Walk(ctx, nil, func(_ uint64, c types.Collection) (bool, error) {
		out = append(out, c)
		return false, nil
	})
	return out, err
}
