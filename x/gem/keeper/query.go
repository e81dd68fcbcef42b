package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/gem-vault/x/gem/types"
)

// Querier serves read-only lookups. None of its methods write state.
type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (q Querier) QueryParams(ctx context.Context) (types.Params, error) {
	return q.Keeper.Params.Get(ctx)
}

func (q Querier) QueryCollection(ctx context.Context, id uint64) (types.Collection, error) {
	return q.Keeper.GetCollection(ctx, id)
}

func (q Querier) QueryCollections(ctx context.Context) ([]types.Collection, error) {
	return q.Keeper.GetAllCollections(ctx)
}

func (q Querier) QueryGem(ctx context.Context, id uint64) (types.Gem, error) {
	return q.Keeper.GetGem(ctx, id)
}

// QueryGemsByOwner scans the ledger for gems held by owner.
func (q Querier) QueryGemsByOwner(ctx context.Context, owner sdk.AccAddress) ([]types.Gem, error) {
	var out []types.Gem
	err := q.Keeper.Gems.Walk(ctx, nil, func(_ uint64, g types.Gem) (bool, error) {
		if g.IsOwnedBy(owner) {
			out = append(out, g)
		}
		return false, nil
	})
	return out, err
}

func (q Querier) QueryFeeBalance(ctx context.Context, asset types.AssetType) (math.Int, error) {
	return q.Keeper.GetFeeBalance(ctx, asset)
}

func (q Querier) QueryFeeBalances(ctx context.Context) ([]types.FeeBalance, error) {
	return q.Keeper.GetFeeBalances(ctx)
}

// QueryApprovalNonce returns the nonce the next mint approval for payer in collectionId signs.
func (q Querier) QueryApprovalNonce(ctx context.Context, collectionId uint64, payer sdk.AccAddress) (uint64, error) {
	return q.Keeper.GetApprovalNonce(ctx, collectionId, payer)
}

// QueryModuleBalance reports the module account's bank balance of asset.
func (q Querier) QueryModuleBalance(ctx context.Context, asset types.AssetType) (sdk.Coin, error) {
	return q.Keeper.ModuleBalance(ctx, asset)
}
