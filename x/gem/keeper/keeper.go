package keeper

import (
	"context"
	"errors"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/gem-vault/x/gem/types"
)

type Keeper struct {
	logger log.Logger

	// state management
	storeService  storetypes.KVStoreService
	Params        collections.Item[types.Params]
	Collections   collections.Map[uint64, types.Collection]
	CollectionSeq collections.Sequence
	Gems          collections.Map[uint64, types.Gem]
	GemSeq        collections.Sequence
	// FeeVault holds one accumulator per asset type, keyed by the AssetType tag.
	FeeVault collections.Map[int32, math.Int]
	// ApprovalNonces is the next validator approval nonce per (collection id, payer).
	ApprovalNonces collections.Map[collections.Pair[uint64, sdk.AccAddress], uint64]

	bankKeeper       types.BankKeeper
	stakingKeeper    types.LiquidStakingKeeper
	approvalVerifier types.ApprovalVerifier

	authority string
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	authority string,
	bankKeeper types.BankKeeper,
	stakingKeeper types.LiquidStakingKeeper,
	approvalVerifier types.ApprovalVerifier,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	if authority == "" {
		authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	}
	if approvalVerifier == nil {
		approvalVerifier = types.EthApprovalVerifier{}
	}

	k := Keeper{
		logger:       logger,
		storeService: storeService,

		Params:         collections.NewItem(sb, types.ParamsKey, types.ParamsName, types.JSONValue[types.Params](types.ParamsName)),
		Collections:    collections.NewMap(sb, types.CollectionsKey, types.CollectionsName, collections.Uint64Key, types.JSONValue[types.Collection](types.CollectionsName)),
		CollectionSeq:  collections.NewSequence(sb, types.CollectionSeqKey, types.CollectionSeqName),
		Gems:           collections.NewMap(sb, types.GemsKey, types.GemsName, collections.Uint64Key, types.JSONValue[types.Gem](types.GemsName)),
		GemSeq:         collections.NewSequence(sb, types.GemSeqKey, types.GemSeqName),
		FeeVault:       collections.NewMap(sb, types.FeeVaultKey, types.FeeVaultName, collections.Int32Key, sdk.IntValue),
		ApprovalNonces: collections.NewMap(sb, types.ApprovalNoncesKey, types.ApprovalNoncesName, collections.PairKeyCodec(collections.Uint64Key, sdk.AccAddressKey), collections.Uint64Value),

		bankKeeper:       bankKeeper,
		stakingKeeper:    stakingKeeper,
		approvalVerifier: approvalVerifier,

		authority: authority,
	}

	if _, err := sb.Build(); err != nil {
		panic(err)
	}

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the governance authority allowed to update params.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// ModuleAddress is the account holding collateral and accumulated fees.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetParams returns the module params.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	return k.Params.Get(ctx)
}

// UpdateParams validates and stores new params. The denom of an asset cannot change while
// a gem or a fee balance still settles in it.
func (k Keeper) UpdateParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}

	current, err := k.Params.Get(ctx)
	switch {
	case errors.Is(err, collections.ErrNotFound):
		return k.Params.Set(ctx, params)
	case err != nil:
		return err
	}

	for _, asset := range types.AllAssetTypes {
		oldDenom, err := current.DenomFor(asset)
		if err != nil {
			return err
		}
		newDenom, err := params.DenomFor(asset)
		if err != nil {
			return err
		}
		if oldDenom == newDenom {
			continue
		}
		outstanding, err := k.hasOutstanding(ctx, asset)
		if err != nil {
			return err
		}
		if outstanding {
			return errorsmod.Wrapf(types.ErrInvalidParams,
				"cannot change %s denom from %s to %s while gems or fees settle in it", asset, oldDenom, newDenom)
		}
	}

	return k.Params.Set(ctx, params)
}

// hasOutstanding reports whether any live gem holds collateral in asset or its fee
// accumulator is positive.
func (k Keeper) hasOutstanding(ctx context.Context, asset types.AssetType) (bool, error) {
	fee, err := k.GetFeeBalance(ctx, asset)
	if err != nil {
		return false, err
	}
	if fee.IsPositive() {
		return true, nil
	}

	found := false
	err = k.Gems.Walk(ctx, nil, func(_ uint64, g types.Gem) (bool, error) {
		found = g.CollateralAsset == asset
		return found, nil
	})
	return found, err
}

// InitGenesis initializes the module's state from a genesis state.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}
	for _, c := range data.Collections {
		if err := k.Collections.Set(ctx, c.Id, c); err != nil {
			return err
		}
	}
	for _, g := range data.Gems {
		if err := k.Gems.Set(ctx, g.Id, g); err != nil {
			return err
		}
	}
	for _, f := range data.Fees {
		if err := k.FeeVault.Set(ctx, int32(f.Asset), f.Amount); err != nil {
			return err
		}
	}
	for _, n := range data.ApprovalNonces {
		payer, err := sdk.AccAddressFromBech32(n.Payer)
		if err != nil {
			return err
		}
		if err := k.ApprovalNonces.Set(ctx, collections.Join(n.CollectionId, payer), n.Nonce); err != nil {
			return err
		}
	}
	if err := k.CollectionSeq.Set(ctx, data.NextCollectionId); err != nil {
		return err
	}
	return k.GemSeq.Set(ctx, data.NextGemId)
}

// ExportGenesis exports the module's state to a genesis state.
func (k *Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.Params.Get(ctx)
	if err != nil {
		panic(err)
	}
	cols, err := k.GetAllCollections(ctx)
	if err != nil {
		panic(err)
	}
	gems, err := k.GetAllGems(ctx)
	if err != nil {
		panic(err)
	}
	fees, err := k.GetFeeBalances(ctx)
	if err != nil {
		panic(err)
	}
	var nonces []types.ApprovalNonce
	err = k.ApprovalNonces.Walk(ctx, nil, func(key collections.Pair[uint64, sdk.AccAddress], nonce uint64) (bool, error) {
		nonces = append(nonces, types.ApprovalNonce{CollectionId: key.K1(), Payer: key.K2().String(), Nonce: nonce})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	nextCollection, err := k.CollectionSeq.Peek(ctx)
	if err != nil {
		panic(err)
	}
	nextGem, err := k.GemSeq.Peek(ctx)
	if err != nil {
		panic(err)
	}

	return &types.GenesisState{
		Params:           params,
		Collections:      cols,
		Gems:             gems,
		Fees:             fees,
		ApprovalNonces:   nonces,
		NextCollectionId: nextCollection,
		NextGemId:        nextGem,
	}
}
