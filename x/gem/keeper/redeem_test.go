package keeper_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"

	"github.com/pushchain/gem-vault/x/gem/types"
)

func TestRedeem_NativeWithFee(t *testing.T) {
	f := SetupTest(t)
	owner := f.addrs[1]
	id := f.createCollection(t, nativeConfig(1000, 250))
	gemId := f.mintNative(t, id, owner, 1000)

	f.mockBankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, owner, nativeCoins(975)).Return(nil)

	res, err := f.k.Redeem(f.ctx, gemId, owner)
	require.NoError(t, err)
	require.True(t, math.NewInt(25).Equal(res.Fee))
	require.True(t, math.NewInt(975).Equal(res.Payout))
	require.Equal(t, types.AssetType_ASSET_TYPE_NATIVE, res.Asset)

	require.True(t, math.NewInt(25).Equal(f.feeBalance(t, types.AssetType_ASSET_TYPE_NATIVE)))
	require.True(t, f.feeBalance(t, types.AssetType_ASSET_TYPE_STAKED_WRAPPED).IsZero())
	require.Zero(t, f.circulating(t, id))
}

func TestRedeem_TwiceFailsWithNotFound(t *testing.T) {
	f := SetupTest(t)
	owner := f.addrs[1]
	id := f.createCollection(t, nativeConfig(1000, 250))
	gemId := f.mintNative(t, id, owner, 1000)

	// exactly one payout is expected; gomock fails the test on a second one
	f.mockBankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, owner, nativeCoins(975)).Return(nil).Times(1)

	_, err := f.k.Redeem(f.ctx, gemId, owner)
	require.NoError(t, err)

	_, err = f.k.Redeem(f.ctx, gemId, owner)
	require.ErrorIs(t, err, types.ErrNotFound)

	require.True(t, math.NewInt(25).Equal(f.feeBalance(t, types.AssetType_ASSET_TYPE_NATIVE)))
	require.Zero(t, f.circulating(t, id))
}

func TestRedeem_NotOwner(t *testing.T) {
	f := SetupTest(t)
	owner := f.addrs[1]
	id := f.createCollection(t, nativeConfig(1000, 250))
	gemId := f.mintNative(t, id, owner, 1000)

	_, err := f.k.Redeem(f.ctx, gemId, f.addrs[2])
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = f.k.GetGem(f.ctx, gemId)
	require.NoError(t, err)
}

func TestRedeem_UnknownGem(t *testing.T) {
	f := SetupTest(t)

	_, err := f.k.Redeem(f.ctx, 7, f.addrs[1])
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestRedeem_PayoutFailureRestoresGem(t *testing.T) {
	f := SetupTest(t)
	owner := f.addrs[1]
	id := f.createCollection(t, nativeConfig(1000, 250))
	gemId := f.mintNative(t, id, owner, 1000)

	f.mockBankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, owner, nativeCoins(975)).Return(errors.New("module account underfunded"))

	_, err := f.k.Redeem(f.ctx, gemId, owner)
	require.ErrorIs(t, err, types.ErrPayoutFailed)

	gem, err := f.k.GetGem(f.ctx, gemId)
	require.NoError(t, err)
	require.Equal(t, owner.String(), gem.Owner)
	require.Equal(t, uint64(1), f.circulating(t, id))
	require.True(t, f.feeBalance(t, types.AssetType_ASSET_TYPE_NATIVE).IsZero())
}

func TestRedeem_FeeOverflowRollsBack(t *testing.T) {
	f := SetupTest(t)
	owner := f.addrs[1]
	id := f.createCollection(t, nativeConfig(1000, 250))
	gemId := f.mintNative(t, id, owner, 1000)

	maxInt := maxAmount()
	require.NoError(t, f.k.FeeVault.Set(f.ctx, int32(types.AssetType_ASSET_TYPE_NATIVE), maxInt))

	f.mockBankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, owner, nativeCoins(975)).Return(nil)

	_, err := f.k.Redeem(f.ctx, gemId, owner)
	require.ErrorIs(t, err, types.ErrOverflow)

	_, err = f.k.GetGem(f.ctx, gemId)
	require.NoError(t, err)
	require.True(t, maxInt.Equal(f.feeBalance(t, types.AssetType_ASSET_TYPE_NATIVE)))
}

func TestRedeem_ZeroFeeAndFullFee(t *testing.T) {
	f := SetupTest(t)
	owner := f.addrs[1]

	free := f.createCollection(t, nativeConfig(1000, 0))
	freeGem := f.mintNative(t, free, owner, 1000)
	f.mockBankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, owner, nativeCoins(1000)).Return(nil)

	res, err := f.k.Redeem(f.ctx, freeGem, owner)
	require.NoError(t, err)
	require.True(t, res.Fee.IsZero())

	all := f.createCollection(t, nativeConfig(1000, 10000))
	allGem := f.mintNative(t, all, owner, 1000)

	// nothing to pay out, so no transfer happens
	res, err = f.k.Redeem(f.ctx, allGem, owner)
	require.NoError(t, err)
	require.True(t, res.Payout.IsZero())
	require.True(t, math.NewInt(1000).Equal(f.feeBalance(t, types.AssetType_ASSET_TYPE_NATIVE)))
}

func TestRedeem_FeesStaySeparatedPerAsset(t *testing.T) {
	f := SetupTest(t)
	owner := f.addrs[1]
	nativeId := f.createCollection(t, nativeConfig(1000, 250))
	wrappedId := f.createCollection(t, wrappedConfig(2000, 500))

	var nativeGems, wrappedGems []uint64
	for i := 0; i < 3; i++ {
		nativeGems = append(nativeGems, f.mintNative(t, nativeId, owner, 1000))
	}
	for i := 0; i < 2; i++ {
		wrappedGems = append(wrappedGems, f.mintWrapped(t, wrappedId, owner, 2000))
	}

	f.mockBankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, owner, nativeCoins(975)).Return(nil).Times(3)
	f.mockBankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, owner, wrappedCoins(1900)).Return(nil).Times(2)

	for _, id := range nativeGems {
		_, err := f.k.Redeem(f.ctx, id, owner)
		require.NoError(t, err)
	}
	for _, id := range wrappedGems {
		res, err := f.k.Redeem(f.ctx, id, owner)
		require.NoError(t, err)
		require.Equal(t, types.AssetType_ASSET_TYPE_STAKED_WRAPPED, res.Asset)
	}

	require.True(t, math.NewInt(75).Equal(f.feeBalance(t, types.AssetType_ASSET_TYPE_NATIVE)))
	require.True(t, math.NewInt(200).Equal(f.feeBalance(t, types.AssetType_ASSET_TYPE_STAKED_WRAPPED)))

	recipient := f.addrs[3]
	f.mockBankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, recipient, wrappedCoins(200)).Return(nil)
	amount, err := f.k.WithdrawFees(f.ctx, types.AssetType_ASSET_TYPE_STAKED_WRAPPED, recipient)
	require.NoError(t, err)
	require.True(t, math.NewInt(200).Equal(amount))

	require.True(t, math.NewInt(75).Equal(f.feeBalance(t, types.AssetType_ASSET_TYPE_NATIVE)))
	require.True(t, f.feeBalance(t, types.AssetType_ASSET_TYPE_STAKED_WRAPPED).IsZero())
}

func TestRedeem_PaysInFrozenAssetAfterBackingChange(t *testing.T) {
	f := SetupTest(t)
	owner := f.addrs[1]
	id := f.createCollection(t, nativeConfig(1000, 250))
	gemId := f.mintNative(t, id, owner, 1000)

	wrapped := types.AssetType_ASSET_TYPE_STAKED_WRAPPED
	_, err := f.k.UpdateCollection(f.ctx, id, types.CollectionUpdate{BackingAsset: &wrapped})
	require.NoError(t, err)

	f.mockBankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, owner, nativeCoins(975)).Return(nil)
	res, err := f.k.Redeem(f.ctx, gemId, owner)
	require.NoError(t, err)
	require.Equal(t, types.AssetType_ASSET_TYPE_NATIVE, res.Asset)
	require.True(t, math.NewInt(25).Equal(f.feeBalance(t, types.AssetType_ASSET_TYPE_NATIVE)))
	require.True(t, f.feeBalance(t, types.AssetType_ASSET_TYPE_STAKED_WRAPPED).IsZero())
}

func TestRedeem_AfterOwnerReassigned(t *testing.T) {
	f := SetupTest(t)
	minter, buyer := f.addrs[1], f.addrs[2]
	id := f.createCollection(t, nativeConfig(1000, 250))
	gemId := f.mintNative(t, id, minter, 1000)

	require.NoError(t, f.k.ReassignOwner(f.ctx, gemId, buyer))

	_, err := f.k.Redeem(f.ctx, gemId, minter)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	f.mockBankKeeper.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, buyer, nativeCoins(975)).Return(nil)
	_, err = f.k.Redeem(f.ctx, gemId, buyer)
	require.NoError(t, err)

	require.ErrorIs(t, f.k.ReassignOwner(f.ctx, gemId, minter), types.ErrNotFound)
}

func TestRedeem_UncountedGemIsInvariantBreach(t *testing.T) {
	f := SetupTest(t)
	owner := f.addrs[1]
	id := f.createCollection(t, nativeConfig(1000, 250))
	gemId := f.mintNative(t, id, owner, 1000)

	c, err := f.k.GetCollection(f.ctx, id)
	require.NoError(t, err)
	c.CirculatingGems = 0
	require.NoError(t, f.k.Collections.Set(f.ctx, id, c))

	_, err = f.k.Redeem(f.ctx, gemId, owner)
	require.ErrorIs(t, err, types.ErrInvariantBroken)

	_, err = f.k.GetGem(f.ctx, gemId)
	require.NoError(t, err)
	require.True(t, f.feeBalance(t, types.AssetType_ASSET_TYPE_NATIVE).IsZero())
}
