package keeper_test

import (
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/pushchain/gem-vault/x/gem/keeper"
	"github.com/pushchain/gem-vault/x/gem/mocks"
	"github.com/pushchain/gem-vault/x/gem/types"
)

const testChainID = "gem-test-1"

type testFixture struct {
	ctx       sdk.Context
	k         keeper.Keeper
	msgServer keeper.MsgServer
	querier   keeper.Querier

	addrs      []sdk.AccAddress
	admin      sdk.AccAddress
	govModAddr string

	ctrl              *gomock.Controller
	mockBankKeeper    *mocks.MockBankKeeper
	mockStakingKeeper *mocks.MockLiquidStakingKeeper
}

func SetupTest(t *testing.T) *testFixture {
	t.Helper()
	f := new(testFixture)

	f.ctrl = gomock.NewController(t)
	t.Cleanup(f.ctrl.Finish)

	f.mockBankKeeper = mocks.NewMockBankKeeper(f.ctrl)
	f.mockStakingKeeper = mocks.NewMockLiquidStakingKeeper(f.ctrl)

	// Base setup
	logger := log.NewTestLogger(t)

	f.govModAddr = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	f.addrs = simtestutil.CreateIncrementalAccounts(4)
	f.admin = f.addrs[0]

	keys := storetypes.NewKVStoreKeys(types.ModuleName)
	f.ctx = sdk.NewContext(integration.CreateMultiStore(keys, logger), cmtproto.Header{ChainID: testChainID}, false, logger)

	// Setup Keeper.
	f.k = keeper.NewKeeper(runtime.NewKVStoreService(keys[types.ModuleName]), logger, f.govModAddr, f.mockBankKeeper, f.mockStakingKeeper, nil)
	f.msgServer = keeper.NewMsgServerImpl(f.k)
	f.querier = keeper.NewQuerier(f.k)

	params := types.DefaultParams()
	params.Admin = f.admin.String()
	require.NoError(t, f.k.Params.Set(f.ctx, params))

	return f
}

func nativeConfig(price int64, feeBps uint32) types.CollectionConfig {
	return types.CollectionConfig{
		BackingAsset:     types.AssetType_ASSET_TYPE_NATIVE,
		MintPrice:        math.NewInt(price),
		RedeemFeeRateBps: feeBps,
	}
}

func wrappedConfig(price int64, feeBps uint32) types.CollectionConfig {
	cfg := nativeConfig(price, feeBps)
	cfg.BackingAsset = types.AssetType_ASSET_TYPE_STAKED_WRAPPED
	return cfg
}

func nativeCoins(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewInt64Coin(types.DefaultNativeDenom, amount))
}

func wrappedCoins(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewInt64Coin(types.DefaultWrappedDenom, amount))
}

func (f *testFixture) createCollection(t *testing.T, cfg types.CollectionConfig) uint64 {
	t.Helper()
	id, err := f.k.CreateCollection(f.ctx, cfg)
	require.NoError(t, err)
	return id
}

// mintNative mints in a native collection with an exact deposit.
func (f *testFixture) mintNative(t *testing.T, collectionId uint64, payer sdk.AccAddress, price int64) uint64 {
	t.Helper()
	f.mockBankKeeper.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), payer, types.ModuleName, nativeCoins(price)).Return(nil)
	id, err := f.k.Mint(f.ctx, types.MintRequest{CollectionId: collectionId, Payer: payer, Deposit: math.NewInt(price)})
	require.NoError(t, err)
	return id
}

// mintWrapped mints in a wrapped collection where staking and wrapping are 1:1.
func (f *testFixture) mintWrapped(t *testing.T, collectionId uint64, payer sdk.AccAddress, price int64) uint64 {
	t.Helper()
	f.mockBankKeeper.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), payer, types.ModuleName, nativeCoins(price)).Return(nil)
	f.mockStakingKeeper.EXPECT().Stake(gomock.Any(), f.k.ModuleAddress(), math.NewInt(price)).Return(math.NewInt(price), nil)
	f.mockStakingKeeper.EXPECT().Wrap(gomock.Any(), f.k.ModuleAddress(), math.NewInt(price)).Return(math.NewInt(price), nil)
	id, err := f.k.Mint(f.ctx, types.MintRequest{CollectionId: collectionId, Payer: payer, Deposit: math.NewInt(price)})
	require.NoError(t, err)
	return id
}

func (f *testFixture) feeBalance(t *testing.T, asset types.AssetType) math.Int {
	t.Helper()
	amount, err := f.k.GetFeeBalance(f.ctx, asset)
	require.NoError(t, err)
	return amount
}

func (f *testFixture) circulating(t *testing.T, collectionId uint64) uint64 {
	t.Helper()
	c, err := f.k.GetCollection(f.ctx, collectionId)
	require.NoError(t, err)
	return c.CirculatingGems
}

// maxAmount is the largest value math.Int can hold, 2^256 - 1.
func maxAmount() math.Int {
	v := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), math.MaxBitLen), big.NewInt(1))
	return math.NewIntFromBigInt(v)
}
