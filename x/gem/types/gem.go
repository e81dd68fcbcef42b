package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Gem is one minted collateral-backed unit. CollateralAsset is fixed at mint time.
type Gem struct {
	Id               uint64    `json:"id"`
	CollectionId     uint64    `json:"collection_id"`
	Owner            string    `json:"owner"`
	CollateralAmount math.Int  `json:"collateral_amount"`
	CollateralAsset  AssetType `json:"collateral_asset"`
}

func (g Gem) Validate() error {
	if _, err := sdk.AccAddressFromBech32(g.Owner); err != nil {
		return fmt.Errorf("gem %d: invalid owner: %w", g.Id, err)
	}
	if g.CollateralAmount.IsNil() || g.CollateralAmount.IsNegative() {
		return fmt.Errorf("gem %d: collateral amount must be non-negative", g.Id)
	}
	if err := g.CollateralAsset.Validate(); err != nil {
		return fmt.Errorf("gem %d: %w", g.Id, err)
	}
	return nil
}

// IsOwnedBy reports whether addr owns the gem.
func (g Gem) IsOwnedBy(addr sdk.AccAddress) bool {
	return g.Owner == addr.String()
}

// Receipt is what the asset converter hands back: an amount held in one asset form.
type Receipt struct {
	Asset  AssetType
	Amount math.Int
}

// RedeemResult is the outcome of a successful redemption.
type RedeemResult struct {
	Payout math.Int
	Fee    math.Int
	Asset  AssetType
}
