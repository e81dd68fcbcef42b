package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultNativeDenom  = "upc"
	DefaultWrappedDenom = "wstupc"
)

// Params holds the module configuration.
type Params struct {
	// Admin may create and update collections and withdraw fees.
	Admin string `json:"admin"`
	// NativeDenom is the bank denom of the native asset.
	NativeDenom string `json:"native_denom"`
	// WrappedDenom is the bank denom of the staked/wrapped asset.
	WrappedDenom string `json:"wrapped_denom"`
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		Admin:        "",
		NativeDenom:  DefaultNativeDenom,
		WrappedDenom: DefaultWrappedDenom,
	}
}

// Validate does the sanity check on the params.
func (p Params) Validate() error {
	if p.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
			return fmt.Errorf("invalid admin address: %w", err)
		}
	}
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return fmt.Errorf("invalid native denom: %w", err)
	}
	if err := sdk.ValidateDenom(p.WrappedDenom); err != nil {
		return fmt.Errorf("invalid wrapped denom: %w", err)
	}
	if p.NativeDenom == p.WrappedDenom {
		return fmt.Errorf("native and wrapped denoms must differ, both are %s", p.NativeDenom)
	}
	return nil
}

// DenomFor maps an asset type to the bank denom it settles in.
func (p Params) DenomFor(asset AssetType) (string, error) {
	switch asset {
	case AssetType_ASSET_TYPE_NATIVE:
		return p.NativeDenom, nil
	case AssetType_ASSET_TYPE_STAKED_WRAPPED:
		return p.WrappedDenom, nil
	default:
		return "", asset.Validate()
	}
}
