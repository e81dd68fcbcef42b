package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// MaxFeeRateBps is the basis point denominator. Fee rates are always parts per 10000.
const MaxFeeRateBps uint32 = 10000

// CollectionConfig is the administratively settable part of a collection.
type CollectionConfig struct {
	BackingAsset      AssetType `json:"backing_asset"`
	MintPrice         math.Int  `json:"mint_price"`
	RedeemFeeRateBps  uint32    `json:"redeem_fee_rate_bps"`
	ValidatorRequired bool      `json:"validator_required"`
	// ValidatorAddress is a hex EVM address; empty means no validator.
	ValidatorAddress string `json:"validator_address,omitempty"`
	// MaxSupply caps circulating gems; zero means uncapped.
	MaxSupply uint64 `json:"max_supply,omitempty"`
}

// Collection is a class of issuable gems.
type Collection struct {
	Id uint64 `json:"id"`
	CollectionConfig
	CirculatingGems uint64 `json:"circulating_gems"`
	TotalMinted     uint64 `json:"total_minted"`
}

// CollectionUpdate carries the fields an update changes. Nil fields keep their value.
type CollectionUpdate struct {
	BackingAsset      *AssetType `json:"backing_asset,omitempty"`
	MintPrice         *math.Int  `json:"mint_price,omitempty"`
	RedeemFeeRateBps  *uint32    `json:"redeem_fee_rate_bps,omitempty"`
	ValidatorRequired *bool      `json:"validator_required,omitempty"`
	ValidatorAddress  *string    `json:"validator_address,omitempty"`
	MaxSupply         *uint64    `json:"max_supply,omitempty"`
}

// Validate checks the collection invariants: a known backing asset, a positive mint
// price, a fee rate within basis-point range and a real validator whenever one is required.
func (c CollectionConfig) Validate() error {
	if err := c.BackingAsset.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidConfig, err.Error())
	}
	if c.MintPrice.IsNil() || !c.MintPrice.IsPositive() {
		return errorsmod.Wrap(ErrInvalidConfig, "mint price must be positive")
	}
	if c.RedeemFeeRateBps > MaxFeeRateBps {
		return errorsmod.Wrapf(ErrInvalidConfig, "redeem fee rate %d exceeds %d bps", c.RedeemFeeRateBps, MaxFeeRateBps)
	}
	if c.ValidatorAddress != "" && !common.IsHexAddress(c.ValidatorAddress) {
		return errorsmod.Wrapf(ErrInvalidConfig, "validator address %q is not a hex address", c.ValidatorAddress)
	}
	if c.ValidatorRequired && !c.HasValidator() {
		return errorsmod.Wrap(ErrInvalidConfig, "validator required but no validator address set")
	}
	return nil
}

// HasValidator reports whether a non-zero validator address is configured.
func (c CollectionConfig) HasValidator() bool {
	if !common.IsHexAddress(c.ValidatorAddress) {
		return false
	}
	return common.HexToAddress(c.ValidatorAddress) != (common.Address{})
}

// Validator returns the configured validator address.
func (c CollectionConfig) Validator() common.Address {
	return common.HexToAddress(c.ValidatorAddress)
}

// Validate checks the stored collection, including its supply bookkeeping.
func (c Collection) Validate() error {
	if err := c.CollectionConfig.Validate(); err != nil {
		return err
	}
	if c.MaxSupply != 0 && c.CirculatingGems > c.MaxSupply {
		return errorsmod.Wrapf(ErrInvalidConfig, "max supply %d is below circulating gems %d", c.MaxSupply, c.CirculatingGems)
	}
	if c.CirculatingGems > c.TotalMinted {
		return errorsmod.Wrapf(ErrInvalidConfig, "circulating gems %d exceed total minted %d", c.CirculatingGems, c.TotalMinted)
	}
	return nil
}

// Apply merges the update onto a copy of the collection and returns it.
func (u CollectionUpdate) Apply(c Collection) Collection {
	if u.BackingAsset != nil {
		c.BackingAsset = *u.BackingAsset
	}
	if u.MintPrice != nil {
		c.MintPrice = *u.MintPrice
	}
	if u.RedeemFeeRateBps != nil {
		c.RedeemFeeRateBps = *u.RedeemFeeRateBps
	}
	if u.ValidatorRequired != nil {
		c.ValidatorRequired = *u.ValidatorRequired
	}
	if u.ValidatorAddress != nil {
		c.ValidatorAddress = *u.ValidatorAddress
	}
	if u.MaxSupply != nil {
		c.MaxSupply = *u.MaxSupply
	}
	return c
}

// HasSupplyFor reports whether one more gem fits under the cap.
func (c Collection) HasSupplyFor() bool {
	return c.MaxSupply == 0 || c.CirculatingGems+1 <= c.MaxSupply
}
