package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// AssetType tags the form value is held in. Fee accumulators and gem collateral are
// keyed by this tag and never by a denom string.
type AssetType int32

const (
	AssetType_ASSET_TYPE_UNSPECIFIED    AssetType = 0
	AssetType_ASSET_TYPE_NATIVE         AssetType = 1
	AssetType_ASSET_TYPE_STAKED_WRAPPED AssetType = 2
)

var AssetType_name = map[AssetType]string{
	AssetType_ASSET_TYPE_UNSPECIFIED:    "ASSET_TYPE_UNSPECIFIED",
	AssetType_ASSET_TYPE_NATIVE:         "ASSET_TYPE_NATIVE",
	AssetType_ASSET_TYPE_STAKED_WRAPPED: "ASSET_TYPE_STAKED_WRAPPED",
}

// AllAssetTypes lists every asset a fee accumulator exists for.
var AllAssetTypes = []AssetType{
	AssetType_ASSET_TYPE_NATIVE,
	AssetType_ASSET_TYPE_STAKED_WRAPPED,
}

func (a AssetType) String() string {
	if name, ok := AssetType_name[a]; ok {
		return name
	}
	return fmt.Sprintf("ASSET_TYPE(%d)", int32(a))
}

// Validate reports an error for anything other than a concrete asset.
func (a AssetType) Validate() error {
	switch a {
	case AssetType_ASSET_TYPE_NATIVE, AssetType_ASSET_TYPE_STAKED_WRAPPED:
		return nil
	default:
		return errorsmod.Wrapf(ErrInvalidAsset, "%s", a)
	}
}

// ParseAssetType accepts either the enum name or the short forms "native" and "wrapped".
func ParseAssetType(s string) (AssetType, error) {
	switch s {
	case "native", "ASSET_TYPE_NATIVE":
		return AssetType_ASSET_TYPE_NATIVE, nil
	case "wrapped", "staked_wrapped", "ASSET_TYPE_STAKED_WRAPPED":
		return AssetType_ASSET_TYPE_STAKED_WRAPPED, nil
	default:
		return AssetType_ASSET_TYPE_UNSPECIFIED, errorsmod.Wrapf(ErrInvalidAsset, "%q", s)
	}
}
