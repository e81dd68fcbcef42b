package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeCollectionCreated = "collection_created"
	EventTypeCollectionUpdated = "collection_updated"
	EventTypeGemMinted         = "gem_minted"
	EventTypeGemRedeemed       = "gem_redeemed"
	EventTypeGemOwnerChanged   = "gem_owner_changed"
	EventTypeFeesWithdrawn     = "fees_withdrawn"

	AttributeKeyCollectionId = "collection_id"
	AttributeKeyGemId        = "gem_id"
	AttributeKeyOwner        = "owner"
	AttributeKeyAsset        = "asset"
	AttributeKeyAmount       = "amount"
	AttributeKeyFee          = "fee"
	AttributeKeyRefund       = "refund"
	AttributeKeyRecipient    = "recipient"
	AttributeKeyData         = "data"
)

// GemMintedEvent represents a successful mint.
type GemMintedEvent struct {
	GemId        uint64 `json:"gem_id"`
	CollectionId uint64 `json:"collection_id"`
	Owner        string `json:"owner"`
	Asset        string `json:"asset"`
	Collateral   string `json:"collateral"`
	Refund       string `json:"refund"`
}

// GemRedeemedEvent represents a successful redemption.
type GemRedeemedEvent struct {
	GemId        uint64 `json:"gem_id"`
	CollectionId uint64 `json:"collection_id"`
	Owner        string `json:"owner"`
	Asset        string `json:"asset"`
	Payout       string `json:"payout"`
	Fee          string `json:"fee"`
}

// NewGemMintedEvent creates a Cosmos SDK event for a mint.
func NewGemMintedEvent(e GemMintedEvent) (sdk.Event, error) {
	bz, err := json.Marshal(e)
	if err != nil {
		return sdk.Event{}, fmt.Errorf("failed to marshal gem minted event: %w", err)
	}

	return sdk.NewEvent(
		EventTypeGemMinted,
		sdk.NewAttribute(AttributeKeyGemId, strconv.FormatUint(e.GemId, 10)),
		sdk.NewAttribute(AttributeKeyCollectionId, strconv.FormatUint(e.CollectionId, 10)),
		sdk.NewAttribute(AttributeKeyOwner, e.Owner),
		sdk.NewAttribute(AttributeKeyAsset, e.Asset),
		sdk.NewAttribute(AttributeKeyAmount, e.Collateral),
		sdk.NewAttribute(AttributeKeyRefund, e.Refund),
		sdk.NewAttribute(AttributeKeyData, string(bz)), // full JSON payload for indexers
	), nil
}

// NewGemRedeemedEvent creates a Cosmos SDK event for a redemption.
func NewGemRedeemedEvent(e GemRedeemedEvent) (sdk.Event, error) {
	bz, err := json.Marshal(e)
	if err != nil {
		return sdk.Event{}, fmt.Errorf("failed to marshal gem redeemed event: %w", err)
	}

	return sdk.NewEvent(
		EventTypeGemRedeemed,
		sdk.NewAttribute(AttributeKeyGemId, strconv.FormatUint(e.GemId, 10)),
		sdk.NewAttribute(AttributeKeyCollectionId, strconv.FormatUint(e.CollectionId, 10)),
		sdk.NewAttribute(AttributeKeyOwner, e.Owner),
		sdk.NewAttribute(AttributeKeyAsset, e.Asset),
		sdk.NewAttribute(AttributeKeyAmount, e.Payout),
		sdk.NewAttribute(AttributeKeyFee, e.Fee),
		sdk.NewAttribute(AttributeKeyData, string(bz)),
	), nil
}

// NewCollectionEvent creates a created/updated event for a collection.
func NewCollectionEvent(eventType string, c Collection) sdk.Event {
	return sdk.NewEvent(
		eventType,
		sdk.NewAttribute(AttributeKeyCollectionId, strconv.FormatUint(c.Id, 10)),
		sdk.NewAttribute(AttributeKeyAsset, c.BackingAsset.String()),
		sdk.NewAttribute(AttributeKeyAmount, c.MintPrice.String()),
		sdk.NewAttribute(AttributeKeyFee, strconv.FormatUint(uint64(c.RedeemFeeRateBps), 10)),
	)
}
