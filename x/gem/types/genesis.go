package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FeeBalance is the accumulated fee for one asset.
type FeeBalance struct {
	Asset  AssetType `json:"asset"`
	Amount math.Int  `json:"amount"`
}

// ApprovalNonce is the next validator approval nonce of a payer in a collection.
type ApprovalNonce struct {
	CollectionId uint64 `json:"collection_id"`
	Payer        string `json:"payer"`
	Nonce        uint64 `json:"nonce"`
}

// GenesisState is the gem module's genesis state.
type GenesisState struct {
	Params           Params          `json:"params"`
	Collections      []Collection    `json:"collections"`
	Gems             []Gem           `json:"gems"`
	Fees             []FeeBalance    `json:"fees"`
	ApprovalNonces   []ApprovalNonce `json:"approval_nonces"`
	NextCollectionId uint64          `json:"next_collection_id"`
	NextGemId        uint64          `json:"next_gem_id"`
}

// NewGenesisState creates a new genesis state with default values.
func NewGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	circulating := make(map[uint64]uint64, len(gs.Collections))
	for _, c := range gs.Collections {
		if _, dup := circulating[c.Id]; dup {
			return fmt.Errorf("duplicate collection id %d", c.Id)
		}
		if c.Id >= gs.NextCollectionId {
			return fmt.Errorf("collection id %d not below next collection id %d", c.Id, gs.NextCollectionId)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("collection %d: %w", c.Id, err)
		}
		circulating[c.Id] = 0
	}

	seenGems := make(map[uint64]struct{}, len(gs.Gems))
	for _, g := range gs.Gems {
		if _, dup := seenGems[g.Id]; dup {
			return fmt.Errorf("duplicate gem id %d", g.Id)
		}
		seenGems[g.Id] = struct{}{}
		if g.Id >= gs.NextGemId {
			return fmt.Errorf("gem id %d not below next gem id %d", g.Id, gs.NextGemId)
		}
		if err := g.Validate(); err != nil {
			return err
		}
		count, ok := circulating[g.CollectionId]
		if !ok {
			return fmt.Errorf("gem %d references unknown collection %d", g.Id, g.CollectionId)
		}
		circulating[g.CollectionId] = count + 1
	}

	for _, c := range gs.Collections {
		if circulating[c.Id] != c.CirculatingGems {
			return fmt.Errorf("collection %d records %d circulating gems, genesis holds %d", c.Id, c.CirculatingGems, circulating[c.Id])
		}
	}

	seenFees := make(map[AssetType]struct{}, len(gs.Fees))
	for _, f := range gs.Fees {
		if err := f.Asset.Validate(); err != nil {
			return err
		}
		if _, dup := seenFees[f.Asset]; dup {
			return fmt.Errorf("duplicate fee balance for %s", f.Asset)
		}
		seenFees[f.Asset] = struct{}{}
		if f.Amount.IsNil() || f.Amount.IsNegative() {
			return fmt.Errorf("fee balance for %s must be non-negative", f.Asset)
		}
	}

	seenNonces := make(map[string]struct{}, len(gs.ApprovalNonces))
	for _, n := range gs.ApprovalNonces {
		if _, ok := circulating[n.CollectionId]; !ok {
			return fmt.Errorf("approval nonce references unknown collection %d", n.CollectionId)
		}
		payer, err := sdk.AccAddressFromBech32(n.Payer)
		if err != nil {
			return fmt.Errorf("approval nonce payer: %w", err)
		}
		key := fmt.Sprintf("%d/%s", n.CollectionId, payer)
		if _, dup := seenNonces[key]; dup {
			return fmt.Errorf("duplicate approval nonce for collection %d and payer %s", n.CollectionId, n.Payer)
		}
		seenNonces[key] = struct{}{}
	}

	return nil
}
