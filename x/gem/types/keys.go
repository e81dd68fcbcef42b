package types

import (
	"cosmossdk.io/collections"
)

var (
	// ParamsKey saves the current module params.
	ParamsKey = collections.NewPrefix(0)

	// ParamsName is the name of the params collection.
	ParamsName = "params"

	// CollectionsKey saves the collection configurations, keyed by collection id.
	CollectionsKey = collections.NewPrefix(1)

	// CollectionsName is the name of the collections map.
	CollectionsName = "collections"

	// CollectionSeqKey saves the next collection id.
	CollectionSeqKey = collections.NewPrefix(2)

	// CollectionSeqName is the name of the collection id sequence.
	CollectionSeqName = "collection_seq"

	// GemsKey saves the minted gem records, keyed by gem id.
	GemsKey = collections.NewPrefix(3)

	// GemsName is the name of the gems map.
	GemsName = "gems"

	// GemSeqKey saves the next gem id.
	GemSeqKey = collections.NewPrefix(4)

	// GemSeqName is the name of the gem id sequence.
	GemSeqName = "gem_seq"

	// FeeVaultKey saves the per-asset fee accumulators.
	FeeVaultKey = collections.NewPrefix(5)

	// FeeVaultName is the name of the fee vault map.
	FeeVaultName = "fee_vault"

	// ApprovalNoncesKey saves the next approval nonce per (collection id, payer).
	ApprovalNoncesKey = collections.NewPrefix(6)

	// ApprovalNoncesName is the name of the approval nonces map.
	ApprovalNoncesName = "approval_nonces"
)

const (
	ModuleName = "gem"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)
