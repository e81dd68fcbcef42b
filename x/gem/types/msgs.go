package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MintRequest is the input of a mint.
type MintRequest struct {
	CollectionId uint64
	Payer        sdk.AccAddress
	Deposit      math.Int
	// Approval is the validator signature; only consulted for gated collections.
	Approval []byte
}

// MsgUpdateParams updates the module params; signed by the governance authority.
type MsgUpdateParams struct {
	Authority string
	Params    Params
}

// MsgCreateCollection registers a new collection; signed by the params admin.
type MsgCreateCollection struct {
	Signer string
	Config CollectionConfig
}

// MsgUpdateCollection changes an existing collection; signed by the params admin.
type MsgUpdateCollection struct {
	Signer       string
	CollectionId uint64
	Update       CollectionUpdate
}

// MsgWithdrawFees drains one fee accumulator to Recipient; signed by the params admin.
type MsgWithdrawFees struct {
	Signer    string
	Asset     AssetType
	Recipient string
}

// MsgMint mints a gem paid for by Payer.
type MsgMint struct {
	Payer        string
	CollectionId uint64
	Deposit      math.Int
	Approval     []byte
}

// MsgRedeem burns a gem and pays its collateral, net of fee, to Owner.
type MsgRedeem struct {
	Owner string
	GemId uint64
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return ErrInvalidRequest.Wrapf("invalid %s address: %s", field, err)
	}
	return nil
}

func (m MsgUpdateParams) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if err := m.Params.Validate(); err != nil {
		return ErrInvalidParams.Wrap(err.Error())
	}
	return nil
}

func (m MsgCreateCollection) ValidateBasic() error {
	if err := validateAddress("signer", m.Signer); err != nil {
		return err
	}
	return m.Config.Validate()
}

func (m MsgUpdateCollection) ValidateBasic() error {
	return validateAddress("signer", m.Signer)
}

func (m MsgWithdrawFees) ValidateBasic() error {
	if err := validateAddress("signer", m.Signer); err != nil {
		return err
	}
	if err := validateAddress("recipient", m.Recipient); err != nil {
		return err
	}
	return m.Asset.Validate()
}

func (m MsgMint) ValidateBasic() error {
	if err := validateAddress("payer", m.Payer); err != nil {
		return err
	}
	if m.Deposit.IsNil() || !m.Deposit.IsPositive() {
		return ErrInvalidRequest.Wrap("deposit must be positive")
	}
	return nil
}

func (m MsgRedeem) ValidateBasic() error {
	return validateAddress("owner", m.Owner)
}
