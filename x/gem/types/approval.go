package types

import (
	"crypto/ecdsa"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// mintApprovalDomain separates gem mint approvals from any other payload a validator key signs.
var mintApprovalDomain = []byte("pushchain/x/gem/mint-approval/v1")

// MintApprovalRequest is everything a validator approval is bound to.
// Nonce is the payer's approval nonce in the collection, so one approval authorizes
// exactly one mint and mints elsewhere never invalidate it.
type MintApprovalRequest struct {
	ChainId      string
	CollectionId uint64
	Payer        sdk.AccAddress
	Deposit      math.Int
	Nonce        uint64
}

// Digest returns keccak256(domain || len(chainId) || chainId || collectionId || len(payer) || payer || deposit || nonce),
// integers big-endian and the deposit left padded to 32 bytes.
func (r MintApprovalRequest) Digest() (common.Hash, error) {
	if r.Deposit.IsNil() || r.Deposit.IsNegative() {
		return common.Hash{}, fmt.Errorf("deposit must be non-negative")
	}
	depositBz := r.Deposit.BigInt().Bytes()
	if len(depositBz) > 32 {
		return common.Hash{}, fmt.Errorf("deposit exceeds 256 bits")
	}

	buf := make([]byte, 0, len(mintApprovalDomain)+8+len(r.ChainId)+8+8+len(r.Payer)+32+8)
	buf = append(buf, mintApprovalDomain...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(r.ChainId)))
	buf = append(buf, r.ChainId...)
	buf = binary.BigEndian.AppendUint64(buf, r.CollectionId)
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(r.Payer)))
	buf = append(buf, r.Payer...)
	buf = append(buf, common.LeftPadBytes(depositBz, 32)...)
	buf = binary.BigEndian.AppendUint64(buf, r.Nonce)

	return crypto.Keccak256Hash(buf), nil
}

// SignMintApproval signs the request digest and returns a 65 byte [R || S || V] signature.
func SignMintApproval(req MintApprovalRequest, key *ecdsa.PrivateKey) ([]byte, error) {
	digest, err := req.Digest()
	if err != nil {
		return nil, err
	}
	return crypto.Sign(digest.Bytes(), key)
}

// EthApprovalVerifier verifies secp256k1 recoverable signatures over the approval digest.
type EthApprovalVerifier struct{}

var _ ApprovalVerifier = EthApprovalVerifier{}

// VerifyMintApproval recovers the signer of sig and compares it with validator.
func (EthApprovalVerifier) VerifyMintApproval(digest common.Hash, sig []byte, validator common.Address) (bool, error) {
	if len(sig) != crypto.SignatureLength {
		return false, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(digest.Bytes(), normalized)
	if err != nil {
		return false, fmt.Errorf("failed to recover signer: %w", err)
	}
	return crypto.PubkeyToAddress(*pub) == validator, nil
}
