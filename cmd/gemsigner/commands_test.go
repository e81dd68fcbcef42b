package main

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pushchain/gem-vault/x/gem/types"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func setTestKey(t *testing.T) string {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	t.Setenv(defaultKeyEnv, "0x"+hex.EncodeToString(crypto.FromECDSA(key)))
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func TestAddressCmd(t *testing.T) {
	validator := setTestKey(t)

	out, _, err := execute(t, "address")
	require.NoError(t, err)
	require.Equal(t, validator, strings.TrimSpace(out))
}

func TestAddressCmd_MissingKey(t *testing.T) {
	t.Setenv(defaultKeyEnv, "")

	_, _, err := execute(t, "address")
	require.ErrorContains(t, err, defaultKeyEnv)
}

func TestSignAndVerifyCmd(t *testing.T) {
	validator := setTestKey(t)
	payer := sdk.AccAddress([]byte("gemsigner_payer_____"))

	approvalArgs := []string{
		"--chain-id", "gem-test-1",
		"--collection-id", "2",
		"--payer", payer.String(),
		"--deposit", "1500",
		"--nonce", "7",
	}

	out, stderr, err := execute(t, append([]string{"sign", "--log-format", "json"}, approvalArgs...)...)
	require.NoError(t, err)
	require.Contains(t, stderr, `"message":"mint approval signed"`)
	sigHex := strings.TrimSpace(out)

	sig, err := hexutil.Decode(sigHex)
	require.NoError(t, err)
	digest, err := types.MintApprovalRequest{
		ChainId:      "gem-test-1",
		CollectionId: 2,
		Payer:        payer,
		Deposit:      math.NewInt(1500),
		Nonce:        7,
	}.Digest()
	require.NoError(t, err)
	pub, err := crypto.SigToPub(digest.Bytes(), sig)
	require.NoError(t, err)
	require.Equal(t, validator, crypto.PubkeyToAddress(*pub).Hex())

	t.Run("verify accepts the signature", func(t *testing.T) {
		out, _, err := execute(t, append([]string{"verify", "--validator", validator, "--signature", sigHex}, approvalArgs...)...)
		require.NoError(t, err)
		require.Equal(t, "valid", strings.TrimSpace(out))
	})

	t.Run("verify rejects another nonce", func(t *testing.T) {
		args := append([]string{"verify", "--validator", validator, "--signature", sigHex}, approvalArgs[:len(approvalArgs)-1]...)
		args = append(args, "8")
		_, _, err := execute(t, args...)
		require.ErrorContains(t, err, "was not signed by")
	})
}

func TestSignCmd_InvalidInput(t *testing.T) {
	setTestKey(t)
	payer := sdk.AccAddress([]byte("gemsigner_payer_____")).String()

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "bad payer",
			args: []string{"sign", "--chain-id", "c", "--payer", "nope", "--deposit", "10"},
			want: "invalid payer address",
		},
		{
			name: "zero deposit",
			args: []string{"sign", "--chain-id", "c", "--payer", payer, "--deposit", "0"},
			want: "invalid deposit",
		},
		{
			name: "bad log level",
			args: []string{"sign", "--log-level", "loud", "--chain-id", "c", "--payer", payer, "--deposit", "10"},
			want: "loud",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.ErrorContains(t, err, tc.want)
		})
	}
}
