package main

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkversion "github.com/cosmos/cosmos-sdk/version"

	"github.com/pushchain/gem-vault/x/gem/types"
)

const (
	flagChainID      = "chain-id"
	flagCollectionID = "collection-id"
	flagPayer        = "payer"
	flagDeposit      = "deposit"
	flagNonce        = "nonce"
	flagValidator    = "validator"
	flagSignature    = "signature"
)

func InitRootCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(addressCmd())
	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(verifyCmd())
	rootCmd.AddCommand(versionCmd())
}

func addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the validator address of the configured key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := loadValidatorKey(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.PubkeyToAddress(key.PublicKey).Hex())
			return nil
		},
	}
}

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a mint approval for one collection, payer, deposit and nonce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := cmdLogger(cmd)
			if err != nil {
				return err
			}
			req, err := approvalRequestFromFlags(cmd)
			if err != nil {
				return err
			}
			key, err := loadValidatorKey(cmd)
			if err != nil {
				return err
			}

			sig, err := types.SignMintApproval(req, key)
			if err != nil {
				return fmt.Errorf("failed to sign approval: %w", err)
			}

			log.Info().
				Str("chain_id", req.ChainId).
				Uint64("collection_id", req.CollectionId).
				Str("payer", req.Payer.String()).
				Str("deposit", req.Deposit.String()).
				Uint64("nonce", req.Nonce).
				Str("validator", crypto.PubkeyToAddress(key.PublicKey).Hex()).
				Msg("mint approval signed")

			fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(sig))
			return nil
		},
	}
	addApprovalFlags(cmd)
	return cmd
}

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a mint approval signature against a validator address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := cmdLogger(cmd)
			if err != nil {
				return err
			}
			req, err := approvalRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			validator, _ := cmd.Flags().GetString(flagValidator)
			if !common.IsHexAddress(validator) {
				return fmt.Errorf("invalid validator address %q", validator)
			}
			sigHex, _ := cmd.Flags().GetString(flagSignature)
			sig, err := hexutil.Decode(sigHex)
			if err != nil {
				return fmt.Errorf("invalid signature: %w", err)
			}

			digest, err := req.Digest()
			if err != nil {
				return err
			}
			ok, err := types.EthApprovalVerifier{}.VerifyMintApproval(digest, sig, common.HexToAddress(validator))
			if err != nil {
				return err
			}
			if !ok {
				log.Warn().Str("validator", validator).Str("digest", digest.Hex()).Msg("approval not signed by validator")
				return fmt.Errorf("approval was not signed by %s", validator)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	addApprovalFlags(cmd)
	cmd.Flags().String(flagValidator, "", "expected validator address (hex)")
	cmd.Flags().String(flagSignature, "", "approval signature (0x prefixed hex)")
	_ = cmd.MarkFlagRequired(flagValidator)
	_ = cmd.MarkFlagRequired(flagSignature)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gemsigner version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Name:       %s\n", sdkversion.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Version:    %s\n", sdkversion.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Commit:     %s\n", sdkversion.Commit)
		},
	}
}

func addApprovalFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagChainID, "", "chain id the mint executes on")
	cmd.Flags().Uint64(flagCollectionID, 0, "collection id")
	cmd.Flags().String(flagPayer, "", "bech32 address of the payer")
	cmd.Flags().String(flagDeposit, "", "deposit amount in the native denom")
	cmd.Flags().Uint64(flagNonce, 0, "payer's approval nonce in the collection (see the approval nonce query)")
	_ = cmd.MarkFlagRequired(flagChainID)
	_ = cmd.MarkFlagRequired(flagPayer)
	_ = cmd.MarkFlagRequired(flagDeposit)
}

func approvalRequestFromFlags(cmd *cobra.Command) (types.MintApprovalRequest, error) {
	chainID, _ := cmd.Flags().GetString(flagChainID)
	collectionID, _ := cmd.Flags().GetUint64(flagCollectionID)
	payerStr, _ := cmd.Flags().GetString(flagPayer)
	depositStr, _ := cmd.Flags().GetString(flagDeposit)
	nonce, _ := cmd.Flags().GetUint64(flagNonce)

	payer, err := sdk.AccAddressFromBech32(payerStr)
	if err != nil {
		return types.MintApprovalRequest{}, fmt.Errorf("invalid payer address: %w", err)
	}
	deposit, ok := math.NewIntFromString(depositStr)
	if !ok || !deposit.IsPositive() {
		return types.MintApprovalRequest{}, fmt.Errorf("invalid deposit %q", depositStr)
	}

	return types.MintApprovalRequest{
		ChainId:      chainID,
		CollectionId: collectionID,
		Payer:        payer,
		Deposit:      deposit,
		Nonce:        nonce,
	}, nil
}

func loadValidatorKey(cmd *cobra.Command) (*ecdsa.PrivateKey, error) {
	envName, _ := cmd.Flags().GetString(flagKeyEnv)
	raw := strings.TrimSpace(os.Getenv(envName))
	if raw == "" {
		return nil, fmt.Errorf("validator key not set, export %s or add it to .env", envName)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid validator key in %s: %w", envName, err)
	}
	return key, nil
}
