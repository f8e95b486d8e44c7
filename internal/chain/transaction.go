package chain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

var (
	ErrInvalidRecipient = errors.New("recipient account is not a valid public key")
	ErrInvalidFee       = errors.New("processing fee must be positive")
)

// Fee - the processing fee every move pays to the program-controlled account.
type Fee struct {
	Recipient solana.PublicKey
	Lamports  uint64
}

// NewFee - parses the recipient and converts the fee from SOL to lamports.
func NewFee(recipient string, sol float64) (Fee, error) {
	key, err := solana.PublicKeyFromBase58(strings.TrimSpace(recipient))
	if err != nil {
		return Fee{}, fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
	}

	lamports := math.Round(sol * float64(solana.LAMPORTS_PER_SOL))
	if lamports <= 0 {
		return Fee{}, fmt.Errorf("%w: %v", ErrInvalidFee, sol)
	}

	return Fee{Recipient: key, Lamports: uint64(lamports)}, nil
}

// ParseAccount - parses a base58 encoded wallet address.
func ParseAccount(account string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(account)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to parse public key: %w", err)
	}

	return key, nil
}

// BuildFeeTransaction - a v0 transaction with a single transfer of the fee from the payer.
// The transaction is left unsigned; the wallet signs it.
func BuildFeeTransaction(fee Fee, payer solana.PublicKey, blockhash solana.Hash) (*solana.Transaction, error) {
	transfer := system.NewTransferInstruction(fee.Lamports, payer, fee.Recipient).Build()

	tx, err := solana.NewTransaction(
		[]solana.Instruction{transfer},
		blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}

	tx.Message.SetVersion(solana.MessageVersionV0)

	// empty signature slots so that wallets can sign in place
	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)

	return tx, nil
}

func EncodeTransaction(tx *solana.Transaction) (string, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}
