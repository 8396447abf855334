package soroban

import (
	"fmt"
	"strings"

	"github.com/stellar/go/network"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

// Network names the Stellar network a client talks to.
type Network string

// Supported networks.
const (
	Testnet   Network = "testnet"
	Mainnet   Network = "mainnet"
	Futurenet Network = "futurenet"
)

// Passphrase returns the network passphrase used for transaction hashing and signing.
func (n Network) Passphrase() (string, error) {
	switch Network(strings.ToLower(string(n))) {
	case Testnet:
		return network.TestNetworkPassphrase, nil
	case Mainnet:
		return network.PublicNetworkPassphrase, nil
	case Futurenet:
		return network.FutureNetworkPassphrase, nil
	default:
		return "", fmt.Errorf("unknown network %q", n)
	}
}

// NativeTokenAddress returns the contract address (C...) of the native asset's Stellar Asset
// Contract on the network identified by passphrase.
func NativeTokenAddress(passphrase string) (string, error) {
	id, err := xdr.MustNewNativeAsset().ContractID(passphrase)
	if err != nil {
		return "", fmt.Errorf("derive native asset contract id: %w", err)
	}
	return strkey.Encode(strkey.VersionByteContract, id[:])
}

// ValidateAddress checks that s is a non-blank account (G...) or contract (C...) strkey.
func ValidateAddress(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("%w: address cannot be empty", ErrValidation)
	}
	if strkey.IsValidEd25519PublicKey(s) {
		return nil
	}
	if _, err := strkey.Decode(strkey.VersionByteContract, s); err == nil {
		return nil
	}
	return fmt.Errorf("%w: invalid address %q", ErrValidation, s)
}
