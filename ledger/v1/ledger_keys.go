package v1

import (
	"encoding/binary"
	"github.com/beatoz/autoburn/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	KeyPrefixBurnConfig  = []byte{0x40}
	KeyPrefixBalance     = []byte{0x50}
	KeyPrefixTokenSupply = []byte{0x51}
)

// BurnConfigSeed is the namespace tag mixed into every burn config derivation key.
var BurnConfigSeed = []byte("burn_config")

// DeriveBurnConfigKey maps (authority, token) to the locator of its burn config.
// The authority length is encoded so that distinct pairs never share a preimage.
func DeriveBurnConfigKey(authority, token types.Address) []byte {
	alen := make([]byte, 2)
	binary.BigEndian.PutUint16(alen, uint16(len(authority)))
	return crypto.Keccak256(BurnConfigSeed, alen, authority, token)
}

func LedgerKeyBurnConfig(derivationKey []byte) LedgerKey {
	k := make([]byte, len(KeyPrefixBurnConfig)+len(derivationKey))
	copy(k, KeyPrefixBurnConfig)
	copy(k[len(KeyPrefixBurnConfig):], derivationKey)
	return k
}

func LedgerKeyBurnConfigOf(authority, token types.Address) LedgerKey {
	return LedgerKeyBurnConfig(DeriveBurnConfigKey(authority, token))
}

func LedgerKeyBalance(token, account types.Address) LedgerKey {
	k := make([]byte, len(KeyPrefixBalance)+len(token)+len(account))
	copy(k, KeyPrefixBalance)
	copy(k[len(KeyPrefixBalance):], token)
	copy(k[len(KeyPrefixBalance)+len(token):], account)
	return k
}

func LedgerKeyTokenSupply(token types.Address) LedgerKey {
	k := make([]byte, len(KeyPrefixTokenSupply)+len(token))
	copy(k, KeyPrefixTokenSupply)
	copy(k[len(KeyPrefixTokenSupply):], token)
	return k
}

func UnwrapKeyPrefix(key LedgerKey) []byte {
	return key[1:]
}
