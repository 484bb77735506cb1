package types

import (
	"fmt"
	"github.com/beatoz/autoburn/types/bytes"
	"github.com/ethereum/go-ethereum/common"
	tmrand "github.com/tendermint/tendermint/libs/rand"
)

const AddrSize = common.AddressLength

type Address = bytes.HexBytes

func ZeroAddress() Address {
	return make(Address, AddrSize)
}

func RandAddress() Address {
	return tmrand.Bytes(AddrSize)
}

// HexToAddress parses a hex string with or without the `0x` prefix.
func HexToAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return nil, fmt.Errorf("invalid address: %v", s)
	}
	return common.HexToAddress(s).Bytes(), nil
}

func IsValidAddress(addr Address) bool {
	return len(addr) == AddrSize
}
