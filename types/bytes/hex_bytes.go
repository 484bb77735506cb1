package bytes

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	tmbytes "github.com/tendermint/tendermint/libs/bytes"
	tmrand "github.com/tendermint/tendermint/libs/rand"
)

// HexBytes is written to json as an upper-case hex string.
// Both hex (with or without `0x`) and base64 strings are accepted when reading.
type HexBytes tmbytes.HexBytes

func (hb HexBytes) MarshalJSON() ([]byte, error) {
	s := hb.String()
	jbz := make([]byte, len(s)+2)
	jbz[0] = '"'
	copy(jbz[1:], s)
	jbz[len(jbz)-1] = '"'
	return jbz, nil
}

func (hb *HexBytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid hex string: %s", data)
	}

	val := string(data[1 : len(data)-1])
	if isHex(val) {
		bz, err := hex.DecodeString(strings.TrimPrefix(val, "0x"))
		if err != nil {
			return err
		}
		*hb = bz
		return nil
	}

	bz, err := base64.StdEncoding.DecodeString(val)
	if err != nil {
		return err
	}
	*hb = bz
	return nil
}

func (hb HexBytes) Bytes() []byte {
	return hb
}

func (hb HexBytes) Copy() HexBytes {
	return Copy(hb)
}

func (hb HexBytes) Compare(o HexBytes) int {
	return bytes.Compare(hb, o)
}

func (hb HexBytes) String() string {
	return strings.ToUpper(hex.EncodeToString(hb))
}

func Equal(h1, h2 HexBytes) bool {
	return bytes.Equal(h1, h2)
}

func Copy(s HexBytes) HexBytes {
	if s == nil {
		return nil
	}
	ret := make(HexBytes, len(s))
	copy(ret, s)
	return ret
}

func RandBytes(n int) HexBytes {
	return tmrand.Bytes(n)
}

// ClearBytes zeroes bz in place.
func ClearBytes(bz []byte) {
	for i := range bz {
		bz[i] = 0
	}
}

func isHex(s string) bool {
	v := strings.TrimPrefix(s, "0x")
	if len(v) == 0 || len(v)%2 != 0 {
		return false
	}
	for _, b := range []byte(v) {
		if !(b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F') {
			return false
		}
	}
	return true
}
