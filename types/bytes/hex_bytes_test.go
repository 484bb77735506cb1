package bytes

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/beatoz/autoburn/libs/jsonx"
	"github.com/stretchr/testify/require"
)

var (
	bz32 = RandBytes(32)
)

func Test_MarshalJSON(t *testing.T) {
	bz, err := jsonx.Marshal(HexBytes{0xab, 0x01})
	require.NoError(t, err)
	require.Equal(t, `"AB01"`, string(bz))

	bz, err = jsonx.Marshal(struct {
		Addr HexBytes `json:"addr"`
	}{Addr: HexBytes{0x0f}})
	require.NoError(t, err)
	require.JSONEq(t, `{"addr":"0F"}`, string(bz))
}

func Test_UnmarshalJSON_HexString(t *testing.T) {
	data := []byte("\"" + hex.EncodeToString(bz32) + "\"")

	hexBytes := HexBytes{}
	require.NoError(t, jsonx.Unmarshal(data, &hexBytes))
	require.Equal(t, bz32, hexBytes)
}

func Test_UnmarshalJSON_0xHexString(t *testing.T) {
	data := []byte("\"0x" + hex.EncodeToString(bz32) + "\"")

	hexBytes := HexBytes{}
	require.NoError(t, jsonx.Unmarshal(data, &hexBytes))
	require.Equal(t, bz32, hexBytes)
}

func Test_UnmarshalJSON_Base64(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString(bz32)
	data := []byte("\"" + b64 + "\"")

	hexBytes := HexBytes{}
	require.NoError(t, jsonx.Unmarshal(data, &hexBytes))
	require.Equal(t, bz32, hexBytes)
}

func Test_UnmarshalJSON_Invalid(t *testing.T) {
	hexBytes := HexBytes{}
	require.Error(t, hexBytes.UnmarshalJSON([]byte(`1234`)))
	require.Error(t, hexBytes.UnmarshalJSON([]byte(`"!!not-base64!!"`)))
}

func Test_CopyAndClear(t *testing.T) {
	src := RandBytes(20)
	cp := src.Copy()
	require.True(t, Equal(src, cp))

	ClearBytes(cp)
	require.Equal(t, make(HexBytes, 20), cp)
	require.False(t, Equal(src, cp))
	require.Nil(t, Copy(nil))
}
