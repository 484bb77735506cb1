package types

import (
	"strconv"

	"github.com/beatoz/autoburn/types"
	abcitypes "github.com/tendermint/tendermint/abci/types"
)

const (
	EVENT_TYPE_BURN = "burn.executed"

	EVENT_ATTR_AUTHORITY    = "authority"
	EVENT_ATTR_TOKEN        = "token"
	EVENT_ATTR_AMOUNT       = "amount"
	EVENT_ATTR_PROFIT       = "profit_amount"
	EVENT_ATTR_TOTAL_BURNED = "total_burned"
	EVENT_ATTR_BURN_COUNT   = "burn_count"
	EVENT_ATTR_TIMESTAMP    = "timestamp"
	EVENT_ATTR_HEIGHT       = "height"
)

// BurnEvent is the snapshot of a burn config right after a successful autonomous burn.
type BurnEvent struct {
	Authority    types.Address `json:"authority"`
	Token        types.Address `json:"token"`
	Amount       uint64        `json:"amount"`
	ProfitAmount uint64        `json:"profit_amount"`
	TotalBurned  uint64        `json:"total_burned"`
	BurnCount    uint64        `json:"burn_count"`
	Timestamp    int64         `json:"timestamp"`
	Height       int64         `json:"height"`
}

func (evt *BurnEvent) ToABCIEvent() abcitypes.Event {
	return abcitypes.Event{
		Type: EVENT_TYPE_BURN,
		Attributes: []abcitypes.EventAttribute{
			{Key: []byte(EVENT_ATTR_AUTHORITY), Value: []byte(evt.Authority.String()), Index: true},
			{Key: []byte(EVENT_ATTR_TOKEN), Value: []byte(evt.Token.String()), Index: true},
			{Key: []byte(EVENT_ATTR_AMOUNT), Value: []byte(strconv.FormatUint(evt.Amount, 10)), Index: false},
			{Key: []byte(EVENT_ATTR_PROFIT), Value: []byte(strconv.FormatUint(evt.ProfitAmount, 10)), Index: false},
			{Key: []byte(EVENT_ATTR_TOTAL_BURNED), Value: []byte(strconv.FormatUint(evt.TotalBurned, 10)), Index: false},
			{Key: []byte(EVENT_ATTR_BURN_COUNT), Value: []byte(strconv.FormatUint(evt.BurnCount, 10)), Index: false},
			{Key: []byte(EVENT_ATTR_TIMESTAMP), Value: []byte(strconv.FormatInt(evt.Timestamp, 10)), Index: false},
			{Key: []byte(EVENT_ATTR_HEIGHT), Value: []byte(strconv.FormatInt(evt.Height, 10)), Index: false},
		},
	}
}
