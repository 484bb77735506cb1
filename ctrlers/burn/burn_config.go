package burn

import (
	"bytes"
	"fmt"
	"math"

	v1 "github.com/beatoz/autoburn/ledger/v1"
	"github.com/beatoz/autoburn/types"
	hexbytes "github.com/beatoz/autoburn/types/bytes"
	"github.com/beatoz/autoburn/types/xerrors"
	"google.golang.org/protobuf/proto"
)

// BurnConfig is the persisted policy and counters of one (authority, token) pair.
type BurnConfig struct {
	Authority       types.Address     `json:"authority"`
	Token           types.Address     `json:"token"`
	ProfitThreshold uint64            `json:"profit_threshold"`
	BurnPercentage  uint16            `json:"burn_percentage"`
	MinBurnAmount   uint64            `json:"min_burn_amount"`
	TotalBurned     uint64            `json:"total_burned"`
	BurnCount       uint64            `json:"burn_count"`
	DerivationKey   hexbytes.HexBytes `json:"derivation_key"`
}

var _ v1.ILedgerItem = (*BurnConfig)(nil)

func NewBurnConfig(authority, token types.Address, profitThreshold uint64, burnPercentage uint16, minBurnAmount uint64) *BurnConfig {
	return &BurnConfig{
		Authority:       authority.Copy(),
		Token:           token.Copy(),
		ProfitThreshold: profitThreshold,
		BurnPercentage:  burnPercentage,
		MinBurnAmount:   minBurnAmount,
		DerivationKey:   v1.DeriveBurnConfigKey(authority, token),
	}
}

func (cfg *BurnConfig) Key() v1.LedgerKey {
	return v1.LedgerKeyBurnConfig(cfg.DerivationKey)
}

func (cfg *BurnConfig) Encode() ([]byte, xerrors.XError) {
	if d, err := proto.Marshal(cfg.toProto()); err != nil {
		return nil, xerrors.From(err)
	} else {
		return d, nil
	}
}

func (cfg *BurnConfig) Decode(k v1.LedgerKey, bz []byte) xerrors.XError {
	pm := &BurnConfigProto{}
	if err := proto.Unmarshal(bz, pm); err != nil {
		return xerrors.From(err)
	}
	if xerr := cfg.fromProto(pm); xerr != nil {
		return xerr
	}
	if k != nil && !bytes.Equal(v1.UnwrapKeyPrefix(k), cfg.DerivationKey) {
		return xerrors.NewOrdinary(fmt.Sprintf("burn config key mismatch: %x", k))
	}
	return nil
}

func (cfg *BurnConfig) toProto() *BurnConfigProto {
	return &BurnConfigProto{
		Authority:       cfg.Authority,
		Token:           cfg.Token,
		ProfitThreshold: cfg.ProfitThreshold,
		BurnPercentage:  uint32(cfg.BurnPercentage),
		MinBurnAmount:   cfg.MinBurnAmount,
		TotalBurned:     cfg.TotalBurned,
		BurnCount:       cfg.BurnCount,
		DerivationKey:   cfg.DerivationKey,
	}
}

func (cfg *BurnConfig) fromProto(pm *BurnConfigProto) xerrors.XError {
	if pm.BurnPercentage > math.MaxUint16 {
		return xerrors.ErrInvalidBurnPercentage.Wrapf("stored burn percentage %d", pm.BurnPercentage)
	}
	cfg.Authority = pm.Authority
	cfg.Token = pm.Token
	cfg.ProfitThreshold = pm.ProfitThreshold
	cfg.BurnPercentage = uint16(pm.BurnPercentage)
	cfg.MinBurnAmount = pm.MinBurnAmount
	cfg.TotalBurned = pm.TotalBurned
	cfg.BurnCount = pm.BurnCount
	cfg.DerivationKey = pm.DerivationKey
	return nil
}

// Clone returns a deep copy.
// Items returned by a ledger are shared with its cache and must not be modified in place.
func (cfg *BurnConfig) Clone() *BurnConfig {
	return &BurnConfig{
		Authority:       cfg.Authority.Copy(),
		Token:           cfg.Token.Copy(),
		ProfitThreshold: cfg.ProfitThreshold,
		BurnPercentage:  cfg.BurnPercentage,
		MinBurnAmount:   cfg.MinBurnAmount,
		TotalBurned:     cfg.TotalBurned,
		BurnCount:       cfg.BurnCount,
		DerivationKey:   cfg.DerivationKey.Copy(),
	}
}

// BurnConfigUpdate carries the fields to change. A nil field is left unchanged.
type BurnConfigUpdate struct {
	ProfitThreshold *uint64 `json:"profit_threshold,omitempty"`
	BurnPercentage  *uint16 `json:"burn_percentage,omitempty"`
	MinBurnAmount   *uint64 `json:"min_burn_amount,omitempty"`
}

func (upd *BurnConfigUpdate) IsEmpty() bool {
	return upd == nil || (upd.ProfitThreshold == nil && upd.BurnPercentage == nil && upd.MinBurnAmount == nil)
}

func (upd *BurnConfigUpdate) ValidateBasic() xerrors.XError {
	if upd.BurnPercentage != nil && !types.IsValidBasisPoints(*upd.BurnPercentage) {
		return xerrors.ErrInvalidBurnPercentage.Wrapf("burn percentage %d exceeds %d", *upd.BurnPercentage, types.MaxBasisPoints)
	}
	return nil
}

func (upd *BurnConfigUpdate) applyTo(cfg *BurnConfig) {
	if upd.ProfitThreshold != nil {
		cfg.ProfitThreshold = *upd.ProfitThreshold
	}
	if upd.BurnPercentage != nil {
		cfg.BurnPercentage = *upd.BurnPercentage
	}
	if upd.MinBurnAmount != nil {
		cfg.MinBurnAmount = *upd.MinBurnAmount
	}
}
