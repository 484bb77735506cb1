package supply

import (
	"bytes"
	"fmt"

	v1 "github.com/beatoz/autoburn/ledger/v1"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
	"github.com/holiman/uint256"
	"google.golang.org/protobuf/proto"
)

// Balance is the amount of Token held by Account.
type Balance struct {
	Token   types.Address
	Account types.Address
	Amount  *uint256.Int
}

type balanceJSON struct {
	Token   types.Address `json:"token"`
	Account types.Address `json:"account"`
	Amount  string        `json:"amount"`
}

var _ v1.ILedgerItem = (*Balance)(nil)

func newBalance(token, account types.Address) *Balance {
	return &Balance{
		Token:   token.Copy(),
		Account: account.Copy(),
		Amount:  uint256.NewInt(0),
	}
}

func (b *Balance) Key() v1.LedgerKey {
	return v1.LedgerKeyBalance(b.Token, b.Account)
}

func (b *Balance) Encode() ([]byte, xerrors.XError) {
	if d, err := proto.Marshal(b.toProto()); err != nil {
		return nil, xerrors.From(err)
	} else {
		return d, nil
	}
}

func (b *Balance) Decode(k v1.LedgerKey, bz []byte) xerrors.XError {
	pm := &BalanceProto{}
	if err := proto.Unmarshal(bz, pm); err != nil {
		return xerrors.From(err)
	}
	b.fromProto(pm)
	if k != nil && !bytes.Equal(k, b.Key()) {
		return xerrors.NewOrdinary(fmt.Sprintf("balance key mismatch: %x", k))
	}
	return nil
}

func (b *Balance) toProto() *BalanceProto {
	return &BalanceProto{
		Token:   b.Token,
		Account: b.Account,
		Amount:  b.Amount.Bytes(),
	}
}

func (b *Balance) fromProto(pm *BalanceProto) {
	b.Token = pm.Token
	b.Account = pm.Account
	b.Amount = new(uint256.Int).SetBytes(pm.Amount)
}

func (b *Balance) toJSON() *balanceJSON {
	return &balanceJSON{Token: b.Token, Account: b.Account, Amount: b.Amount.Dec()}
}

func (b *Balance) Clone() *Balance {
	return &Balance{
		Token:   b.Token.Copy(),
		Account: b.Account.Copy(),
		Amount:  b.Amount.Clone(),
	}
}

// TokenSupply tracks the circulating and the cumulative burned amount of a token.
type TokenSupply struct {
	Token  types.Address
	Supply *uint256.Int
	Burned *uint256.Int
}

type tokenSupplyJSON struct {
	Token  types.Address `json:"token"`
	Supply string        `json:"supply"`
	Burned string        `json:"burned"`
}

var _ v1.ILedgerItem = (*TokenSupply)(nil)

func newTokenSupply(token types.Address) *TokenSupply {
	return &TokenSupply{
		Token:  token.Copy(),
		Supply: uint256.NewInt(0),
		Burned: uint256.NewInt(0),
	}
}

func (s *TokenSupply) Key() v1.LedgerKey {
	return v1.LedgerKeyTokenSupply(s.Token)
}

func (s *TokenSupply) Encode() ([]byte, xerrors.XError) {
	if d, err := proto.Marshal(s.toProto()); err != nil {
		return nil, xerrors.From(err)
	} else {
		return d, nil
	}
}

func (s *TokenSupply) Decode(k v1.LedgerKey, bz []byte) xerrors.XError {
	pm := &TokenSupplyProto{}
	if err := proto.Unmarshal(bz, pm); err != nil {
		return xerrors.From(err)
	}
	s.fromProto(pm)
	if k != nil && !bytes.Equal(k, s.Key()) {
		return xerrors.NewOrdinary(fmt.Sprintf("supply key mismatch: %x", k))
	}
	return nil
}

func (s *TokenSupply) toProto() *TokenSupplyProto {
	return &TokenSupplyProto{
		Token:  s.Token,
		Supply: s.Supply.Bytes(),
		Burned: s.Burned.Bytes(),
	}
}

func (s *TokenSupply) fromProto(pm *TokenSupplyProto) {
	s.Token = pm.Token
	s.Supply = new(uint256.Int).SetBytes(pm.Supply)
	s.Burned = new(uint256.Int).SetBytes(pm.Burned)
}

func (s *TokenSupply) toJSON() *tokenSupplyJSON {
	return &tokenSupplyJSON{Token: s.Token, Supply: s.Supply.Dec(), Burned: s.Burned.Dec()}
}

func (s *TokenSupply) Clone() *TokenSupply {
	return &TokenSupply{
		Token:  s.Token.Copy(),
		Supply: s.Supply.Clone(),
		Burned: s.Burned.Clone(),
	}
}
