package mocks

import (
	"sync"

	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
)

type BurnCall struct {
	Token     types.Address
	Account   types.Address
	Authority types.Address
	Amount    uint64
	Exec      bool
}

// LedgerDelegateMock records every burn and fails with Err when it is set.
type LedgerDelegateMock struct {
	Err   xerrors.XError
	Calls []BurnCall

	mtx sync.Mutex
}

var _ ctrlertypes.ILedgerDelegate = (*LedgerDelegateMock)(nil)

func NewLedgerDelegateMock() *LedgerDelegateMock {
	return &LedgerDelegateMock{}
}

func (m *LedgerDelegateMock) Burn(token, account, authority types.Address, amount uint64, exec bool) xerrors.XError {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Calls = append(m.Calls, BurnCall{
		Token:     token.Copy(),
		Account:   account.Copy(),
		Authority: authority.Copy(),
		Amount:    amount,
		Exec:      exec,
	})
	return nil
}

func (m *LedgerDelegateMock) TotalBurned() uint64 {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	sum := uint64(0)
	for _, c := range m.Calls {
		if c.Exec {
			sum += c.Amount
		}
	}
	return sum
}

func (m *LedgerDelegateMock) CallCount() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return len(m.Calls)
}
