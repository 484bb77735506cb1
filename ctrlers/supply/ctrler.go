package supply

import (
	"bytes"
	"fmt"
	"sync"

	cfg "github.com/beatoz/autoburn/cmd/config"
	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	v1 "github.com/beatoz/autoburn/ledger/v1"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
	"github.com/holiman/uint256"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

// SupplyCtrler is a token ledger keeping balances per (token, account) and the supply per token.
// It is the ledger of record the burn controller delegates to.
type SupplyCtrler struct {
	supplyState v1.IStateLedger[v1.ILedgerItem]

	logger tmlog.Logger
	mtx    sync.RWMutex
}

var _ ctrlertypes.ILedgerDelegate = (*SupplyCtrler)(nil)
var _ ctrlertypes.ILedgerHandler = (*SupplyCtrler)(nil)

func defaultNewItem(key v1.LedgerKey) v1.ILedgerItem {
	if bytes.HasPrefix(key, v1.KeyPrefixBalance) {
		return &Balance{}
	} else if bytes.HasPrefix(key, v1.KeyPrefixTokenSupply) {
		return &TokenSupply{}
	}
	panic(fmt.Errorf("invalid key prefix:0x%x", key[0]))
}

func NewSupplyCtrler(config *cfg.Config, logger tmlog.Logger) (*SupplyCtrler, xerrors.XError) {
	lg := logger.With("module", "autoburn_SupplyCtrler")

	ledger, xerr := v1.NewStateLedger("supply", config.DBDir(), config.AutoBurn.LedgerCacheSize, defaultNewItem, lg)
	if xerr != nil {
		return nil, xerr
	}

	return &SupplyCtrler{
		supplyState: ledger,
		logger:      lg,
	}, nil
}

// Mint credits amount of token to account and grows the token supply.
func (ctrler *SupplyCtrler) Mint(token, account types.Address, amount uint64, exec bool) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if !types.IsValidAddress(token) || !types.IsValidAddress(account) {
		return xerrors.ErrInvalidAddress
	}
	if amount == 0 {
		return xerrors.ErrInvalidAmount.Wrapf("zero amount")
	}

	bal, xerr := ctrler.findBalance(token, account, exec)
	if xerr != nil && !xerr.Contains(xerrors.ErrNotFoundAccount) {
		return xerr
	} else if xerr != nil {
		bal = newBalance(token, account)
	}
	supply, xerr := ctrler.findSupply(token, exec)
	if xerr != nil {
		return xerr
	}

	amt := uint256.NewInt(amount)
	newBal, overflow := new(uint256.Int).AddOverflow(bal.Amount, amt)
	if overflow {
		return xerrors.ErrOverFlow
	}
	newSupply, overflow := new(uint256.Int).AddOverflow(supply.Supply, amt)
	if overflow {
		return xerrors.ErrOverFlow
	}
	bal.Amount = newBal
	supply.Supply = newSupply

	if xerr := ctrler.setAll(exec, bal, supply); xerr != nil {
		return xerr
	}

	ctrler.logger.Debug("mint", "token", token, "account", account, "amount", amount, "supply", newSupply.Dec(), "exec", exec)
	return nil
}

// Burn removes amount of token from account. Only the owner of the account may burn from it.
func (ctrler *SupplyCtrler) Burn(token, account, authority types.Address, amount uint64, exec bool) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if !bytes.Equal(account, authority) {
		return xerrors.ErrNoRight.Wrapf("account %v is not owned by %v", account, authority)
	}

	bal, xerr := ctrler.findBalance(token, account, exec)
	if xerr != nil {
		return xerr
	}
	supply, xerr := ctrler.findSupply(token, exec)
	if xerr != nil {
		return xerr
	}

	amt := uint256.NewInt(amount)
	if bal.Amount.Lt(amt) {
		return xerrors.ErrInsufficientFund.Wrapf("balance: %v, burn: %v", bal.Amount.Dec(), amount)
	}
	if supply.Supply.Lt(amt) {
		return xerrors.ErrInsufficientFund.Wrapf("supply: %v, burn: %v", supply.Supply.Dec(), amount)
	}
	bal.Amount = new(uint256.Int).Sub(bal.Amount, amt)
	supply.Supply = new(uint256.Int).Sub(supply.Supply, amt)
	supply.Burned = new(uint256.Int).Add(supply.Burned, amt)

	if xerr := ctrler.setAll(exec, bal, supply); xerr != nil {
		return xerr
	}

	ctrler.logger.Debug("burn", "token", token, "account", account, "amount", amount, "supply", supply.Supply.Dec(), "exec", exec)
	return nil
}

// setAll stores every item or none of them.
func (ctrler *SupplyCtrler) setAll(exec bool, items ...v1.ILedgerItem) xerrors.XError {
	snap := ctrler.supplyState.Snapshot(exec)
	for _, item := range items {
		if xerr := ctrler.supplyState.Set(item, exec); xerr != nil {
			if rerr := ctrler.supplyState.RevertToSnapshot(snap, exec); rerr != nil {
				ctrler.logger.Error("fail to revert supply state", "error", rerr.Error())
			}
			return xerr
		}
	}
	return nil
}

func (ctrler *SupplyCtrler) BalanceOf(token, account types.Address, exec bool) *uint256.Int {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	bal, xerr := ctrler.findBalance(token, account, exec)
	if xerr != nil {
		return uint256.NewInt(0)
	}
	return bal.Amount
}

func (ctrler *SupplyCtrler) SupplyOf(token types.Address, exec bool) (*TokenSupply, xerrors.XError) {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	return ctrler.findSupply(token, exec)
}

// findBalance returns a copy of the balance, or ErrNotFoundAccount.
func (ctrler *SupplyCtrler) findBalance(token, account types.Address, exec bool) (*Balance, xerrors.XError) {
	item, xerr := ctrler.supplyState.Get(v1.LedgerKeyBalance(token, account), exec)
	if xerr != nil {
		if xerr.Contains(xerrors.ErrNotFoundResult) {
			return nil, xerrors.ErrNotFoundAccount.Wrapf("token: %v, account: %v", token, account)
		}
		return nil, xerr
	}
	bal, ok := item.(*Balance)
	if !ok {
		return nil, xerrors.ErrInvalidAccountType
	}
	return bal.Clone(), nil
}

// findSupply returns a copy of the token supply; an unknown token has zero supply.
func (ctrler *SupplyCtrler) findSupply(token types.Address, exec bool) (*TokenSupply, xerrors.XError) {
	item, xerr := ctrler.supplyState.Get(v1.LedgerKeyTokenSupply(token), exec)
	if xerr != nil {
		if xerr.Contains(xerrors.ErrNotFoundResult) {
			return newTokenSupply(token), nil
		}
		return nil, xerr
	}
	supply, ok := item.(*TokenSupply)
	if !ok {
		return nil, xerrors.ErrInvalidAccountType
	}
	return supply.Clone(), nil
}

func (ctrler *SupplyCtrler) Commit() ([]byte, int64, xerrors.XError) {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	h, v, xerr := ctrler.supplyState.Commit()
	if xerr != nil {
		return nil, 0, xerrors.ErrCommit.Wrap(xerr)
	}
	return h, v, nil
}

// Rollback discards the changes executed since the last commit.
func (ctrler *SupplyCtrler) Rollback() {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	ctrler.supplyState.Rollback()
}

// ResetSimulation discards the changes simulated since the last commit.
func (ctrler *SupplyCtrler) ResetSimulation() xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	return ctrler.supplyState.ResetSimulation()
}

// ResetToVersion drops the versions committed after ver.
func (ctrler *SupplyCtrler) ResetToVersion(ver int64) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.supplyState.ResetToVersion(ver); xerr != nil {
		return xerrors.ErrCommit.Wrap(xerr)
	}
	return nil
}

func (ctrler *SupplyCtrler) Version() int64 {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	return ctrler.supplyState.Version()
}

func (ctrler *SupplyCtrler) Close() xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if ctrler.supplyState != nil {
		if xerr := ctrler.supplyState.Close(); xerr != nil {
			ctrler.logger.Error("supplyState.Close()", "error", xerr.Error())
		}
		ctrler.supplyState = nil
	}
	return nil
}
