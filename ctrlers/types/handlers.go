package types

import (
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
	abcitypes "github.com/tendermint/tendermint/abci/types"
)

type ILedgerHandler interface {
	Commit() ([]byte, int64, xerrors.XError)
	Rollback()
	ResetSimulation() xerrors.XError
	ResetToVersion(int64) xerrors.XError
	Version() int64
	Query(abcitypes.RequestQuery) ([]byte, xerrors.XError)
	Close() xerrors.XError
}

// ILedgerDelegate removes tokens from the ledger of record.
// A failure is a hard failure of the whole burn; retries and idempotence are not assumed.
type ILedgerDelegate interface {
	Burn(token, account, authority types.Address, amount uint64, exec bool) xerrors.XError
}

// IProofVerifier accepts or rejects an opaque payment proof.
type IProofVerifier interface {
	Verify(proof []byte) xerrors.XError
}

// IEventEmitter appends BurnEvents for external observers.
// The caller does not wait for observers and never rolls back on an emit failure.
type IEventEmitter interface {
	Emit(*BurnEvent) xerrors.XError
}
