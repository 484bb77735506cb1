package node

import (
	"encoding/binary"
	"sync"
	"time"

	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	"github.com/beatoz/autoburn/libs/jsonx"
	"github.com/beatoz/autoburn/types/bytes"
	tmdb "github.com/tendermint/tm-db"
)

const (
	keyLastBlock = "bc"
	keyTxn       = "xn"
)

type lastBlockInfo struct {
	ChainID string         `json:"chain_id"`
	Height  int64          `json:"height"`
	Time    time.Time      `json:"time"`
	AppHash bytes.HexBytes `json:"app_hash"`
}

// MetaDB keeps what the node needs to resume: the last applied block and the number of applied operations.
type MetaDB struct {
	db tmdb.DB

	txn uint64

	mtx sync.RWMutex
}

func OpenMetaDB(name, dir string) (*MetaDB, error) {
	// The returned 'db' instance is safe in concurrent use.
	db, err := tmdb.NewDB(name, tmdb.GoLevelDBBackend, dir)
	if err != nil {
		return nil, err
	}

	txn := uint64(0)
	if v, err := db.Get([]byte(keyTxn)); v != nil && err == nil {
		txn = binary.BigEndian.Uint64(v)
	}

	return &MetaDB{
		db:  db,
		txn: txn,
	}, nil
}

func (stdb *MetaDB) Close() error {
	stdb.mtx.Lock()
	defer stdb.mtx.Unlock()

	return stdb.db.Close()
}

// LastBlockContext returns nil if no block has been applied yet.
func (stdb *MetaDB) LastBlockContext() (*ctrlertypes.BlockContext, bytes.HexBytes) {
	stdb.mtx.RLock()
	defer stdb.mtx.RUnlock()

	bz := stdb.get(keyLastBlock)
	if bz == nil {
		return nil, nil
	}
	info := &lastBlockInfo{}
	if err := jsonx.Unmarshal(bz, info); err != nil {
		return nil, nil
	}
	return ctrlertypes.TempBlockContext(info.ChainID, info.Height, info.Time), info.AppHash
}

func (stdb *MetaDB) PutLastBlockContext(bctx *ctrlertypes.BlockContext, appHash []byte) error {
	stdb.mtx.Lock()
	defer stdb.mtx.Unlock()

	bz, err := jsonx.Marshal(&lastBlockInfo{
		ChainID: bctx.ChainID(),
		Height:  bctx.Height(),
		Time:    bctx.Time(),
		AppHash: appHash,
	})
	if err != nil {
		return err
	}
	return stdb.put(keyLastBlock, bz)
}

func (stdb *MetaDB) Txn() uint64 {
	stdb.mtx.RLock()
	defer stdb.mtx.RUnlock()

	return stdb.txn
}

func (stdb *MetaDB) PutTxn(n uint64) error {
	stdb.mtx.Lock()
	defer stdb.mtx.Unlock()

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, n)
	if err := stdb.put(keyTxn, bz); err != nil {
		return err
	}
	stdb.txn = n
	return nil
}

func (stdb *MetaDB) get(k string) []byte {
	if v, err := stdb.db.Get([]byte(k)); err == nil {
		return v
	}
	return nil
}

func (stdb *MetaDB) put(k string, v []byte) error {
	return stdb.db.SetSync([]byte(k), v)
}
