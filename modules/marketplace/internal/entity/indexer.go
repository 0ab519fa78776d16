package entity

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type IndexedBlock struct {
	Height   uint64
	Hash     common.Hash
	PrevHash common.Hash
}

type IndexerState struct {
	ClientVersion   string
	DBVersion       int32
	EventVersion    int32
	ChainID         uint64
	ContractAddress common.Address
	CreatedAt       time.Time
}
