package contract

import (
	_ "embed"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
)

//go:embed marketplace.abi.json
var abiJSON string

var marketplaceABI = mustParseABI(abiJSON)

var eventNames = map[entity.EventKind]string{
	entity.EventKindListed:   "ItemListed",
	entity.EventKindCanceled: "ItemCanceled",
	entity.EventKindBought:   "ItemBought",
}

var kindByTopic = func() map[common.Hash]entity.EventKind {
	m := make(map[common.Hash]entity.EventKind, len(eventNames))
	for kind, name := range eventNames {
		m[marketplaceABI.Events[name].ID] = kind
	}
	return m
}()

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return parsed
}

func ABI() abi.ABI {
	return marketplaceABI
}

// Topic returns the topic0 of the event kind.
func Topic(kind entity.EventKind) common.Hash {
	return marketplaceABI.Events[eventNames[kind]].ID
}

// Topics returns the topic0 of every marketplace event.
func Topics() []common.Hash {
	topics := make([]common.Hash, 0, len(entity.EventKinds))
	for _, kind := range entity.EventKinds {
		topics = append(topics, Topic(kind))
	}
	return topics
}

func KindOf(topic common.Hash) (entity.EventKind, bool) {
	kind, ok := kindByTopic[topic]
	return kind, ok
}

// FilterQuery matches the given event kinds emitted by the marketplace, every kind if none is given.
func FilterQuery(address common.Address, kinds ...entity.EventKind) ethereum.FilterQuery {
	topics := Topics()
	if len(kinds) > 0 {
		topics = make([]common.Hash, 0, len(kinds))
		for _, kind := range kinds {
			topics = append(topics, Topic(kind))
		}
	}
	return ethereum.FilterQuery{
		Addresses: []common.Address{address},
		Topics:    [][]common.Hash{topics},
	}
}
