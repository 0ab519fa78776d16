package redis

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/holiman/uint256"
)

var timeNow = time.Now

const (
	fieldSeller       = "seller"
	fieldPrice        = "price"
	fieldActive       = "active"
	fieldBuyer        = "buyer"
	fieldListedBlock  = "listed_block"
	fieldListedLog    = "listed_log"
	fieldAppliedBlock = "applied_block"
	fieldAppliedLog   = "applied_log"
	fieldTxHash       = "tx_hash"
	fieldTimestamp    = "timestamp"
)

func addressString(a common.Address) string {
	return strings.ToLower(a.Hex())
}

func encodeListing(l *entity.Listing) map[string]interface{} {
	buyer := ""
	if l.Buyer != nil {
		buyer = addressString(*l.Buyer)
	}
	var timestamp int64
	if !l.Timestamp.IsZero() {
		timestamp = l.Timestamp.Unix()
	}
	return map[string]interface{}{
		fieldSeller:       addressString(l.Seller),
		fieldPrice:        l.Price.Dec(),
		fieldActive:       strconv.FormatBool(l.Active),
		fieldBuyer:        buyer,
		fieldListedBlock:  strconv.FormatUint(l.ListedAtBlock, 10),
		fieldListedLog:    strconv.FormatUint(uint64(l.ListedAtLogIndex), 10),
		fieldAppliedBlock: strconv.FormatUint(l.LastApplied.BlockNumber, 10),
		fieldAppliedLog:   strconv.FormatUint(uint64(l.LastApplied.LogIndex), 10),
		fieldTxHash:       l.TxHash.Hex(),
		fieldTimestamp:    strconv.FormatInt(timestamp, 10),
	}
}

func decodeListing(key entity.ListingKey, fields map[string]string) (*entity.Listing, error) {
	price, err := uint256.FromDecimal(fields[fieldPrice])
	if err != nil {
		return nil, errors.Wrap(err, "invalid price")
	}
	active, err := strconv.ParseBool(fields[fieldActive])
	if err != nil {
		return nil, errors.Wrap(err, "invalid active flag")
	}
	var numbers [4]uint64
	for i, field := range []string{fieldListedBlock, fieldListedLog, fieldAppliedBlock, fieldAppliedLog} {
		numbers[i], err = strconv.ParseUint(fields[field], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", field)
		}
	}
	timestamp, err := strconv.ParseInt(fields[fieldTimestamp], 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid timestamp")
	}
	l := &entity.Listing{
		Key:              key,
		Seller:           common.HexToAddress(fields[fieldSeller]),
		Price:            *price,
		Active:           active,
		ListedAtBlock:    numbers[0],
		ListedAtLogIndex: uint(numbers[1]),
		LastApplied: entity.OrderKey{
			BlockNumber: numbers[2],
			LogIndex:    uint(numbers[3]),
		},
		TxHash: common.HexToHash(fields[fieldTxHash]),
	}
	if buyer := fields[fieldBuyer]; buyer != "" {
		b := common.HexToAddress(buyer)
		l.Buyer = &b
	}
	if timestamp != 0 {
		l.Timestamp = time.Unix(timestamp, 0).UTC()
	}
	return l, nil
}

type eventRecord struct {
	Kind        string    `json:"kind"`
	NftAddress  string    `json:"nftAddress"`
	TokenID     string    `json:"tokenId"`
	Account     string    `json:"account"`
	Price       string    `json:"price"`
	BlockNumber uint64    `json:"blockNumber"`
	LogIndex    uint      `json:"logIndex"`
	BlockHash   string    `json:"blockHash"`
	TxHash      string    `json:"txHash"`
	Timestamp   time.Time `json:"timestamp"`
}

func eventID(ev entity.ListingEvent) string {
	return ev.TxHash.Hex() + "/" + strconv.FormatUint(uint64(ev.LogIndex), 10)
}

func encodeEvent(ev entity.ListingEvent) (string, error) {
	b, err := json.Marshal(eventRecord{
		Kind:        ev.Kind.String(),
		NftAddress:  addressString(ev.Key.NftAddress),
		TokenID:     ev.Key.TokenID.Dec(),
		Account:     addressString(ev.Account),
		Price:       ev.Price.Dec(),
		BlockNumber: ev.BlockNumber,
		LogIndex:    ev.LogIndex,
		BlockHash:   ev.BlockHash.Hex(),
		TxHash:      ev.TxHash.Hex(),
		Timestamp:   ev.Timestamp,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(b), nil
}

func decodeEvent(s string) (entity.ListingEvent, error) {
	var record eventRecord
	if err := json.Unmarshal([]byte(s), &record); err != nil {
		return entity.ListingEvent{}, errors.WithStack(err)
	}
	kind, err := entity.ParseEventKind(record.Kind)
	if err != nil {
		return entity.ListingEvent{}, errors.WithStack(err)
	}
	tokenID, err := uint256.FromDecimal(record.TokenID)
	if err != nil {
		return entity.ListingEvent{}, errors.Wrap(err, "invalid token id")
	}
	price, err := uint256.FromDecimal(record.Price)
	if err != nil {
		return entity.ListingEvent{}, errors.Wrap(err, "invalid price")
	}
	return entity.ListingEvent{
		Kind:        kind,
		Key:         entity.NewListingKey(common.HexToAddress(record.NftAddress), tokenID),
		Account:     common.HexToAddress(record.Account),
		Price:       *price,
		BlockNumber: record.BlockNumber,
		LogIndex:    record.LogIndex,
		BlockHash:   common.HexToHash(record.BlockHash),
		TxHash:      common.HexToHash(record.TxHash),
		Timestamp:   record.Timestamp,
	}, nil
}

type blockRecord struct {
	Height   uint64 `json:"height"`
	Hash     string `json:"hash"`
	PrevHash string `json:"prevHash"`
}

type indexerStateRecord struct {
	ClientVersion   string    `json:"clientVersion"`
	DBVersion       int32     `json:"dbVersion"`
	EventVersion    int32     `json:"eventVersion"`
	ChainID         uint64    `json:"chainId"`
	ContractAddress string    `json:"contractAddress"`
	CreatedAt       time.Time `json:"createdAt"`
}
