package archive

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/memory"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (s *memoryStore) Upload(_ context.Context, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	s.objects[key] = append([]byte(nil), body...)
	return nil
}

func (s *memoryStore) Download(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, errs.NotFound
	}
	return data, nil
}

func testEvent(kind entity.EventKind, token, price, block uint64, logIndex uint) entity.ListingEvent {
	tokenID, _ := uint256.FromDecimal("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	if token != 0 {
		tokenID = uint256.NewInt(token)
	}
	return entity.ListingEvent{
		Kind:        kind,
		Key:         entity.NewListingKey(common.HexToAddress("0x00000000000000000000000000000000000000aa"), tokenID),
		Account:     common.HexToAddress("0x0000000000000000000000000000000000000051"),
		Price:       *uint256.NewInt(price),
		BlockNumber: block,
		LogIndex:    logIndex,
		BlockHash:   common.BigToHash(uint256.NewInt(block).ToBig()),
		TxHash:      common.BigToHash(uint256.NewInt(block*1000 + uint64(logIndex)).ToBig()),
		Timestamp:   time.UnixMilli(int64(1_700_000_000_000 + block*12_000)).UTC(),
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "marketplace/1/100-200.parquet", Key("marketplace", 1, 100, 200))
	assert.Equal(t, "1/0-9.parquet", Key("", 1, 0, 9))
}

func TestExportLoad(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	events := []entity.ListingEvent{
		testEvent(entity.EventKindListed, 1, 100, 10, 0),
		testEvent(entity.EventKindListed, 0, 5, 11, 2),
		testEvent(entity.EventKindCanceled, 1, 0, 12, 1),
		testEvent(entity.EventKindBought, 0, 5, 30, 0),
	}
	for _, ev := range events {
		require.NoError(t, repo.CreateEvent(ctx, ev))
	}

	store := &memoryStore{}
	key, count, err := NewExporter(repo, store, "archive", 31337).Export(ctx, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, "archive/31337/10-20.parquet", key)
	assert.Equal(t, 3, count)

	loaded, err := NewLoader(store).Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, events[:3], loaded)
}

func TestExportInvalidRange(t *testing.T) {
	_, _, err := NewExporter(memory.New(), &memoryStore{}, "", 1).Export(context.Background(), 5, 1)
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestLoadMissing(t *testing.T) {
	_, err := NewLoader(&memoryStore{}).Load(context.Background(), "nope")
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestFromRecordRejectsInvalid(t *testing.T) {
	valid := toRecord(testEvent(entity.EventKindListed, 1, 100, 10, 0))

	testCases := []struct {
		name   string
		modify func(r *eventRecord)
	}{
		{name: "kind", modify: func(r *eventRecord) { r.Kind = "transferred" }},
		{name: "nft address", modify: func(r *eventRecord) { r.NftAddress = "0x12" }},
		{name: "token id", modify: func(r *eventRecord) { r.TokenID = "-1" }},
		{name: "price", modify: func(r *eventRecord) { r.Price = "1.5" }},
		{name: "block", modify: func(r *eventRecord) { r.BlockNumber = -1 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.modify(&r)
			_, err := fromRecord(r)
			assert.ErrorIs(t, err, errs.InvalidArgument)
		})
	}
}
