package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/contract"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway/mocks"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	nft     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	seller1 = common.HexToAddress("0x0000000000000000000000000000000000000051")
	seller2 = common.HexToAddress("0x0000000000000000000000000000000000000052")
)

type fakeSource struct {
	snapshot *entity.ListingSnapshot
	err      error
}

func (fakeSource) Name() string { return "fake" }

func (f fakeSource) GetActiveListings(ctx context.Context) (*entity.ListingSnapshot, error) {
	return f.snapshot, f.err
}

type fakeOnchain struct {
	listing  contract.OnchainListing
	proceeds *uint256.Int
	err      error
}

func (f fakeOnchain) GetListing(ctx context.Context, key entity.ListingKey) (contract.OnchainListing, error) {
	return f.listing, f.err
}

func (f fakeOnchain) GetProceeds(ctx context.Context, seller common.Address) (*uint256.Int, error) {
	return f.proceeds, f.err
}

func TestGetActiveListingsNotInitialized(t *testing.T) {
	uc := New(fakeSource{err: errors.WithStack(errs.NotInitialized)}, mocks.NewMarketplaceDataGateway(t), fakeOnchain{})

	_, err := uc.GetActiveListings(context.Background())
	assert.ErrorIs(t, err, errs.NotInitialized)

	_, err = uc.GetActiveListingsBySeller(context.Background(), seller1)
	assert.ErrorIs(t, err, errs.NotInitialized)
}

func TestGetActiveListingsBySeller(t *testing.T) {
	snapshot := &entity.ListingSnapshot{
		Listings: []entity.ActiveListing{
			{Key: entity.NewListingKey(nft, uint256.NewInt(1)), Seller: seller1},
			{Key: entity.NewListingKey(nft, uint256.NewInt(2)), Seller: seller2},
			{Key: entity.NewListingKey(nft, uint256.NewInt(3)), Seller: seller1},
		},
		AsOfBlock:  10,
		Incomplete: true,
	}
	uc := New(fakeSource{snapshot: snapshot}, mocks.NewMarketplaceDataGateway(t), fakeOnchain{})

	filtered, err := uc.GetActiveListingsBySeller(context.Background(), seller1)
	require.NoError(t, err)
	require.Len(t, filtered.Listings, 2)
	assert.True(t, filtered.Incomplete)
	assert.Equal(t, uint64(10), filtered.AsOfBlock)
	assert.Len(t, snapshot.Listings, 3)
}

func TestGetListing(t *testing.T) {
	key := entity.NewListingKey(nft, uint256.NewInt(1))
	dg := mocks.NewMarketplaceDataGateway(t)
	dg.EXPECT().GetListing(mock.Anything, key).Return(nil, errors.WithStack(errs.NotFound)).Once()
	dg.EXPECT().GetEventsByKey(mock.Anything, key).Return([]entity.ListingEvent{{Kind: entity.EventKindListed, Key: key}}, nil).Once()
	dg.EXPECT().GetLatestIndexedBlock(mock.Anything).Return(entity.IndexedBlock{Height: 7}, nil).Once()

	uc := New(fakeSource{}, dg, fakeOnchain{})

	_, err := uc.GetListing(context.Background(), key)
	assert.ErrorIs(t, err, errs.NotFound)

	events, err := uc.GetListingEvents(context.Background(), key)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	block, err := uc.GetLatestBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), block.Height)
}

func TestOnchainReads(t *testing.T) {
	onchain := fakeOnchain{
		listing:  contract.OnchainListing{Price: *uint256.NewInt(5), Seller: seller1},
		proceeds: uint256.NewInt(9),
	}
	uc := New(fakeSource{}, mocks.NewMarketplaceDataGateway(t), onchain)

	l, err := uc.GetOnchainListing(context.Background(), entity.NewListingKey(nft, uint256.NewInt(1)))
	require.NoError(t, err)
	assert.True(t, l.IsListed())

	proceeds, err := uc.GetProceeds(context.Background(), seller1)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), proceeds.Uint64())
}
