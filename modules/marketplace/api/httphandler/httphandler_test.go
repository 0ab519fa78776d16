package httphandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	gazecommon "github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/contract"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/memory"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/usecase"
	"github.com/gaze-network/marketplace-indexer/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nft    = common.HexToAddress("0x00000000000000000000000000000000000000AA")
	seller = common.HexToAddress("0x0000000000000000000000000000000000000051")
	other  = common.HexToAddress("0x0000000000000000000000000000000000000052")
)

type fakeSource struct {
	snapshot *entity.ListingSnapshot
	err      error
}

func (fakeSource) Name() string { return "fake" }

func (f fakeSource) GetActiveListings(ctx context.Context) (*entity.ListingSnapshot, error) {
	return f.snapshot, f.err
}

type fakeOnchain struct{}

func (fakeOnchain) GetListing(ctx context.Context, key entity.ListingKey) (contract.OnchainListing, error) {
	if key.TokenID.Uint64() == 1 {
		return contract.OnchainListing{Price: *uint256.NewInt(1e18), Seller: seller}, nil
	}
	return contract.OnchainListing{}, nil
}

func (fakeOnchain) GetProceeds(ctx context.Context, seller common.Address) (*uint256.Int, error) {
	return uint256.NewInt(25e17), nil
}

func newTestApp(t *testing.T, src fakeSource) (*fiber.App, *memory.Repository) {
	t.Helper()
	repo := memory.New()
	uc := usecase.New(src, repo, fakeOnchain{})
	app := fiber.New(fiber.Config{
		ErrorHandler: errorhandler.NewHTTPErrorHandler(),
	})
	require.NoError(t, New(gazecommon.NetworkLocal, uc).Mount(app))
	return app, repo
}

func doGet(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func testSnapshot() *entity.ListingSnapshot {
	listings := make([]entity.ActiveListing, 0, 3)
	for i := uint64(3); i >= 1; i-- {
		s := seller
		if i == 2 {
			s = other
		}
		listings = append(listings, entity.ActiveListing{
			Key:           entity.NewListingKey(nft, uint256.NewInt(i)),
			Seller:        s,
			Price:         *uint256.NewInt(i * 1e17),
			ListedAtBlock: i * 10,
		})
	}
	return &entity.ListingSnapshot{
		Source:       "fake",
		Listings:     listings,
		AsOfBlock:    100,
		Incomplete:   true,
		FailedRanges: []types.BlockRange{{From: 40, To: 40}},
	}
}

func TestGetActiveListings(t *testing.T) {
	app, _ := newTestApp(t, fakeSource{snapshot: testSnapshot()})

	var resp getActiveListingsResponse
	status := doGet(t, app, "/v1/marketplace/listings?limit=2&offset=1", &resp)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.Incomplete)
	assert.Equal(t, []failedRange{{From: 40, To: 40}}, resp.Result.FailedRanges)
	assert.Equal(t, uint64(100), resp.Result.AsOfBlock)
	assert.Equal(t, 3, resp.Result.Total)
	require.Len(t, resp.Result.List, 2)
	assert.Equal(t, "2", resp.Result.List[0].TokenID)
	assert.Equal(t, "200000000000000000", resp.Result.List[0].Price.Wei)
	assert.Equal(t, "0.2", resp.Result.List[0].Price.Ether)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", resp.Result.List[0].NftAddress)
}

func TestGetActiveListingsNotInitialized(t *testing.T) {
	app, _ := newTestApp(t, fakeSource{err: errors.WithStack(errs.NotInitialized)})

	var resp map[string]string
	status := doGet(t, app, "/v1/marketplace/listings", &resp)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "listings not yet initialized", resp["error"])
}

func TestGetActiveListingsValidation(t *testing.T) {
	app, _ := newTestApp(t, fakeSource{snapshot: testSnapshot()})

	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/v1/marketplace/listings?limit=5000", nil))
	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/v1/marketplace/listings?offset=-1", nil))
	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/v1/marketplace/listings/seller/0xnope", nil))
	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/v1/marketplace/listings/0xnope/abc", nil))
}

func TestGetActiveListingsBySeller(t *testing.T) {
	app, _ := newTestApp(t, fakeSource{snapshot: testSnapshot()})

	var resp getActiveListingsResponse
	status := doGet(t, app, "/v1/marketplace/listings/seller/"+other.Hex(), &resp)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Result.List, 1)
	assert.Equal(t, "2", resp.Result.List[0].TokenID)
}

func TestGetListingAndEvents(t *testing.T) {
	app, repo := newTestApp(t, fakeSource{snapshot: testSnapshot()})
	ctx := context.Background()

	key := entity.NewListingKey(nft, uint256.NewInt(7))
	buyer := other
	require.NoError(t, repo.PutListing(ctx, &entity.Listing{
		Key:           key,
		Seller:        seller,
		Price:         *uint256.NewInt(1e18),
		Buyer:         &buyer,
		ListedAtBlock: 5,
		LastApplied:   entity.OrderKey{BlockNumber: 6},
	}))
	require.NoError(t, repo.CreateEvent(ctx, entity.ListingEvent{
		Kind: entity.EventKindListed, Key: key, Account: seller, Price: *uint256.NewInt(1e18),
		BlockNumber: 5, TxHash: common.HexToHash("0x01"),
	}))
	require.NoError(t, repo.CreateEvent(ctx, entity.ListingEvent{
		Kind: entity.EventKindBought, Key: key, Account: buyer, Price: *uint256.NewInt(1e18),
		BlockNumber: 6, TxHash: common.HexToHash("0x02"),
	}))

	var listing getListingResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/v1/marketplace/listings/"+nft.Hex()+"/7", &listing))
	assert.False(t, listing.Result.Active)
	require.NotNil(t, listing.Result.Buyer)
	assert.Equal(t, "0x0000000000000000000000000000000000000052", *listing.Result.Buyer)
	assert.Equal(t, "1", listing.Result.Price.Ether)

	var events getListingEventsResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/v1/marketplace/listings/"+nft.Hex()+"/7/events", &events))
	require.Len(t, events.Result.List, 2)
	assert.Equal(t, entity.EventKindListed.String(), events.Result.List[0].Kind)
	assert.Equal(t, entity.EventKindBought.String(), events.Result.List[1].Kind)

	assert.Equal(t, http.StatusNotFound, doGet(t, app, "/v1/marketplace/listings/"+nft.Hex()+"/8", nil))
}

func TestOnchainRoutes(t *testing.T) {
	app, _ := newTestApp(t, fakeSource{})

	var listing getOnchainListingResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/v1/marketplace/listings/"+nft.Hex()+"/1/onchain", &listing))
	assert.True(t, listing.Result.Listed)
	assert.Equal(t, "1", listing.Result.Price.Ether)

	require.Equal(t, http.StatusOK, doGet(t, app, "/v1/marketplace/listings/"+nft.Hex()+"/2/onchain", &listing))
	assert.False(t, listing.Result.Listed)

	var proceeds getProceedsResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/v1/marketplace/proceeds/"+seller.Hex(), &proceeds))
	assert.Equal(t, "2.5", proceeds.Result.Proceeds.Ether)
	assert.Equal(t, "2500000000000000000", proceeds.Result.Proceeds.Wei)
}

func TestGetCurrentBlock(t *testing.T) {
	app, repo := newTestApp(t, fakeSource{})

	assert.Equal(t, http.StatusNotFound, doGet(t, app, "/v1/marketplace/block", nil))

	require.NoError(t, repo.CreateIndexedBlock(context.Background(), entity.IndexedBlock{Height: 12, Hash: common.HexToHash("0x0c")}))
	var resp getCurrentBlockResponse
	require.Equal(t, http.StatusOK, doGet(t, app, "/v1/marketplace/block", &resp))
	assert.Equal(t, uint64(12), resp.Result.Height)
	assert.Equal(t, "fake", resp.Result.Source)
}
