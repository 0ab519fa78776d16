package source

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/pkg/httpclient"
	"github.com/holiman/uint256"
	"github.com/samber/lo"
)

const (
	NameSubgraph = "subgraph"

	DefaultSubgraphPageSize = 1000
)

const activeListingsQuery = `query ActiveListings($first: Int!, $skip: Int!) {
  listings(first: $first, skip: $skip, where: { active: true }, orderBy: timestamp, orderDirection: desc) {
    id
    nftContract
    tokenId
    price
    seller
    timestamp
    blockNumber
  }
  _meta {
    block {
      number
    }
  }
}`

var _ ListingSource = (*Subgraph)(nil)

// Subgraph reads the listings indexed by a marketplace subgraph over GraphQL.
type Subgraph struct {
	client   *httpclient.Client
	pageSize int
}

func NewSubgraph(url string, timeout time.Duration) (*Subgraph, error) {
	client, err := httpclient.New(url, httpclient.Config{Timeout: timeout})
	if err != nil {
		return nil, errors.Wrap(err, "can't create subgraph client")
	}
	return &Subgraph{
		client:   client,
		pageSize: DefaultSubgraphPageSize,
	}, nil
}

func (s *Subgraph) Name() string {
	return NameSubgraph
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type subgraphListing struct {
	ID          string `json:"id"`
	NftContract string `json:"nftContract"`
	TokenID     string `json:"tokenId"`
	Price       string `json:"price"`
	Seller      string `json:"seller"`
	Timestamp   string `json:"timestamp"`
	BlockNumber string `json:"blockNumber"`
}

type activeListingsResponse struct {
	Data struct {
		Listings []subgraphListing `json:"listings"`
		Meta     *struct {
			Block struct {
				Number uint64 `json:"number"`
			} `json:"block"`
		} `json:"_meta"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (s *Subgraph) GetActiveListings(ctx context.Context) (*entity.ListingSnapshot, error) {
	snapshot := &entity.ListingSnapshot{Source: NameSubgraph}
	for skip := 0; ; skip += s.pageSize {
		var resp activeListingsResponse
		req := graphQLRequest{
			Query:     activeListingsQuery,
			Variables: map[string]any{"first": s.pageSize, "skip": skip},
		}
		if err := s.client.PostJSON(ctx, "", req, &resp); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "subgraph request failed"), errs.Transient)
		}
		if len(resp.Errors) > 0 {
			messages := lo.Map(resp.Errors, func(e graphQLError, _ int) string { return e.Message })
			return nil, errors.Newf("subgraph query failed: %s", strings.Join(messages, "; "))
		}
		if resp.Data.Meta == nil {
			return nil, errors.Wrap(errs.NotInitialized, "subgraph has not indexed any block")
		}
		snapshot.AsOfBlock = resp.Data.Meta.Block.Number

		for _, record := range resp.Data.Listings {
			l, err := record.toActiveListing()
			if err != nil {
				return nil, errors.Wrapf(err, "invalid subgraph listing %q", record.ID)
			}
			if !l.Price.IsZero() {
				snapshot.Listings = append(snapshot.Listings, l)
			}
		}
		if len(resp.Data.Listings) < s.pageSize {
			break
		}
	}
	if snapshot.Listings == nil {
		snapshot.Listings = []entity.ActiveListing{}
	}
	return snapshot, nil
}

func (r subgraphListing) toActiveListing() (entity.ActiveListing, error) {
	if !common.IsHexAddress(r.NftContract) || !common.IsHexAddress(r.Seller) {
		return entity.ActiveListing{}, errors.Wrap(errs.InvalidArgument, "invalid address")
	}
	tokenID, err := uint256.FromDecimal(r.TokenID)
	if err != nil {
		return entity.ActiveListing{}, errors.Wrap(errs.InvalidArgument, "invalid token id")
	}
	price, err := uint256.FromDecimal(r.Price)
	if err != nil {
		return entity.ActiveListing{}, errors.Wrap(errs.InvalidArgument, "invalid price")
	}

	l := entity.ActiveListing{
		Key:    entity.NewListingKey(common.HexToAddress(r.NftContract), tokenID),
		Seller: common.HexToAddress(r.Seller),
		Price:  *price,
	}
	if r.BlockNumber != "" {
		if l.ListedAtBlock, err = strconv.ParseUint(r.BlockNumber, 10, 64); err != nil {
			return entity.ActiveListing{}, errors.Wrap(errs.InvalidArgument, "invalid block number")
		}
	}
	if r.Timestamp != "" {
		seconds, err := strconv.ParseInt(r.Timestamp, 10, 64)
		if err != nil {
			return entity.ActiveListing{}, errors.Wrap(errs.InvalidArgument, "invalid timestamp")
		}
		l.Timestamp = time.Unix(seconds, 0).UTC()
	}
	return l, nil
}
