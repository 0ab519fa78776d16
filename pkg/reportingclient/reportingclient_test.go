package reportingclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	paths  []string
	bodies [][]byte
}

func (r *recorder) handler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		r.mu.Lock()
		r.paths = append(r.paths, req.URL.Path)
		r.bodies = append(r.bodies, body)
		r.mu.Unlock()
		w.WriteHeader(status)
	}
}

func TestNewRequiresName(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestSubmitBlockReport(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec.handler(http.StatusOK))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, Name: "test-node"})
	require.NoError(t, err)

	payload := SubmitBlockReportPayload{
		Type:            "marketplace",
		ClientVersion:   "v0.1.0",
		DBVersion:       1,
		EventVersion:    1,
		Network:         common.NetworkSepolia,
		ContractAddress: "0x000000000000000000000000000000000000c0de",
		BlockHeight:     100,
		BlockHash:       ethcommon.HexToHash("0x01"),
		EventCount:      3,
	}
	require.NoError(t, client.SubmitBlockReport(context.Background(), payload))

	require.Len(t, rec.paths, 1)
	assert.Equal(t, "/v1/report/block", rec.paths[0])
	var got SubmitBlockReportPayload
	require.NoError(t, json.Unmarshal(rec.bodies[0], &got))
	assert.Equal(t, payload, got)
}

func TestSubmitNodeReportIgnoresRejection(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec.handler(http.StatusBadRequest))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, Name: "test-node", WebsiteURL: "https://example.com"})
	require.NoError(t, err)

	require.NoError(t, client.SubmitNodeReport(context.Background(), "marketplace", common.NetworkMainnet))

	require.Len(t, rec.paths, 1)
	assert.Equal(t, "/v1/report/node", rec.paths[0])
	var got SubmitNodeReportPayload
	require.NoError(t, json.Unmarshal(rec.bodies[0], &got))
	assert.Equal(t, SubmitNodeReportPayload{
		Name:       "test-node",
		Type:       "marketplace",
		Network:    common.NetworkMainnet,
		WebsiteURL: "https://example.com",
	}, got)
}
