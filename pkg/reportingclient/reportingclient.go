package reportingclient

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/pkg/httpclient"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
)

type Config struct {
	Disabled      bool   `mapstructure:"disabled"`
	BaseURL       string `mapstructure:"base_url"`
	Name          string `mapstructure:"name"`
	WebsiteURL    string `mapstructure:"website_url"`
	IndexerAPIURL string `mapstructure:"indexer_api_url"`
}

type ReportingClient struct {
	httpClient *httpclient.Client
	config     Config
}

const defaultBaseURL = "https://indexer.api.gaze.network"

func New(config Config) (*ReportingClient, error) {
	baseURL := utils.Default(config.BaseURL, defaultBaseURL)
	httpClient, err := httpclient.New(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	if config.Name == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "reporting.name config is required if reporting is enabled")
	}
	return &ReportingClient{
		httpClient: httpClient,
		config:     config,
	}, nil
}

type SubmitBlockReportPayload struct {
	Type            string         `json:"type"`
	ClientVersion   string         `json:"clientVersion"`
	DBVersion       int            `json:"dbVersion"`
	EventVersion    int            `json:"eventVersion"`
	Network         common.Network `json:"network"`
	ContractAddress string         `json:"contractAddress"`
	BlockHeight     uint64         `json:"blockHeight"`
	BlockHash       ethcommon.Hash `json:"blockHash"`
	EventCount      int            `json:"eventCount"`
}

func (r *ReportingClient) SubmitBlockReport(ctx context.Context, payload SubmitBlockReportPayload) error {
	resp, err := r.post(ctx, "/v1/report/block", payload)
	if err != nil {
		return errors.WithStack(err)
	}
	if resp.StatusCode() >= 400 {
		logger.WarnContext(ctx, "failed to submit block report", slog.Any("payload", payload), slog.String("responseBody", string(resp.Body())))
		return nil
	}
	logger.DebugContext(ctx, "block report submitted", slog.Any("payload", payload))
	return nil
}

type SubmitNodeReportPayload struct {
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Network       common.Network `json:"network"`
	WebsiteURL    string         `json:"websiteURL,omitempty"`
	IndexerAPIURL string         `json:"indexerAPIURL,omitempty"`
}

func (r *ReportingClient) SubmitNodeReport(ctx context.Context, module string, network common.Network) error {
	payload := SubmitNodeReportPayload{
		Name:          r.config.Name,
		Type:          module,
		Network:       network,
		WebsiteURL:    r.config.WebsiteURL,
		IndexerAPIURL: r.config.IndexerAPIURL,
	}
	resp, err := r.post(ctx, "/v1/report/node", payload)
	if err != nil {
		return errors.WithStack(err)
	}
	if resp.StatusCode() >= 400 {
		logger.WarnContext(ctx, "failed to submit node report", slog.Any("payload", payload), slog.String("responseBody", string(resp.Body())))
		return nil
	}
	logger.InfoContext(ctx, "node report submitted", slog.Any("payload", payload))
	return nil
}

func (r *ReportingClient) post(ctx context.Context, path string, payload any) (*httpclient.HttpResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "can't marshal payload")
	}
	resp, err := r.httpClient.Post(ctx, path, httpclient.RequestOptions{
		Body: body,
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't send request")
	}
	return resp, nil
}
