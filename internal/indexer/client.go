package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/config"
	"github.com/a2sh3r/settlement/internal/logger"
)

const (
	pageLimit = 200
	maxPages  = 10
)

type ClientInterface interface {
	ListTransfers(ctx context.Context, address string, from, to time.Time) ([]Transfer, error)
}

// Transfer is a confirmed TRC-20 token transfer with its amount already
// scaled by the token decimals.
type Transfer struct {
	TxID      string
	From      string
	To        string
	Symbol    string
	Contract  string
	Amount    decimal.Decimal
	Timestamp time.Time
}

type transferRow struct {
	TransactionID  string `json:"transaction_id"`
	BlockTimestamp int64  `json:"block_timestamp"`
	From           string `json:"from"`
	To             string `json:"to"`
	Value          string `json:"value"`
	TokenInfo      struct {
		Symbol   string `json:"symbol"`
		Address  string `json:"address"`
		Decimals int32  `json:"decimals"`
	} `json:"token_info"`
}

type transfersResponse struct {
	Data    []transferRow `json:"data"`
	Success bool          `json:"success"`
	Meta    struct {
		Fingerprint string `json:"fingerprint"`
	} `json:"meta"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.IndexerConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListTransfers returns confirmed TRC-20 transfers touching address with a
// block timestamp inside [from, to].
func (c *Client) ListTransfers(ctx context.Context, address string, from, to time.Time) ([]Transfer, error) {
	var (
		transfers   []Transfer
		fingerprint string
	)

	for page := 0; page < maxPages; page++ {
		resp, err := c.fetchPage(ctx, address, from, to, fingerprint)
		if err != nil {
			return nil, err
		}

		for _, row := range resp.Data {
			tr, err := row.toTransfer()
			if err != nil {
				logger.Log.Warn("skipping malformed transfer", zap.String("tx_id", row.TransactionID), zap.Error(err))
				continue
			}
			transfers = append(transfers, tr)
		}

		if resp.Meta.Fingerprint == "" || len(resp.Data) < pageLimit {
			break
		}
		fingerprint = resp.Meta.Fingerprint
	}

	return transfers, nil
}

func (c *Client) fetchPage(ctx context.Context, address string, from, to time.Time, fingerprint string) (*transfersResponse, error) {
	q := url.Values{}
	q.Set("only_confirmed", "true")
	q.Set("limit", strconv.Itoa(pageLimit))
	q.Set("min_timestamp", strconv.FormatInt(from.UnixMilli(), 10))
	q.Set("max_timestamp", strconv.FormatInt(to.UnixMilli(), 10))
	if fingerprint != "" {
		q.Set("fingerprint", fingerprint)
	}

	endpoint := fmt.Sprintf("%s/v1/accounts/%s/transactions/trc20?%s", c.baseURL, url.PathEscape(address), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("TRON-PRO-API-KEY", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("indexer request failed: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Log.Error("failed to close indexer response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected indexer status: %d", resp.StatusCode)
	}

	var result transfersResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode indexer response: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("indexer reported failure")
	}
	return &result, nil
}

func (r transferRow) toTransfer() (Transfer, error) {
	raw, err := decimal.NewFromString(r.Value)
	if err != nil {
		return Transfer{}, fmt.Errorf("invalid value %q: %w", r.Value, err)
	}
	return Transfer{
		TxID:      r.TransactionID,
		From:      r.From,
		To:        r.To,
		Symbol:    r.TokenInfo.Symbol,
		Contract:  r.TokenInfo.Address,
		Amount:    raw.Shift(-r.TokenInfo.Decimals),
		Timestamp: time.UnixMilli(r.BlockTimestamp),
	}, nil
}
