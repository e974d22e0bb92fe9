package payout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/config"
	"github.com/a2sh3r/settlement/internal/hash"
	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/utils"
)

const (
	withdrawalPath = "/api/spot/v1/wallet/withdrawal"
	successCode    = "00000"
	maxBodyBytes   = 1 << 20
)

// clientOidNamespace scopes the deterministic client order ids derived from
// withdrawal ids.
var clientOidNamespace = uuid.MustParse("6f1c0e34-3b7e-4d5c-9a51-0b8c2f7f4d21")

var insufficientFundsCodes = map[string]struct{}{
	"43012": {},
	"40762": {},
}

var invalidAddressCodes = map[string]struct{}{
	"43117": {},
	"43118": {},
}

type Gateway interface {
	SubmitPayout(ctx context.Context, req PayoutRequest) (string, error)
}

type PayoutRequest struct {
	WithdrawalID int64
	Address      string
	Amount       decimal.Decimal
}

type withdrawalBody struct {
	Coin      string `json:"coin"`
	Chain     string `json:"chain"`
	Address   string `json:"address"`
	Amount    string `json:"amount"`
	ClientOid string `json:"clientOid"`
}

type withdrawalResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
	Data *struct {
		OrderID string `json:"orderId"`
	} `json:"data"`
}

type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	passphrase string
	coin       string
	network    string
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg config.GatewayConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		passphrase: cfg.Passphrase,
		coin:       cfg.Coin,
		network:    cfg.Network,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// ClientOid is the idempotency key sent to the rail for a withdrawal.
func ClientOid(withdrawalID int64) string {
	return uuid.NewSHA1(clientOidNamespace, []byte(strconv.FormatInt(withdrawalID, 10))).String()
}

// SubmitPayout sends a single signed withdrawal to the rail and returns its
// order id. It never retries.
func (c *Client) SubmitPayout(ctx context.Context, req PayoutRequest) (string, error) {
	if !utils.IsValidAddress(c.network, req.Address) {
		return "", &apperrors.GatewayError{
			Kind:   apperrors.GatewayInvalidAddress,
			Detail: fmt.Sprintf("address is not a valid %s address", c.network),
		}
	}
	if !req.Amount.IsPositive() {
		return "", &apperrors.GatewayError{Kind: apperrors.GatewayUnknown, Detail: "amount must be positive"}
	}

	body, err := json.Marshal(withdrawalBody{
		Coin:      c.coin,
		Chain:     c.network,
		Address:   req.Address,
		Amount:    req.Amount.String(),
		ClientOid: ClientOid(req.WithdrawalID),
	})
	if err != nil {
		return "", &apperrors.GatewayError{Kind: apperrors.GatewayUnknown, Detail: "failed to encode request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+withdrawalPath, bytes.NewReader(body))
	if err != nil {
		return "", &apperrors.GatewayError{Kind: apperrors.GatewayUnknown, Detail: "failed to build request", Err: err}
	}
	c.sign(httpReq, body)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// The request may have reached the rail before the connection failed.
		return "", &apperrors.GatewayError{
			Kind:           apperrors.GatewayRailUnavailable,
			Detail:         "request to payout rail failed",
			OutcomeUnknown: true,
			Err:            err,
		}
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Log.Error("failed to close payout response body", zap.Error(err))
		}
	}(resp.Body)

	logger.Log.Info("payout rail responded",
		zap.Int64("withdrawal_id", req.WithdrawalID),
		zap.Int("status", resp.StatusCode),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &apperrors.GatewayError{
			Kind:           apperrors.GatewayUnknown,
			Detail:         "failed to read rail response",
			OutcomeUnknown: resp.StatusCode < 300,
			Err:            err,
		}
	}

	var result withdrawalResponse
	decodeErr := json.Unmarshal(raw, &result)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return successReference(result, decodeErr)
	}
	return "", failure(resp.StatusCode, result, decodeErr)
}

func (c *Client) sign(req *http.Request, body []byte) {
	timestamp := strconv.FormatInt(c.now().UnixMilli(), 10)
	preSign := timestamp + req.Method + req.URL.RequestURI() + string(body)

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ACCESS-KEY", c.apiKey)
	req.Header.Set("ACCESS-SIGN", hash.Sign(preSign, c.apiSecret))
	req.Header.Set("ACCESS-TIMESTAMP", timestamp)
	req.Header.Set("ACCESS-PASSPHRASE", c.passphrase)
	req.Header.Set("locale", "en-US")
}

func successReference(result withdrawalResponse, decodeErr error) (string, error) {
	if decodeErr != nil {
		return "", &apperrors.GatewayError{
			Kind:           apperrors.GatewayUnknown,
			Detail:         "malformed success response",
			OutcomeUnknown: true,
			Err:            decodeErr,
		}
	}
	if result.Code != successCode {
		return "", classify(result.Code, result.Msg)
	}
	if result.Data == nil || result.Data.OrderID == "" {
		return "", &apperrors.GatewayError{
			Kind:           apperrors.GatewayUnknown,
			Code:           result.Code,
			Detail:         "success response without order id",
			OutcomeUnknown: true,
		}
	}
	return result.Data.OrderID, nil
}

func failure(status int, result withdrawalResponse, decodeErr error) error {
	if decodeErr == nil && result.Code != "" && result.Code != successCode {
		gwErr := classify(result.Code, result.Msg)
		gwErr.OutcomeUnknown = status >= 500 && status != http.StatusServiceUnavailable
		return gwErr
	}

	switch {
	case status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable:
		return &apperrors.GatewayError{
			Kind:   apperrors.GatewayRailUnavailable,
			Code:   strconv.Itoa(status),
			Detail: "payout rail is not accepting requests",
		}
	case status >= 500:
		return &apperrors.GatewayError{
			Kind:           apperrors.GatewayRailUnavailable,
			Code:           strconv.Itoa(status),
			Detail:         "payout rail server error",
			OutcomeUnknown: true,
		}
	default:
		return &apperrors.GatewayError{
			Kind:   apperrors.GatewayUnknown,
			Code:   strconv.Itoa(status),
			Detail: fmt.Sprintf("unexpected status %d", status),
		}
	}
}

func classify(code, msg string) *apperrors.GatewayError {
	kind := apperrors.GatewayUnknown
	if _, ok := insufficientFundsCodes[code]; ok {
		kind = apperrors.GatewayInsufficientRailFunds
	} else if _, ok := invalidAddressCodes[code]; ok {
		kind = apperrors.GatewayInvalidAddress
	}
	return &apperrors.GatewayError{Kind: kind, Code: code, Detail: msg}
}
