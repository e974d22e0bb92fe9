package payout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/config"
	"github.com/a2sh3r/settlement/internal/hash"
)

const validAddress = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"

func newTestClient(url string) *Client {
	c := NewClient(config.GatewayConfig{
		BaseURL:    url,
		APIKey:     "key",
		APISecret:  "secret",
		Passphrase: "pass",
		Coin:       "USDT",
		Network:    "TRC20",
		Timeout:    2 * time.Second,
	})
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return c
}

func TestClient_SubmitPayout(t *testing.T) {
	type want struct {
		reference      string
		err            bool
		kind           apperrors.GatewayErrorKind
		outcomeUnknown bool
	}
	tests := []struct {
		name           string
		serverResponse string
		serverStatus   int
		want           want
	}{
		{
			name:           "успешная выплата",
			serverResponse: `{"code":"00000","msg":"success","data":{"orderId":"ORD-1"}}`,
			serverStatus:   http.StatusOK,
			want:           want{reference: "ORD-1"},
		},
		{
			name:           "недостаточно средств на бирже",
			serverResponse: `{"code":"43012","msg":"Insufficient balance"}`,
			serverStatus:   http.StatusBadRequest,
			want:           want{err: true, kind: apperrors.GatewayInsufficientRailFunds},
		},
		{
			name:           "биржа отклонила адрес",
			serverResponse: `{"code":"43117","msg":"address not allowed"}`,
			serverStatus:   http.StatusBadRequest,
			want:           want{err: true, kind: apperrors.GatewayInvalidAddress},
		},
		{
			name:           "ошибка в теле при статусе 200",
			serverResponse: `{"code":"40001","msg":"bad request"}`,
			serverStatus:   http.StatusOK,
			want:           want{err: true, kind: apperrors.GatewayUnknown},
		},
		{
			name:           "успех без идентификатора заказа",
			serverResponse: `{"code":"00000","msg":"success","data":{}}`,
			serverStatus:   http.StatusOK,
			want:           want{err: true, kind: apperrors.GatewayUnknown, outcomeUnknown: true},
		},
		{
			name:           "невалидный json",
			serverResponse: `{"code":"00000",`,
			serverStatus:   http.StatusOK,
			want:           want{err: true, kind: apperrors.GatewayUnknown, outcomeUnknown: true},
		},
		{
			name:           "ошибка сервера",
			serverResponse: "",
			serverStatus:   http.StatusInternalServerError,
			want:           want{err: true, kind: apperrors.GatewayRailUnavailable, outcomeUnknown: true},
		},
		{
			name:           "сервис недоступен",
			serverResponse: "",
			serverStatus:   http.StatusServiceUnavailable,
			want:           want{err: true, kind: apperrors.GatewayRailUnavailable},
		},
		{
			name:           "слишком много запросов",
			serverResponse: "",
			serverStatus:   http.StatusTooManyRequests,
			want:           want{err: true, kind: apperrors.GatewayRailUnavailable},
		},
		{
			name:           "неожиданный статус",
			serverResponse: "",
			serverStatus:   http.StatusForbidden,
			want:           want{err: true, kind: apperrors.GatewayUnknown},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.serverStatus)
				_, _ = w.Write([]byte(tt.serverResponse))
			}))
			defer srv.Close()

			client := newTestClient(srv.URL)
			ref, err := client.SubmitPayout(context.Background(), PayoutRequest{
				WithdrawalID: 7,
				Address:      validAddress,
				Amount:       decimal.NewFromInt(50),
			})

			if !tt.want.err {
				require.NoError(t, err)
				assert.Equal(t, tt.want.reference, ref)
				return
			}

			require.Error(t, err)
			assert.Empty(t, ref)
			assert.True(t, errors.Is(err, apperrors.ErrGateway))

			var gwErr *apperrors.GatewayError
			require.True(t, errors.As(err, &gwErr))
			assert.Equal(t, tt.want.kind, gwErr.Kind)
			assert.Equal(t, tt.want.outcomeUnknown, gwErr.OutcomeUnknown)
		})
	}
}

func TestClient_SubmitPayout_SignedRequest(t *testing.T) {
	var captured struct {
		method  string
		path    string
		headers http.Header
		body    []byte
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.headers = r.Header.Clone()
		captured.body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"code":"00000","data":{"orderId":"ORD-2"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.SubmitPayout(context.Background(), PayoutRequest{
		WithdrawalID: 42,
		Address:      validAddress,
		Amount:       decimal.RequireFromString("12.5"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, withdrawalPath, captured.path)
	assert.Equal(t, "key", captured.headers.Get("ACCESS-KEY"))
	assert.Equal(t, "pass", captured.headers.Get("ACCESS-PASSPHRASE"))
	assert.Equal(t, "1700000000000", captured.headers.Get("ACCESS-TIMESTAMP"))

	wantSign := hash.Sign("1700000000000"+http.MethodPost+withdrawalPath+string(captured.body), "secret")
	assert.Equal(t, wantSign, captured.headers.Get("ACCESS-SIGN"))

	var body withdrawalBody
	require.NoError(t, json.Unmarshal(captured.body, &body))
	assert.Equal(t, "USDT", body.Coin)
	assert.Equal(t, "TRC20", body.Chain)
	assert.Equal(t, validAddress, body.Address)
	assert.Equal(t, "12.5", body.Amount)
	assert.Equal(t, ClientOid(42), body.ClientOid)
}

func TestClient_SubmitPayout_InvalidAddressSkipsRail(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.SubmitPayout(context.Background(), PayoutRequest{
		WithdrawalID: 1,
		Address:      "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6u",
		Amount:       decimal.NewFromInt(10),
	})

	var gwErr *apperrors.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, apperrors.GatewayInvalidAddress, gwErr.Kind)
	assert.False(t, gwErr.OutcomeUnknown)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestClient_SubmitPayout_TimeoutIsAmbiguous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.SubmitPayout(ctx, PayoutRequest{WithdrawalID: 3, Address: validAddress, Amount: decimal.NewFromInt(5)})

	var gwErr *apperrors.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.True(t, gwErr.OutcomeUnknown)
	assert.Equal(t, apperrors.GatewayRailUnavailable, gwErr.Kind)
}

func TestClientOid_Deterministic(t *testing.T) {
	assert.Equal(t, ClientOid(10), ClientOid(10))
	assert.NotEqual(t, ClientOid(10), ClientOid(11))
}
