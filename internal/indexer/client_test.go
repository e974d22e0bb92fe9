package indexer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2sh3r/settlement/internal/config"
)

const receiving = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"

func TestClient_ListTransfers(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse string
		serverStatus   int
		wantErr        bool
		wantCount      int
		wantAmount     string
	}{
		{
			name: "один перевод",
			serverResponse: `{"success":true,"data":[{"transaction_id":"abc","block_timestamp":1700000000000,
				"from":"TSender","to":"` + receiving + `","value":"99991000",
				"token_info":{"symbol":"USDT","address":"TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t","decimals":6}}],"meta":{}}`,
			serverStatus: http.StatusOK,
			wantCount:    1,
			wantAmount:   "99.991",
		},
		{
			name:           "пустой список",
			serverResponse: `{"success":true,"data":[],"meta":{}}`,
			serverStatus:   http.StatusOK,
			wantCount:      0,
		},
		{
			name: "битое значение пропускается",
			serverResponse: `{"success":true,"data":[{"transaction_id":"bad","value":"x1",
				"token_info":{"symbol":"USDT","decimals":6}}],"meta":{}}`,
			serverStatus: http.StatusOK,
			wantCount:    0,
		},
		{
			name:           "ошибка сервера",
			serverResponse: "",
			serverStatus:   http.StatusInternalServerError,
			wantErr:        true,
		},
		{
			name:           "неуспешный ответ",
			serverResponse: `{"success":false,"data":[]}`,
			serverStatus:   http.StatusOK,
			wantErr:        true,
		},
		{
			name:           "невалидный json",
			serverResponse: `{"success":`,
			serverStatus:   http.StatusOK,
			wantErr:        true,
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

			client := NewClient(config.IndexerConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})
			from := time.UnixMilli(1699999000000)
			transfers, err := client.ListTransfers(context.Background(), receiving, from, from.Add(30*time.Minute))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, transfers, tt.wantCount)
			if tt.wantCount > 0 {
				assert.True(t, transfers[0].Amount.Equal(decimal.RequireFromString(tt.wantAmount)), "got %s", transfers[0].Amount)
				assert.Equal(t, "USDT", transfers[0].Symbol)
				assert.Equal(t, receiving, transfers[0].To)
				assert.Equal(t, int64(1700000000000), transfers[0].Timestamp.UnixMilli())
			}
		})
	}
}

func TestClient_ListTransfers_Query(t *testing.T) {
	var gotPath, gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("TRON-PRO-API-KEY")
		_, _ = w.Write([]byte(`{"success":true,"data":[],"meta":{}}`))
	}))
	defer srv.Close()

	client := NewClient(config.IndexerConfig{BaseURL: srv.URL, APIKey: "tron-key"})
	from := time.UnixMilli(1700000000000)
	_, err := client.ListTransfers(context.Background(), receiving, from, from.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, "/v1/accounts/"+receiving+"/transactions/trc20", gotPath)
	assert.Contains(t, gotQuery, "only_confirmed=true")
	assert.Contains(t, gotQuery, "limit=200")
	assert.Contains(t, gotQuery, "min_timestamp=1700000000000")
	assert.Contains(t, gotQuery, "max_timestamp=1700000060000")
	assert.Equal(t, "tron-key", gotKey)
}

func TestClient_ListTransfers_FollowsFingerprint(t *testing.T) {
	row := `{"transaction_id":"%s","block_timestamp":1700000000000,"to":"` + receiving + `","value":"1000000","token_info":{"symbol":"USDT","decimals":6}}`
	firstPage := make([]string, pageLimit)
	for i := range firstPage {
		firstPage[i] = fmt.Sprintf(row, fmt.Sprintf("tx%d", i))
	}

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("fingerprint") == "" {
			_, _ = w.Write([]byte(`{"success":true,"data":[` + strings.Join(firstPage, ",") + `],"meta":{"fingerprint":"next"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[` + fmt.Sprintf(row, "last") + `],"meta":{}}`))
	}))
	defer srv.Close()

	client := NewClient(config.IndexerConfig{BaseURL: srv.URL})
	from := time.UnixMilli(1700000000000)
	transfers, err := client.ListTransfers(context.Background(), receiving, from, from.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, transfers, pageLimit+1)
	assert.Equal(t, "last", transfers[pageLimit].TxID)
}
