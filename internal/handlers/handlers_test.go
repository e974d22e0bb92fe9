package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/a2sh3r/settlement/internal/mocks/service_mocks"
)

const (
	testSecret     = "testsecret"
	testCronSecret = "cronsecret"
)

type serviceMocks struct {
	withdrawals *service_mocks.MockWithdrawalService
	deposits    *service_mocks.MockDepositService
	settlement  *service_mocks.MockSettlementService
	sweeper     *service_mocks.MockSweeperService
	profit      *service_mocks.MockProfitService
}

func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		withdrawals: service_mocks.NewMockWithdrawalService(ctrl),
		deposits:    service_mocks.NewMockDepositService(ctrl),
		settlement:  service_mocks.NewMockSettlementService(ctrl),
		sweeper:     service_mocks.NewMockSweeperService(ctrl),
		profit:      service_mocks.NewMockProfitService(ctrl),
	}
	h := NewHandler(m.withdrawals, m.deposits, m.settlement, m.sweeper, m.profit)
	return NewRouter(h, RouterConfig{
		SecretKey:  testSecret,
		CronSecret: testCronSecret,
		RateLimit:  1000,
		RateBurst:  1000,
	}), m
}

func tokenFor(t *testing.T, userID int64, role string) string {
	t.Helper()
	claims := jwt.MapClaims{"user_id": userID, "exp": time.Now().Add(time.Hour).Unix()}
	if role != "" {
		claims["role"] = role
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func doRequest(t *testing.T, router http.Handler, method, target, body, token string) (int, string) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}
