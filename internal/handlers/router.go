package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/a2sh3r/settlement/internal/middleware"
	"github.com/a2sh3r/settlement/internal/service"
)

type Handler struct {
	withdrawals service.WithdrawalService
	deposits    service.DepositService
	settlement  service.SettlementService
	sweeper     service.SweeperService
	profit      service.ProfitService
}

func NewHandler(
	withdrawals service.WithdrawalService,
	deposits service.DepositService,
	settlement service.SettlementService,
	sweeper service.SweeperService,
	profit service.ProfitService,
) *Handler {
	return &Handler{
		withdrawals: withdrawals,
		deposits:    deposits,
		settlement:  settlement,
		sweeper:     sweeper,
		profit:      profit,
	}
}

type RouterConfig struct {
	SecretKey  string
	CronSecret string
	RateLimit  float64
	RateBurst  int
}

func NewRouter(h *Handler, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.WithLogging())
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.WithGzip())

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid URL format", http.StatusNotFound)
	})

	limiter := middleware.NewClientLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	r.Route("/api/user", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(cfg.SecretKey))
		r.Use(middleware.RateLimitMiddleware(limiter))

		r.Get("/balance", h.GetLedger)
		r.Post("/withdrawals", h.CreateWithdrawal)
		r.Get("/withdrawals", h.GetUserWithdrawals)
		r.Post("/deposits", h.CreateDeposit)
		r.Get("/deposits", h.GetUserDeposits)
		r.Get("/deposits/{id}", h.GetDeposit)
		r.Post("/deposits/{id}/verify", h.VerifyDeposit)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(cfg.SecretKey))
		r.Use(middleware.RequireAdmin)

		r.Get("/withdrawals/pending", h.GetPendingWithdrawals)
		r.Get("/withdrawals/{id}/settlements", h.GetSettlements)
		r.Post("/withdrawals/{id}/status", h.UpdateWithdrawalStatus)
		r.Post("/withdrawals/{id}/requeue", h.RequeueWithdrawal)
		r.Post("/withdrawals/{id}/confirm", h.ConfirmPayout)
		r.Post("/settlement/sweep", h.RunSweep)
		r.Get("/settlement/automatic", h.GetAutomatic)
		r.Put("/settlement/automatic", h.SetAutomatic)
		r.Post("/profit/accrue", h.AccrueProfit)
	})

	r.Route("/api/cron", func(r chi.Router) {
		r.Use(middleware.RequireHash(cfg.CronSecret))
		r.Get("/process-withdrawals", h.RunSweep)
	})

	return r
}
