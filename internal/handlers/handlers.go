package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/GlebRadaev/debtledger/docs"
	debtshandlers "github.com/GlebRadaev/debtledger/internal/handlers/debts"
	pendinghandlers "github.com/GlebRadaev/debtledger/internal/handlers/pending"
	"github.com/GlebRadaev/debtledger/internal/service"
	"github.com/GlebRadaev/debtledger/pkg/utils"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

const pingTimeout = 2 * time.Second

type PendingHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	CreatePayment(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Deny(w http.ResponseWriter, r *http.Request)
}

type DebtsHandler interface {
	GetDebts(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	PendingHandler PendingHandler
	DebtsHandler   DebtsHandler
	Pinger         Pinger
	Authenticate   func(http.Handler) http.Handler
	CORSOrigins    []string
}

func New(s *service.Services, names debtshandlers.NameResolver, pinger Pinger, authenticate func(http.Handler) http.Handler, corsOrigins []string) *Handlers {
	return &Handlers{
		PendingHandler: pendinghandlers.New(s.PendingService),
		DebtsHandler:   debtshandlers.New(s.LedgerService, names),
		Pinger:         pinger,
		Authenticate:   authenticate,
		CORSOrigins:    corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if len(h.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/ping", h.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.Authenticate)

		r.Post("/requests", h.PendingHandler.CreateRequest)
		r.Post("/payments", h.PendingHandler.CreatePayment)
		r.Route("/pending/{kind}/{messageID}", func(r chi.Router) {
			r.Get("/", h.PendingHandler.GetPending)
			r.Post("/confirm", h.PendingHandler.Confirm)
			r.Post("/deny", h.PendingHandler.Deny)
		})
		r.Get("/debts", h.DebtsHandler.GetDebts)
		r.Get("/balance/{userID}", h.DebtsHandler.GetBalance)
	})

	return r
}

// Ping godoc
//
//	@Summary		Health check
//	@Description	Reports whether the service can reach its database.
//	@Tags			Служебные
//	@Produce		json
//	@Success		200	{object}	utils.Response	"OK"
//	@Failure		500	{object}	utils.Response	"Database unavailable"
//	@Router			/ping [get]
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.Pinger.Ping(ctx); err != nil {
		zap.L().Error("database ping failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Database unavailable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "OK"})
}
