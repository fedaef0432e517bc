package debts

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/debtledger/internal/domain"
	"github.com/GlebRadaev/debtledger/internal/dto"
	"github.com/GlebRadaev/debtledger/pkg/auth"
	"github.com/GlebRadaev/debtledger/pkg/money"
	"github.com/GlebRadaev/debtledger/pkg/utils"
)

//go:generate mockgen -source=debts.go -destination=mock_debts.go -package=debts

type Service interface {
	Summary(ctx context.Context, userID int64) (*domain.Summary, error)
	NetBalance(ctx context.Context, a, b int64) (decimal.Decimal, error)
}

type NameResolver interface {
	DisplayName(ctx context.Context, userID int64) (string, bool)
}

type DebtsHandler struct {
	ledgerService Service
	names         NameResolver
}

func New(ledgerService Service, names NameResolver) *DebtsHandler {
	return &DebtsHandler{
		ledgerService: ledgerService,
		names:         names,
	}
}

// GetDebts godoc
//
//	@Summary		Get debts summary
//	@Description	Who owes the authenticated user, whom they owe, totals per side and the net position. Lists are sorted by total, largest first.
//	@Tags			Долги
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DebtsResponseDTO	"Debts summary"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/debts [get]
func (h *DebtsHandler) GetDebts(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.ledgerService.Summary(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DebtsResponseDTO{
		OwedToMe:      h.counterparties(r.Context(), summary.OwedToMe),
		IOwe:          h.counterparties(r.Context(), summary.IOwe),
		TotalOwedToMe: money.String(summary.TotalOwedToMe),
		TotalIOwe:     money.String(summary.TotalIOwe),
		Net:           money.String(summary.Net()),
	})
}

// GetBalance godoc
//
//	@Summary		Get net balance with a member
//	@Description	Positive when the member owes the authenticated user, negative when the user owes them.
//	@Tags			Долги
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int						true	"Counterparty user id"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Net balance"
//	@Failure		400		{object}	utils.Response			"Invalid user id"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/balance/{userID} [get]
func (h *DebtsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	otherID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || otherID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	net, err := h.ledgerService.NetBalance(r.Context(), userID, otherID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:      otherID,
		DisplayName: h.displayName(r.Context(), otherID),
		Net:         money.String(net),
	})
}

func (h *DebtsHandler) counterparties(ctx context.Context, totals []domain.CounterpartyTotal) []dto.CounterpartyDTO {
	out := make([]dto.CounterpartyDTO, len(totals))
	for i, t := range totals {
		out[i] = dto.CounterpartyDTO{
			UserID:      t.UserID,
			DisplayName: h.displayName(ctx, t.UserID),
			Total:       money.String(t.Total),
		}
	}
	return out
}

func (h *DebtsHandler) displayName(ctx context.Context, userID int64) string {
	if name, ok := h.names.DisplayName(ctx, userID); ok {
		return name
	}
	return ""
}
