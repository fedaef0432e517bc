package pending

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/debtledger/internal/domain"
	"github.com/GlebRadaev/debtledger/internal/dto"
	"github.com/GlebRadaev/debtledger/internal/service/pendingservice"
	"github.com/GlebRadaev/debtledger/pkg/auth"
	"github.com/GlebRadaev/debtledger/pkg/money"
	"github.com/GlebRadaev/debtledger/pkg/utils"
)

//go:generate mockgen -source=pending.go -destination=mock_pending.go -package=pending

type Service interface {
	CreateRequest(ctx context.Context, actorID, targetID, channelID int64, amount decimal.Decimal, note *string) (*domain.PendingTransaction, error)
	CreatePayment(ctx context.Context, actorID, targetID, channelID int64, amount decimal.Decimal, note *string) (*domain.PendingTransaction, error)
	Get(ctx context.Context, kind domain.Kind, messageID int64) (*domain.PendingTransaction, error)
	Confirm(ctx context.Context, kind domain.Kind, messageID, actorID int64) (*domain.Resolution, error)
	Deny(ctx context.Context, kind domain.Kind, messageID, actorID int64) (*domain.Resolution, error)
}

type PendingHandler struct {
	pendingService Service
}

func New(pendingService Service) *PendingHandler {
	return &PendingHandler{
		pendingService: pendingService,
	}
}

const maxBodyBytes = 64 << 10

type createFunc func(ctx context.Context, actorID, targetID, channelID int64, amount decimal.Decimal, note *string) (*domain.PendingTransaction, error)

// CreateRequest godoc
//
//	@Summary		Request money from a member
//	@Description	Posts a confirmation prompt to the channel and stores a pending request the target must confirm.
//	@Tags			Подтверждения
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePendingRequestDTO	true	"Request payload"
//	@Success		201		{object}	dto.PendingResponseDTO		"Pending request created"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		413		{object}	utils.Response				"Request body too large"
//	@Failure		422		{object}	utils.Response				"Validation failed"
//	@Failure		502		{object}	utils.Response				"Chat gateway unavailable"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/requests [post]
func (h *PendingHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.pendingService.CreateRequest)
}

// CreatePayment godoc
//
//	@Summary		Claim a payment to a member
//	@Description	Posts a confirmation prompt to the channel and stores a pending payment the creditor must confirm.
//	@Tags			Подтверждения
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePendingRequestDTO	true	"Payment payload"
//	@Success		201		{object}	dto.PendingResponseDTO		"Pending payment created"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		413		{object}	utils.Response				"Request body too large"
//	@Failure		422		{object}	utils.Response				"Validation failed"
//	@Failure		502		{object}	utils.Response				"Chat gateway unavailable"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/payments [post]
func (h *PendingHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.pendingService.CreatePayment)
}

func (h *PendingHandler) create(w http.ResponseWriter, r *http.Request, create createFunc) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req dto.CreatePendingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		if errors.Is(err, money.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := create(r.Context(), userID, req.TargetID, req.ChannelID, req.Amount.Decimal, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, pendingservice.ErrPromptFailed):
			utils.RespondWithError(w, http.StatusBadGateway, "Chat gateway unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPendingDTO(p))
}

// GetPending godoc
//
//	@Summary		Get a pending transaction
//	@Description	Look up a pending request or payment by the id of its prompt message.
//	@Tags			Подтверждения
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kind		path		string					true	"request or payment"
//	@Param			messageID	path		int						true	"Prompt message id"
//	@Success		200			{object}	dto.PendingResponseDTO	"Pending transaction"
//	@Failure		400			{object}	utils.Response			"Unknown kind or bad id"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		404			{object}	utils.Response			"Already resolved or expired"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/pending/{kind}/{messageID} [get]
func (h *PendingHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	kind, messageID, ok := parsePath(w, r)
	if !ok {
		return
	}

	p, err := h.pendingService.Get(r.Context(), kind, messageID)
	if err != nil {
		switch {
		case errors.Is(err, pendingservice.ErrPendingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPendingDTO(p))
}

// Confirm godoc
//
//	@Summary		Confirm a pending transaction
//	@Description	Only the confirming party may confirm: the debtor for requests, the creditor for payments. Repeated or late confirmations report already_resolved.
//	@Tags			Подтверждения
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kind		path		string						true	"request or payment"
//	@Param			messageID	path		int							true	"Prompt message id"
//	@Success		200			{object}	dto.ResolutionResponseDTO	"confirmed, already_resolved or unauthorized"
//	@Failure		400			{object}	utils.Response				"Unknown kind or bad id"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/pending/{kind}/{messageID}/confirm [post]
func (h *PendingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.pendingService.Confirm)
}

// Deny godoc
//
//	@Summary		Deny a pending transaction
//	@Description	Only the confirming party may deny. Nothing is written to the ledger.
//	@Tags			Подтверждения
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kind		path		string						true	"request or payment"
//	@Param			messageID	path		int							true	"Prompt message id"
//	@Success		200			{object}	dto.ResolutionResponseDTO	"denied, already_resolved or unauthorized"
//	@Failure		400			{object}	utils.Response				"Unknown kind or bad id"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/pending/{kind}/{messageID}/deny [post]
func (h *PendingHandler) Deny(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.pendingService.Deny)
}

type resolveFunc func(ctx context.Context, kind domain.Kind, messageID, actorID int64) (*domain.Resolution, error)

func (h *PendingHandler) resolve(w http.ResponseWriter, r *http.Request, resolve resolveFunc) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	kind, messageID, ok := parsePath(w, r)
	if !ok {
		return
	}

	res, err := resolve(r.Context(), kind, messageID, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.ResolutionResponseDTO{Outcome: string(res.Outcome)}
	if res.Pending != nil && res.Outcome != domain.OutcomeUnauthorized {
		p := toPendingDTO(res.Pending)
		resp.Pending = &p
	}
	if res.Payment != nil {
		resp.Payment = &dto.PaymentResultDTO{
			Requested:   money.String(res.Payment.Requested),
			Applied:     money.String(res.Payment.Applied),
			Overpayment: money.String(res.Payment.Overpayment),
			NoDebt:      res.Payment.NoDebt(),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func parsePath(w http.ResponseWriter, r *http.Request) (domain.Kind, int64, bool) {
	kind, ok := domain.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown kind")
		return "", 0, false
	}
	messageID, err := strconv.ParseInt(chi.URLParam(r, "messageID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid message id")
		return "", 0, false
	}
	return kind, messageID, true
}

func toPendingDTO(p *domain.PendingTransaction) dto.PendingResponseDTO {
	return dto.PendingResponseDTO{
		Kind:        string(p.Kind),
		MessageID:   p.MessageID,
		ChannelID:   p.ChannelID,
		CreditorID:  p.CreditorID,
		DebtorID:    p.DebtorID,
		ConfirmerID: p.ConfirmerID(),
		Amount:      money.String(p.Amount),
		Note:        p.Note,
		ExpiresAt:   p.ExpiresAt,
		Reminded:    p.Reminded,
	}
}
