package dto

import (
	"time"

	"github.com/GlebRadaev/debtledger/pkg/money"
)

type CreatePendingRequestDTO struct {
	TargetID  int64        `json:"target_id" example:"281374651"`
	ChannelID int64        `json:"channel_id" example:"-1001234567890"`
	Amount    money.Amount `json:"amount" swaggertype:"string" example:"12.50"`
	Note      *string      `json:"note,omitempty" example:"pizza"`
}

type PendingResponseDTO struct {
	Kind        string    `json:"kind" example:"request"`
	MessageID   int64     `json:"message_id" example:"4512"`
	ChannelID   int64     `json:"channel_id" example:"-1001234567890"`
	CreditorID  int64     `json:"creditor_id" example:"281374651"`
	DebtorID    int64     `json:"debtor_id" example:"193847561"`
	ConfirmerID int64     `json:"confirmer_id" example:"193847561"`
	Amount      string    `json:"amount" example:"12.50"`
	Note        *string   `json:"note,omitempty" example:"pizza"`
	ExpiresAt   time.Time `json:"expires_at" example:"2026-10-17T09:00:00Z"`
	Reminded    bool      `json:"reminded" example:"false"`
}

type PaymentResultDTO struct {
	Requested   string `json:"requested" example:"15.00"`
	Applied     string `json:"applied" example:"10.00"`
	Overpayment string `json:"overpayment" example:"5.00"`
	NoDebt      bool   `json:"no_debt" example:"false"`
}

type ResolutionResponseDTO struct {
	Outcome string              `json:"outcome" example:"confirmed"`
	Pending *PendingResponseDTO `json:"pending,omitempty"`
	Payment *PaymentResultDTO   `json:"payment,omitempty"`
}
