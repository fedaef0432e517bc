package service

import (
	"time"

	"github.com/GlebRadaev/debtledger/internal/handlers/debts"
	"github.com/GlebRadaev/debtledger/internal/handlers/pending"
	"github.com/GlebRadaev/debtledger/internal/notify"
	"github.com/GlebRadaev/debtledger/internal/pg"
	"github.com/GlebRadaev/debtledger/internal/repo"
	"github.com/GlebRadaev/debtledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/debtledger/internal/service/pendingservice"
)

type Services struct {
	LedgerService  debts.Service
	PendingService pending.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier notify.Notifier, expiryWindow time.Duration) *Services {
	ledgerService := ledgerservice.New(repo.DebtRepo, txManager)
	pendingService := pendingservice.New(repo.PendingRepo, ledgerService, txManager, notifier, expiryWindow)

	return &Services{
		LedgerService:  ledgerService,
		PendingService: pendingService,
	}
}
