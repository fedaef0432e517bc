package repo

import (
	"github.com/GlebRadaev/debtledger/internal/pg"
	debtrepo "github.com/GlebRadaev/debtledger/internal/repo/debt-repo"
	pendingrepo "github.com/GlebRadaev/debtledger/internal/repo/pending-repo"
	"github.com/GlebRadaev/debtledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/debtledger/internal/service/pendingservice"
	"github.com/GlebRadaev/debtledger/internal/sweeper"
)

// PendingRepo is shared by the state machine and the sweeper.
type PendingRepo interface {
	pendingservice.PendingRepo
	sweeper.Repo
}

type Repositories struct {
	DebtRepo    ledgerservice.DebtRepo
	PendingRepo PendingRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		DebtRepo:    debtrepo.New(conn),
		PendingRepo: pendingrepo.New(conn),
	}
}
