package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	debtrepo "github.com/GlebRadaev/debtledger/internal/repo/debt-repo"
	pendingrepo "github.com/GlebRadaev/debtledger/internal/repo/pending-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.DebtRepo)
	assert.NotNil(t, repo.PendingRepo)

	assert.IsType(t, &debtrepo.Repository{}, repo.DebtRepo)
	assert.IsType(t, &pendingrepo.Repository{}, repo.PendingRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
