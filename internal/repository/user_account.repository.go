package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type UserAccountRepository interface {
	Get(userAccountID uuid.UUID) (*model.UserAccount, error)
	List() ([]model.UserAccount, error)
	Add(userAccount model.UserAccount) (*model.UserAccount, error)
}

type userAccountRepositoryHandler struct {
	Db *sql.DB
}

func NewUserAccountRepository(db *sql.DB) UserAccountRepository {
	return userAccountRepositoryHandler{db}
}

func (h userAccountRepositoryHandler) Get(userAccountID uuid.UUID) (*model.UserAccount, error) {
	query := table.UserAccount.
		SELECT(table.UserAccount.AllColumns).
		WHERE(table.UserAccount.UserAccountID.EQ(postgres.UUID(userAccountID)))

	out := model.UserAccount{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get user account %s: %w", userAccountID.String(), err)
	}

	return &out, nil
}

func (h userAccountRepositoryHandler) List() ([]model.UserAccount, error) {
	query := table.UserAccount.
		SELECT(table.UserAccount.AllColumns).
		ORDER_BY(table.UserAccount.CreatedAt.ASC())

	out := []model.UserAccount{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}

func (h userAccountRepositoryHandler) Add(m model.UserAccount) (*model.UserAccount, error) {
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = time.Now().UTC()

	query := table.UserAccount.
		INSERT(table.UserAccount.MutableColumns).
		MODEL(m).
		RETURNING(table.UserAccount.AllColumns)

	out := model.UserAccount{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user account: %w", err)
	}

	return &out, nil
}
