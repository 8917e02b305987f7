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

type CriteriaRepository interface {
	// GetActiveVersion returns nil (not an error) when the user has no
	// published criteria - the orchestrator treats that as a skip.
	GetActiveVersion(userAccountID uuid.UUID) (*model.CriteriaVersion, error)
	ListRules(criteriaVersionID uuid.UUID) ([]model.CriterionRule, error)
	// PublishVersion appends a new immutable version with its rules and
	// deactivates the previous active version. Rule rows are never updated
	// after this.
	PublishVersion(tx *sql.Tx, version model.CriteriaVersion, rules []model.CriterionRule) (*model.CriteriaVersion, error)
}

type criteriaRepositoryHandler struct {
	Db *sql.DB
}

func NewCriteriaRepository(db *sql.DB) CriteriaRepository {
	return criteriaRepositoryHandler{db}
}

func (h criteriaRepositoryHandler) GetActiveVersion(userAccountID uuid.UUID) (*model.CriteriaVersion, error) {
	query := table.CriteriaVersion.
		SELECT(table.CriteriaVersion.AllColumns).
		WHERE(postgres.AND(
			table.CriteriaVersion.UserAccountID.EQ(postgres.UUID(userAccountID)),
			table.CriteriaVersion.IsActive.IS_TRUE(),
		)).
		ORDER_BY(table.CriteriaVersion.Version.DESC()).
		LIMIT(1)

	out := model.CriteriaVersion{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get active criteria version for user %s: %w", userAccountID.String(), err)
	}

	return &out, nil
}

func (h criteriaRepositoryHandler) ListRules(criteriaVersionID uuid.UUID) ([]model.CriterionRule, error) {
	query := table.CriterionRule.
		SELECT(table.CriterionRule.AllColumns).
		WHERE(table.CriterionRule.CriteriaVersionID.EQ(postgres.UUID(criteriaVersionID))).
		ORDER_BY(table.CriterionRule.SortOrder.ASC())

	out := []model.CriterionRule{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}

func (h criteriaRepositoryHandler) PublishVersion(tx *sql.Tx, version model.CriteriaVersion, rules []model.CriterionRule) (*model.CriteriaVersion, error) {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}

	deactivate := table.CriteriaVersion.
		UPDATE(table.CriteriaVersion.IsActive).
		SET(postgres.Bool(false)).
		WHERE(postgres.AND(
			table.CriteriaVersion.UserAccountID.EQ(postgres.UUID(version.UserAccountID)),
			table.CriteriaVersion.IsActive.IS_TRUE(),
		))
	_, err := deactivate.Exec(db)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate previous criteria versions: %w", err)
	}

	version.IsActive = true
	version.PublishedAt = time.Now().UTC()
	version.CreatedAt = time.Now().UTC()

	insertVersion := table.CriteriaVersion.
		INSERT(table.CriteriaVersion.MutableColumns).
		MODEL(version).
		RETURNING(table.CriteriaVersion.AllColumns)

	out := model.CriteriaVersion{}
	err = insertVersion.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert criteria version: %w", err)
	}

	if len(rules) > 0 {
		for i := range rules {
			rules[i].CriteriaVersionID = out.CriteriaVersionID
			rules[i].CreatedAt = time.Now().UTC()
		}
		insertRules := table.CriterionRule.
			INSERT(table.CriterionRule.MutableColumns).
			MODELS(rules)
		_, err = insertRules.Exec(db)
		if err != nil {
			return nil, fmt.Errorf("failed to insert criterion rules: %w", err)
		}
	}

	return &out, nil
}
