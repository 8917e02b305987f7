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

type RecommendationRepository interface {
	AddSession(tx *sql.Tx, session model.RecommendationSession, items []*model.RecommendationItem) (*model.RecommendationSession, error)
	GetSession(sessionID uuid.UUID) (*model.RecommendationSession, error)
	// GetLatestSession returns the user's most recent session, expired or
	// not, with nil for a user who has none. Expiry is the caller's call.
	GetLatestSession(userAccountID uuid.UUID) (*model.RecommendationSession, error)
	ListItems(sessionID uuid.UUID) ([]model.RecommendationItem, error)
}

type recommendationRepositoryHandler struct {
	Db *sql.DB
}

func NewRecommendationRepository(db *sql.DB) RecommendationRepository {
	return recommendationRepositoryHandler{db}
}

func (h recommendationRepositoryHandler) AddSession(tx *sql.Tx, session model.RecommendationSession, items []*model.RecommendationItem) (*model.RecommendationSession, error) {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}

	session.CreatedAt = time.Now().UTC()

	insertSession := table.RecommendationSession.
		INSERT(table.RecommendationSession.AllColumns).
		MODEL(session).
		RETURNING(table.RecommendationSession.AllColumns)

	out := model.RecommendationSession{}
	err := insertSession.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert recommendation session: %w", err)
	}

	if len(items) > 0 {
		for _, item := range items {
			item.RecommendationSessionID = out.RecommendationSessionID
			item.CreatedAt = time.Now().UTC()
		}
		insertItems := table.RecommendationItem.
			INSERT(table.RecommendationItem.MutableColumns).
			MODELS(items)
		_, err = insertItems.Exec(db)
		if err != nil {
			return nil, fmt.Errorf("failed to insert recommendation items: %w", err)
		}
	}

	return &out, nil
}

func (h recommendationRepositoryHandler) GetSession(sessionID uuid.UUID) (*model.RecommendationSession, error) {
	query := table.RecommendationSession.
		SELECT(table.RecommendationSession.AllColumns).
		WHERE(table.RecommendationSession.RecommendationSessionID.EQ(postgres.UUID(sessionID)))

	out := model.RecommendationSession{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendation session %s: %w", sessionID.String(), err)
	}

	return &out, nil
}

func (h recommendationRepositoryHandler) GetLatestSession(userAccountID uuid.UUID) (*model.RecommendationSession, error) {
	query := table.RecommendationSession.
		SELECT(table.RecommendationSession.AllColumns).
		WHERE(table.RecommendationSession.UserAccountID.EQ(postgres.UUID(userAccountID))).
		ORDER_BY(table.RecommendationSession.GeneratedAt.DESC()).
		LIMIT(1)

	out := model.RecommendationSession{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &out, nil
}

func (h recommendationRepositoryHandler) ListItems(sessionID uuid.UUID) ([]model.RecommendationItem, error) {
	query := table.RecommendationItem.
		SELECT(table.RecommendationItem.AllColumns).
		WHERE(table.RecommendationItem.RecommendationSessionID.EQ(postgres.UUID(sessionID))).
		ORDER_BY(table.RecommendationItem.Priority.DESC())

	out := []model.RecommendationItem{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}
