package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vetward/vetward/internal/logger"
	"github.com/vetward/vetward/models"
)

type caseCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewCaseCacheRepository(db *DB, logger *logger.Logger) CaseCacheRepository {
	return &caseCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *caseCacheRepository) SaveList(ctx context.Context, principal string, cases []models.SurgeryCase) error {
	log := logger.FromContext(ctx)

	records, err := json.Marshal(cases)
	if err != nil {
		return fmt.Errorf("failed to encode case list: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, saveListCache, principal, string(records), time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "caseCacheRepository.SaveList").
			Str("principal", principal).
			Msg("failed to upsert case list cache")
		return fmt.Errorf("failed to save case list cache: %w", err)
	}

	return nil
}

func (r *caseCacheRepository) GetList(ctx context.Context, principal string) ([]models.SurgeryCase, error) {
	log := logger.FromContext(ctx)

	var records string
	err := r.DB.QueryRowContext(ctx, getListCache, principal).Scan(&records)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCacheMiss
		}
		log.Err(err).
			Str("func", "caseCacheRepository.GetList").
			Str("principal", principal).
			Msg("failed to query case list cache")
		return nil, fmt.Errorf("failed to load case list cache: %w", err)
	}

	var cases []models.SurgeryCase
	if err = json.Unmarshal([]byte(records), &cases); err != nil {
		return nil, fmt.Errorf("failed to decode case list cache: %w", err)
	}

	return cases, nil
}

func (r *caseCacheRepository) HasList(ctx context.Context, principal string) (bool, error) {
	cases, err := r.GetList(ctx, principal)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return false, nil
		}
		return false, err
	}

	return len(cases) > 0, nil
}

func (r *caseCacheRepository) SaveDetail(ctx context.Context, principal string, caseID int64, c models.SurgeryCase) error {
	log := logger.FromContext(ctx)

	record, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode case record: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, saveDetailCache, principal, caseID, string(record), time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "caseCacheRepository.SaveDetail").
			Str("principal", principal).
			Int64("case_id", caseID).
			Msg("failed to upsert case detail cache")
		return fmt.Errorf("failed to save case detail cache (case_id=%d): %w", caseID, err)
	}

	return nil
}

func (r *caseCacheRepository) GetDetail(ctx context.Context, principal string, caseID int64) (models.SurgeryCase, error) {
	log := logger.FromContext(ctx)

	var record string
	err := r.DB.QueryRowContext(ctx, getDetailCache, principal, caseID).Scan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SurgeryCase{}, ErrCacheMiss
		}
		log.Err(err).
			Str("func", "caseCacheRepository.GetDetail").
			Str("principal", principal).
			Int64("case_id", caseID).
			Msg("failed to query case detail cache")
		return models.SurgeryCase{}, fmt.Errorf("failed to load case detail cache (case_id=%d): %w", caseID, err)
	}

	var c models.SurgeryCase
	if err = json.Unmarshal([]byte(record), &c); err != nil {
		return models.SurgeryCase{}, fmt.Errorf("failed to decode case detail cache: %w", err)
	}

	return c, nil
}

func (r *caseCacheRepository) InvalidateList(ctx context.Context, principal string) error {
	if _, err := r.DB.ExecContext(ctx, deleteListCache, principal); err != nil {
		return fmt.Errorf("failed to invalidate case list cache: %w", err)
	}
	return nil
}

func (r *caseCacheRepository) InvalidateDetail(ctx context.Context, principal string, caseID int64) error {
	if _, err := r.DB.ExecContext(ctx, deleteDetailCache, principal, caseID); err != nil {
		return fmt.Errorf("failed to invalidate case detail cache (case_id=%d): %w", caseID, err)
	}
	return nil
}

func (r *caseCacheRepository) ClearForPrincipal(ctx context.Context, principal string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteListCache, principal); err != nil {
		log.Err(err).
			Str("func", "caseCacheRepository.ClearForPrincipal").
			Str("principal", principal).
			Msg("failed to clear case list cache")
		return fmt.Errorf("failed to clear case list cache: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, deleteDetailCacheForPrincipal, principal); err != nil {
		log.Err(err).
			Str("func", "caseCacheRepository.ClearForPrincipal").
			Str("principal", principal).
			Msg("failed to clear case detail cache")
		return fmt.Errorf("failed to clear case detail cache: %w", err)
	}

	return nil
}

func (r *caseCacheRepository) ClearAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteAllListCache); err != nil {
		return fmt.Errorf("failed to clear all case list cache: %w", err)
	}
	if _, err := r.DB.ExecContext(ctx, deleteAllDetailCache); err != nil {
		return fmt.Errorf("failed to clear all case detail cache: %w", err)
	}
	return nil
}
