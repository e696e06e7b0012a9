package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/vetward/vetward/internal/logger"
	"github.com/vetward/vetward/models"
)

// actionableStatuses are the statuses a drain pass picks up. Succeeded
// operations are excluded defensively; they should already be gone.
var actionableStatuses = []string{
	string(models.StatusPending),
	string(models.StatusFailed),
}

type operationQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewOperationQueueRepository(db *DB, logger *logger.Logger) OperationQueueRepository {
	return &operationQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *operationQueueRepository) Enqueue(ctx context.Context, op models.QueuedOperation) (int64, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(op.Payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode operation payload: %w", err)
	}

	createdAt := op.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := sq.Insert("sync_operations").
		Columns("principal", "type", "status", "last_error", "payload", "created_at").
		Values(op.Principal, string(op.Type), string(models.StatusPending), "", string(payload), createdAt).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build enqueue query: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.Enqueue").
			Str("principal", op.Principal).
			Str("type", string(op.Type)).
			Msg("failed to insert queued operation")
		return 0, fmt.Errorf("failed to enqueue operation (type=%s): %w", op.Type, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read enqueued operation id: %w", err)
	}

	return id, nil
}

func (r *operationQueueRepository) GetOperation(ctx context.Context, id int64) (models.QueuedOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "principal", "type", "status", "last_error", "payload", "created_at").
		From("sync_operations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.QueuedOperation{}, fmt.Errorf("failed to build get operation query: %w", err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	op, err := scanOperation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QueuedOperation{}, ErrOperationNotFound
		}
		log.Err(err).
			Str("func", "operationQueueRepository.GetOperation").
			Int64("id", id).
			Msg("failed to scan queued operation row")
		return models.QueuedOperation{}, fmt.Errorf("failed to load operation (id=%d): %w", id, err)
	}

	return op, nil
}

func (r *operationQueueRepository) GetPendingOperations(ctx context.Context, principal string) ([]models.QueuedOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "principal", "type", "status", "last_error", "payload", "created_at").
		From("sync_operations").
		Where(sq.Eq{"principal": principal}).
		Where(sq.Eq{"status": actionableStatuses}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build pending operations query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.GetPendingOperations").
			Str("principal", principal).
			Msg("failed to query pending operations")
		return nil, fmt.Errorf("failed to query pending operations: %w", err)
	}
	defer rows.Close()

	var ops []models.QueuedOperation
	for rows.Next() {
		op, scanErr := scanOperation(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "operationQueueRepository.GetPendingOperations").
				Str("principal", principal).
				Msg("failed to scan queued operation row")
			return nil, fmt.Errorf("failed to scan queued operation row: %w", scanErr)
		}
		ops = append(ops, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "operationQueueRepository.GetPendingOperations").
			Str("principal", principal).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating queued operation rows: %w", rowsErr)
	}

	return ops, nil
}

func (r *operationQueueRepository) UpdateStatus(ctx context.Context, id int64, status models.OperationStatus, lastError string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("sync_operations").
		Set("status", string(status)).
		Set("last_error", lastError).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update status query: %w", err)
	}

	// Zero rows affected means the operation was already removed; that is
	// not an error.
	_, err = r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.UpdateStatus").
			Int64("id", id).
			Str("status", string(status)).
			Msg("failed to update operation status")
		return fmt.Errorf("failed to update operation status (id=%d): %w", id, err)
	}

	return nil
}

func (r *operationQueueRepository) Remove(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("sync_operations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.Remove").
			Int64("id", id).
			Msg("failed to delete queued operation")
		return fmt.Errorf("failed to remove operation (id=%d): %w", id, err)
	}

	return nil
}

func (r *operationQueueRepository) ClearAll(ctx context.Context, principal string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("sync_operations").
		Where(sq.Eq{"principal": principal}).
		Where(sq.Eq{"status": actionableStatuses}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear all query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.ClearAll").
			Str("principal", principal).
			Msg("failed to clear queued operations")
		return fmt.Errorf("failed to clear operations for principal: %w", err)
	}

	return nil
}

// scanOperation decodes one sync_operations row using the provided scan
// function, so it works for both sql.Row and sql.Rows.
func scanOperation(scan func(dest ...any) error) (models.QueuedOperation, error) {
	var (
		op         models.QueuedOperation
		opType     string
		status     string
		rawPayload string
	)

	if err := scan(&op.ID, &op.Principal, &opType, &status, &op.LastError, &rawPayload, &op.CreatedAt); err != nil {
		return models.QueuedOperation{}, err
	}

	op.Type = models.OperationType(opType)
	op.Status = models.OperationStatus(status)

	if err := json.Unmarshal([]byte(rawPayload), &op.Payload); err != nil {
		return models.QueuedOperation{}, fmt.Errorf("failed to decode operation payload: %w", err)
	}

	return op, nil
}
