package delivery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/plmkit/notifier/internal/model"
)

var (
	ErrRecordNotFound     = errors.New("delivery record not found")
	ErrDuplicateDelivery  = errors.New("active delivery already exists for this key")
	ErrUserNotFound       = errors.New("user not found")
	ErrPreferenceNotFound = errors.New("notification preference not found")
)

// Repository provides access to delivery records, the in-app inbox and
// the account tables the engine reads.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new delivery repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateRecord inserts a new delivery record unless a non-terminal record
// already exists for the same (alert, recipient, channel) key. The guard
// runs inside the insert statement, so a second concurrent writer simply
// gets ErrDuplicateDelivery.
func (r *Repository) CreateRecord(ctx context.Context, rec model.DeliveryRecord) (uuid.UUID, error) {
	query := `
		INSERT INTO delivery_records (
		    alert_id, category, recipient_id, channel, status, priority,
		    title, content, target, link, retry_count, last_error, next_retry_at
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		WHERE NOT EXISTS (
		    SELECT 1 FROM delivery_records
		    WHERE alert_id = $1 AND recipient_id = $3 AND channel = $4
		      AND (status = 'pending' OR (status = 'failed' AND next_retry_at IS NOT NULL))
		)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx, query,
		rec.AlertID, rec.Category, rec.RecipientID, rec.Channel, rec.Status, rec.Priority,
		rec.Title, rec.Content, rec.Target, rec.Link, rec.RetryCount, rec.LastError, rec.NextRetryAt,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrDuplicateDelivery
		}
		return uuid.Nil, fmt.Errorf("create delivery record: %w", err)
	}

	return id, nil
}

const recordColumns = `
		id, alert_id, category, recipient_id, channel, status, priority,
		title, content, target, link, retry_count, last_error, next_retry_at,
		created_at, sent_at`

func scanRecord(row interface{ Scan(...any) error }) (model.DeliveryRecord, error) {
	var rec model.DeliveryRecord
	var lastError sql.NullString
	var link sql.NullString

	err := row.Scan(
		&rec.ID, &rec.AlertID, &rec.Category, &rec.RecipientID, &rec.Channel, &rec.Status, &rec.Priority,
		&rec.Title, &rec.Content, &rec.Target, &link, &rec.RetryCount, &lastError, &rec.NextRetryAt,
		&rec.CreatedAt, &rec.SentAt,
	)
	if err != nil {
		return model.DeliveryRecord{}, err
	}

	rec.LastError = lastError.String
	rec.Link = link.String

	return rec, nil
}

// GetRecordByID loads a single delivery record.
func (r *Repository) GetRecordByID(ctx context.Context, id uuid.UUID) (model.DeliveryRecord, error) {
	query := `
		SELECT` + recordColumns + `
		FROM delivery_records
		WHERE id = $1;
    `

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DeliveryRecord{}, ErrRecordNotFound
		}
		return model.DeliveryRecord{}, fmt.Errorf("get delivery record: %w", err)
	}

	return rec, nil
}

// ListRecordsByAlert returns every delivery record created for one alert,
// newest first. Records are never deleted, so this is the per-event audit
// trail.
func (r *Repository) ListRecordsByAlert(ctx context.Context, alertID string) ([]model.DeliveryRecord, error) {
	query := `
		SELECT` + recordColumns + `
		FROM delivery_records
		WHERE alert_id = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, alertID)
	if err != nil {
		return nil, fmt.Errorf("list delivery records: %w", err)
	}
	defer rows.Close()

	var records []model.DeliveryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// MarkSent transitions a record to its terminal sent state, clearing the
// error and any scheduled retry.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	query := `
		UPDATE delivery_records
		SET status = 'sent', sent_at = $1, last_error = NULL, next_retry_at = NULL
		WHERE id = $2;
    `

	return r.exec(ctx, query, sentAt, id)
}

// MarkRetry records a failed attempt that stays retryable: retry count and
// error are stored and the next eligible instant scheduled.
func (r *Repository) MarkRetry(ctx context.Context, id uuid.UUID, retryCount int, lastError string, nextRetryAt time.Time) error {
	query := `
		UPDATE delivery_records
		SET status = 'failed', retry_count = $1, last_error = $2, next_retry_at = $3
		WHERE id = $4;
    `

	return r.exec(ctx, query, retryCount, lastError, nextRetryAt, id)
}

// MarkFailed transitions a record to its terminal failed state. No retry
// is ever scheduled again.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, lastError string) error {
	query := `
		UPDATE delivery_records
		SET status = 'failed', retry_count = $1, last_error = $2, next_retry_at = NULL
		WHERE id = $3;
    `

	return r.exec(ctx, query, retryCount, lastError, id)
}

// MarkDeferred keeps a record pending with a deferral reason and the
// instant quiet hours end. The retry count is untouched: deferral is not
// a failed attempt.
func (r *Repository) MarkDeferred(ctx context.Context, id uuid.UUID, reason string, resumeAt time.Time) error {
	query := `
		UPDATE delivery_records
		SET status = 'pending', last_error = $1, next_retry_at = $2
		WHERE id = $3;
    `

	return r.exec(ctx, query, reason, resumeAt, id)
}

// pendingGrace keeps records that are normally queued out of the due
// scan; only pending rows this old with no scheduled retry count as
// stranded.
const pendingGrace = 5 * time.Minute

// ListDue returns ids of non-terminal records whose next_retry_at has
// come due: deferred sends and scheduled retries alike. Pending rows
// with no next_retry_at older than pendingGrace are included too, so a
// record whose queue message was lost still gets picked up.
func (r *Repository) ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id
		FROM delivery_records
		WHERE (next_retry_at IS NOT NULL AND next_retry_at <= $1
		       AND status IN ('pending', 'failed'))
		   OR (status = 'pending' AND next_retry_at IS NULL AND created_at <= $2)
		ORDER BY COALESCE(next_retry_at, created_at)
		LIMIT $3;
    `

	rows, err := r.db.QueryContext(ctx, query, now, now.Add(-pendingGrace), limit)
	if err != nil {
		return nil, fmt.Errorf("list due deliveries: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *Repository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update delivery record: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrRecordNotFound
	}

	return nil
}
