package delivery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/plmkit/notifier/internal/model"
)

// GetUser loads the account fields the engine needs for target resolution.
func (r *Repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(wecom_user_id, ''), active
		FROM users
		WHERE id = $1;
    `

	var u model.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.WecomUserID, &u.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

// GetPreference loads a user's notification settings row.
func (r *Repository) GetPreference(ctx context.Context, userID int64) (model.RecipientPreference, error) {
	query := `
		SELECT user_id, system_enabled, email_enabled, sms_enabled, wecom_enabled,
		       webhook_enabled, COALESCE(webhook_url, ''), COALESCE(quiet_start, ''), COALESCE(quiet_end, '')
		FROM notification_preferences
		WHERE user_id = $1;
    `

	var p model.RecipientPreference
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.SystemEnabled, &p.EmailEnabled, &p.SMSEnabled, &p.WecomEnabled,
		&p.WebhookEnabled, &p.WebhookURL, &p.QuietStart, &p.QuietEnd,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RecipientPreference{}, ErrPreferenceNotFound
		}
		return model.RecipientPreference{}, fmt.Errorf("get preference: %w", err)
	}

	return p, nil
}

// CreateInboxNotification writes one in-app inbox row.
func (r *Repository) CreateInboxNotification(ctx context.Context, n model.InboxNotification) error {
	query := `
		INSERT INTO inbox_notifications (user_id, kind, category, title, content, link)
		VALUES ($1, $2, $3, $4, $5, $6);
    `

	_, err := r.db.ExecContext(ctx, query, n.UserID, n.Kind, n.Category, n.Title, n.Content, n.Link)
	if err != nil {
		return fmt.Errorf("create inbox notification: %w", err)
	}

	return nil
}

// ListInbox returns a user's inbox rows, newest first.
func (r *Repository) ListInbox(ctx context.Context, userID int64) ([]model.InboxNotification, error) {
	query := `
		SELECT id, user_id, kind, category, title, content, COALESCE(link, ''), read, read_at, created_at
		FROM inbox_notifications
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}
	defer rows.Close()

	var items []model.InboxNotification
	for rows.Next() {
		var n model.InboxNotification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Kind, &n.Category, &n.Title, &n.Content, &n.Link,
			&n.Read, &n.ReadAt, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	return items, rows.Err()
}

// MarkInboxRead flags one inbox row as read.
func (r *Repository) MarkInboxRead(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE inbox_notifications
		SET read = TRUE, read_at = NOW()
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark inbox read: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrRecordNotFound
	}

	return nil
}
