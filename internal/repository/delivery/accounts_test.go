package delivery

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/plmkit/notifier/internal/model"
)

func TestGetUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users
		WHERE id = $1;`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "wecom_user_id", "active"}).
			AddRow(int64(7), "seven", "seven@example.com", "", "zhangsan", true))

	u, err := repo.GetUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "seven@example.com", u.Email)
	assert.True(t, u.Active)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users
		WHERE id = $1;`)).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPreference(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM notification_preferences
		WHERE user_id = $1;`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "system_enabled", "email_enabled", "sms_enabled", "wecom_enabled",
			"webhook_enabled", "webhook_url", "quiet_start", "quiet_end",
		}).AddRow(int64(7), true, true, false, true, false, "", "22:00", "08:00"))

	p, err := repo.GetPreference(context.Background(), 7)
	assert.NoError(t, err)
	assert.False(t, p.SMSEnabled)
	assert.Equal(t, "22:00", p.QuietStart)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM notification_preferences
		WHERE user_id = $1;`)).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetPreference(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInboxNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO inbox_notifications (user_id, kind, category, title, content, link)`)).
		WithArgs(int64(7), "task", "task", "Task overdue", "Task #42 is overdue", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateInboxNotification(context.Background(), model.InboxNotification{
		UserID:   7,
		Kind:     "task",
		Category: "task",
		Title:    "Task overdue",
		Content:  "Task #42 is overdue",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListInbox(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM inbox_notifications
		WHERE user_id = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "kind", "category", "title", "content", "link", "read", "read_at", "created_at",
		}).
			AddRow(uuid.New(), int64(7), "task", "task", "t1", "c1", "", false, nil, now).
			AddRow(uuid.New(), int64(7), "task", "task", "t2", "c2", "", true, now, now))

	items, err := repo.ListInbox(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkInboxRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`SET read = TRUE, read_at = NOW()`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkInboxRead(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(`SET read = TRUE, read_at = NOW()`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkInboxRead(context.Background(), id)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
