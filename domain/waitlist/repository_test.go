package waitlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akeren/vannie-landing/internal/models"
	apperrors "github.com/akeren/vannie-landing/pkg/errors"
	"github.com/akeren/vannie-landing/pkg/supabase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Every pooled connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.ModelRegistry...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestWaitlistRepository_CreateEntry(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewWaitlistRepository(db)
	ctx := context.Background()

	ios := "ios"
	createdAt := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	err := repo.CreateEntry(ctx, &models.WaitlistEntry{Email: "a@x.com", PhoneOS: &ios, CreatedAt: createdAt})
	require.NoError(t, err)

	var stored models.WaitlistEntry
	require.NoError(t, db.First(&stored, "email = ?", "a@x.com").Error)
	require.NotNil(t, stored.PhoneOS)
	assert.Equal(t, "ios", *stored.PhoneOS)
	assert.True(t, createdAt.Equal(stored.CreatedAt))

	err = repo.CreateEntry(ctx, &models.WaitlistEntry{Email: "a@x.com", CreatedAt: createdAt})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err), "duplicate email should be a conflict, got %v", err)

	var count int64
	db.Model(&models.WaitlistEntry{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestWaitlistRepository_Ping(t *testing.T) {
	repo := NewWaitlistRepository(newSQLiteDB(t))
	assert.NoError(t, repo.Ping(context.Background()))
}

type fakeInserter struct {
	err     error
	table   string
	rows    any
	pingErr error
}

func (f *fakeInserter) Insert(_ context.Context, table string, rows any) error {
	f.table = table
	f.rows = rows
	return f.err
}

func (f *fakeInserter) Ping(context.Context) error { return f.pingErr }

func TestSupabaseRepository_CreateEntry(t *testing.T) {
	entry := &models.WaitlistEntry{Email: "a@x.com", CreatedAt: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}

	t.Run("sends a single row with null phone_os", func(t *testing.T) {
		client := &fakeInserter{}
		repo := NewSupabaseRepository(client, "")

		require.NoError(t, repo.CreateEntry(context.Background(), entry))
		assert.Equal(t, "waitlist", client.table)

		rows, ok := client.rows.([]supabaseRow)
		require.True(t, ok)
		require.Len(t, rows, 1)
		assert.Equal(t, "a@x.com", rows[0].Email)
		assert.Nil(t, rows[0].PhoneOS)
		assert.Equal(t, "2026-10-14T12:00:00Z", rows[0].CreatedAt)
	})

	t.Run("23505 maps to conflict", func(t *testing.T) {
		client := &fakeInserter{err: &supabase.APIError{StatusCode: 409, Code: "23505", Message: "duplicate key"}}
		repo := NewSupabaseRepository(client, "waitlist")

		err := repo.CreateEntry(context.Background(), entry)
		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("other api errors are database errors", func(t *testing.T) {
		client := &fakeInserter{err: &supabase.APIError{StatusCode: 401, Code: "PGRST301", Message: "JWT expired"}}
		repo := NewSupabaseRepository(client, "waitlist")

		err := repo.CreateEntry(context.Background(), entry)
		assert.Equal(t, apperrors.ErrorTypeDatabaseError, apperrors.GetErrorType(err))
	})

	t.Run("transport errors are database errors", func(t *testing.T) {
		client := &fakeInserter{err: errors.New("dial tcp: connection refused")}
		repo := NewSupabaseRepository(client, "waitlist")

		err := repo.CreateEntry(context.Background(), entry)
		assert.False(t, apperrors.IsConflict(err))
		assert.Equal(t, "unable to create waitlist entry", apperrors.GetHumanReadableMessage(err))
	})
}
