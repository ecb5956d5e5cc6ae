package waitlist

import (
	"context"
	"errors"

	"github.com/akeren/vannie-landing/internal/models"
	apperrors "github.com/akeren/vannie-landing/pkg/errors"
	"github.com/akeren/vannie-landing/pkg/supabase"
)

// Inserter is the slice of the Supabase client the repository needs.
type Inserter interface {
	Insert(ctx context.Context, table string, rows any) error
	Ping(ctx context.Context) error
}

type supabaseRepository struct {
	client Inserter
	table  string
}

func NewSupabaseRepository(client Inserter, table string) WaitlistRepository {
	if table == "" {
		table = models.WaitlistEntry{}.TableName()
	}
	return &supabaseRepository{client: client, table: table}
}

func (sr *supabaseRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) error {
	err := sr.client.Insert(ctx, sr.table, []supabaseRow{toSupabaseRow(entry)})
	if err == nil {
		return nil
	}

	var apiErr *supabase.APIError
	if errors.As(err, &apiErr) && apiErr.Code == apperrors.CodeUniqueViolation {
		return apperrors.NewConflictError("waitlist entry with this email already exists", err)
	}

	return apperrors.NewDatabaseError("unable to create waitlist entry", err)
}

func (sr *supabaseRepository) Ping(ctx context.Context) error {
	return sr.client.Ping(ctx)
}
