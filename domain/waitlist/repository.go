package waitlist

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=waitlist

import (
	"context"
	"errors"

	"github.com/akeren/vannie-landing/internal/models"
	apperrors "github.com/akeren/vannie-landing/pkg/errors"
	"gorm.io/gorm"
)

type WaitlistRepository interface {
	// CreateEntry inserts one waitlist row. A duplicate email is reported as a CONFLICT AppError.
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) error
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) error {
	if err := wr.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			return apperrors.NewConflictError("waitlist entry with this email already exists", err)
		}
		return apperrors.NewDatabaseError("unable to create waitlist entry", err)
	}

	return nil
}

func (wr *waitlistRepository) Ping(ctx context.Context) error {
	sqlDB, err := wr.db.DB()
	if err != nil {
		return apperrors.NewDatabaseError("unable to get database handle", err)
	}
	return sqlDB.PingContext(ctx)
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
