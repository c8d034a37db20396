package persistence

import (
	"context"
	"errors"

	"github.com/factura/backend/internal/domain/billing"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormIssuerProfileRepository implements IssuerProfileRepository using GORM.
// The profile is a single row; Get falls back to the built-in default when
// the row was never written.
type GormIssuerProfileRepository struct {
	db *gorm.DB
}

// NewGormIssuerProfileRepository creates a new GormIssuerProfileRepository
func NewGormIssuerProfileRepository(db *gorm.DB) *GormIssuerProfileRepository {
	return &GormIssuerProfileRepository{db: db}
}

// Get returns the stored profile, or the default one if never saved
func (r *GormIssuerProfileRepository) Get(ctx context.Context) (*billing.IssuerProfile, error) {
	var profile billing.IssuerProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := billing.DefaultIssuerProfile()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save stores the profile
func (r *GormIssuerProfileRepository) Save(ctx context.Context, profile *billing.IssuerProfile) error {
	profile.ID = 1
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}

// Ensure GormIssuerProfileRepository implements IssuerProfileRepository
var _ billing.IssuerProfileRepository = (*GormIssuerProfileRepository)(nil)
