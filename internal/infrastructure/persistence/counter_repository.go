package persistence

import (
	"context"
	"sync"

	"github.com/factura/backend/internal/domain/billing"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// invoiceCounterRow is the single-row table holding the invoice sequence
type invoiceCounterRow struct {
	ID    uint  `gorm:"primaryKey"`
	Value int64 `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (invoiceCounterRow) TableName() string {
	return "invoice_counter"
}

// GormCounterRepository implements CounterRepository using GORM. A mutex
// serializes increments within the process; the surrounding transaction makes
// each increment durable before the new value is handed out, so a failed
// write never advances the sequence.
type GormCounterRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewGormCounterRepository creates a new GormCounterRepository
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Current returns the persisted sequence, zero if never initialized
func (r *GormCounterRepository) Current(ctx context.Context) (billing.Sequence, error) {
	var row invoiceCounterRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", 1).Error
	if err == gorm.ErrRecordNotFound {
		return billing.Sequence{}, nil
	}
	if err != nil {
		return billing.Sequence{}, err
	}
	return billing.Sequence{Value: row.Value}, nil
}

// Next atomically increments the counter, persists it and returns the
// advanced sequence
func (r *GormCounterRepository) Next(ctx context.Context) (billing.Sequence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next billing.Sequence
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row invoiceCounterRow
		if err := tx.Where(invoiceCounterRow{ID: 1}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
		row.Value++
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		next = billing.Sequence{Value: row.Value}
		return nil
	})
	if err != nil {
		return billing.Sequence{}, err
	}
	return next, nil
}

// Set overwrites the counter value, used only when restoring a backup
func (r *GormCounterRepository) Set(ctx context.Context, seq billing.Sequence) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := invoiceCounterRow{ID: 1, Value: seq.Value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&row).Error
}

// Ensure GormCounterRepository implements CounterRepository
var _ billing.CounterRepository = (*GormCounterRepository)(nil)
