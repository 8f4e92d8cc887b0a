package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/arthurhenrique02/doc-pay-manager/cache"
	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	FinancialReportCacheExpiry = 15 * time.Minute
)

type ProcedureRepository interface {
	Create(ctx context.Context, procedure *models.Procedure) error
	Filter(ctx context.Context, criteria Criteria) ([]models.Procedure, error)
	FinancialReport(ctx context.Context, doctorID int64) ([]models.FinancialReportRow, error)
}

type procedureRepository struct {
	base  *Repository[models.Procedure]
	db    *gorm.DB
	cache *cache.Cache
}

func NewProcedureRepository(db *gorm.DB, cache *cache.Cache) (ProcedureRepository, error) {
	base, err := NewRepository[models.Procedure](db)
	if err != nil {
		return nil, err
	}
	return &procedureRepository{base: base, db: db, cache: cache}, nil
}

// Create inserts the billing event and drops the doctor's cached financial
// report so the next read reflects the new row.
func (r *procedureRepository) Create(ctx context.Context, procedure *models.Procedure) error {
	if err := r.base.Create(ctx, procedure); err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, r.getFinancialReportCacheKey(procedure.DoctorID)); err != nil {
		return fmt.Errorf("failed to delete financial report cache: %w", err)
	}
	return nil
}

func (r *procedureRepository) Filter(ctx context.Context, criteria Criteria) ([]models.Procedure, error) {
	return r.base.Filter(ctx, criteria)
}

// FinancialReport aggregates a doctor's procedures by payment status.
// Sums run in SQL; at most one row per status comes back.
func (r *procedureRepository) FinancialReport(ctx context.Context, doctorID int64) ([]models.FinancialReportRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getFinancialReportCacheKey(doctorID)
	cachedReport, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedReport != "" {
		var rows []models.FinancialReportRow
		if err := json.Unmarshal([]byte(cachedReport), &rows); err == nil {
			return rows, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get financial report from cache: %v", err)
	}

	var rows []models.FinancialReportRow
	err = r.db.WithContext(ctx).
		Model(&models.Procedure{}).
		Select("SUM(value) AS total_value, COUNT(*) AS procedures, payment_status AS status").
		Where("doctor_id = ?", doctorID).
		Group("payment_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build financial report: %w", err)
	}

	rowsJSON, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal financial report: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, rowsJSON, FinancialReportCacheExpiry); err != nil {
		log.Printf("Failed to set financial report in cache: %v", err)
	}

	return rows, nil
}

func (r *procedureRepository) getFinancialReportCacheKey(doctorID int64) string {
	return fmt.Sprintf("financial_report_cache:%d", doctorID)
}
