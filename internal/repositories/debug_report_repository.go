package repositories

import (
	"errors"
	"time"

	"prizm_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDebugReportNotFound = errors.New("debug report not found")

type DebugReportCriteria struct {
	Status   models.DebugReportStatus `form:"status"`
	Page     int                      `form:"page"`
	PageSize int                      `form:"page_size"`
}

type DebugReportRepository interface {
	Create(report *models.DebugReport) error
	FindAll(criteria DebugReportCriteria) ([]models.DebugReport, int64, error)
	Resolve(id string) error
}

type DebugReportRepositoryImpl struct {
	db *gorm.DB
}

func NewDebugReportRepository(db *gorm.DB) DebugReportRepository {
	return &DebugReportRepositoryImpl{db: db}
}

func (r *DebugReportRepositoryImpl) Create(report *models.DebugReport) error {
	return r.db.Create(report).Error
}

func (r *DebugReportRepositoryImpl) FindAll(criteria DebugReportCriteria) ([]models.DebugReport, int64, error) {
	query := r.db.Model(&models.DebugReport{})
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var reports []models.DebugReport
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	return reports, total, err
}

func (r *DebugReportRepositoryImpl) Resolve(id string) error {
	now := time.Now()
	result := r.db.Model(&models.DebugReport{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      models.DebugReportStatusResolved,
			"resolved_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDebugReportNotFound
	}
	return nil
}
