package services

import (
	"encoding/json"

	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services/dto"
)

// DebugReportService records client-filed problem reports for admin review.
type DebugReportService struct {
	debugReportRepo repositories.DebugReportRepository
}

func NewDebugReportService(debugReportRepo repositories.DebugReportRepository) *DebugReportService {
	return &DebugReportService{debugReportRepo: debugReportRepo}
}

// Create files a report. reporterID may be empty for anonymous reports.
func (s *DebugReportService) Create(reporterID string, req *dto.CreateDebugReportRequest) (*models.DebugReport, error) {
	report := &models.DebugReport{
		Page:        req.Page,
		Description: req.Description,
		Status:      models.DebugReportStatusOpen,
	}
	if reporterID != "" {
		report.ReporterID = &reporterID
	}
	if req.Payload != nil {
		if raw, err := json.Marshal(req.Payload); err == nil {
			report.Payload = raw
		}
	}

	if err := s.debugReportRepo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *DebugReportService) List(criteria repositories.DebugReportCriteria) ([]models.DebugReport, int64, error) {
	return s.debugReportRepo.FindAll(criteria)
}

func (s *DebugReportService) Resolve(id string) error {
	return s.debugReportRepo.Resolve(id)
}
