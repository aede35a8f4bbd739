package workers

import (
	"context"
	"time"

	"prizm_backend/internal/logger"

	"gorm.io/gorm"
)

type CampaignWorker struct {
	db *gorm.DB
}

func NewCampaignWorker(db *gorm.DB) *CampaignWorker {
	return &CampaignWorker{db: db}
}

// Start launches the background campaign maintenance tasks.
func (w *CampaignWorker) Start(ctx context.Context) {
	go w.autoCloseCampaigns(ctx)
}

// autoCloseCampaigns closes active campaigns whose deadline has passed,
// once per hour.
func (w *CampaignWorker) autoCloseCampaigns(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Campaign worker stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				UPDATE campaigns
				SET status = 'closed', updated_at = NOW()
				WHERE status = 'active'
				AND deadline IS NOT NULL
				AND deadline < NOW()
			`)
			if result.Error != nil {
				logger.WorkerLog("campaign_worker", "auto_close_campaigns", result.Error)
			} else if result.RowsAffected > 0 {
				logger.Info("Auto-closed expired campaigns", "count", result.RowsAffected)
			}
		}
	}
}
