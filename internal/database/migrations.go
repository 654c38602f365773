package database

import (
	"gorm.io/gorm"
)

// createIndexes creates database indexes
func createIndexes(db *gorm.DB) error {
	// Index for case listing filtered by status
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cases_status
		ON cases(status)
	`).Error; err != nil {
		return err
	}

	// Index for chronological timeline listing per case
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_timeline_events_case_date
		ON timeline_events(case_id, event_date)
	`).Error; err != nil {
		return err
	}

	// Index for per-case document listing by upload date
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_documents_upload_date
		ON documents(case_id, upload_date)
	`).Error; err != nil {
		return err
	}

	return nil
}
