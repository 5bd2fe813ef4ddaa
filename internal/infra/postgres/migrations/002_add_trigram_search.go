package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// addTrigramSearch adds trigram indexes backing the ILIKE search on title,
// description and subject.
//
// pg_trgm may be unavailable to the migrating role. Search still works
// without the indexes, so a missing extension is not an error.
func addTrigramSearch() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "002_add_trigram_search",
		Migrate: func(tx *gorm.DB) error {
			if err := tx.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`).Error; err != nil {
				tx.Logger.Warn(tx.Statement.Context, "pg_trgm unavailable, skipping search indexes: %v", err)
				return nil
			}

			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_resources_title_trgm ON resources USING GIN (title gin_trgm_ops);",
				"CREATE INDEX IF NOT EXISTS idx_resources_description_trgm ON resources USING GIN (description gin_trgm_ops);",
				"CREATE INDEX IF NOT EXISTS idx_resources_subject_trgm ON resources USING GIN (subject gin_trgm_ops);",
			}

			for _, idx := range indexes {
				if err := tx.Exec(idx).Error; err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			_ = tx.Exec(`DROP INDEX IF EXISTS idx_resources_title_trgm`).Error
			_ = tx.Exec(`DROP INDEX IF EXISTS idx_resources_description_trgm`).Error
			_ = tx.Exec(`DROP INDEX IF EXISTS idx_resources_subject_trgm`).Error
			return nil
		},
	}
}
