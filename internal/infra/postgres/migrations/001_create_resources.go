package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createResourcesTable creates the resources table with its facet indexes.
func createResourcesTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "001_create_resources",
		Migrate: func(tx *gorm.DB) error {
			err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS resources (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
					title TEXT NOT NULL,
					description TEXT,
					type VARCHAR(10) NOT NULL CHECK (type IN ('VIDEO', 'PDF')),
					url TEXT NOT NULL,

					-- Facets
					subject VARCHAR(100),
					level VARCHAR(50),

					xp INTEGER NOT NULL DEFAULT 0 CHECK (xp >= 0),
					duration VARCHAR(20),
					pages INTEGER CHECK (pages IS NULL OR pages >= 0),
					thumbnail TEXT,
					is_new BOOLEAN NOT NULL DEFAULT false,
					tags TEXT[]
				);
			`).Error
			if err != nil {
				return err
			}

			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_resources_type ON resources(type);",
				"CREATE INDEX IF NOT EXISTS idx_resources_subject ON resources(subject);",
				"CREATE INDEX IF NOT EXISTS idx_resources_level ON resources(level);",
				"CREATE INDEX IF NOT EXISTS idx_resources_created_at ON resources(created_at DESC);",
			}

			for _, idx := range indexes {
				if err := tx.Exec(idx).Error; err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("DROP TABLE IF EXISTS resources;").Error
		},
	}
}
