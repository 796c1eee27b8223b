package migration

import (
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return models.All()
}
