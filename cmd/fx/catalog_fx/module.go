// cmd/fx/catalog_fx/module.go
package catalog_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"concierge/internal/api/controllers"
	"concierge/internal/repositories"
)

var Module = fx.Options(
	fx.Provide(
		ProvideCatalogRepository,
		ProvideCatalogController,
	),
	fx.Invoke(SeedCatalog),
)

func ProvideCatalogRepository(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func ProvideCatalogController(catalogRepo repositories.CatalogRepository) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogRepo)
}

func SeedCatalog(db *gorm.DB) {
	if err := repositories.SeedCatalog(db); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
}
