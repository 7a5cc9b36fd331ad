package repositories

import (
	"context"
	"gorm.io/gorm"

	"concierge/internal/models/db_models"
)

// CatalogRepository serves the static mock flight and hotel inventories.
// Listings are ordered by position so selection ordinals are stable.
type CatalogRepository interface {
	ListFlights(ctx context.Context) ([]db_models.Flight, error)
	ListHotels(ctx context.Context) ([]db_models.Hotel, error)
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

type catalogRepository struct {
	db *gorm.DB
}

func (r *catalogRepository) ListFlights(ctx context.Context) ([]db_models.Flight, error) {
	var flights []db_models.Flight
	if err := r.db.WithContext(ctx).Order("position asc").Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *catalogRepository) ListHotels(ctx context.Context) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	if err := r.db.WithContext(ctx).Order("position asc").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// SeedCatalog migrates the catalog tables and loads the mock inventory once.
// Re-running against a populated database is a no-op.
func SeedCatalog(db *gorm.DB) error {
	if err := db.AutoMigrate(&db_models.Flight{}, &db_models.Hotel{}); err != nil {
		return err
	}

	var flightCount int64
	if err := db.Model(&db_models.Flight{}).Count(&flightCount).Error; err != nil {
		return err
	}
	if flightCount == 0 {
		flights := []db_models.Flight{
			{Airline: "SkyLine Air", Schedule: "08:30 dep / 12:45 arr", Price: 280, Position: 0},
			{Airline: "Pacific Wings", Schedule: "11:10 dep / 15:35 arr", Price: 320, Position: 1},
			{Airline: "Aurora Air", Schedule: "17:20 dep / 21:55 arr", Price: 240, Position: 2},
		}
		if err := db.Create(&flights).Error; err != nil {
			return err
		}
	}

	var hotelCount int64
	if err := db.Model(&db_models.Hotel{}).Count(&hotelCount).Error; err != nil {
		return err
	}
	if hotelCount == 0 {
		hotels := []db_models.Hotel{
			{Name: "The Grand Meridian", Rating: 4.8, PricePerNight: 220, Position: 0},
			{Name: "Harbor View Inn", Rating: 4.2, PricePerNight: 120, Position: 1},
			{Name: "Casa Verde Boutique", Rating: 4.5, PricePerNight: 160, Position: 2},
			{Name: "City Lodge Express", Rating: 3.9, PricePerNight: 85, Position: 3},
		}
		if err := db.Create(&hotels).Error; err != nil {
			return err
		}
	}

	return nil
}
