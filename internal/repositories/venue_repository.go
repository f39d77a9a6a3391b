package repositories

import (
	"context"
	"fmt"

	"github.com/bxttttt/AI-TravelPlanner/internal/models/db_models"
	"github.com/bxttttt/AI-TravelPlanner/pkg/utils"
	"gorm.io/gorm"
)

type VenueRepository interface {
	ListAll(ctx context.Context) ([]db_models.Venue, error)
	ListByDestination(ctx context.Context, destination string) ([]db_models.Venue, error)
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

type venueRepository struct {
	db *gorm.DB
}

func (r *venueRepository) ListAll(ctx context.Context) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := r.db.WithContext(ctx).
		Order("destination, sort_order, created_at").
		Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list venues: %v", utils.ErrDatabaseError, err)
	}
	return venues, nil
}

func (r *venueRepository) ListByDestination(ctx context.Context, destination string) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := r.db.WithContext(ctx).
		Where("destination = ?", destination).
		Order("sort_order, created_at").
		Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list venues for %s: %v", utils.ErrDatabaseError, destination, err)
	}
	return venues, nil
}
