package repository

import (
	"context"

	"cruises/internal/app/ds"

	"gorm.io/gorm/clause"
)

// GetCruises returns every cruise with its ship. No filter, order or limit
// is applied; an empty table yields an empty, non-nil slice.
func (r *Repository) GetCruises(ctx context.Context) ([]ds.Cruise, error) {
	cruises := []ds.Cruise{}
	err := r.db.WithContext(ctx).Preload("Ship").Find(&cruises).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return cruises, nil
}

func (r *Repository) GetCruise(ctx context.Context, id int64) (ds.Cruise, error) {
	cruise := ds.Cruise{}
	err := r.db.WithContext(ctx).Preload("Ship").Where("id = ?", id).First(&cruise).Error
	if err != nil {
		return ds.Cruise{}, storeErr(err)
	}
	return cruise, nil
}

// CreateCruise inserts the cruise row only; the referenced ship is never written.
func (r *Repository) CreateCruise(ctx context.Context, cruise *ds.Cruise) error {
	return storeErr(r.db.WithContext(ctx).Omit(clause.Associations).Create(cruise).Error)
}
