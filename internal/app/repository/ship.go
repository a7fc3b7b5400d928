package repository

import (
	"context"
	"fmt"
	"strings"

	"cruises/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) GetShips(ctx context.Context) ([]ds.Ship, error) {
	ships := []ds.Ship{}
	err := r.db.WithContext(ctx).Order("id").Find(&ships).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return ships, nil
}

func (r *Repository) GetShip(ctx context.Context, id int64) (ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ship).Error
	if err != nil {
		return ds.Ship{}, storeErr(err)
	}
	return ship, nil
}

// GetShipsByName is a case-insensitive substring search.
func (r *Repository) GetShipsByName(ctx context.Context, name string) ([]ds.Ship, error) {
	ships := []ds.Ship{}
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("id").
		Find(&ships).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return ships, nil
}

// CreateShip - id is assigned by the database
func (r *Repository) CreateShip(ctx context.Context, ship *ds.Ship) error {
	return storeErr(r.db.WithContext(ctx).Create(ship).Error)
}

// UpdateShip replaces name and tonnage. The id never changes.
func (r *Repository) UpdateShip(ctx context.Context, id int64, ship *ds.Ship) error {
	res := r.db.WithContext(ctx).Model(&ds.Ship{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":    ship.Name,
		"tonnage": ship.Tonnage,
	})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: ship %d", ErrNotFound, id)
	}
	ship.ID = id
	return nil
}

func (r *Repository) SetShipPhoto(ctx context.Context, id int64, photo string) error {
	res := r.db.WithContext(ctx).Model(&ds.Ship{}).Where("id = ?", id).Update("photo_url", photo)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: ship %d", ErrNotFound, id)
	}
	return nil
}

// DeleteShip refuses to delete a ship that cruises still reference.
func (r *Repository) DeleteShip(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&ds.Cruise{}).Where("ship_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%w: ship %d has %d cruises", ErrShipInUse, id, refs)
		}

		res := tx.Delete(&ds.Ship{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: ship %d", ErrNotFound, id)
		}
		return nil
	})
	return storeErr(err)
}
