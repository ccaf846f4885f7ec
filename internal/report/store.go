package report

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("report not found")
	ErrInvalidStatus = errors.New("invalid status")
	ErrMissingFields = errors.New("missing required fields")
)

type CreateInput struct {
	Title       string
	Description string
	Photo       string
	Latitude    float64
	Longitude   float64
}

// Create persists a new report owned by ownerId. Status is always Pending
// regardless of input; a report without a photo reference is rejected.
func Create(gdb *gorm.DB, ownerId uint, in CreateInput) (*Report, error) {
	if in.Photo == "" {
		return nil, fmt.Errorf("%w: photo", ErrMissingFields)
	}
	if in.Title == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: title, description", ErrMissingFields)
	}
	r := Report{
		UserID:      ownerId,
		Title:       in.Title,
		Description: in.Description,
		Photo:       in.Photo,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Status:      StatusPending,
	}
	if err := gdb.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ListAll returns every report, newest first, with the reporter preloaded.
func ListAll(gdb *gorm.DB) ([]Report, error) {
	var reports []Report
	if err := gdb.Preload("Pelapor").Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func FindByID(gdb *gorm.DB, id uint) (*Report, error) {
	var r Report
	if err := gdb.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// UpdateStatus overwrites the report's status. Any state may be set from any
// other state; only values outside the enum are rejected.
func UpdateStatus(gdb *gorm.DB, id uint, status string) (*Report, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	r, err := FindByID(gdb, id)
	if err != nil {
		return nil, err
	}
	r.Status = Status(status)
	if err := gdb.Save(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// Delete hard-deletes the report; deleting an absent id is ErrNotFound.
func Delete(gdb *gorm.DB, id uint) error {
	res := gdb.Delete(&Report{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
