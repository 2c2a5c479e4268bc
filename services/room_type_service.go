package services

import (
	"context"
	"strings"

	"hotel-management/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

type RoomTypeUpdate struct {
	Name         *string
	Description  *string
	MaxOccupancy *int
}

func (s *RoomTypeService) List(ctx context.Context) ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&types).Error; err != nil {
		return nil, translate(err, "room type")
	}
	return types, nil
}

func (s *RoomTypeService) GetByID(ctx context.Context, id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.WithContext(ctx).First(&rt, id).Error; err != nil {
		return nil, translate(err, "room type")
	}
	return &rt, nil
}

func (s *RoomTypeService) Create(ctx context.Context, rt *models.RoomType) error {
	rt.ID = 0
	rt.Name = strings.TrimSpace(rt.Name)
	if rt.Name == "" {
		return ErrValidation("name is required")
	}
	if rt.MaxOccupancy <= 0 {
		rt.MaxOccupancy = 2
	}
	return translate(s.DB.WithContext(ctx).Create(rt).Error, "room type")
}

func (s *RoomTypeService) Update(ctx context.Context, id uint, in RoomTypeUpdate) (*models.RoomType, error) {
	var rt models.RoomType
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rt, id).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return ErrValidation("name cannot be empty")
			}
			updates["name"] = name
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if in.MaxOccupancy != nil {
			if *in.MaxOccupancy <= 0 {
				return ErrValidation("max_occupancy must be positive")
			}
			updates["max_occupancy"] = *in.MaxOccupancy
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&rt).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&rt, id).Error
	})
	if err != nil {
		return nil, translate(err, "room type")
	}
	return &rt, nil
}

// Delete refuses to remove a type that rooms still use.
func (s *RoomTypeService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rt models.RoomType
		if err := tx.First(&rt, id).Error; err != nil {
			return err
		}
		var inUse int64
		if err := tx.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return ErrConflict("room type is still used by rooms")
		}
		return tx.Delete(&models.RoomType{}, id).Error
	})
	return translate(err, "room type")
}
