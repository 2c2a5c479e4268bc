package services

import (
	"context"
	"strings"

	"hotel-management/models"

	"gorm.io/gorm"
)

type DiscountService struct {
	DB *gorm.DB
}

func NewDiscountService(db *gorm.DB) *DiscountService {
	return &DiscountService{DB: db}
}

type DiscountUpdate struct {
	Name       *string
	Percentage *float64
}

func validPercentage(p float64) bool {
	return p >= 0 && p <= 100
}

func (s *DiscountService) List(ctx context.Context) ([]models.Discount, error) {
	var list []models.Discount
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, translate(err, "discount")
	}
	return list, nil
}

func (s *DiscountService) GetByID(ctx context.Context, id uint) (*models.Discount, error) {
	var d models.Discount
	if err := s.DB.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, translate(err, "discount")
	}
	return &d, nil
}

func (s *DiscountService) Create(ctx context.Context, d *models.Discount) error {
	d.ID = 0
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return ErrValidation("name is required")
	}
	if !validPercentage(d.Percentage) {
		return ErrValidation("percentage must be between 0 and 100")
	}
	return translate(s.DB.WithContext(ctx).Create(d).Error, "discount")
}

func (s *DiscountService) Update(ctx context.Context, id uint, in DiscountUpdate) (*models.Discount, error) {
	var d models.Discount
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&d, id).Error; err != nil {
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
		if in.Percentage != nil {
			if !validPercentage(*in.Percentage) {
				return ErrValidation("percentage must be between 0 and 100")
			}
			updates["percentage"] = *in.Percentage
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&d).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&d, id).Error
	})
	if err != nil {
		return nil, translate(err, "discount")
	}
	return &d, nil
}

func (s *DiscountService) Delete(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Delete(&models.Discount{}, id)
	if result.Error != nil {
		return translate(result.Error, "discount")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("discount not found")
	}
	return nil
}
