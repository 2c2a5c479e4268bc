package services

import (
	"context"
	"strings"

	"hotel-management/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogService manages billable services and the lines billed to stay records.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

type ServiceUpdate struct {
	Name        *string
	Price       *float64
	Description *string
}

func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	var list []models.Service
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, translate(err, "service")
	}
	return list, nil
}

func (s *CatalogService) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.DB.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, translate(err, "service")
	}
	return &svc, nil
}

func (s *CatalogService) CreateService(ctx context.Context, svc *models.Service) error {
	svc.ID = 0
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return ErrValidation("name is required")
	}
	if svc.Price < 0 {
		return ErrValidation("price cannot be negative")
	}
	return translate(s.DB.WithContext(ctx).Create(svc).Error, "service")
}

func (s *CatalogService) UpdateService(ctx context.Context, id uint, in ServiceUpdate) (*models.Service, error) {
	var svc models.Service
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&svc, id).Error; err != nil {
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
		if in.Price != nil {
			if *in.Price < 0 {
				return ErrValidation("price cannot be negative")
			}
			updates["price"] = *in.Price
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&svc).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&svc, id).Error
	})
	if err != nil {
		return nil, translate(err, "service")
	}
	return &svc, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Delete(&models.Service{}, id)
	if result.Error != nil {
		return translate(result.Error, "service")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("service not found")
	}
	return nil
}

// ListLines returns billed service lines, optionally for one stay record.
func (s *CatalogService) ListLines(ctx context.Context, stayRecordID uint) ([]models.ServiceListItem, error) {
	db := s.DB.WithContext(ctx)
	if stayRecordID != 0 {
		ok, err := exists(db, &models.StayRecord{}, stayRecordID)
		if err != nil {
			return nil, translate(err, "service line")
		}
		if !ok {
			return nil, ErrNotFound("stay record not found")
		}
		db = db.Where("stay_record_id = ?", stayRecordID)
	}

	var lines []models.ServiceListItem
	if err := db.Preload("Service").Order("id ASC").Find(&lines).Error; err != nil {
		return nil, translate(err, "service line")
	}
	return lines, nil
}

// AddLine bills quantity units of a service to a stay record at the current price.
func (s *CatalogService) AddLine(ctx context.Context, stayRecordID, serviceID uint, quantity int) (*models.ServiceListItem, error) {
	if stayRecordID == 0 || serviceID == 0 {
		return nil, ErrValidation("stay_record_id and service_id are required")
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrValidation("quantity must be positive")
	}

	var line models.ServiceListItem
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.StayRecord{}, stayRecordID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound("stay record not found")
		}
		var svc models.Service
		if err := tx.First(&svc, serviceID).Error; err != nil {
			return translate(err, "service")
		}

		line = models.ServiceListItem{
			StayRecordID: stayRecordID,
			ServiceID:    svc.ID,
			Quantity:     quantity,
			Total:        svc.Price * float64(quantity),
		}
		if err := tx.Omit(clause.Associations).Create(&line).Error; err != nil {
			return err
		}
		line.Service = &svc
		return nil
	})
	if err != nil {
		return nil, translate(err, "service line")
	}
	return &line, nil
}

// UpdateLine changes the quantity of a line and re-prices it.
func (s *CatalogService) UpdateLine(ctx context.Context, id uint, quantity int) (*models.ServiceListItem, error) {
	if quantity <= 0 {
		return nil, ErrValidation("quantity must be positive")
	}

	var line models.ServiceListItem
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Service").First(&line, id).Error; err != nil {
			return err
		}
		price := 0.0
		if line.Service != nil {
			price = line.Service.Price
		}
		line.Quantity = quantity
		line.Total = price * float64(quantity)
		return tx.Model(&models.ServiceListItem{}).Where("id = ?", line.ID).Updates(map[string]interface{}{
			"quantity": line.Quantity,
			"total":    line.Total,
		}).Error
	})
	if err != nil {
		return nil, translate(err, "service line")
	}
	return &line, nil
}

func (s *CatalogService) DeleteLine(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Delete(&models.ServiceListItem{}, id)
	if result.Error != nil {
		return translate(result.Error, "service line")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("service line not found")
	}
	return nil
}
