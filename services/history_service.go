package services

import (
	"context"

	"hotel-management/models"

	"gorm.io/gorm"
)

// HistoryService reads closed stays. History rows are never modified.
type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

func (s *HistoryService) List(ctx context.Context, f StayFilter) ([]models.StayRecordHistory, error) {
	q := s.DB.WithContext(ctx).Order("paid_at DESC, id DESC")

	var list []models.StayRecordHistory
	if err := applyStayFilter(q, f).Find(&list).Error; err != nil {
		return nil, translate(err, "history")
	}
	return list, nil
}

func (s *HistoryService) GetByID(ctx context.Context, id uint) (*models.StayRecordHistory, error) {
	var h models.StayRecordHistory
	if err := s.DB.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, translate(err, "history")
	}
	return &h, nil
}
