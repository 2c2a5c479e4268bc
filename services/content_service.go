package services

import (
	"context"
	"strings"

	"hotel-management/models"

	"gorm.io/gorm"
)

// ContentService manages advertisements and the about-us page.
type ContentService struct {
	DB *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{DB: db}
}

type AdUpdate struct {
	Title       *string
	Description *string
	Image       string
}

type AboutUsUpdate struct {
	Title   *string
	Content *string
	Phone   *string
	Email   *string
	Address *string
}

func (s *ContentService) ListAds(ctx context.Context) ([]models.Ad, error) {
	var ads []models.Ad
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&ads).Error; err != nil {
		return nil, translate(err, "ad")
	}
	return ads, nil
}

func (s *ContentService) GetAd(ctx context.Context, id uint) (*models.Ad, error) {
	var ad models.Ad
	if err := s.DB.WithContext(ctx).First(&ad, id).Error; err != nil {
		return nil, translate(err, "ad")
	}
	return &ad, nil
}

func (s *ContentService) CreateAd(ctx context.Context, ad *models.Ad) error {
	ad.ID = 0
	ad.Title = strings.TrimSpace(ad.Title)
	if ad.Title == "" {
		return ErrValidation("title is required")
	}
	if ad.Image == "" {
		return ErrValidation("image is required")
	}
	return translate(s.DB.WithContext(ctx).Create(ad).Error, "ad")
}

// UpdateAd returns the replaced image, if any.
func (s *ContentService) UpdateAd(ctx context.Context, id uint, in AdUpdate) (*models.Ad, string, error) {
	var ad models.Ad
	var replaced string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ad, id).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{}
		if in.Title != nil {
			title := strings.TrimSpace(*in.Title)
			if title == "" {
				return ErrValidation("title cannot be empty")
			}
			updates["title"] = title
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if in.Image != "" {
			replaced = ad.Image
			updates["image"] = in.Image
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&ad).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&ad, id).Error
	})
	if err != nil {
		return nil, "", translate(err, "ad")
	}
	return &ad, replaced, nil
}

func (s *ContentService) DeleteAd(ctx context.Context, id uint) (*models.Ad, error) {
	var ad models.Ad
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ad, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ad{}, ad.ID).Error
	})
	if err != nil {
		return nil, translate(err, "ad")
	}
	return &ad, nil
}

// AboutUs returns the single about-us row, creating an empty one if it is missing.
func (s *ContentService) AboutUs(ctx context.Context) (*models.AboutUs, error) {
	var about models.AboutUs
	if err := s.DB.WithContext(ctx).Order("id ASC").FirstOrCreate(&about, models.AboutUs{ID: 1}).Error; err != nil {
		return nil, translate(err, "about us")
	}
	return &about, nil
}

func (s *ContentService) UpdateAboutUs(ctx context.Context, in AboutUsUpdate) (*models.AboutUs, error) {
	about, err := s.AboutUs(ctx)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = strings.TrimSpace(*v)
		}
	}
	set("title", in.Title)
	set("content", in.Content)
	set("phone", in.Phone)
	set("email", in.Email)
	set("address", in.Address)
	if len(updates) == 0 {
		return about, nil
	}

	db := s.DB.WithContext(ctx)
	if err := db.Model(about).Updates(updates).Error; err != nil {
		return nil, translate(err, "about us")
	}
	if err := db.First(about, about.ID).Error; err != nil {
		return nil, translate(err, "about us")
	}
	return about, nil
}
