package services

import (
	"context"
	"errors"
	"strings"

	"hotel-management/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// GuestInput identifies a guest by email at booking or check-in time.
type GuestInput struct {
	Name      string
	Email     string
	Phone     string
	IDPicture string
}

type GuestUpdate struct {
	Name      *string
	Email     *string
	Phone     *string
	IDPicture string
}

func (s *GuestService) List(ctx context.Context, email string) ([]models.Guest, error) {
	q := s.DB.WithContext(ctx).Order("id DESC")
	if email = normalizeEmail(email); email != "" {
		q = q.Where("email = ?", email)
	}

	var guests []models.Guest
	if err := q.Find(&guests).Error; err != nil {
		return nil, translate(err, "guest")
	}
	return guests, nil
}

func (s *GuestService) GetByID(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.WithContext(ctx).First(&guest, id).Error; err != nil {
		return nil, translate(err, "guest")
	}
	return &guest, nil
}

func (s *GuestService) Create(ctx context.Context, in GuestInput) (*models.Guest, error) {
	guest := models.Guest{
		Name:      strings.TrimSpace(in.Name),
		Email:     normalizeEmail(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		IDPicture: in.IDPicture,
	}
	if guest.Name == "" || guest.Email == "" {
		return nil, ErrValidation("name and email are required")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conflict, err := emailTaken(tx, guest.Email, 0)
		if err != nil {
			return err
		}
		if conflict {
			return ErrConflict("a guest with this email already exists")
		}
		return tx.Create(&guest).Error
	})
	if err != nil {
		return nil, translate(err, "guest")
	}
	return &guest, nil
}

// Update applies the supplied fields. It returns the ID picture that was replaced, if any.
func (s *GuestService) Update(ctx context.Context, id uint, in GuestUpdate) (*models.Guest, string, error) {
	var guest models.Guest
	var replaced string

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&guest, id).Error; err != nil {
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
		if in.Email != nil {
			email := normalizeEmail(*in.Email)
			if email == "" {
				return ErrValidation("email cannot be empty")
			}
			conflict, err := emailTaken(tx, email, guest.ID)
			if err != nil {
				return err
			}
			if conflict {
				return ErrConflict("a guest with this email already exists")
			}
			updates["email"] = email
		}
		if in.Phone != nil {
			updates["phone"] = strings.TrimSpace(*in.Phone)
		}
		if in.IDPicture != "" {
			replaced = guest.IDPicture
			updates["id_picture"] = in.IDPicture
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&guest).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&guest, id).Error
	})
	if err != nil {
		return nil, "", translate(err, "guest")
	}
	return &guest, replaced, nil
}

// Delete removes the guest and returns the deleted row so its picture can be cleaned up.
func (s *GuestService) Delete(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&guest, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Guest{}, guest.ID).Error
	})
	if err != nil {
		return nil, translate(err, "guest")
	}
	return &guest, nil
}

// EmailConflict reports whether email belongs to a guest other than excludeID.
func (s *GuestService) EmailConflict(ctx context.Context, email string, excludeID uint) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, ErrValidation("email is required")
	}
	conflict, err := emailTaken(s.DB.WithContext(ctx), email, excludeID)
	if err != nil {
		return false, translate(err, "guest")
	}
	return conflict, nil
}

func emailTaken(tx *gorm.DB, email string, excludeID uint) (bool, error) {
	var count int64
	q := tx.Model(&models.Guest{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// resolveGuest reuses the guest with the same email or creates one. With refresh set,
// supplied non-empty fields overwrite the existing row; otherwise they only fill blanks.
// The returned name is the ID picture file no row references anymore: the replaced
// picture when refreshing, or the unused upload when not.
func resolveGuest(tx *gorm.DB, in GuestInput, refresh bool) (*models.Guest, string, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if email == "" {
		return nil, "", ErrValidation("guest email is required")
	}

	var guest models.Guest
	err := tx.Where("email = ?", email).First(&guest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if name == "" {
			return nil, "", ErrValidation("guest name is required")
		}
		guest = models.Guest{
			Name:      name,
			Email:     email,
			Phone:     phone,
			IDPicture: in.IDPicture,
		}
		if err := tx.Create(&guest).Error; err != nil {
			return nil, "", err
		}
		return &guest, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	var discard string
	updates := map[string]interface{}{}
	if refresh {
		if name != "" && name != guest.Name {
			updates["name"] = name
		}
		if phone != "" && phone != guest.Phone {
			updates["phone"] = phone
		}
		if in.IDPicture != "" {
			discard = guest.IDPicture
			updates["id_picture"] = in.IDPicture
		}
	} else {
		if guest.Phone == "" && phone != "" {
			updates["phone"] = phone
		}
		if in.IDPicture != "" {
			if guest.IDPicture == "" {
				updates["id_picture"] = in.IDPicture
			} else {
				discard = in.IDPicture
			}
		}
	}
	if len(updates) > 0 {
		if err := tx.Model(&guest).Updates(updates).Error; err != nil {
			return nil, "", err
		}
	}
	return &guest, discard, nil
}
