package services

import (
	"context"
	"errors"
	"strings"

	"hotel-management/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomFilter struct {
	StatusCodeID uint
	RoomTypeID   uint
}

type RoomInput struct {
	RoomNumber   string
	RoomTypeID   uint
	Rate         float64
	StatusCodeID uint
	Image        string
}

type RoomUpdate struct {
	RoomNumber   *string
	RoomTypeID   *uint
	Rate         *float64
	StatusCodeID *uint
	Image        string
}

func (s *RoomService) List(ctx context.Context, f RoomFilter) ([]models.Room, error) {
	q := s.DB.WithContext(ctx).Preload("RoomType").Preload("StatusCode").Order("room_number ASC")
	if f.StatusCodeID != 0 {
		q = q.Where("status_code_id = ?", f.StatusCodeID)
	}
	if f.RoomTypeID != 0 {
		q = q.Where("room_type_id = ?", f.RoomTypeID)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, translate(err, "room")
	}
	return rooms, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Preload("RoomType").Preload("StatusCode").First(&room, id).Error; err != nil {
		return nil, translate(err, "room")
	}
	return &room, nil
}

func (s *RoomService) Create(ctx context.Context, in RoomInput) (*models.Room, error) {
	room := models.Room{
		RoomNumber:   strings.TrimSpace(in.RoomNumber),
		RoomTypeID:   in.RoomTypeID,
		Rate:         in.Rate,
		StatusCodeID: in.StatusCodeID,
		Image:        in.Image,
	}
	if room.RoomNumber == "" {
		return nil, ErrValidation("room_number is required")
	}
	if room.RoomTypeID == 0 {
		return nil, ErrValidation("room_type_id is required")
	}
	if room.Image == "" {
		return nil, ErrValidation("image is required")
	}
	if room.Rate < 0 {
		return nil, ErrValidation("rate cannot be negative")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if room.StatusCodeID == 0 {
			id, err := statusCodeID(tx, models.StatusAvailable)
			if err != nil {
				return err
			}
			room.StatusCodeID = id
		}
		if err := checkRoomRefs(tx, room.RoomTypeID, room.StatusCodeID); err != nil {
			return err
		}
		return tx.Omit("RoomType", "StatusCode").Create(&room).Error
	})
	if err != nil {
		return nil, translate(err, "room")
	}
	return &room, nil
}

// Update applies the supplied fields and returns the replaced image, if any.
func (s *RoomService) Update(ctx context.Context, id uint, in RoomUpdate) (*models.Room, string, error) {
	var room models.Room
	var replaced string

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if in.RoomNumber != nil {
			num := strings.TrimSpace(*in.RoomNumber)
			if num == "" {
				return ErrValidation("room_number cannot be empty")
			}
			updates["room_number"] = num
		}
		if in.Rate != nil {
			if *in.Rate < 0 {
				return ErrValidation("rate cannot be negative")
			}
			updates["rate"] = *in.Rate
		}
		typeID, statusID := room.RoomTypeID, room.StatusCodeID
		if in.RoomTypeID != nil {
			typeID = *in.RoomTypeID
			updates["room_type_id"] = typeID
		}
		if in.StatusCodeID != nil {
			statusID = *in.StatusCodeID
			updates["status_code_id"] = statusID
		}
		if in.RoomTypeID != nil || in.StatusCodeID != nil {
			if err := checkRoomRefs(tx, typeID, statusID); err != nil {
				return err
			}
		}
		if in.Image != "" {
			replaced = room.Image
			updates["image"] = in.Image
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&room).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&room, id).Error
	})
	if err != nil {
		return nil, "", translate(err, "room")
	}
	return &room, replaced, nil
}

func (s *RoomService) Delete(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, room.ID).Error
	})
	if err != nil {
		return nil, translate(err, "room")
	}
	return &room, nil
}

func (s *RoomService) ListStatusCodes(ctx context.Context) ([]models.StatusCode, error) {
	var codes []models.StatusCode
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&codes).Error; err != nil {
		return nil, translate(err, "status code")
	}
	return codes, nil
}

func checkRoomRefs(tx *gorm.DB, roomTypeID, statusCodeID uint) error {
	ok, err := exists(tx, &models.RoomType{}, roomTypeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrValidation("room_type_id does not exist")
	}
	ok, err = exists(tx, &models.StatusCode{}, statusCodeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrValidation("status_code_id does not exist")
	}
	return nil
}

func statusCodeID(tx *gorm.DB, name string) (uint, error) {
	var code models.StatusCode
	if err := tx.Where("name = ?", name).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrValidation("status code " + name + " is not configured")
		}
		return 0, err
	}
	return code.ID, nil
}

// setRoomStatus moves a room to the named status when that status is configured.
func setRoomStatus(tx *gorm.DB, roomID uint, name string) error {
	var code models.StatusCode
	err := tx.Where("name = ?", name).Limit(1).Find(&code).Error
	if err != nil || code.ID == 0 {
		return err
	}
	return tx.Model(&models.Room{}).Where("id = ?", roomID).Update("status_code_id", code.ID).Error
}
