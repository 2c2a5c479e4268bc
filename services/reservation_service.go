package services

import (
	"context"
	"time"

	"hotel-management/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpiryWindow is how long past check-out a reservation stays visible before it is purged.
const ExpiryWindow = 24 * time.Hour

type ReservationService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db, now: time.Now}
}

// StayFilter narrows reservation and stay record listings.
type StayFilter struct {
	GuestID uint
	RoomID  uint
}

// BookingInput is shared by reservations and walk-in stay records.
type BookingInput struct {
	RoomID   uint
	Guest    GuestInput
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
}

type BookingUpdate struct {
	RoomID   *uint
	CheckIn  *time.Time
	CheckOut *time.Time
	Adults   *int
	Children *int
}

func (in *BookingInput) normalize() error {
	if in.RoomID == 0 {
		return ErrValidation("room_id is required")
	}
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return ErrValidation("check_in and check_out are required")
	}
	if !in.CheckOut.After(in.CheckIn) {
		return ErrValidation("check_out must be after check_in")
	}
	if in.Adults <= 0 {
		in.Adults = 1
	}
	if in.Children < 0 {
		return ErrValidation("children cannot be negative")
	}
	return nil
}

// applyBookingUpdate merges in onto the current dates/occupants and returns the column updates.
func applyBookingUpdate(tx *gorm.DB, checkIn, checkOut time.Time, in BookingUpdate) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if in.RoomID != nil {
		ok, err := exists(tx, &models.Room{}, *in.RoomID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrValidation("room_id does not exist")
		}
		updates["room_id"] = *in.RoomID
	}
	if in.CheckIn != nil {
		checkIn = *in.CheckIn
		updates["check_in"] = checkIn
	}
	if in.CheckOut != nil {
		checkOut = *in.CheckOut
		updates["check_out"] = checkOut
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation("check_out must be after check_in")
	}
	if in.Adults != nil {
		if *in.Adults <= 0 {
			return nil, ErrValidation("adults must be at least 1")
		}
		updates["adults"] = *in.Adults
	}
	if in.Children != nil {
		if *in.Children < 0 {
			return nil, ErrValidation("children cannot be negative")
		}
		updates["children"] = *in.Children
	}
	return updates, nil
}

func applyStayFilter(q *gorm.DB, f StayFilter) *gorm.DB {
	if f.GuestID != 0 {
		q = q.Where("guest_id = ?", f.GuestID)
	}
	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	return q
}

// List hides reservations whose check-out is more than ExpiryWindow in the past,
// whether or not the sweeper has removed them yet.
func (s *ReservationService) List(ctx context.Context, f StayFilter) ([]models.Reservation, error) {
	cutoff := s.now().UTC().Add(-ExpiryWindow)
	q := s.DB.WithContext(ctx).
		Preload("Room").
		Preload("Guest").
		Where("check_out >= ?", cutoff).
		Order("check_in ASC, id ASC")

	var list []models.Reservation
	if err := applyStayFilter(q, f).Find(&list).Error; err != nil {
		return nil, translate(err, "reservation")
	}
	return list, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var r models.Reservation
	if err := s.DB.WithContext(ctx).Preload("Room").Preload("Guest").First(&r, id).Error; err != nil {
		return nil, translate(err, "reservation")
	}
	return &r, nil
}

// Create books a room, reusing the guest with the same email. An existing guest is
// never overwritten, only blank fields are filled; an upload left unused is returned
// for cleanup.
func (s *ReservationService) Create(ctx context.Context, in BookingInput) (*models.Reservation, string, error) {
	if err := in.normalize(); err != nil {
		return nil, "", err
	}

	var res models.Reservation
	var discard string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Room{}, in.RoomID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrValidation("room_id does not exist")
		}

		guest, unused, err := resolveGuest(tx, in.Guest, false)
		if err != nil {
			return err
		}
		discard = unused

		res = models.Reservation{
			RoomID:   in.RoomID,
			GuestID:  guest.ID,
			CheckIn:  in.CheckIn,
			CheckOut: in.CheckOut,
			Adults:   in.Adults,
			Children: in.Children,
		}
		if err := tx.Omit(clause.Associations).Create(&res).Error; err != nil {
			return err
		}
		res.Guest = guest
		return nil
	})
	if err != nil {
		return nil, "", translate(err, "reservation")
	}
	return &res, discard, nil
}

func (s *ReservationService) Update(ctx context.Context, id uint, in BookingUpdate) (*models.Reservation, error) {
	var res models.Reservation
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, id).Error; err != nil {
			return err
		}
		updates, err := applyBookingUpdate(tx, res.CheckIn, res.CheckOut, in)
		if err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&res).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&res, id).Error
	})
	if err != nil {
		return nil, translate(err, "reservation")
	}
	return &res, nil
}

func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return translate(result.Error, "reservation")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("reservation not found")
	}
	return nil
}

// Confirm turns a reservation into a stay record atomically. When newPicture is set the
// guest's ID picture is replaced and the previous name is returned for cleanup.
func (s *ReservationService) Confirm(ctx context.Context, id uint, newPicture string) (*models.StayRecord, string, error) {
	var stay models.StayRecord
	var replaced string

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&res, id).Error; err != nil {
			return err
		}

		if newPicture != "" {
			var guest models.Guest
			if err := tx.First(&guest, res.GuestID).Error; err != nil {
				return translate(err, "guest")
			}
			replaced = guest.IDPicture
			if err := tx.Model(&guest).Update("id_picture", newPicture).Error; err != nil {
				return err
			}
		}

		stay = models.StayRecord{
			RoomID:   res.RoomID,
			GuestID:  res.GuestID,
			CheckIn:  res.CheckIn,
			CheckOut: res.CheckOut,
			Adults:   res.Adults,
			Children: res.Children,
		}
		if err := tx.Omit(clause.Associations).Create(&stay).Error; err != nil {
			return err
		}

		del := tx.Delete(&models.Reservation{}, res.ID)
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected != 1 {
			return ErrNotFound("reservation not found")
		}
		return setRoomStatus(tx, res.RoomID, models.StatusOccupied)
	})
	if err != nil {
		return nil, "", translate(err, "reservation")
	}
	return &stay, replaced, nil
}

// PurgeExpired deletes reservations whose check-out is more than ExpiryWindow before now.
func (s *ReservationService) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.UTC().Add(-ExpiryWindow)
	result := s.DB.WithContext(ctx).Where("check_out < ?", cutoff).Delete(&models.Reservation{})
	if result.Error != nil {
		return 0, translate(result.Error, "reservation")
	}
	return result.RowsAffected, nil
}
