package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"hotel-management/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultPaymentMethod = "cash"

type StayRecordService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewStayRecordService(db *gorm.DB) *StayRecordService {
	return &StayRecordService{DB: db, now: time.Now}
}

type PaymentInput struct {
	Amount              float64 `validate:"gte=0"`
	PaymentMethod       string  `validate:"max=50"`
	TotalServiceCharges float64 `validate:"gte=0"`
	DiscountPercentage  float64 `validate:"gte=0,lte=100"`
	DiscountName        string  `validate:"max=100"`
}

// billedService is the per-line snapshot stored on a history row.
type billedService struct {
	ServiceID uint    `json:"service_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

func (s *StayRecordService) List(ctx context.Context, f StayFilter) ([]models.StayRecord, error) {
	q := s.DB.WithContext(ctx).Preload("Room").Preload("Guest").Order("check_in ASC, id ASC")

	var list []models.StayRecord
	if err := applyStayFilter(q, f).Find(&list).Error; err != nil {
		return nil, translate(err, "stay record")
	}
	return list, nil
}

func (s *StayRecordService) GetByID(ctx context.Context, id uint) (*models.StayRecord, error) {
	var stay models.StayRecord
	if err := s.DB.WithContext(ctx).Preload("Room").Preload("Guest").First(&stay, id).Error; err != nil {
		return nil, translate(err, "stay record")
	}
	return &stay, nil
}

// Create checks in a walk-in guest directly, without a prior reservation.
func (s *StayRecordService) Create(ctx context.Context, in BookingInput) (*models.StayRecord, string, error) {
	if err := in.normalize(); err != nil {
		return nil, "", err
	}

	var stay models.StayRecord
	var replaced string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Room{}, in.RoomID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrValidation("room_id does not exist")
		}

		guest, old, err := resolveGuest(tx, in.Guest, true)
		if err != nil {
			return err
		}
		replaced = old

		stay = models.StayRecord{
			RoomID:   in.RoomID,
			GuestID:  guest.ID,
			CheckIn:  in.CheckIn,
			CheckOut: in.CheckOut,
			Adults:   in.Adults,
			Children: in.Children,
		}
		if err := tx.Omit(clause.Associations).Create(&stay).Error; err != nil {
			return err
		}
		stay.Guest = guest
		return setRoomStatus(tx, in.RoomID, models.StatusOccupied)
	})
	if err != nil {
		return nil, "", translate(err, "stay record")
	}
	return &stay, replaced, nil
}

func (s *StayRecordService) Update(ctx context.Context, id uint, in BookingUpdate) (*models.StayRecord, error) {
	var stay models.StayRecord
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&stay, id).Error; err != nil {
			return err
		}
		updates, err := applyBookingUpdate(tx, stay.CheckIn, stay.CheckOut, in)
		if err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&stay).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&stay, id).Error
	})
	if err != nil {
		return nil, translate(err, "stay record")
	}
	return &stay, nil
}

// Delete removes a stay record without billing it, together with its service lines.
func (s *StayRecordService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stay models.StayRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&stay, id).Error; err != nil {
			return err
		}
		if err := tx.Where("stay_record_id = ?", stay.ID).Delete(&models.ServiceListItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.StayRecord{}, stay.ID).Error; err != nil {
			return err
		}
		return setRoomStatus(tx, stay.RoomID, models.StatusAvailable)
	})
	return translate(err, "stay record")
}

// ProcessPayment closes a stay: it writes the history row, then removes the service
// lines and the stay record, all in one transaction.
func (s *StayRecordService) ProcessPayment(ctx context.Context, id uint, in PaymentInput) (*models.StayRecordHistory, error) {
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	if in.PaymentMethod == "" {
		in.PaymentMethod = DefaultPaymentMethod
	}
	in.DiscountName = strings.TrimSpace(in.DiscountName)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var hist models.StayRecordHistory
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stay models.StayRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&stay, id).Error; err != nil {
			return err
		}

		var items []models.ServiceListItem
		if err := tx.Preload("Service").Where("stay_record_id = ?", stay.ID).Order("id ASC").Find(&items).Error; err != nil {
			return err
		}
		billed := make([]billedService, 0, len(items))
		for _, it := range items {
			line := billedService{ServiceID: it.ServiceID, Quantity: it.Quantity, Total: it.Total}
			if it.Service != nil {
				line.Name = it.Service.Name
			}
			billed = append(billed, line)
		}
		snapshot, err := json.Marshal(billed)
		if err != nil {
			return err
		}

		hist = models.StayRecordHistory{
			StayRecordID:        stay.ID,
			RoomID:              stay.RoomID,
			GuestID:             stay.GuestID,
			CheckIn:             stay.CheckIn,
			CheckOut:            stay.CheckOut,
			Adults:              stay.Adults,
			Children:            stay.Children,
			AmountPaid:          in.Amount,
			PaymentMethod:       in.PaymentMethod,
			TotalServiceCharges: in.TotalServiceCharges,
			DiscountName:        in.DiscountName,
			DiscountPercentage:  in.DiscountPercentage,
			Services:            datatypes.JSON(snapshot),
			PaidAt:              s.now().UTC(),
		}
		if err := tx.Create(&hist).Error; err != nil {
			return err
		}

		if err := tx.Where("stay_record_id = ?", stay.ID).Delete(&models.ServiceListItem{}).Error; err != nil {
			return err
		}
		del := tx.Delete(&models.StayRecord{}, stay.ID)
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected != 1 {
			return ErrNotFound("stay record not found")
		}
		return setRoomStatus(tx, stay.RoomID, models.StatusAvailable)
	})
	if err != nil {
		return nil, translate(err, "stay record")
	}
	return &hist, nil
}
