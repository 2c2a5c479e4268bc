package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hotel-management/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedService(t *testing.T, db *gorm.DB, name string, price float64) *models.Service {
	t.Helper()
	svc := &models.Service{Name: name, Price: price}
	require.NoError(t, NewCatalogService(db).CreateService(context.Background(), svc))
	return svc
}

func TestStayRecordCreate_WalkInOccupiesRoom(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101")
	svc := NewStayRecordService(db)

	stay, _, err := svc.Create(context.Background(), booking(room.ID, "walkin@example.com", date(2026, 10, 14), date(2026, 10, 16)))
	require.NoError(t, err)
	assert.NotZero(t, stay.ID)
	assert.NotZero(t, stay.GuestID)
	assert.Equal(t, models.StatusOccupied, roomStatus(t, db, room.ID))
}

func TestProcessPayment_WritesHistoryAndClearsStay(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101")
	stays := NewStayRecordService(db)
	paidAt := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	stays.now = fixedClock(paidAt)
	catalog := NewCatalogService(db)
	ctx := context.Background()

	stay, _, err := stays.Create(ctx, booking(room.ID, "jane@example.com", date(2026, 10, 14), date(2026, 10, 16)))
	require.NoError(t, err)

	breakfast := seedService(t, db, "Breakfast", 12.5)
	laundry := seedService(t, db, "Laundry", 8)
	_, err = catalog.AddLine(ctx, stay.ID, breakfast.ID, 2)
	require.NoError(t, err)
	_, err = catalog.AddLine(ctx, stay.ID, laundry.ID, 0)
	require.NoError(t, err)

	hist, err := stays.ProcessPayment(ctx, stay.ID, PaymentInput{
		Amount:              300,
		PaymentMethod:       "card",
		TotalServiceCharges: 33,
		DiscountPercentage:  10,
		DiscountName:        "Member",
	})
	require.NoError(t, err)

	assert.Zero(t, count(t, db, &models.StayRecord{}))
	assert.Zero(t, count(t, db, &models.ServiceListItem{}))
	assert.EqualValues(t, 1, count(t, db, &models.StayRecordHistory{}))

	var got models.StayRecordHistory
	require.NoError(t, db.First(&got, hist.ID).Error)
	assert.Equal(t, stay.ID, got.StayRecordID)
	assert.Equal(t, room.ID, got.RoomID)
	assert.Equal(t, 300.0, got.AmountPaid)
	assert.Equal(t, "card", got.PaymentMethod)
	assert.Equal(t, 33.0, got.TotalServiceCharges)
	assert.Equal(t, 10.0, got.DiscountPercentage)
	assert.Equal(t, "Member", got.DiscountName)
	assert.True(t, paidAt.Equal(got.PaidAt))

	var billed []billedService
	require.NoError(t, json.Unmarshal(got.Services, &billed))
	require.Len(t, billed, 2)
	assert.Equal(t, "Breakfast", billed[0].Name)
	assert.Equal(t, 25.0, billed[0].Total)
	assert.Equal(t, 1, billed[1].Quantity)

	assert.Equal(t, models.StatusAvailable, roomStatus(t, db, room.ID))
}

func TestProcessPayment_DefaultsToCash(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101")
	stays := NewStayRecordService(db)
	ctx := context.Background()

	stay, _, err := stays.Create(ctx, booking(room.ID, "jane@example.com", date(2026, 10, 14), date(2026, 10, 16)))
	require.NoError(t, err)

	hist, err := stays.ProcessPayment(ctx, stay.ID, PaymentInput{Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, DefaultPaymentMethod, hist.PaymentMethod)
	assert.JSONEq(t, `[]`, string(hist.Services))
}

func TestProcessPayment_NotFoundLeavesStoreUnchanged(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101")
	stays := NewStayRecordService(db)
	ctx := context.Background()

	_, _, err := stays.Create(ctx, booking(room.ID, "jane@example.com", date(2026, 10, 14), date(2026, 10, 16)))
	require.NoError(t, err)

	_, err = stays.ProcessPayment(ctx, 4242, PaymentInput{Amount: 100})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.EqualValues(t, 1, count(t, db, &models.StayRecord{}))
	assert.Zero(t, count(t, db, &models.StayRecordHistory{}))
}

func TestProcessPayment_RejectsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101")
	stays := NewStayRecordService(db)
	ctx := context.Background()

	stay, _, err := stays.Create(ctx, booking(room.ID, "jane@example.com", date(2026, 10, 14), date(2026, 10, 16)))
	require.NoError(t, err)

	cases := map[string]PaymentInput{
		"negative amount":   {Amount: -1},
		"discount over 100": {Amount: 10, DiscountPercentage: 150},
		"negative charges":  {Amount: 10, TotalServiceCharges: -5},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := stays.ProcessPayment(ctx, stay.ID, in)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
	assert.EqualValues(t, 1, count(t, db, &models.StayRecord{}))
	assert.Zero(t, count(t, db, &models.StayRecordHistory{}))
}

func TestStayRecordDelete_RemovesLinesAndFreesRoom(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101")
	stays := NewStayRecordService(db)
	ctx := context.Background()

	stay, _, err := stays.Create(ctx, booking(room.ID, "jane@example.com", date(2026, 10, 14), date(2026, 10, 16)))
	require.NoError(t, err)
	_, err = NewCatalogService(db).AddLine(ctx, stay.ID, seedService(t, db, "Spa", 40).ID, 1)
	require.NoError(t, err)

	require.NoError(t, stays.Delete(ctx, stay.ID))
	assert.Zero(t, count(t, db, &models.ServiceListItem{}))
	assert.Zero(t, count(t, db, &models.StayRecordHistory{}))
	assert.Equal(t, models.StatusAvailable, roomStatus(t, db, room.ID))

	assert.True(t, IsNotFound(stays.Delete(ctx, stay.ID)))
}

func TestHistoryList_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101")
	stays := NewStayRecordService(db)
	ctx := context.Background()

	for i, paid := range []time.Time{
		time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC),
	} {
		stays.now = fixedClock(paid)
		stay, _, err := stays.Create(ctx, booking(room.ID, "jane@example.com", date(2026, 9, 1+i), date(2026, 9, 3+i)))
		require.NoError(t, err)
		_, err = stays.ProcessPayment(ctx, stay.ID, PaymentInput{Amount: float64(100 * (i + 1))})
		require.NoError(t, err)
	}

	list, err := NewHistoryService(db).List(ctx, StayFilter{RoomID: room.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 200.0, list[0].AmountPaid)

	_, err = NewHistoryService(db).GetByID(ctx, 999)
	assert.True(t, IsNotFound(err))
}

func TestProcessPayment_RollsBackWhenStayDeleteFails(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101")
	stays := NewStayRecordService(db)
	ctx := context.Background()

	stay, _, err := stays.Create(ctx, booking(room.ID, "jane@example.com", date(2026, 10, 14), date(2026, 10, 16)))
	require.NoError(t, err)
	breakfast := seedService(t, db, "Breakfast", 12.5)
	_, err = NewCatalogService(db).AddLine(ctx, stay.ID, breakfast.ID, 2)
	require.NoError(t, err)

	failDeletes(t, db, "stay_records")

	_, err = stays.ProcessPayment(ctx, stay.ID, PaymentInput{Amount: 200})
	require.Error(t, err)
	assert.Zero(t, KindOf(err))

	assert.Zero(t, count(t, db, &models.StayRecordHistory{}))
	assert.EqualValues(t, 1, count(t, db, &models.StayRecord{}))
	assert.EqualValues(t, 1, count(t, db, &models.ServiceListItem{}))
	assert.Equal(t, models.StatusOccupied, roomStatus(t, db, room.ID))
}

func TestStayRecordCreate_RefreshesExistingGuest(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101")
	svc := NewStayRecordService(db)
	ctx := context.Background()

	in := booking(room.ID, "jane@example.com", date(2026, 10, 14), date(2026, 10, 16))
	in.Guest.IDPicture = "old.png"
	first, _, err := svc.Create(ctx, in)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, first.ID))

	in.Guest.Name = "Jane Smith"
	in.Guest.Phone = "555-0199"
	in.Guest.IDPicture = "new.png"
	second, replaced, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "old.png", replaced)
	assert.Equal(t, first.GuestID, second.GuestID)

	var guest models.Guest
	require.NoError(t, db.First(&guest, second.GuestID).Error)
	assert.Equal(t, "Jane Smith", guest.Name)
	assert.Equal(t, "555-0199", guest.Phone)
	assert.Equal(t, "new.png", guest.IDPicture)
}
