package services

import (
	"context"
	"testing"

	"hotel-management/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	ctx := context.Background()

	room, err := svc.Create(ctx, RoomInput{RoomNumber: " 101 ", RoomTypeID: 1, Rate: 150, Image: "r.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, models.StatusAvailable, roomStatus(t, db, room.ID))

	got, err := svc.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got.Rate)
	require.NotNil(t, got.RoomType)
	assert.Equal(t, "Standard", got.RoomType.Name)

	_, err = svc.Create(ctx, RoomInput{RoomNumber: "101", RoomTypeID: 1, Rate: 90, Image: "s.jpg"})
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestRoomCreate_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	ctx := context.Background()

	cases := map[string]RoomInput{
		"missing number": {RoomTypeID: 1, Image: "r.jpg"},
		"missing image":  {RoomNumber: "101", RoomTypeID: 1},
		"negative rate":  {RoomNumber: "101", RoomTypeID: 1, Rate: -1, Image: "r.jpg"},
		"unknown type":   {RoomNumber: "101", RoomTypeID: 99, Image: "r.jpg"},
		"unknown status": {RoomNumber: "101", RoomTypeID: 1, StatusCodeID: 99, Image: "r.jpg"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, in)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
	assert.Zero(t, count(t, db, &models.Room{}))
}

func TestRoomUpdate_PartialAndImage(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	ctx := context.Background()
	room := seedRoom(t, db, "101")

	rate := 175.0
	got, replaced, err := svc.Update(ctx, room.ID, RoomUpdate{Rate: &rate, Image: "new.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "101.jpg", replaced)
	assert.Equal(t, rate, got.Rate)
	assert.Equal(t, "101", got.RoomNumber)
	assert.Equal(t, "new.jpg", got.Image)

	_, _, err = svc.Update(ctx, 999, RoomUpdate{Rate: &rate})
	assert.True(t, IsNotFound(err))
}

func TestRoomDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	ctx := context.Background()
	room := seedRoom(t, db, "101")

	deleted, err := svc.Delete(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "101.jpg", deleted.Image)

	_, err = svc.Delete(ctx, room.ID)
	assert.True(t, IsNotFound(err))
}

func TestRoomList_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	ctx := context.Background()
	seedRoom(t, db, "101")
	_, err := svc.Create(ctx, RoomInput{RoomNumber: "201", RoomTypeID: 2, Rate: 250, StatusCodeID: 3, Image: "x.jpg"})
	require.NoError(t, err)

	all, err := svc.List(ctx, RoomFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	maint, err := svc.List(ctx, RoomFilter{StatusCodeID: 3})
	require.NoError(t, err)
	require.Len(t, maint, 1)
	assert.Equal(t, "201", maint[0].RoomNumber)
}

func TestRoomTypeDelete_InUse(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomTypeService(db)
	ctx := context.Background()
	seedRoom(t, db, "101")

	assert.Equal(t, KindConflict, KindOf(svc.Delete(ctx, 1)))

	rt := &models.RoomType{Name: "Penthouse"}
	require.NoError(t, svc.Create(ctx, rt))
	assert.Equal(t, 2, rt.MaxOccupancy)
	require.NoError(t, svc.Delete(ctx, rt.ID))
	assert.True(t, IsNotFound(svc.Delete(ctx, rt.ID)))
}
