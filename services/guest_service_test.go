package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailConflict_ExcludesOwnRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)
	ctx := context.Background()

	a, err := svc.Create(ctx, GuestInput{Name: "A", Email: "x@example.com"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, GuestInput{Name: "B", Email: "y@example.com"})
	require.NoError(t, err)

	conflict, err := svc.EmailConflict(ctx, "x@example.com", a.ID)
	require.NoError(t, err)
	assert.False(t, conflict)

	conflict, err = svc.EmailConflict(ctx, "X@example.com", b.ID)
	require.NoError(t, err)
	assert.True(t, conflict)

	conflict, err = svc.EmailConflict(ctx, "z@example.com", 0)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestGuestCreate_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, GuestInput{Name: "A", Email: "x@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, GuestInput{Name: "B", Email: " x@EXAMPLE.com "})
	assert.Equal(t, KindConflict, KindOf(err))

	_, err = svc.Create(ctx, GuestInput{Email: "n@example.com"})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestGuestUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)
	ctx := context.Background()

	a, err := svc.Create(ctx, GuestInput{Name: "A", Email: "a@example.com", IDPicture: "a.png"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, GuestInput{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)

	phone := "555-0123"
	got, replaced, err := svc.Update(ctx, a.ID, GuestUpdate{Phone: &phone, IDPicture: "a2.png"})
	require.NoError(t, err)
	assert.Equal(t, "a.png", replaced)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, phone, got.Phone)
	assert.Equal(t, "a2.png", got.IDPicture)

	taken := "b@example.com"
	_, _, err = svc.Update(ctx, a.ID, GuestUpdate{Email: &taken})
	assert.Equal(t, KindConflict, KindOf(err))

	_, _, err = svc.Update(ctx, 999, GuestUpdate{Phone: &phone})
	assert.True(t, IsNotFound(err))
}

func TestGuestDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)
	ctx := context.Background()

	a, err := svc.Create(ctx, GuestInput{Name: "A", Email: "a@example.com", IDPicture: "a.png"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.png", deleted.IDPicture)

	_, err = svc.Delete(ctx, a.ID)
	assert.True(t, IsNotFound(err))

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}
