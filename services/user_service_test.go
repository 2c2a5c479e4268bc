package services

import (
	"context"
	"testing"

	"hotel-management/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) *UserService {
	svc := NewUserService(newTestDB(t))
	svc.Cost = bcrypt.MinCost
	return svc
}

func TestRegister_WritesUserAndDefaultProfile(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{ID: "E-001", Username: "alice", Password: "s3cret", Role: "Staff"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, user.Role)
	assert.NotEqual(t, "s3cret", user.Password)

	profile, err := svc.GetProfile(ctx, "E-001")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfileName, profile.FullName)
	assert.Equal(t, models.DefaultProfilePicture, profile.ProfilePicture)
}

func TestRegister_Rejections(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{ID: "E-001", Username: "alice", Password: "pw", Role: "staff"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{ID: "E-001", Username: "bob", Password: "pw", Role: "staff"})
	assert.Equal(t, KindConflict, KindOf(err))

	_, err = svc.Register(ctx, RegisterInput{ID: "E-002", Username: "alice", Password: "pw", Role: "staff"})
	assert.Equal(t, KindConflict, KindOf(err))

	_, err = svc.Register(ctx, RegisterInput{ID: "E-003", Username: "carol", Password: "pw", Role: "owner"})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.Register(ctx, RegisterInput{ID: "E-004", Username: "dave"})
	assert.Equal(t, KindValidation, KindOf(err))

	assert.EqualValues(t, 1, count(t, svc.DB, &models.User{}))
	assert.EqualValues(t, 1, count(t, svc.DB, &models.UserProfile{}))
}

func TestAuthenticate(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{ID: "E-001", Username: "alice", Password: "s3cret", Role: "admin"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "nobody", "s3cret")
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "account does not exist")

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.Equal(t, KindUnauthorized, KindOf(err))

	user, err := svc.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "E-001", user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestUserUpdateAndDelete(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{ID: "E-001", Username: "alice", Password: "old", Role: "staff"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterInput{ID: "E-002", Username: "bob", Password: "pw", Role: "staff"})
	require.NoError(t, err)

	pw := "new"
	role := "admin"
	user, err := svc.Update(ctx, "E-001", UserUpdate{Password: &pw, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	_, err = svc.Authenticate(ctx, "alice", "new")
	require.NoError(t, err)

	taken := "bob"
	_, err = svc.Update(ctx, "E-001", UserUpdate{Username: &taken})
	assert.Equal(t, KindConflict, KindOf(err))

	deleted, err := svc.Delete(ctx, "E-001")
	require.NoError(t, err)
	require.NotNil(t, deleted.Profile)
	assert.EqualValues(t, 1, count(t, svc.DB, &models.UserProfile{}))

	_, err = svc.Delete(ctx, "E-001")
	assert.True(t, IsNotFound(err))
}

func TestProfilePicture(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{ID: "E-001", Username: "alice", Password: "pw", Role: "staff"})
	require.NoError(t, err)

	name := "Alice Smith"
	profile, replaced, err := svc.UpdateProfile(ctx, "E-001", ProfileUpdate{FullName: &name, ProfilePicture: "alice.png"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfilePicture, replaced)
	assert.Equal(t, name, profile.FullName)
	assert.Equal(t, "alice.png", profile.ProfilePicture)

	old, err := svc.ResetProfilePicture(ctx, "E-001")
	require.NoError(t, err)
	assert.Equal(t, "alice.png", old)

	profile, err = svc.GetProfile(ctx, "E-001")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfilePicture, profile.ProfilePicture)

	_, err = svc.ResetProfilePicture(ctx, "missing")
	assert.True(t, IsNotFound(err))
}
