package services

import (
	"context"
	"errors"
	"strings"

	"hotel-management/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB   *gorm.DB
	Cost int // bcrypt cost
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db, Cost: bcrypt.DefaultCost}
}

type RegisterInput struct {
	ID       string
	Username string
	Password string
	Role     string
}

type UserUpdate struct {
	Username *string
	Password *string
	Role     *string
}

type ProfileUpdate struct {
	FullName       *string
	Email          *string
	Phone          *string
	Address        *string
	ProfilePicture string
}

func (s *UserService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register creates the user and its placeholder profile in one transaction.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Username = strings.TrimSpace(in.Username)
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	if in.ID == "" || in.Username == "" || in.Password == "" || in.Role == "" {
		return nil, ErrValidation("id, username, password and role are required")
	}
	if !models.ValidRole(in.Role) {
		return nil, ErrValidation("role must be admin or staff")
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{ID: in.ID, Username: in.Username, Password: hash, Role: in.Role}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := exists(tx, &models.User{}, in.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrConflict("user id already exists")
		}
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict("username already exists")
		}

		if err := tx.Omit("Profile").Create(&user).Error; err != nil {
			return err
		}
		profile := models.NewDefaultProfile(user.ID)
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
	if err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

// Authenticate distinguishes an unknown account (NotFound) from a wrong password (Unauthorized).
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrValidation("username and password are required")
	}

	var user models.User
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("account does not exist")
		}
		return nil, translate(err, "user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrUnauthorized("invalid credentials")
	}
	return &user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Preload("Profile").Order("username ASC").Find(&users).Error; err != nil {
		return nil, translate(err, "user")
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Preload("Profile").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in UserUpdate) (*models.User, error) {
	updates := map[string]interface{}{}
	if in.Username != nil {
		name := strings.TrimSpace(*in.Username)
		if name == "" {
			return nil, ErrValidation("username cannot be empty")
		}
		updates["username"] = name
	}
	if in.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*in.Role))
		if !models.ValidRole(role) {
			return nil, ErrValidation("role must be admin or staff")
		}
		updates["role"] = role
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, ErrValidation("password cannot be empty")
		}
		hash, err := s.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
	}

	var user models.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			return err
		}
		if name, ok := updates["username"]; ok {
			var count int64
			if err := tx.Model(&models.User{}).Where("username = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrConflict("username already exists")
			}
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Preload("Profile").Where("id = ?", id).First(&user).Error
	})
	if err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

// Delete removes the user and its profile; the returned user carries the profile for file cleanup.
func (s *UserService) Delete(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Profile").Where("id = ?", id).First(&user).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.User{}).Error
	})
	if err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err, "profile")
	}
	return &p, nil
}

// UpdateProfile returns the replaced profile picture, if any.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*models.UserProfile, string, error) {
	var p models.UserProfile
	var replaced string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&p).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{}
		set := func(col string, v *string) {
			if v != nil {
				updates[col] = strings.TrimSpace(*v)
			}
		}
		set("full_name", in.FullName)
		set("email", in.Email)
		set("phone", in.Phone)
		set("address", in.Address)
		if in.ProfilePicture != "" {
			replaced = p.ProfilePicture
			updates["profile_picture"] = in.ProfilePicture
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&p, p.ID).Error
	})
	if err != nil {
		return nil, "", translate(err, "profile")
	}
	return &p, replaced, nil
}

// ResetProfilePicture restores the placeholder picture and returns the one it replaced.
func (s *UserService) ResetProfilePicture(ctx context.Context, userID string) (string, error) {
	var old string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.UserProfile
		if err := tx.Where("user_id = ?", userID).First(&p).Error; err != nil {
			return err
		}
		old = p.ProfilePicture
		return tx.Model(&p).Update("profile_picture", models.DefaultProfilePicture).Error
	})
	if err != nil {
		return "", translate(err, "profile")
	}
	return old, nil
}
