package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-management-backend/models"
)

// UserService handles account CRUD. Passwords are hashed here; the policy
// checks live in auth_service.go and apply on creation and change only.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// CreateUser validates and persists a new account with the given role.
// Callers decide who may assign which role; self-registration always passes
// RoleGuest.
func (s *UserService) CreateUser(username, password string, role models.Role, fullName string) (*models.User, error) {
	username = strings.TrimSpace(username)
	fullName = strings.TrimSpace(fullName)

	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if fullName == "" {
		return nil, validationf("full name is required")
	}
	if !role.Valid() {
		return nil, validationf("invalid role %q: must be admin, staff, or guest", role)
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if count > 0 {
		return nil, validationf("username %q is already taken", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Password: string(hash),
		Role:     role,
		FullName: fullName,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("username").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

// UpdateUser changes the display name and role. Usernames are immutable and
// password changes go through AuthService.ChangePassword.
func (s *UserService) UpdateUser(id uint, fullName string, role models.Role) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, validationf("full name is required")
	}
	if !role.Valid() {
		return nil, validationf("invalid role %q: must be admin, staff, or guest", role)
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"fullname": fullName, "role": role}
	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes an account that no booking references. Accounts with
// booking history keep their rows so past bookings stay attributable.
func (s *UserService) DeleteUser(id uint) error {
	var count int64
	if err := s.DB.Model(&models.Booking{}).Unscoped().
		Where("guest_id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check user references: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: user %d has %d booking(s)", ErrUserReferenced, id, count)
	}

	result := s.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return nil
}
