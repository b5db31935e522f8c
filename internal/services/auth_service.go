package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travel_manager/internal/middleware"
	"travel_manager/internal/models"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login verifies credentials and issues a signed bearer token carrying the
// username and role. Unknown user and wrong password are indistinguishable to
// the caller.
func Login(db *gorm.DB, in LoginInput) (*LoginResult, error) {
	var user models.User
	if err := db.Where("username = ?", in.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
		}
		return nil, err
	}

	if !CheckPassword(in.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	token, err := middleware.GenerateToken(user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: &user}, nil
}

func CreateUser(tx *gorm.DB, username, password, role string) (*models.User, error) {
	var existing models.User
	err := tx.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: user %s", ErrAlreadyExists, username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, PasswordHash: hash, Role: role}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SeedUser creates the user if absent; existing users are left untouched so
// operator-changed passwords survive restarts.
func SeedUser(db *gorm.DB, username, password, role string) error {
	_, err := CreateUser(db, username, password, role)
	if errors.Is(err, ErrAlreadyExists) {
		return nil
	}
	return err
}
