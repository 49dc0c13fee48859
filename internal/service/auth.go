package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/platefeed/backend/internal/middleware"
	"github.com/platefeed/backend/internal/models"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Signup creates a user and returns a signed token for it.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, *models.User, error) {
	// Check if user already exists
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return "", nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Login checks the credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// GetUser loads a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the editable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
	Bio    *string `json:"bio"`
}

// UpdateProfile applies a partial profile edit for the given user.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, update *ProfileUpdate) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, &ValidationError{Fields: map[string]string{"name": "is required"}}
		}
		user.Name = *update.Name
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) generateToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a bearer token.
func (s *AuthService) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userIDStr, ok := claims["user_id"].(string)
		if !ok {
			return nil, errors.New("invalid token claims")
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return nil, err
		}

		return &middleware.TokenClaims{
			UserID: userID,
		}, nil
	}

	return nil, errors.New("invalid token")
}
