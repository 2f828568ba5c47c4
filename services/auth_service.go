package services

import (
	"errors"
	"time"

	"blog-api/config"
	"blog-api/models"
	"blog-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	SignUp(req models.SignUpRequest) (*models.AuthResponse, error)
	SignIn(req models.SignInRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) SignUp(req models.SignUpRequest) (*models.AuthResponse, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existingUser != nil && existingUser.ID != 0 {
		return nil, models.ErrorConflict{Message: "email already taken"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.generateTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:  *user,
		Token: token,
	}, nil
}

func (s *authService) SignIn(req models.SignInRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	token, err := s.generateTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:  *user,
		Token: token,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// generateTokenPair issues the access-token/client/uid triple. The client id
// is minted per session and baked into the token claims, so the token is only
// valid alongside the client header it was issued with.
func (s *authService) generateTokenPair(user *models.User) (models.TokenPair, error) {
	now := time.Now()
	expiry := now.Add(config.JWTExpiration)
	client := uuid.NewString()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"client":  client,
		"uid":     user.Email,
		"exp":     expiry.Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{
		AccessToken: signedToken,
		Client:      client,
		UID:         user.Email,
		Expiry:      expiry,
	}, nil
}
