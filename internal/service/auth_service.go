package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Marmosets/config"
	"github.com/lshigami/Marmosets/internal/dto"
	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

type AuthService interface {
	Register(req dto.RegisterRequestDTO) (*dto.AuthResponseDTO, error)
	Login(req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error)
	GetUserByID(id uint) (*model.User, error)
	UpdateProfile(userID uint, req dto.ProfileUpdateDTO) (*model.User, error)
	ValidateToken(tokenString string) (uint, error)
}

type authService struct {
	userRepo      repository.UserRepository
	analyticsRepo repository.AnalyticsRepository
	cfg           *config.Config
}

func NewAuthService(userRepo repository.UserRepository, analyticsRepo repository.AnalyticsRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, analyticsRepo: analyticsRepo, cfg: cfg}
}

// Register creates the user and, alongside it, the zeroed analytics row the
// accumulator later updates.
func (s *authService) Register(req dto.RegisterRequestDTO) (*dto.AuthResponseDTO, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:       req.Email,
		Password:    string(hash),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		TargetRole:  req.TargetRole,
		Role:        model.RoleUser,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return nil, err
	}

	analytics := model.Analytics{UserID: user.ID, LastUpdated: time.Now()}
	if err := s.analyticsRepo.Create(&analytics); err != nil {
		return nil, err
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponseDTO{Token: token, UserID: user.ID, Email: user.Email, Role: string(user.Role)}, nil
}

func (s *authService) Login(req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponseDTO{Token: token, UserID: user.ID, Email: user.Email, Role: string(user.Role)}, nil
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(userID uint, req dto.ProfileUpdateDTO) (*model.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PhoneNumber = req.PhoneNumber
	user.TargetRole = req.TargetRole
	user.ResumeText = req.ResumeText

	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to update profile")
		return nil, err
	}
	return user, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JwtSecret))
}

// ValidateToken checks the signature and expiry and returns the user ID.
func (s *authService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidCredentials
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrInvalidCredentials
	}
	return uint(sub), nil
}
