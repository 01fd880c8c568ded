package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/config"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
)

// Auth handles signup and login.
type Auth struct {
	users  UserStore
	log    *logrus.Logger
	config *config.Config
}

// NewAuth initializes the auth service.
func NewAuth(users UserStore, log *logrus.Logger, cfg *config.Config) *Auth {
	return &Auth{users: users, log: log, config: cfg}
}

// SignUp creates a new user with a hashed password, seeding the derived
// financial state from the baseline calculator. Returns the user and a
// signed token.
func (s *Auth) SignUp(email, password string, onboarding models.OnboardingInput) (*models.User, string, error) {
	if !strings.Contains(email, "@") {
		return nil, "", apperrors.Validation("a valid email is required")
	}
	if len(password) < 8 {
		return nil, "", apperrors.Validation("password must be at least 8 characters")
	}
	if onboarding.AverageMonthlyIncome < 0 || onboarding.DailyExpenses < 0 {
		return nil, "", apperrors.Validation("income and expenses must be non-negative")
	}

	if _, err := s.users.FindUserByEmail(email); err == nil {
		return nil, "", apperrors.Conflict("email already registered")
	} else if !apperrors.IsNotFound(err) {
		return nil, "", err
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	timezone := onboarding.Timezone
	if timezone == "" {
		timezone = s.config.DefaultTimezone
	}

	baseline := ComputeBaseline(onboarding.AverageMonthlyIncome, onboarding.DailyExpenses)

	user := &models.User{
		ID:                        uuid.New().String(),
		Email:                     email,
		PasswordHash:              string(hashedPassword),
		AverageMonthlyIncome:      onboarding.AverageMonthlyIncome,
		DailyExpenses:             onboarding.DailyExpenses,
		Timezone:                  timezone,
		TodaysSavingTarget:        baseline.TodaysSavingTarget,
		BufferStatus:              baseline.BufferStatus,
		TotalAvailable:            baseline.TotalAvailable,
		EnableAnalytics:           true,
		EnableTransactionTracking: true,
		DataRetentionDays:         365,
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, token, nil
}

// Login authenticates a user and returns a JWT token
func (s *Auth) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		return nil, "", apperrors.Authentication("invalid credentials")
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.Authentication("invalid credentials")
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return user, token, nil
}

// VerifyPassword re-checks a user's password, used before destructive
// operations like account erasure.
func (s *Auth) VerifyPassword(userID, password string) error {
	user, err := s.users.FindUserByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return apperrors.Authentication("invalid credentials")
	}
	return nil
}

func (s *Auth) generateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
