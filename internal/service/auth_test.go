package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Swaraj-Darekar0/moneypath-backend/internal/apperrors"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/config"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/models"
	"github.com/Swaraj-Darekar0/moneypath-backend/internal/service/mocks"
)

func newTestAuth(users *mocks.MockUserStore) *Auth {
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		DefaultTimezone: "Asia/Kolkata",
	}
	return NewAuth(users, testLogger(), cfg)
}

func TestSignUp_SeedsBaseline(t *testing.T) {
	users := new(mocks.MockUserStore)
	auth := newTestAuth(users)

	users.On("FindUserByEmail", "new@example.com").Return(nil, apperrors.NotFound("user not found"))

	var created *models.User
	users.On("CreateUser", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) { created = args.Get(0).(*models.User) }).
		Return(nil)

	user, token, err := auth.SignUp("new@example.com", "hunter2hunter2", models.OnboardingInput{
		AverageMonthlyIncome: 30000,
		DailyExpenses:        20000,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// 30000/month is 1000/day; expenses sit in the 50-70% band so the
	// saving rate is 5%.
	assert.Equal(t, int64(50), created.TodaysSavingTarget)
	assert.Equal(t, int64(950), created.BufferStatus)
	assert.Equal(t, "Asia/Kolkata", created.Timezone)
	assert.True(t, created.EnableAnalytics)
	assert.True(t, created.EnableTransactionTracking)

	// The stored hash verifies against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")))

	// The token is a valid HS256 JWT with the user id as subject.
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, user.ID, sub)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	users := new(mocks.MockUserStore)
	auth := newTestAuth(users)

	users.On("FindUserByEmail", "taken@example.com").Return(activeUser("u1"), nil)

	_, _, err := auth.SignUp("taken@example.com", "hunter2hunter2", models.OnboardingInput{})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	users.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestSignUp_Validation(t *testing.T) {
	auth := newTestAuth(new(mocks.MockUserStore))

	_, _, err := auth.SignUp("not-an-email", "hunter2hunter2", models.OnboardingInput{})
	assert.True(t, apperrors.IsValidation(err))

	_, _, err = auth.SignUp("a@b.com", "short", models.OnboardingInput{})
	assert.True(t, apperrors.IsValidation(err))

	_, _, err = auth.SignUp("a@b.com", "hunter2hunter2", models.OnboardingInput{DailyExpenses: -1})
	assert.True(t, apperrors.IsValidation(err))
}

func TestLogin(t *testing.T) {
	users := new(mocks.MockUserStore)
	auth := newTestAuth(users)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	u := activeUser("u1")
	u.Email = "known@example.com"
	u.PasswordHash = string(hash)
	users.On("FindUserByEmail", "known@example.com").Return(u, nil)

	got, token, err := auth.Login("known@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.NotEmpty(t, token)

	_, _, err = auth.Login("known@example.com", "wrong password")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAuthentication, apperrors.KindOf(err))
}

func TestLogin_UnknownEmailMaskedAsAuthentication(t *testing.T) {
	users := new(mocks.MockUserStore)
	auth := newTestAuth(users)

	users.On("FindUserByEmail", "ghost@example.com").Return(nil, apperrors.NotFound("user not found"))

	_, _, err := auth.Login("ghost@example.com", "hunter2hunter2")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAuthentication, apperrors.KindOf(err))
}

func TestVerifyPassword(t *testing.T) {
	users := new(mocks.MockUserStore)
	auth := newTestAuth(users)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	u := activeUser("u1")
	u.PasswordHash = string(hash)
	users.On("FindUserByID", "u1").Return(u, nil)

	assert.NoError(t, auth.VerifyPassword("u1", "hunter2hunter2"))
	assert.Error(t, auth.VerifyPassword("u1", "nope nope nope"))
}
