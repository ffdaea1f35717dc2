package user

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"github.com/pronofoot/football-prediction-backend/pkg/token"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	token.Configure("test-secret", time.Hour)
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	database.DB = db
}

func TestRegister(t *testing.T) {
	setupTestDB(t)

	u, raw, err := Register("alice", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, RoleUser, u.Role)
	assert.Zero(t, u.Points)
	// 密码落库前已经过bcrypt
	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, u.CheckPassword("secret123"))

	claims, err := token.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupTestDB(t)

	_, _, err := Register("alice", "secret123")
	require.NoError(t, err)

	_, _, err = Register("alice", "autre-mdp")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	setupTestDB(t)

	_, _, err := Register("alice", "secret123")
	require.NoError(t, err)

	u, raw, err := Login("alice", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, "alice", u.Username)

	_, _, err = Login("alice", "mauvais")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = Login("inconnu", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAddPoints(t *testing.T) {
	setupTestDB(t)

	u, _, err := Register("alice", "secret123")
	require.NoError(t, err)

	require.NoError(t, AddPoints(nil, u.ID, 3))
	require.NoError(t, AddPoints(nil, u.ID, -1))

	reloaded, err := GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Points)
}
