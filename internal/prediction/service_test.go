package prediction

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pronofoot/football-prediction-backend/internal/league"
	"github.com/pronofoot/football-prediction-backend/internal/match"
	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"github.com/pronofoot/football-prediction-backend/internal/team"
	"github.com/pronofoot/football-prediction-backend/internal/user"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &league.League{}, &team.Team{}, &match.Match{}, &Prediction{}))
	database.DB = db
}

func seedUser(t *testing.T, username string) *user.User {
	t.Helper()
	u := user.User{Username: username, Password: "secret123", Role: user.RoleUser}
	require.NoError(t, database.DB.Create(&u).Error)
	return &u
}

func seedMatch(t *testing.T, status string) *match.Match {
	t.Helper()
	l := league.League{Name: "Ligue 1", Season: "2025-2026", Active: true}
	require.NoError(t, database.DB.Create(&l).Error)
	home := team.Team{Name: "PSG", LeagueID: l.ID}
	away := team.Team{Name: "OM", LeagueID: l.ID}
	require.NoError(t, database.DB.Create(&home).Error)
	require.NoError(t, database.DB.Create(&away).Error)
	m := match.Match{
		LeagueID:   l.ID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		MatchDate:  time.Now().Add(24 * time.Hour),
		Status:     status,
	}
	require.NoError(t, database.DB.Create(&m).Error)
	return &m
}

func TestCreatePrediction(t *testing.T) {
	setupTestDB(t)
	u := seedUser(t, "alice")
	m := seedMatch(t, match.StatusScheduled)

	p, err := CreatePrediction(u.ID, m.ID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, p.HomeScorePrediction)
	assert.Equal(t, 1, p.AwayScorePrediction)
	assert.Zero(t, p.PointsEarned)
}

func TestCreatePredictionRejections(t *testing.T) {
	setupTestDB(t)
	u := seedUser(t, "alice")
	scheduled := seedMatch(t, match.StatusScheduled)
	finished := seedMatch(t, match.StatusFinished)

	_, err := CreatePrediction(u.ID, 9999, 1, 0)
	assert.ErrorIs(t, err, ErrMatchNotFound)

	// 比赛一旦离开scheduled就永久封盘
	_, err = CreatePrediction(u.ID, finished.ID, 1, 0)
	assert.ErrorIs(t, err, ErrMatchClosed)

	_, err = CreatePrediction(u.ID, scheduled.ID, 1, 0)
	require.NoError(t, err)

	// 同一场比赛只能有一条预测
	_, err = CreatePrediction(u.ID, scheduled.ID, 3, 3)
	assert.ErrorIs(t, err, ErrAlreadyPredicted)
}

func TestUpdatePrediction(t *testing.T) {
	setupTestDB(t)
	u := seedUser(t, "alice")
	m := seedMatch(t, match.StatusScheduled)

	p, err := CreatePrediction(u.ID, m.ID, 1, 0)
	require.NoError(t, err)

	updated, err := UpdatePrediction(u.ID, p.ID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.HomeScorePrediction)
	assert.Equal(t, 2, updated.AwayScorePrediction)
}

func TestUpdatePredictionRejections(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "alice")
	other := seedUser(t, "bob")
	m := seedMatch(t, match.StatusScheduled)

	p, err := CreatePrediction(owner.ID, m.ID, 1, 0)
	require.NoError(t, err)

	_, err = UpdatePrediction(owner.ID, 9999, 1, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = UpdatePrediction(other.ID, p.ID, 1, 1)
	assert.ErrorIs(t, err, ErrNotOwner)

	// 比赛结束后预测不可再改
	require.NoError(t, database.DB.Model(&match.Match{}).Where("id = ?", m.ID).Update("status", match.StatusFinished).Error)
	_, err = UpdatePrediction(owner.ID, p.ID, 1, 1)
	assert.ErrorIs(t, err, ErrMatchClosed)
}

func TestGetByUserWithMatch(t *testing.T) {
	setupTestDB(t)
	u := seedUser(t, "alice")
	m := seedMatch(t, match.StatusScheduled)

	_, err := CreatePrediction(u.ID, m.ID, 2, 1)
	require.NoError(t, err)

	rows, err := GetByUserWithMatch(u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "PSG", rows[0].HomeTeamName)
	assert.Equal(t, "OM", rows[0].AwayTeamName)
	assert.Equal(t, "Ligue 1", rows[0].LeagueName)
	assert.Equal(t, match.StatusScheduled, rows[0].MatchStatus)
}
