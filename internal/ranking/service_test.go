package ranking

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
	"github.com/pronofoot/football-prediction-backend/internal/prediction"
	"github.com/pronofoot/football-prediction-backend/internal/team"
	"github.com/pronofoot/football-prediction-backend/internal/user"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &league.League{}, &team.Team{}, &match.Match{}, &prediction.Prediction{},
	))
	database.DB = db
}

func seedUser(t *testing.T, username string, points int) *user.User {
	t.Helper()
	u := user.User{Username: username, Password: "secret123", Role: user.RoleUser, Points: points}
	require.NoError(t, database.DB.Create(&u).Error)
	return &u
}

func seedFinishedMatch(t *testing.T) *match.Match {
	t.Helper()
	l := league.League{Name: "Ligue 1", Season: "2025-2026", Active: true}
	require.NoError(t, database.DB.Create(&l).Error)
	home := team.Team{Name: "PSG", LeagueID: l.ID}
	away := team.Team{Name: "OM", LeagueID: l.ID}
	require.NoError(t, database.DB.Create(&home).Error)
	require.NoError(t, database.DB.Create(&away).Error)
	two, one := 2, 1
	m := match.Match{
		LeagueID:   l.ID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		MatchDate:  time.Now().Add(-24 * time.Hour),
		Status:     match.StatusFinished,
		HomeScore:  &two,
		AwayScore:  &one,
	}
	require.NoError(t, database.DB.Create(&m).Error)
	return &m
}

func seedSettledPrediction(t *testing.T, userID, matchID uint, points int) {
	t.Helper()
	p := prediction.Prediction{
		UserID:              userID,
		MatchID:             matchID,
		HomeScorePrediction: 1,
		AwayScorePrediction: 1,
		PointsEarned:        points,
	}
	require.NoError(t, database.DB.Create(&p).Error)
}

func TestGetRankingsOrderingAndCounts(t *testing.T) {
	setupTestDB(t)
	m := seedFinishedMatch(t)

	// alice和bob同分，alice全中场次更多应排前
	alice := seedUser(t, "alice", 4)
	bob := seedUser(t, "bob", 4)
	carol := seedUser(t, "carol", 0)
	seedSettledPrediction(t, alice.ID, m.ID, 3)
	seedSettledPrediction(t, bob.ID, m.ID, 1)
	seedSettledPrediction(t, carol.ID, m.ID, 0)

	entries, err := GetRankings()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, "bob", entries[1].Username)
	assert.Equal(t, "carol", entries[2].Username)

	assert.Equal(t, 1, entries[0].TotalPredictions)
	assert.Equal(t, 1, entries[0].ExactScores)
	assert.Equal(t, 0, entries[0].CorrectResults)
	assert.Equal(t, 0, entries[0].WrongPredictions)

	assert.Equal(t, 1, entries[1].CorrectResults)
	assert.Equal(t, 1, entries[2].WrongPredictions)
}

func TestGetRankingsIgnoresUnsettledMatches(t *testing.T) {
	setupTestDB(t)
	m := seedFinishedMatch(t)
	alice := seedUser(t, "alice", 3)
	seedSettledPrediction(t, alice.ID, m.ID, 3)

	// 未结束比赛上的预测不进统计
	scheduled := match.Match{
		LeagueID:   m.LeagueID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		MatchDate:  time.Now().Add(24 * time.Hour),
		Status:     match.StatusScheduled,
	}
	require.NoError(t, database.DB.Create(&scheduled).Error)
	seedSettledPrediction(t, alice.ID, scheduled.ID, 0)

	entries, err := GetRankings()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].TotalPredictions)
	assert.Equal(t, 0, entries[0].WrongPredictions)
}

func TestGetRankingsIncludesUsersWithoutPredictions(t *testing.T) {
	setupTestDB(t)
	seedUser(t, "alice", 0)

	entries, err := GetRankings()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Zero(t, entries[0].TotalPredictions)
	assert.Zero(t, entries[0].WrongPredictions)
}
