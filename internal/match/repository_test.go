package match

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
	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"github.com/pronofoot/football-prediction-backend/internal/team"
)

func setupTestDB(t *testing.T) (leagueID, homeID, awayID uint) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&league.League{}, &team.Team{}, &Match{}))
	database.DB = db

	l := league.League{Name: "Ligue 1", Season: "2025-2026", Active: true}
	require.NoError(t, db.Create(&l).Error)
	home := team.Team{Name: "PSG", LeagueID: l.ID}
	away := team.Team{Name: "OM", LeagueID: l.ID}
	require.NoError(t, db.Create(&home).Error)
	require.NoError(t, db.Create(&away).Error)
	return l.ID, home.ID, away.ID
}

func seedMatch(t *testing.T, leagueID, homeID, awayID uint, status string, round *string, date time.Time) *Match {
	t.Helper()
	m := Match{
		LeagueID:   leagueID,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		MatchDate:  date,
		Status:     status,
		Round:      round,
	}
	require.NoError(t, database.DB.Create(&m).Error)
	return &m
}

func strPtr(s string) *string { return &s }

func TestGetByIDWithTeams(t *testing.T) {
	leagueID, homeID, awayID := setupTestDB(t)
	m := seedMatch(t, leagueID, homeID, awayID, StatusScheduled, nil, time.Now())

	row, err := GetByIDWithTeams(m.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "PSG", row.HomeTeamName)
	assert.Equal(t, "OM", row.AwayTeamName)
	assert.Equal(t, "Ligue 1", row.LeagueName)

	missing, err := GetByIDWithTeams(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetUpcomingWithTeamsFilters(t *testing.T) {
	leagueID, homeID, awayID := setupTestDB(t)
	now := time.Now()
	seedMatch(t, leagueID, homeID, awayID, StatusScheduled, strPtr("J1"), now.Add(1*time.Hour))
	seedMatch(t, leagueID, homeID, awayID, StatusScheduled, strPtr("J2"), now.Add(2*time.Hour))
	seedMatch(t, leagueID, homeID, awayID, StatusFinished, strPtr("J1"), now.Add(-1*time.Hour))

	all, err := GetUpcomingWithTeams(nil, nil)
	require.NoError(t, err)
	// 已结束的比赛不算即将进行
	require.Len(t, all, 2)
	assert.True(t, all[0].MatchDate.Before(all[1].MatchDate))

	j1, err := GetUpcomingWithTeams(&leagueID, strPtr("J1"))
	require.NoError(t, err)
	require.Len(t, j1, 1)
	assert.Equal(t, "J1", *j1[0].Round)

	other := leagueID + 1
	none, err := GetUpcomingWithTeams(&other, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetRoundsByLeague(t *testing.T) {
	leagueID, homeID, awayID := setupTestDB(t)
	now := time.Now()
	seedMatch(t, leagueID, homeID, awayID, StatusScheduled, strPtr("J1"), now)
	seedMatch(t, leagueID, homeID, awayID, StatusScheduled, strPtr("J1"), now)
	seedMatch(t, leagueID, homeID, awayID, StatusFinished, strPtr("J2"), now)
	seedMatch(t, leagueID, homeID, awayID, StatusScheduled, nil, now)

	rounds, err := GetRoundsByLeague(leagueID)
	require.NoError(t, err)
	assert.Equal(t, []string{"J1", "J2"}, rounds)
}

func TestFinishWithScore(t *testing.T) {
	leagueID, homeID, awayID := setupTestDB(t)
	m := seedMatch(t, leagueID, homeID, awayID, StatusScheduled, nil, time.Now())

	require.NoError(t, FinishWithScore(nil, m.ID, 3, 1))

	reloaded, err := GetByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, StatusFinished, reloaded.Status)
	require.NotNil(t, reloaded.HomeScore)
	require.NotNil(t, reloaded.AwayScore)
	assert.Equal(t, 3, *reloaded.HomeScore)
	assert.Equal(t, 1, *reloaded.AwayScore)
}
