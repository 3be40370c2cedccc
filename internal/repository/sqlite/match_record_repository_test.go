package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/iamyashpreet99/pitchside/internal/models"
	"github.com/iamyashpreet99/pitchside/internal/repository"
	"github.com/iamyashpreet99/pitchside/internal/repository/sqlite"
	"github.com/iamyashpreet99/pitchside/internal/testutil"
)

type MatchRecordRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.MatchRecordRepository
}

func (s *MatchRecordRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewMatchRecordRepository(s.db)
}

func (s *MatchRecordRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *MatchRecordRepositorySuite) insertRecord(team, result, format string, playedAt time.Time) int64 {
	id, err := s.repo.Insert(context.Background(), models.MatchRecord{
		PlayerTeam:    team,
		OpponentTeam:  "Australia",
		Format:        format,
		Difficulty:    "medium",
		Target:        151,
		Runs:          152,
		Wickets:       4,
		Overs:         "18.3",
		Result:        result,
		ManOfTheMatch: "Rohit Sharma",
		PlayedAt:      playedAt,
	})
	s.Require().NoError(err)
	return id
}

func (s *MatchRecordRepositorySuite) TestInsertAndGet() {
	playedAt := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	id := s.insertRecord("India", "win", "t20", playedAt)
	s.Assert().Greater(id, int64(0))

	rec, err := s.repo.Get(context.Background(), id)
	s.Require().NoError(err)
	s.Assert().Equal("India", rec.PlayerTeam)
	s.Assert().Equal("Australia", rec.OpponentTeam)
	s.Assert().Equal("win", rec.Result)
	s.Assert().Equal(151, rec.Target)
	s.Assert().Equal(152, rec.Runs)
	s.Assert().Equal("18.3", rec.Overs)
	s.Assert().Equal("Rohit Sharma", rec.ManOfTheMatch)
	s.Assert().False(rec.CreatedAt.IsZero())
}

func (s *MatchRecordRepositorySuite) TestGet_NotFound() {
	rec, err := s.repo.Get(context.Background(), 99999)
	s.Assert().Error(err)
	s.Assert().Nil(rec)
}

func (s *MatchRecordRepositorySuite) TestListFilters() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.insertRecord("India", "win", "t20", base)
	s.insertRecord("India", "loss", "odi", base.Add(time.Hour))
	s.insertRecord("England", "win", "t20", base.Add(2*time.Hour))

	all, err := s.repo.List(ctx, models.MatchRecordFilter{})
	s.Require().NoError(err)
	s.Assert().Len(all, 3)
	// Most recent first.
	s.Assert().Equal("England", all[0].PlayerTeam)

	india, err := s.repo.List(ctx, models.MatchRecordFilter{Team: "India"})
	s.Require().NoError(err)
	s.Assert().Len(india, 2)

	wins, err := s.repo.List(ctx, models.MatchRecordFilter{Result: "win"})
	s.Require().NoError(err)
	s.Assert().Len(wins, 2)

	indiaT20, err := s.repo.List(ctx, models.MatchRecordFilter{Team: "India", Format: "t20"})
	s.Require().NoError(err)
	s.Require().Len(indiaT20, 1)
	s.Assert().Equal("win", indiaT20[0].Result)
}

func (s *MatchRecordRepositorySuite) TestListPagination() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.insertRecord("India", "win", "t20", base.Add(time.Duration(i)*time.Hour))
	}

	page, err := s.repo.List(ctx, models.MatchRecordFilter{Limit: 2, Offset: 2})
	s.Require().NoError(err)
	s.Assert().Len(page, 2)
}

func (s *MatchRecordRepositorySuite) TestCount() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.insertRecord("India", "win", "t20", base)
	s.insertRecord("India", "tie", "t20", base)
	s.insertRecord("England", "loss", "odi", base)

	count, err := s.repo.Count(ctx, models.MatchRecordFilter{})
	s.Require().NoError(err)
	s.Assert().Equal(3, count)

	count, err = s.repo.Count(ctx, models.MatchRecordFilter{Team: "India"})
	s.Require().NoError(err)
	s.Assert().Equal(2, count)
}

func TestMatchRecordRepositorySuite(t *testing.T) {
	suite.Run(t, new(MatchRecordRepositorySuite))
}
