package postgre

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
	"report-srv/pkg/log"
)

func newMockRepo(t *testing.T) (repository.AggregationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()), mock
}

func testRange() model.DateRange {
	return model.DateRange{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCountNewUsers(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountNewUsers(context.Background(), repository.RangeOptions{Range: testRange()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 42 {
		t.Errorf("count = %d, want 42", count)
	}
}

func TestCountUsersGroupedBy(t *testing.T) {
	t.Run("gender buckets seeded and filled", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT CASE WHEN u\.gender`).
			WillReturnRows(sqlmock.NewRows([]string{"bucket", "count"}).
				AddRow("male", 2).
				AddRow("female", 1))

		counts, err := repo.CountUsersGroupedBy(context.Background(), repository.GroupedOptions{
			Range: testRange(), Dimension: repository.DimensionGender,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []model.GroupedCount{{Key: "male", Count: 2}, {Key: "female", Count: 1}, {Key: "unknown", Count: 0}}
		if len(counts) != len(want) {
			t.Fatalf("got %d buckets, want %d: %v", len(counts), len(want), counts)
		}
		for i := range want {
			if counts[i] != want[i] {
				t.Errorf("bucket %d = %+v, want %+v", i, counts[i], want[i])
			}
		}
		if model.SumCounts(counts) != 3 {
			t.Errorf("bucket total = %d, want 3", model.SumCounts(counts))
		}
	})

	t.Run("age buckets all present with no rows", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT CASE`).
			WillReturnRows(sqlmock.NewRows([]string{"bucket", "count"}))

		counts, err := repo.CountUsersGroupedBy(context.Background(), repository.GroupedOptions{
			Range: testRange(), Dimension: repository.DimensionAgeBracket,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(counts) != len(model.AgeBrackets) {
			t.Fatalf("got %d buckets, want %d", len(counts), len(model.AgeBrackets))
		}
		for i, b := range model.AgeBrackets {
			if counts[i].Key != string(b) || counts[i].Count != 0 {
				t.Errorf("bucket %d = %+v, want {%s 0}", i, counts[i], b)
			}
		}
	})

	t.Run("invalid dimension", func(t *testing.T) {
		repo, _ := newMockRepo(t)

		_, err := repo.CountUsersGroupedBy(context.Background(), repository.GroupedOptions{
			Range: testRange(), Dimension: "height",
		})
		if !errors.Is(err, repository.ErrInvalidDimension) {
			t.Errorf("expected ErrInvalidDimension, got %v", err)
		}
	})
}

func TestTopChannelsBySubscriptions(t *testing.T) {
	t.Run("descending order preserved", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT c\.id, c\.name, COUNT\(\*\)`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "subs"}).
				AddRow("ch-1", "Alpha", 10).
				AddRow("ch-2", "Beta", 4))

		entities, err := repo.TopChannelsBySubscriptions(context.Background(), repository.TopOptions{
			Range: testRange(), Limit: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entities) != 2 {
			t.Fatalf("got %d entities, want 2", len(entities))
		}
		if entities[0].Name != "Alpha" || entities[0].Count != 10 {
			t.Errorf("first = %+v, want Alpha/10", entities[0])
		}
		if entities[1].Name != "Beta" || entities[1].Count != 4 {
			t.Errorf("second = %+v, want Beta/4", entities[1])
		}
	})

	t.Run("empty result is a slice, not an error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT c\.id, c\.name, COUNT\(\*\)`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "subs"}))

		entities, err := repo.TopChannelsBySubscriptions(context.Background(), repository.TopOptions{
			Range: testRange(), Limit: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entities == nil || len(entities) != 0 {
			t.Errorf("expected empty slice, got %v", entities)
		}
	})
}

func TestGetChannelByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, name FROM channels`).
			WithArgs("ch-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("ch-1", "Alpha"))

		c, err := repo.GetChannelByID(context.Background(), "ch-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Alpha" {
			t.Errorf("name = %s, want Alpha", c.Name)
		}
	})

	t.Run("missing channel maps to sentinel", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, name FROM channels`).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := repo.GetChannelByID(context.Background(), "nope")
		if !errors.Is(err, repository.ErrChannelNotFound) {
			t.Errorf("expected ErrChannelNotFound, got %v", err)
		}
	})
}
