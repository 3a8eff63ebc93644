package gormrepo

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"realestate-backend/internal/testutil/testdb"
)

func openTestDB(t *testing.T) *gorm.DB { return testdb.Open(t) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
