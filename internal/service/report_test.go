package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ipupy/tesoreria/internal/db"
	"github.com/ipupy/tesoreria/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	database, err := db.Init("sqlite", conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}

func newServices(t *testing.T) (*ChurchService, *ReportService) {
	t.Helper()

	database := newTestDB(t)
	churchRepo := repository.NewChurchRepository(database)
	reportRepo := repository.NewReportRepository(database)
	return NewChurchService(churchRepo), NewReportService(reportRepo, churchRepo)
}

func TestChurchCreateValidation(t *testing.T) {
	churches, _ := newServices(t)

	_, err := churches.Create(CreateChurchInput{City: "Asunción", Pastor: "Pastor López"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = churches.Create(CreateChurchInput{Name: "Iglesia Central", Pastor: "Pastor López"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = churches.Create(CreateChurchInput{Name: "Iglesia Central", City: "Asunción"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChurchCreateAndList(t *testing.T) {
	churches, _ := newServices(t)

	created, err := churches.Create(CreateChurchInput{
		Name:   "Iglesia Central",
		City:   "Asunción",
		Pastor: "Pastor López",
		Phone:  "+595 21 123456",
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))
	require.NotNil(t, created.Phone)

	all, err := churches.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestReportCreateValidation(t *testing.T) {
	churches, reports := newServices(t)

	church, err := churches.Create(CreateChurchInput{Name: "Iglesia Central", City: "Asunción", Pastor: "Pastor López"})
	require.NoError(t, err)

	cases := []struct {
		name string
		in   CreateReportInput
	}{
		{"missing month", CreateReportInput{ChurchID: church.ID}},
		{"negative tithes", CreateReportInput{ChurchID: church.ID, Month: "Enero 2026", Tithes: -1}},
		{"negative offerings", CreateReportInput{ChurchID: church.ID, Month: "Enero 2026", Offerings: -1}},
		{"negative contribution", CreateReportInput{ChurchID: church.ID, Month: "Enero 2026", NationalContribution: -1}},
		{"unknown church", CreateReportInput{ChurchID: 9999, Month: "Enero 2026"}},
		{"bad deposit date", CreateReportInput{ChurchID: church.ID, Month: "Enero 2026", DepositDate: "15/01/2026"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reports.Create(tc.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestReportCreateAndListByChurch(t *testing.T) {
	churches, reports := newServices(t)

	church, err := churches.Create(CreateChurchInput{Name: "Iglesia Central", City: "Asunción", Pastor: "Pastor López"})
	require.NoError(t, err)

	created, err := reports.Create(CreateReportInput{
		ChurchID:             church.ID,
		Month:                "Enero 2026",
		Tithes:               1500000,
		Offerings:            320000,
		NationalContribution: 150000,
		BankReceipt:          "B-00123",
		DepositDate:          "2026-01-31",
		PhotoPath:            "uploads/informe_20260131_180000_1a2b3c4d.jpg",
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))
	require.NotNil(t, created.DepositDate)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), created.DepositDate.UTC())

	list, err := reports.ByChurch(church.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	// Empty optional fields stay NULL.
	bare, err := reports.Create(CreateReportInput{ChurchID: church.ID, Month: "Febrero 2026"})
	require.NoError(t, err)
	assert.Nil(t, bare.BankReceipt)
	assert.Nil(t, bare.DepositDate)
	assert.Nil(t, bare.PhotoPath)
}
