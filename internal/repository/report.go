package repository

import (
	"database/sql"
	"errors"

	"github.com/ipupy/tesoreria/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrReportNotFound = errors.New("report not found")
)

type ReportRepository interface {
	Create(report *model.Report) error
	ByID(id int64) (*model.Report, error)
	ByChurch(churchID int64) ([]*model.Report, error)
	All() ([]*model.Report, error)
}

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *reportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *model.Report) error {
	query := `INSERT INTO reports (church_id, month, tithes, offerings, national_contribution, bank_receipt, deposit_date, photo_path, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	return r.db.Get(&report.ID, query,
		report.ChurchID,
		report.Month,
		report.Tithes,
		report.Offerings,
		report.NationalContribution,
		report.BankReceipt,
		report.DepositDate,
		report.PhotoPath,
		report.CreatedAt,
	)
}

func (r *reportRepository) ByID(id int64) (*model.Report, error) {
	report := &model.Report{}
	query := `SELECT * FROM reports WHERE id = $1`

	err := r.db.Get(report, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}

	return report, err
}

func (r *reportRepository) ByChurch(churchID int64) ([]*model.Report, error) {
	var reports []*model.Report
	query := `SELECT * FROM reports WHERE church_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&reports, query, churchID)
	if err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *reportRepository) All() ([]*model.Report, error) {
	var reports []*model.Report
	query := `SELECT * FROM reports ORDER BY created_at DESC`

	err := r.db.Select(&reports, query)
	if err != nil {
		return nil, err
	}

	return reports, nil
}
