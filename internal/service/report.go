package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ipupy/tesoreria/internal/model"
	"github.com/ipupy/tesoreria/internal/repository"
)

// ErrValidation marks input errors callers should surface as a bad
// request rather than a server fault.
var ErrValidation = errors.New("invalid input")

type ReportService struct {
	reportRepo repository.ReportRepository
	churchRepo repository.ChurchRepository
}

func NewReportService(reportRepo repository.ReportRepository, churchRepo repository.ChurchRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		churchRepo: churchRepo,
	}
}

type CreateReportInput struct {
	ChurchID             int64
	Month                string
	Tithes               float64
	Offerings            float64
	NationalContribution float64
	BankReceipt          string
	DepositDate          string // YYYY-MM-DD, optional
	PhotoPath            string // relative path from a prior upload, optional
}

// Create validates and persists a monthly report. The photo path is
// whatever a prior upload returned; uploading and submitting stay two
// separate calls.
func (s *ReportService) Create(in CreateReportInput) (*model.Report, error) {
	month := strings.TrimSpace(in.Month)
	if month == "" {
		return nil, fmt.Errorf("%w: month is required", ErrValidation)
	}
	if in.Tithes < 0 || in.Offerings < 0 || in.NationalContribution < 0 {
		return nil, fmt.Errorf("%w: amounts must be non-negative", ErrValidation)
	}

	// The store enforces the foreign key as well; checking here turns
	// an unknown church into a clean client error instead of a driver
	// constraint failure.
	_, err := s.churchRepo.ByID(in.ChurchID)
	if err != nil {
		if errors.Is(err, repository.ErrChurchNotFound) {
			return nil, fmt.Errorf("%w: church %d does not exist", ErrValidation, in.ChurchID)
		}
		return nil, fmt.Errorf("failed to look up church: %w", err)
	}

	report := &model.Report{
		ChurchID:             in.ChurchID,
		Month:                month,
		Tithes:               in.Tithes,
		Offerings:            in.Offerings,
		NationalContribution: in.NationalContribution,
		CreatedAt:            time.Now().UTC(),
	}

	if receipt := strings.TrimSpace(in.BankReceipt); receipt != "" {
		report.BankReceipt = &receipt
	}
	if photo := strings.TrimSpace(in.PhotoPath); photo != "" {
		report.PhotoPath = &photo
	}
	if in.DepositDate != "" {
		date, err := time.Parse("2006-01-02", in.DepositDate)
		if err != nil {
			return nil, fmt.Errorf("%w: deposit_date must be YYYY-MM-DD", ErrValidation)
		}
		report.DepositDate = &date
	}

	err = s.reportRepo.Create(report)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return report, nil
}

func (s *ReportService) ByChurch(churchID int64) ([]*model.Report, error) {
	return s.reportRepo.ByChurch(churchID)
}

func (s *ReportService) All() ([]*model.Report, error) {
	return s.reportRepo.All()
}
