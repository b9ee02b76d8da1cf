package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ipupy/tesoreria/internal/model"
	"github.com/ipupy/tesoreria/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type createReportRequest struct {
	ChurchID             int64   `json:"church_id"`
	Month                string  `json:"month"`
	Tithes               float64 `json:"tithes"`
	Offerings            float64 `json:"offerings"`
	NationalContribution float64 `json:"national_contribution"`
	BankReceipt          string  `json:"bank_receipt"`
	DepositDate          string  `json:"deposit_date"`
	PhotoPath            string  `json:"photo_path"`
}

// Create persists a monthly report. Receipt images are uploaded in a
// separate call beforehand; the client passes the returned path here
// as photo_path.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	report, err := h.reportService.Create(service.CreateReportInput{
		ChurchID:             req.ChurchID,
		Month:                req.Month,
		Tithes:               req.Tithes,
		Offerings:            req.Offerings,
		NationalContribution: req.NationalContribution,
		BankReceipt:          req.BankReceipt,
		DepositDate:          req.DepositDate,
		PhotoPath:            req.PhotoPath,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create report", "error", err, "church_id", req.ChurchID)
		respondError(w, http.StatusInternalServerError, "failed to create report")
		return
	}

	slog.Info("report created", "report_id", report.ID, "church_id", report.ChurchID, "month", report.Month)
	respondJSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		reports []*model.Report
		err     error
	)

	churchParam := r.URL.Query().Get("church_id")
	if churchParam != "" {
		churchID, parseErr := strconv.ParseInt(churchParam, 10, 64)
		if parseErr != nil {
			respondError(w, http.StatusBadRequest, "church_id must be an integer")
			return
		}
		reports, err = h.reportService.ByChurch(churchID)
	} else {
		reports, err = h.reportService.All()
	}

	if err != nil {
		slog.Error("failed to list reports", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	respondJSON(w, http.StatusOK, reports)
}
