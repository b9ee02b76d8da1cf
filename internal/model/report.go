package model

import (
	"time"
)

// Report is a church's monthly financial submission. Reports are
// immutable once created; photo_path carries the relative path
// returned by a prior receipt upload, if any.
type Report struct {
	ID                   int64      `db:"id" json:"id"`
	ChurchID             int64      `db:"church_id" json:"church_id"`
	Month                string     `db:"month" json:"month"`
	Tithes               float64    `db:"tithes" json:"tithes"`
	Offerings            float64    `db:"offerings" json:"offerings"`
	NationalContribution float64    `db:"national_contribution" json:"national_contribution"`
	BankReceipt          *string    `db:"bank_receipt" json:"bank_receipt,omitempty"`
	DepositDate          *time.Time `db:"deposit_date" json:"deposit_date,omitempty"`
	PhotoPath            *string    `db:"photo_path" json:"photo_path,omitempty"`
	CreatedAt            time.Time  `db:"created_at" json:"created_at"`
}
