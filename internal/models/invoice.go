package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Invoice struct {
	ID       int             `gorm:"primaryKey" json:"id"`
	CompCode string          `gorm:"column:comp_code;not null;index" json:"comp_code"`
	Amt      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amt"`
	Paid     bool            `gorm:"not null" json:"paid"`
	AddDate  time.Time       `gorm:"type:date;not null" json:"add_date"`
	PaidDate *time.Time      `gorm:"type:date" json:"paid_date"`
	Company  *Company        `gorm:"foreignKey:CompCode;references:Code" json:"-"`
}
