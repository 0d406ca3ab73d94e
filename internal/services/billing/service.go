package billing

import (
	"encoding/json"
	"time"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service owns the one invoice operation that spans more than a single
// statement: the full update that derives paid_date from the stored and
// incoming paid state.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// UpdateInvoice sets amt and paid, deriving paid_date:
//   - stored paid_date null and paid true -> paid_date = today
//   - paid false -> paid_date = null
//   - already paid and staying paid -> stored paid_date kept
//
// The read and write run in one transaction with the row locked, so
// concurrent updates cannot derive from a stale paid_date. Paid-state
// transitions write an audit log row in the same transaction.
func (s *Service) UpdateInvoice(id int, amt decimal.Decimal, paid bool) (*models.Invoice, error) {
	var invoice models.Invoice

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&invoice, "id = ?", id).Error; err != nil {
			return err
		}

		paidDate := invoice.PaidDate
		action := ""
		switch {
		case paid && invoice.PaidDate == nil:
			now := time.Now()
			paidDate = &now
			action = "paid"
		case !paid:
			if invoice.PaidDate != nil {
				action = "unpaid"
			}
			paidDate = nil
		}

		result := tx.Model(&models.Invoice{}).
			Where("id = ?", invoice.ID).
			Updates(map[string]interface{}{
				"amt":       amt,
				"paid":      paid,
				"paid_date": paidDate,
			})
		if result.Error != nil {
			return result.Error
		}

		invoice.Amt = amt
		invoice.Paid = paid
		invoice.PaidDate = paidDate

		if action != "" {
			return s.logTransition(tx, &invoice, action)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *Service) logTransition(tx *gorm.DB, invoice *models.Invoice, action string) error {
	details, err := json.Marshal(map[string]interface{}{
		"comp_code": invoice.CompCode,
		"amt":       invoice.Amt,
		"paid":      invoice.Paid,
		"paid_date": invoice.PaidDate,
	})
	if err != nil {
		return err
	}

	entry := models.AuditLog{
		ID:        uuid.New(),
		InvoiceID: invoice.ID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	}
	return tx.Create(&entry).Error
}
