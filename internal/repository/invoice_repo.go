package repository

import (
	"time"

	"invoicing-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Find(&invoices).Error
	return invoices, err
}

// GetByID loads an invoice joined with its owning company.
func (r *InvoiceRepository) GetByID(id int) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Preload("Company").First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Create inserts a new invoice. paid defaults to false, add_date to the
// current date, paid_date to null.
func (r *InvoiceRepository) Create(compCode string, amt decimal.Decimal) (*models.Invoice, error) {
	invoice := models.Invoice{
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  time.Now(),
	}
	if err := r.db.Create(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateAmount changes amt only, leaving the paid state untouched.
func (r *InvoiceRepository) UpdateAmount(id int, amt decimal.Decimal) (*models.Invoice, error) {
	var invoice models.Invoice
	result := r.db.Model(&invoice).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("amt", amt)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Delete(id int) error {
	result := r.db.Where("id = ?", id).Delete(&models.Invoice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
