package repository

import (
	"invoicing-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetAll() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Find(&companies).Error
	return companies, err
}

// GetByCode loads a company with its invoices and linked industries.
func (r *CompanyRepository) GetByCode(code string) (*models.Company, error) {
	var company models.Company
	err := r.db.
		Preload("Invoices").
		Preload("Industries").
		First(&company, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// Update overwrites name and description, returning the updated row.
// A missing code reports gorm.ErrRecordNotFound.
func (r *CompanyRepository) Update(code, name, description string) (*models.Company, error) {
	var company models.Company
	result := r.db.Model(&company).
		Clauses(clause.Returning{}).
		Where("code = ?", code).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &company, nil
}

func (r *CompanyRepository) Delete(code string) error {
	result := r.db.Where("code = ?", code).Delete(&models.Company{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
