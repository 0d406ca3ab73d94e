package repository

import (
	"errors"

	"invoicing-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrIndustryNotFound = errors.New("industry not found")
)

type IndustryRepository struct {
	db *gorm.DB
}

func NewIndustryRepository(db *gorm.DB) *IndustryRepository {
	return &IndustryRepository{db: db}
}

func (r *IndustryRepository) GetAll() ([]models.Industry, error) {
	var industries []models.Industry
	err := r.db.Preload("Companies").Find(&industries).Error
	return industries, err
}

func (r *IndustryRepository) Create(industry *models.Industry) error {
	return r.db.Create(industry).Error
}

// Join links a company and an industry. Both sides are checked first so
// a missing reference reports which code was not found.
func (r *IndustryRepository) Join(companyCode, industryCode string) (*models.CompanyIndustry, error) {
	var company models.Company
	if err := r.db.Select("code").First(&company, "code = ?", companyCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	var industry models.Industry
	if err := r.db.Select("code").First(&industry, "code = ?", industryCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndustryNotFound
		}
		return nil, err
	}

	joined := models.CompanyIndustry{
		CompanyCode:  companyCode,
		IndustryCode: industryCode,
	}
	if err := r.db.Create(&joined).Error; err != nil {
		return nil, err
	}
	return &joined, nil
}
