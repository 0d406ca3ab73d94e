package models

type Industry struct {
	Code      string    `gorm:"primaryKey" json:"code"`
	Industry  string    `gorm:"not null" json:"industry"`
	Companies []Company `gorm:"many2many:companies_industries;foreignKey:Code;joinForeignKey:IndustryCode;references:Code;joinReferences:CompanyCode" json:"-"`
}

// CompanyIndustry is the explicit join model so the join row can be
// created directly and carries real foreign key constraints.
type CompanyIndustry struct {
	CompanyCode  string `gorm:"primaryKey" json:"company_code"`
	IndustryCode string `gorm:"primaryKey" json:"industry_code"`
}

func (CompanyIndustry) TableName() string {
	return "companies_industries"
}
