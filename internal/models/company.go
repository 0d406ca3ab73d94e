package models

type Company struct {
	Code        string     `gorm:"primaryKey" json:"code"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Invoices    []Invoice  `gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
	Industries  []Industry `gorm:"many2many:companies_industries;foreignKey:Code;joinForeignKey:CompanyCode;references:Code;joinReferences:IndustryCode" json:"-"`
}
