package handler

import (
	"net/http"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

type CompanyHandler struct {
	repo *repository.CompanyRepository
}

func NewCompanyHandler(repo *repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{repo: repo}
}

// List returns all companies as {code, name} pairs.
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.repo.GetAll()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	items := make([]gin.H, 0, len(companies))
	for _, company := range companies {
		items = append(items, gin.H{"code": company.Code, "name": company.Name})
	}
	c.JSON(http.StatusOK, gin.H{"companies": items})
}

// Get returns one company with its invoice ids and industry names.
// Absent relations come back as empty lists, never null.
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.repo.GetByCode(c.Param("code"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	invoiceIDs := make([]int, 0, len(company.Invoices))
	for _, invoice := range company.Invoices {
		invoiceIDs = append(invoiceIDs, invoice.ID)
	}
	industries := make([]string, 0, len(company.Industries))
	for _, industry := range company.Industries {
		industries = append(industries, industry.Industry)
	}

	c.JSON(http.StatusOK, gin.H{"company": gin.H{
		"code":        company.Code,
		"name":        company.Name,
		"description": company.Description,
		"invoices":    invoiceIDs,
		"industries":  industries,
	}})
}

// Create adds a company. The code is always derived from the name as a
// URL-safe slug; a client-supplied code is ignored.
func (h *CompanyHandler) Create(c *gin.Context) {
	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Name == "" {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}

	company := models.Company{
		Code:        slug.Make(payload.Name),
		Name:        payload.Name,
		Description: payload.Description,
	}
	if err := h.repo.Create(&company); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"company": gin.H{
		"code":        company.Code,
		"name":        company.Name,
		"description": company.Description,
	}})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	company, err := h.repo.Update(c.Param("code"), payload.Name, payload.Description)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": gin.H{
		"code":        company.Code,
		"name":        company.Name,
		"description": company.Description,
	}})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("code")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
