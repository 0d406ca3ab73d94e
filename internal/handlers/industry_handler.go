package handler

import (
	"errors"
	"net/http"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type IndustryHandler struct {
	repo *repository.IndustryRepository
}

func NewIndustryHandler(repo *repository.IndustryRepository) *IndustryHandler {
	return &IndustryHandler{repo: repo}
}

// List returns all industries with the codes of their linked companies.
// An industry with no links reports an empty list.
func (h *IndustryHandler) List(c *gin.Context) {
	industries, err := h.repo.GetAll()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	items := make([]gin.H, 0, len(industries))
	for _, industry := range industries {
		codes := make([]string, 0, len(industry.Companies))
		for _, company := range industry.Companies {
			codes = append(codes, company.Code)
		}
		items = append(items, gin.H{
			"code":      industry.Code,
			"industry":  industry.Industry,
			"companies": codes,
		})
	}
	c.JSON(http.StatusOK, gin.H{"industries": items})
}

func (h *IndustryHandler) Create(c *gin.Context) {
	var payload struct {
		Code     string `json:"code"`
		Industry string `json:"industry"`
	}
	if err := c.BindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Code == "" || payload.Industry == "" {
		respondError(c, http.StatusBadRequest, "code and industry are required")
		return
	}

	industry := models.Industry{Code: payload.Code, Industry: payload.Industry}
	if err := h.repo.Create(&industry); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"industry": gin.H{
		"code":     industry.Code,
		"industry": industry.Industry,
	}})
}

// Join associates a company with an industry.
func (h *IndustryHandler) Join(c *gin.Context) {
	var payload struct {
		CompanyCode  string `json:"company_code"`
		IndustryCode string `json:"industry_code"`
	}
	if err := c.BindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.CompanyCode == "" || payload.IndustryCode == "" {
		respondError(c, http.StatusBadRequest, "company_code and industry_code are required")
		return
	}

	joined, err := h.repo.Join(payload.CompanyCode, payload.IndustryCode)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			respondError(c, http.StatusNotFound, "company not found")
			return
		}
		if errors.Is(err, repository.ErrIndustryNotFound) {
			respondError(c, http.StatusNotFound, "industry not found")
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"joined": gin.H{
		"company_code":  joined.CompanyCode,
		"industry_code": joined.IndustryCode,
	}})
}
