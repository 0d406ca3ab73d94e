package handler

import (
	"errors"
	"net/http"
	"strconv"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"
	"invoicing-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	repo    *repository.InvoiceRepository
	billing *billing.Service
}

func NewInvoiceHandler(repo *repository.InvoiceRepository, billing *billing.Service) *InvoiceHandler {
	return &InvoiceHandler{repo: repo, billing: billing}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.repo.GetAll()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	items := make([]gin.H, 0, len(invoices))
	for _, invoice := range invoices {
		items = append(items, gin.H{"id": invoice.ID, "comp_code": invoice.CompCode})
	}
	c.JSON(http.StatusOK, gin.H{"invoices": items})
}

// Get returns one invoice nested with its owning company.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.repo.GetByID(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	payload := gin.H{
		"id":        invoice.ID,
		"amt":       invoice.Amt,
		"paid":      invoice.Paid,
		"add_date":  invoice.AddDate,
		"paid_date": invoice.PaidDate,
	}
	if invoice.Company != nil {
		payload["company"] = gin.H{
			"code":        invoice.Company.Code,
			"name":        invoice.Company.Name,
			"description": invoice.Company.Description,
		}
	}
	c.JSON(http.StatusOK, gin.H{"invoice": payload})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload struct {
		CompCode string          `json:"comp_code"`
		Amt      decimal.Decimal `json:"amt"`
	}
	if err := c.BindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.CompCode == "" || payload.Amt.Sign() <= 0 {
		respondError(c, http.StatusBadRequest, "comp_code and a positive amt are required")
		return
	}

	invoice, err := h.repo.Create(payload.CompCode, payload.Amt)
	if err != nil {
		// The only foreign key on an insert is comp_code.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			respondError(c, http.StatusNotFound, "company not found")
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invoice": invoiceJSON(invoice)})
}

// UpdateAmount handles PATCH: amt only, paid state untouched.
func (h *InvoiceHandler) UpdateAmount(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	var payload struct {
		Amt decimal.Decimal `json:"amt"`
	}
	if err := c.BindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Amt.Sign() <= 0 {
		respondError(c, http.StatusBadRequest, "a positive amt is required")
		return
	}

	invoice, err := h.repo.UpdateAmount(id, payload.Amt)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoiceJSON(invoice)})
}

// Update handles PUT: amt and paid together, with paid_date derived by
// the billing service inside a single transaction.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	var payload struct {
		Amt  decimal.Decimal `json:"amt"`
		Paid *bool           `json:"paid"`
	}
	if err := c.BindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Paid == nil || payload.Amt.Sign() <= 0 {
		respondError(c, http.StatusBadRequest, "paid and a positive amt are required")
		return
	}

	invoice, err := h.billing.UpdateInvoice(id, payload.Amt, *payload.Paid)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoiceJSON(invoice)})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func invoiceID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid invoice id")
		return 0, false
	}
	return id, true
}

func invoiceJSON(invoice *models.Invoice) gin.H {
	return gin.H{
		"id":        invoice.ID,
		"comp_code": invoice.CompCode,
		"amt":       invoice.Amt,
		"paid":      invoice.Paid,
		"add_date":  invoice.AddDate,
		"paid_date": invoice.PaidDate,
	}
}
