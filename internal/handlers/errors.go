package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg, "status": status})
}

// respondStoreError maps store failures onto the HTTP taxonomy:
// missing row -> 404, uniqueness violation -> 409, blocked constraint
// -> 409, anything else -> 500.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		respondError(c, http.StatusConflict, "already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		respondError(c, http.StatusConflict, "constraint violation")
	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
