package handlers

import (
	"errors"
	"net/http"

	"pedidos-crm/config"
	"pedidos-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettleInstallmentHandler marks an installment as settled (baixado).
func SettleInstallmentHandler(c *gin.Context) {
	setInstallmentStatus(c, models.StatusSettled)
}

// ReopenInstallmentHandler returns a settled installment to pending.
func ReopenInstallmentHandler(c *gin.Context) {
	setInstallmentStatus(c, models.StatusPending)
}

// setInstallmentStatus flips one installment's status. Sibling installments
// and the parent order are never touched.
func setInstallmentStatus(c *gin.Context, status string) {
	var installment models.Installment
	if err := config.DB.First(&installment, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parcela não encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar a parcela"})
		return
	}

	if err := config.DB.Model(&installment).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar a parcela"})
		return
	}

	c.JSON(http.StatusOK, installment)
}
