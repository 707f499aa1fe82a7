package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pedidos-crm/config"
	"pedidos-crm/internal/billing"
	"pedidos-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateOrderInput is the payload for placing an order. FirstDueDate is the
// due date of the first installment in YYYY-MM-DD.
type CreateOrderInput struct {
	OrderNumber      string `json:"orderNumber" binding:"required"`
	ClientName       string `json:"clientName" binding:"required"`
	TotalValue       string `json:"totalValue" binding:"required"`
	PaymentMethod    string `json:"paymentMethod" binding:"required"`
	InstallmentCount int    `json:"installmentCount"`
	FirstDueDate     string `json:"firstDueDate" binding:"required"`
}

// ListOrdersHandler returns a paginated list of orders with their installments.
func ListOrdersHandler(c *gin.Context) {
	var orders []models.Order
	var totalRows int64

	if err := config.DB.Model(&models.Order{}).Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível listar os pedidos"})
		return
	}

	err := config.DB.Preload("Installments", func(db *gorm.DB) *gorm.DB {
		return db.Order("number asc")
	}).Order("id desc").Scopes(Paginate(c)).Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível listar os pedidos"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, orders, totalRows))
}

// GetOrderHandler returns one order with its installments.
func GetOrderHandler(c *gin.Context) {
	var order models.Order
	err := config.DB.Preload("Installments", func(db *gorm.DB) *gorm.DB {
		return db.Order("number asc")
	}).First(&order, c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar o pedido"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrderHandler places an order and persists its generated installment
// plan in the same transaction.
func CreateOrderHandler(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Preencha todos os campos obrigatórios"})
		return
	}

	totalValue, err := decimal.NewFromString(input.TotalValue)
	if err != nil || totalValue.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valor total inválido"})
		return
	}

	firstDue, err := time.Parse("2006-01-02", input.FirstDueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data de vencimento inválida"})
		return
	}

	count := input.InstallmentCount
	if count <= 0 {
		count = 1
	}

	order := models.Order{
		OrderNumber:      input.OrderNumber,
		ClientName:       input.ClientName,
		TotalValue:       totalValue,
		PaymentMethod:    input.PaymentMethod,
		InstallmentCount: count,
		IssueDate:        time.Now(),
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		plan := billing.GeneratePlan(totalValue, count, firstDue)
		installments := make([]models.Installment, len(plan))
		for i, p := range plan {
			installments[i] = models.Installment{
				Amount:  p.Amount,
				DueDate: p.DueDate,
				Status:  models.StatusPending,
				Number:  p.Number,
				OrderID: order.ID,
			}
		}
		return tx.Create(&installments).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Já existe um pedido com esse número"})
			return
		}
		slog.Error("failed to create order", "error", err, "order_number", input.OrderNumber)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível lançar o pedido"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pedido lançado com sucesso", "id": order.ID})
}

// DeleteOrderHandler removes an order and all of its installments in one
// transaction. The cascade is explicit rather than left to the database, and
// the delete is hard so the order number can be entered again later.
func DeleteOrderHandler(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar o pedido"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", order.ID).Delete(&models.Installment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&order).Error
	})
	if err != nil {
		slog.Error("failed to delete order", "error", err, "order_id", order.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir o pedido"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pedido excluído com sucesso"})
}
