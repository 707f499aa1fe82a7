package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pedidos-crm/config"
	"pedidos-crm/internal/billing"

	"github.com/gin-gonic/gin"
)

// cashFlowRow is one installment of the selected month with its "n/m" label
// rendered for display.
type cashFlowRow struct {
	billing.InstallmentRow
	Label string `json:"label"`
}

// GetCashFlowHandler returns the monthly cash-flow view: pending and settled
// totals plus the installments of the selected month, and the list of months
// that have any installment. Defaults to the current month.
func GetCashFlowHandler(c *gin.Context) {
	now := time.Now()
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mês inválido"})
		return
	}
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ano inválido"})
		return
	}

	rows, err := fetchInstallmentRows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as parcelas"})
		return
	}

	cashFlow := billing.Aggregate(rows)
	key := fmt.Sprintf("%04d-%02d", year, month)
	summary := cashFlow.Month(key)

	viewRows := make([]cashFlowRow, len(summary.Rows))
	for i, r := range summary.Rows {
		viewRows[i] = cashFlowRow{InstallmentRow: r, Label: r.Label()}
	}

	c.JSON(http.StatusOK, gin.H{
		"month":        month,
		"year":         year,
		"monthKey":     key,
		"pendingTotal": summary.PendingTotal,
		"settledTotal": summary.SettledTotal,
		"rows":         viewRows,
		"months":       cashFlow.Months(),
	})
}

// fetchInstallmentRows loads the full installment snapshot joined with the
// owning order's number, client name and installment count.
func fetchInstallmentRows() ([]billing.InstallmentRow, error) {
	var rows []billing.InstallmentRow
	err := config.DB.Table("installments i").
		Select(`i.id, o.order_number, o.client_name, i.amount, i.number,
			o.installment_count AS order_count, i.due_date, i.status`).
		Joins("JOIN orders o ON o.id = i.order_id").
		Where("i.deleted_at IS NULL AND o.deleted_at IS NULL").
		Order("i.due_date ASC, i.id ASC").
		Scan(&rows).Error
	return rows, err
}
