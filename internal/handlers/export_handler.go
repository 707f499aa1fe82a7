package handlers

import (
	"fmt"
	"net/http"
	"time"

	"pedidos-crm/config"
	"pedidos-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// installmentExportRow mirrors the cash-flow view fields plus the order's
// payment method, as laid out in the exported report.
type installmentExportRow struct {
	OrderNumber   string
	ClientName    string
	Amount        decimal.Decimal
	PaymentMethod string
	Number        int
	OrderCount    int
	DueDate       time.Time
	Status        string
}

// ExportInstallmentsHandler writes every installment to an Excel report,
// ordered by due date.
func ExportInstallmentsHandler(c *gin.Context) {
	var rows []installmentExportRow
	err := config.DB.Table("installments i").
		Select(`o.order_number, o.client_name, i.amount, o.payment_method,
			i.number, o.installment_count AS order_count, i.due_date, i.status`).
		Joins("JOIN orders o ON o.id = i.order_id").
		Where("i.deleted_at IS NULL AND o.deleted_at IS NULL").
		Order("i.due_date ASC, i.id ASC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os dados para exportação"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Parcelas"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Número do Pedido", "Cliente", "Valor da Parcela", "Forma de Pagamento", "Número da Parcela", "Data de Vencimento", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range rows {
		rowNum := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), r.OrderNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), r.ClientName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), r.Amount.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), r.PaymentMethod)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), fmt.Sprintf("%d/%d", r.Number, r.OrderCount))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), r.DueDate.Format("02/01/2006"))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), r.Status)
	}

	writeWorkbook(c, f, "relatorio_financeiro")
}

// ExportClientsHandler writes the client list to an Excel report.
func ExportClientsHandler(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("id asc").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os clientes"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Clientes"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Nome", "Telefone"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, client := range clients {
		rowNum := i + 2
		phone := client.Phone
		if phone == "" {
			phone = "N/A"
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), client.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), client.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), phone)
	}

	writeWorkbook(c, f, "relatorio_clientes")
}

func writeWorkbook(c *gin.Context, f *excelize.File, baseName string) {
	fileName := fmt.Sprintf("%s_%s.xlsx", baseName, time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao gerar o arquivo Excel"})
	}
}
