package handlers

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"pedidos-crm/config"
	"pedidos-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a fresh in-memory database for one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Order{},
		&models.Installment{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		sqlDB.Close()
	})
}

func postJSON(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func requestWithParam(t *testing.T, id uint) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/", nil)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(id)}}
	return c, w
}

const orderPayload = `{
	"orderNumber": "P-001",
	"clientName": "Maria",
	"totalValue": "90.00",
	"paymentMethod": "Boleto",
	"installmentCount": 3,
	"firstDueDate": "2024-05-10"
}`

func TestCreateOrderPersistsPlan(t *testing.T) {
	setupTestDB(t)

	c, w := postJSON(t, orderPayload)
	CreateOrderHandler(c)
	if w.Code != 201 {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	var installments []models.Installment
	if err := config.DB.Order("number asc").Find(&installments).Error; err != nil {
		t.Fatalf("failed to load installments: %v", err)
	}
	if len(installments) != 3 {
		t.Fatalf("got %d installments, want 3", len(installments))
	}
	for i, inst := range installments {
		if inst.Number != i+1 {
			t.Errorf("installment %d has number %d", i, inst.Number)
		}
		if inst.Status != models.StatusPending {
			t.Errorf("installment %d status %q, want Pending", i, inst.Status)
		}
	}
}

func TestCreateOrderRejectsDuplicateNumber(t *testing.T) {
	setupTestDB(t)

	c, w := postJSON(t, orderPayload)
	CreateOrderHandler(c)
	if w.Code != 201 {
		t.Fatalf("first create returned %d: %s", w.Code, w.Body.String())
	}

	c, w = postJSON(t, orderPayload)
	CreateOrderHandler(c)
	if w.Code != 400 {
		t.Fatalf("duplicate create returned %d, want 400", w.Code)
	}
}

func TestDeleteOrderFreesNumberForReuse(t *testing.T) {
	setupTestDB(t)

	c, w := postJSON(t, orderPayload)
	CreateOrderHandler(c)
	if w.Code != 201 {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	var order models.Order
	if err := config.DB.Where("order_number = ?", "P-001").First(&order).Error; err != nil {
		t.Fatalf("failed to load order: %v", err)
	}

	c, w = requestWithParam(t, order.ID)
	DeleteOrderHandler(c)
	if w.Code != 200 {
		t.Fatalf("delete returned %d: %s", w.Code, w.Body.String())
	}

	// The cascade is a hard delete: no installment rows survive, not even
	// soft-deleted ones.
	var count int64
	config.DB.Unscoped().Model(&models.Installment{}).Where("order_id = ?", order.ID).Count(&count)
	if count != 0 {
		t.Fatalf("%d installment rows remain after delete", count)
	}
	config.DB.Unscoped().Model(&models.Order{}).Where("id = ?", order.ID).Count(&count)
	if count != 0 {
		t.Fatalf("order row remains after delete")
	}

	// Re-entering the same order number must succeed.
	c, w = postJSON(t, orderPayload)
	CreateOrderHandler(c)
	if w.Code != 201 {
		t.Fatalf("recreate after delete returned %d: %s", w.Code, w.Body.String())
	}
}
