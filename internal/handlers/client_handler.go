package handlers

import (
	"errors"
	"net/http"
	"strings"

	"pedidos-crm/config"
	"pedidos-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateClientInput is the payload for registering a client.
type CreateClientInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// ListClientsHandler returns all clients ordered by name.
func ListClientsHandler(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("name asc").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível listar os clientes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": clients})
}

// CreateClientHandler registers a new client. The name is unique.
func CreateClientHandler(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O nome do cliente é obrigatório"})
		return
	}

	client := models.Client{Name: strings.TrimSpace(input.Name), Phone: input.Phone}
	if client.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O nome do cliente é obrigatório"})
		return
	}

	if err := config.DB.Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Já existe um cliente com esse nome"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível cadastrar o cliente"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

// UpdateClientInput carries the editable client fields. The name is a
// historical identifier and stays immutable; only the phone can change.
type UpdateClientInput struct {
	Phone string `json:"phone"`
}

// UpdateClientHandler updates a client's phone number.
func UpdateClientHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.First(&client, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar o cliente"})
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if err := config.DB.Model(&client).Update("phone", input.Phone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar o cliente"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClientHandler removes a client for good, freeing the name for a new
// registration. Orders keep the client name they were created with, so past
// orders are unaffected.
func DeleteClientHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.First(&client, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar o cliente"})
		return
	}

	if err := config.DB.Unscoped().Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir o cliente"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cliente excluído com sucesso"})
}
