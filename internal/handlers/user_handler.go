package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"pedidos-crm/config"
	"pedidos-crm/internal/middleware"
	"pedidos-crm/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MaxUsers caps the number of accounts the admin panel can create.
const MaxUsers = 6

// UserResponse is the user shape sent to the admin panel. The password hash
// never leaves the server.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsersHandler returns all accounts for the admin panel.
func ListUsersHandler(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("id asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível listar os usuários"})
		return
	}

	responseData := make([]UserResponse, len(users))
	for i, user := range users {
		responseData[i] = UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": responseData, "userCount": len(responseData)})
}

// CreateUserInput is the admin-panel payload for creating an account.
type CreateUserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateUserHandler creates a regular (non-admin) account, enforcing the
// account cap and username uniqueness.
func CreateUserHandler(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Usuário e senha são obrigatórios"})
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao consultar usuários"})
		return
	}
	if count >= MaxUsers {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Limite de %d usuários atingido", MaxUsers)})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao processar a senha"})
		return
	}

	user := models.User{Username: input.Username, Password: string(hashed), IsAdmin: false}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("O nome de usuário %q já existe", input.Username)})
			return
		}
		slog.Error("failed to create user", "error", err, "username", input.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível criar o usuário"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Usuário %q criado com sucesso", user.Username)})
}

// ResetPasswordInput carries the new password set by the admin.
type ResetPasswordInput struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPasswordHandler lets the admin overwrite a user's password.
func ResetPasswordHandler(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar o usuário"})
		return
	}

	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A nova senha é obrigatória"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao processar a senha"})
		return
	}

	if err := config.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível redefinir a senha"})
		return
	}

	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("A senha do usuário %s foi redefinida com sucesso", user.Username)})
}

// DeleteUserHandler removes a non-admin account for good, freeing the
// username for the account cap and future reuse. Admin accounts cannot be
// deleted.
func DeleteUserHandler(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar o usuário"})
		return
	}

	if user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Contas de administrador não podem ser excluídas"})
		return
	}

	if err := config.DB.Unscoped().Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível excluir o usuário"})
		return
	}

	middleware.InvalidateUserCache(user.ID)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Usuário %q excluído com sucesso", user.Username)})
}
