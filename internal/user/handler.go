package user

import (
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
}

type UpdateUserRequest struct {
	Username *string          `json:"username"`
	Password *string          `json:"password"`
	FullName *string          `json:"full_name"`
	Role     *models.UserRole `json:"role"`
	IsActive *bool            `json:"is_active"`
}

func validRole(r models.UserRole) bool {
	switch r {
	case models.RoleManager, models.RoleCashier, models.RoleWaiter:
		return true
	}
	return false
}

// -------------------------------------------------
// GET /api/users
// -------------------------------------------------
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar listelenemedi")
		}
		return c.JSON(users)
	}
}

// -------------------------------------------------
// POST /api/users
// -------------------------------------------------
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Username == "" || body.Password == "" || body.FullName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kullanıcı adı, şifre ve tam ad zorunlu")
		}
		if !validRole(body.Role) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz rol (manager|cashier|waiter)")
		}

		var count int64
		database.DB.Model(&models.User{}).Where("username = ?", body.Username).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bu kullanıcı adı zaten kullanılıyor")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		u := models.User{
			Username:     body.Username,
			PasswordHash: string(hash),
			FullName:     body.FullName,
			Role:         body.Role,
			IsActive:     true,
		}
		if err := database.DB.Create(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// -------------------------------------------------
// PUT /api/users/:id
// -------------------------------------------------
func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz kullanıcı id")
		}

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var u models.User
		if err := database.DB.First(&u, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		updates := map[string]interface{}{}
		if body.Username != nil {
			updates["username"] = *body.Username
		}
		if body.Password != nil && *body.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
			}
			updates["password_hash"] = string(hash)
		}
		if body.FullName != nil {
			updates["full_name"] = *body.FullName
		}
		if body.Role != nil {
			if !validRole(*body.Role) {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz rol (manager|cashier|waiter)")
			}
			updates["role"] = *body.Role
		}
		if body.IsActive != nil {
			updates["is_active"] = *body.IsActive
		}
		if len(updates) == 0 {
			return c.JSON(u)
		}

		if err := database.DB.Model(&u).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı güncellenemedi")
		}
		database.DB.First(&u, u.ID)
		return c.JSON(u)
	}
}

// -------------------------------------------------
// DELETE /api/users/:id  (soft: is_active = false)
// -------------------------------------------------
func DeactivateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz kullanıcı id")
		}
		res := database.DB.Model(&models.User{}).Where("id = ?", id).Update("is_active", false)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı pasiflenemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
