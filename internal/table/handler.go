package table

import (
	"errors"

	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateTableRequest struct {
	Number     string `json:"number"`
	Seats      int    `json:"seats"`
	CategoryID uint   `json:"category_id"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

// UpdateTableRequest - opsiyonel alanlı patch gövdesi
type UpdateTableRequest struct {
	Number     *string             `json:"number"`
	Seats      *int                `json:"seats"`
	Status     *models.TableStatus `json:"status"`
	CategoryID *uint               `json:"category_id"`
	X          *int                `json:"x"`
	Y          *int                `json:"y"`
}

type CreateTableCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type UpdateTableCategoryRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	IsActive *bool   `json:"is_active"`
}

func validTableStatus(s models.TableStatus) bool {
	switch s {
	case models.TableStatusAvailable, models.TableStatusOccupied,
		models.TableStatusReserved, models.TableStatusCleaning:
		return true
	}
	return false
}

// -------------------------------------------------
// GET /api/tables
// -------------------------------------------------
func ListTablesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tables []models.Table
		if err := database.DB.Preload("Category").Order("number").Find(&tables).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masalar listelenemedi")
		}
		return c.JSON(tables)
	}
}

// -------------------------------------------------
// POST /api/tables
// -------------------------------------------------
func CreateTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Number == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Masa numarası zorunlu")
		}
		if body.Seats <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Koltuk sayısı 0'dan büyük olmalı")
		}
		if body.CategoryID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "category_id zorunlu")
		}

		var count int64
		database.DB.Model(&models.Table{}).Where("number = ?", body.Number).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "\""+body.Number+"\" numaralı masa zaten mevcut")
		}

		tbl := models.Table{
			Number:     body.Number,
			Seats:      body.Seats,
			Status:     models.TableStatusAvailable,
			CategoryID: body.CategoryID,
			X:          body.X,
			Y:          body.Y,
		}
		if err := database.DB.Create(&tbl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa oluşturulamadı")
		}
		database.DB.Preload("Category").First(&tbl, tbl.ID)
		return c.Status(fiber.StatusCreated).JSON(tbl)
	}
}

// -------------------------------------------------
// PUT /api/tables/:id
// -------------------------------------------------
func UpdateTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		var body UpdateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var tbl models.Table
		if err := database.DB.First(&tbl, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}

		updates := map[string]interface{}{}
		if body.Number != nil {
			updates["number"] = *body.Number
		}
		if body.Seats != nil {
			updates["seats"] = *body.Seats
		}
		if body.Status != nil {
			if !validTableStatus(*body.Status) {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa durumu")
			}
			updates["status"] = *body.Status
		}
		if body.CategoryID != nil {
			updates["category_id"] = *body.CategoryID
		}
		if body.X != nil {
			updates["x"] = *body.X
		}
		if body.Y != nil {
			updates["y"] = *body.Y
		}
		if len(updates) == 0 {
			return c.JSON(tbl)
		}

		if err := database.DB.Model(&tbl).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa güncellenemedi")
		}
		database.DB.Preload("Category").First(&tbl, tbl.ID)
		return c.JSON(tbl)
	}
}

// -------------------------------------------------
// PUT /api/tables/:id/status
// -------------------------------------------------
func UpdateTableStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		var body struct {
			Status models.TableStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if !validTableStatus(body.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa durumu")
		}

		var tbl models.Table
		if err := database.DB.First(&tbl, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
		}
		if err := database.DB.Model(&tbl).Update("status", body.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa durumu güncellenemedi")
		}
		database.DB.First(&tbl, tbl.ID)
		return c.JSON(tbl)
	}
}

// -------------------------------------------------
// DELETE /api/tables/:id
// Aktif siparişi olan masa silinemez.
// -------------------------------------------------
func DeleteTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}

		var count int64
		database.DB.Model(&models.Order{}).
			Where("table_id = ? AND status <> ?", id, models.OrderStatusPaid).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bu masada aktif sipariş var, önce siparişleri tamamlayın")
		}

		if err := database.DB.Delete(&models.Table{}, id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// -------------------------------------------------
// GET /api/table-categories
// -------------------------------------------------
func ListTableCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cats []models.TableCategory
		if err := database.DB.Order("name").Find(&cats).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategoriler listelenemedi")
		}
		return c.JSON(cats)
	}
}

// -------------------------------------------------
// POST /api/table-categories
// -------------------------------------------------
func CreateTableCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTableCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori adı zorunlu")
		}
		if body.Color == "" {
			body.Color = "#3B82F6"
		}

		var existing models.TableCategory
		err := database.DB.Where("name = ?", body.Name).First(&existing).Error
		if err == nil {
			return fiber.NewError(fiber.StatusConflict, "\""+body.Name+"\" isimli kategori zaten mevcut.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori sorgulanamadı")
		}

		cat := models.TableCategory{Name: body.Name, Color: body.Color, IsActive: true}
		if err := database.DB.Create(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori oluşturulamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(cat)
	}
}

// -------------------------------------------------
// PUT /api/table-categories/:id
// -------------------------------------------------
func UpdateTableCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz kategori id")
		}

		var body UpdateTableCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var cat models.TableCategory
		if err := database.DB.First(&cat, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
		}

		updates := map[string]interface{}{}
		if body.Name != nil {
			updates["name"] = *body.Name
		}
		if body.Color != nil {
			updates["color"] = *body.Color
		}
		if body.IsActive != nil {
			updates["is_active"] = *body.IsActive
		}
		if len(updates) == 0 {
			return c.JSON(cat)
		}

		if err := database.DB.Model(&cat).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori güncellenemedi")
		}
		database.DB.First(&cat, cat.ID)
		return c.JSON(cat)
	}
}

// -------------------------------------------------
// DELETE /api/table-categories/:id
// Kategoride masa varken silinemez.
// -------------------------------------------------
func DeleteTableCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz kategori id")
		}

		var count int64
		database.DB.Model(&models.Table{}).Where("category_id = ?", id).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bu kategori kullanılıyor, önce masaları farklı kategoriye taşıyın")
		}

		if err := database.DB.Delete(&models.TableCategory{}, id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
