package menu

import (
	"errors"

	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   *bool   `json:"available"`
}

// UpdateMenuItemRequest - opsiyonel alanlı patch gövdesi; yalnızca gönderilen
// alanlar güncellenir.
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Available   *bool    `json:"available"`
	IsActive    *bool    `json:"is_active"`
}

type CreateMenuCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type UpdateMenuCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"is_active"`
}

// -------------------------------------------------
// GET /api/menu-items
// -------------------------------------------------
func ListMenuItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.MenuItem
		if err := database.DB.
			Where("available = ? AND is_active = ?", true, true).
			Order("category, name").
			Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü listelenemedi")
		}
		return c.JSON(items)
	}
}

// -------------------------------------------------
// POST /api/menu-items
// -------------------------------------------------
func CreateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" || body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim ve kategori zorunlu")
		}
		if body.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyat 0'dan büyük olmalı")
		}

		var categoryID *uint
		var cat models.MenuCategory
		if err := database.DB.Where("name = ?", body.Category).First(&cat).Error; err == nil {
			categoryID = &cat.ID
		}

		available := true
		if body.Available != nil {
			available = *body.Available
		}

		// Aynı isimde pasif kayıt varsa yeniden aktifle
		var existing models.MenuItem
		err := database.DB.Where("name = ?", body.Name).First(&existing).Error
		if err == nil {
			if existing.IsActive {
				return fiber.NewError(fiber.StatusConflict, "Bu isimde bir ürün zaten mevcut.")
			}
			updates := map[string]interface{}{
				"description": body.Description,
				"price":       body.Price,
				"category":    body.Category,
				"category_id": categoryID,
				"available":   available,
				"is_active":   true,
			}
			if err := database.DB.Model(&existing).Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
			}
			database.DB.First(&existing, existing.ID)
			return c.Status(fiber.StatusCreated).JSON(existing)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün sorgulanamadı")
		}

		item := models.MenuItem{
			Name:        body.Name,
			Description: body.Description,
			Price:       body.Price,
			Category:    body.Category,
			CategoryID:  categoryID,
			Available:   available,
			IsActive:    true,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// -------------------------------------------------
// PUT /api/menu-items/:id
// -------------------------------------------------
func UpdateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		var body UpdateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var item models.MenuItem
		if err := database.DB.First(&item, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü öğesi bulunamadı")
		}

		updates := map[string]interface{}{}
		if body.Name != nil {
			updates["name"] = *body.Name
		}
		if body.Description != nil {
			updates["description"] = *body.Description
		}
		if body.Price != nil {
			if *body.Price <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Fiyat 0'dan büyük olmalı")
			}
			updates["price"] = *body.Price
		}
		if body.Category != nil {
			updates["category"] = *body.Category
		}
		if body.Available != nil {
			updates["available"] = *body.Available
		}
		if body.IsActive != nil {
			updates["is_active"] = *body.IsActive
		}
		if len(updates) == 0 {
			return c.JSON(item)
		}

		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}
		database.DB.First(&item, item.ID)
		return c.JSON(item)
	}
}

// -------------------------------------------------
// DELETE /api/menu-items/:id  (soft delete)
// -------------------------------------------------
func DeleteMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}
		if err := database.DB.Model(&models.MenuItem{}).Where("id = ?", id).
			Update("is_active", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// -------------------------------------------------
// POST /api/menu-items/:id/reactivate
// -------------------------------------------------
func ReactivateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}
		var item models.MenuItem
		if err := database.DB.First(&item, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü öğesi bulunamadı")
		}
		if err := database.DB.Model(&item).Update("is_active", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün aktiflenemedi")
		}
		database.DB.First(&item, item.ID)
		return c.JSON(item)
	}
}

// -------------------------------------------------
// GET /api/menu-categories
// -------------------------------------------------
func ListMenuCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cats []models.MenuCategory
		if err := database.DB.Where("is_active = ?", true).Order("name").Find(&cats).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategoriler listelenemedi")
		}
		return c.JSON(cats)
	}
}

// -------------------------------------------------
// POST /api/menu-categories
// -------------------------------------------------
func CreateMenuCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMenuCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori adı zorunlu")
		}
		if body.Color == "" {
			body.Color = "#6B7280"
		}

		var existing models.MenuCategory
		err := database.DB.Where("name = ?", body.Name).First(&existing).Error
		if err == nil {
			if existing.IsActive {
				return fiber.NewError(fiber.StatusConflict, "\""+body.Name+"\" isimli kategori zaten mevcut")
			}
			updates := map[string]interface{}{
				"description": body.Description,
				"color":       body.Color,
				"is_active":   true,
			}
			if err := database.DB.Model(&existing).Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Kategori güncellenemedi")
			}
			database.DB.First(&existing, existing.ID)
			return c.Status(fiber.StatusCreated).JSON(existing)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori sorgulanamadı")
		}

		cat := models.MenuCategory{
			Name:        body.Name,
			Description: body.Description,
			Color:       body.Color,
			IsActive:    true,
		}
		if err := database.DB.Create(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori oluşturulamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(cat)
	}
}

// -------------------------------------------------
// PUT /api/menu-categories/:id
// -------------------------------------------------
func UpdateMenuCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz kategori id")
		}

		var body UpdateMenuCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var cat models.MenuCategory
		if err := database.DB.First(&cat, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
		}

		updates := map[string]interface{}{}
		if body.Name != nil {
			updates["name"] = *body.Name
		}
		if body.Description != nil {
			updates["description"] = *body.Description
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
// DELETE /api/menu-categories/:id
// Kategori ve altındaki ürünler pasiflenir, silinmez.
// -------------------------------------------------
func DeleteMenuCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz kategori id")
		}
		var cat models.MenuCategory
		if err := database.DB.First(&cat, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Silinecek kategori bulunamadı")
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.MenuItem{}).Where("category_id = ?", cat.ID).
				Update("is_active", false).Error; err != nil {
				return err
			}
			return tx.Model(&cat).Update("is_active", false).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
