package customer

import (
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/localtime"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCustomerRequest struct {
	CustomerName    string  `json:"customer_name"`
	Address         *string `json:"address"`
	TelephoneNumber *string `json:"telephone_number"`
}

type UpdateCustomerRequest struct {
	CustomerName    *string `json:"customer_name"`
	Address         *string `json:"address"`
	TelephoneNumber *string `json:"telephone_number"`
}

// -------------------------------------------------
// GET /api/customers?q=aranan
// -------------------------------------------------
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Customer{})
		if q := c.Query("q"); q != "" {
			like := "%" + q + "%"
			dbq = dbq.Where("customer_name ILIKE ? OR telephone_number ILIKE ?", like, like)
		}

		var customers []models.Customer
		if err := dbq.Order("customer_name").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteriler listelenemedi")
		}
		return c.JSON(customers)
	}
}

// -------------------------------------------------
// POST /api/customers
// -------------------------------------------------
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.CustomerName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri adı zorunlu")
		}

		cust := models.Customer{
			CustomerName:    body.CustomerName,
			Address:         body.Address,
			TelephoneNumber: body.TelephoneNumber,
			CreatedAt:       localtime.Now(),
		}
		if err := database.DB.Create(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri oluşturulamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(cust)
	}
}

// -------------------------------------------------
// PUT /api/customers/:id
// -------------------------------------------------
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz müşteri id")
		}

		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var cust models.Customer
		if err := database.DB.First(&cust, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		updates := map[string]interface{}{}
		if body.CustomerName != nil {
			updates["customer_name"] = *body.CustomerName
		}
		if body.Address != nil {
			updates["address"] = *body.Address
		}
		if body.TelephoneNumber != nil {
			updates["telephone_number"] = *body.TelephoneNumber
		}
		if len(updates) == 0 {
			return c.JSON(cust)
		}

		if err := database.DB.Model(&cust).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri güncellenemedi")
		}
		database.DB.First(&cust, cust.ID)
		return c.JSON(cust)
	}
}

// -------------------------------------------------
// DELETE /api/customers/:id
// -------------------------------------------------
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz müşteri id")
		}
		res := database.DB.Delete(&models.Customer{}, id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
