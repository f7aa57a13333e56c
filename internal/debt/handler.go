package debt

import (
	"fmt"

	"adisyon-backend/internal/audit"
	"adisyon-backend/internal/auth"
	"adisyon-backend/internal/config"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SettleDebtsRequest struct {
	OrderHistoryIDs []uint `json:"order_history_ids"`
	Method          string `json:"method"`
}

// -------------------------------------------------
// GET /api/debts/customers
// -------------------------------------------------
func GetCustomersWithDebtHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := GetCustomersWithDebt()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Borçlu müşteriler listelenemedi")
		}
		return c.JSON(rows)
	}
}

// -------------------------------------------------
// GET /api/customers/:id/debts
// -------------------------------------------------
func GetCustomerDebtsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz müşteri id")
		}
		rows, err := GetCustomerDebts(uint(id))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Borçlar listelenemedi")
		}
		return c.JSON(rows)
	}
}

// -------------------------------------------------
// POST /api/customers/:id/debts/settle
// -------------------------------------------------
func SettleCustomerDebtsHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz müşteri id")
		}

		var body SettleDebtsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Method == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Tahsilat yöntemi zorunlu")
		}
		if body.Method == models.PaymentMethodDebt {
			return fiber.NewError(fiber.StatusBadRequest, "Borç borçla tahsil edilemez")
		}

		if err := SettleCustomerDebts(uint(id), body.OrderHistoryIDs, body.Method,
			cfg.DebtSettleUpdatesPaidAmount); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Borçlar tahsil edilemedi")
		}

		if len(body.OrderHistoryIDs) > 0 {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      auth.CurrentUserID(c),
				UserName:    auth.CurrentUsername(c),
				EntityType:  "order_history",
				EntityID:    uint(id),
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Borç tahsilatı: müşteri %d, %d kayıt, yöntem %s", id, len(body.OrderHistoryIDs), body.Method),
				After:       fiber.Map{"order_history_ids": body.OrderHistoryIDs, "method": body.Method},
			}); logErr != nil {
				fmt.Printf("Audit log yazılamadı: %v\n", logErr)
			}
		}

		return c.JSON(fiber.Map{"success": true})
	}
}

// -------------------------------------------------
// GET /api/customers/:id/order-history
// -------------------------------------------------
func GetCustomerOrderHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz müşteri id")
		}
		cid := uint(id)
		rows, err := GetCustomerOrderHistory(&cid)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş geçmişi listelenemedi")
		}
		return c.JSON(rows)
	}
}

// -------------------------------------------------
// GET /api/order-history/customers
// -------------------------------------------------
func GetAllCustomerOrderHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := GetCustomerOrderHistory(nil)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş geçmişi listelenemedi")
		}
		return c.JSON(rows)
	}
}
