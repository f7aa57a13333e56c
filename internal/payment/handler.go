package payment

import (
	"fmt"

	"adisyon-backend/internal/audit"
	"adisyon-backend/internal/auth"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProcessPaymentRequest struct {
	OrderID    uint    `json:"order_id"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	CustomerID *uint   `json:"customer_id"`
}

type PartialPaymentRequest struct {
	Cash   float64 `json:"cash"`
	Card   float64 `json:"credit_kart"`
	Ticket float64 `json:"ticket"`
}

// -------------------------------------------------
// POST /api/payments/process
// -------------------------------------------------
func ProcessPaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProcessPaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.OrderID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "order_id zorunlu")
		}
		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Tutar 0'dan büyük olmalı")
		}
		if body.Method == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ödeme yöntemi zorunlu")
		}

		historyID, err := ProcessPayment(body.OrderID, body.Amount, body.Method, body.CustomerID)
		if err != nil {
			return err
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      auth.CurrentUserID(c),
			UserName:    auth.CurrentUsername(c),
			EntityType:  "order_history",
			EntityID:    historyID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Ödeme alındı: %s - %.2f TL (sipariş %d)", body.Method, body.Amount, body.OrderID),
			After:       fiber.Map{"history_id": historyID, "method": body.Method, "amount": body.Amount},
		}); logErr != nil {
			// Log hatası kritik değil, sadece log'la
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.JSON(fiber.Map{"history_id": historyID})
	}
}

// -------------------------------------------------
// POST /api/orders/:id/partials
// -------------------------------------------------
func RecordPartialContributionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		var body PartialPaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Cash < 0 || body.Card < 0 || body.Ticket < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Katkı tutarları negatif olamaz")
		}
		if body.Cash+body.Card+body.Ticket <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "En az bir kanalda tutar girilmeli")
		}

		pp, err := RecordPartialContribution(uint(id), body.Cash, body.Card, body.Ticket)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(pp)
	}
}

// -------------------------------------------------
// POST /api/order-history/:id/partials
// -------------------------------------------------
func RecordPartialPaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz arşiv id")
		}

		var body PartialPaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Cash < 0 || body.Card < 0 || body.Ticket < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Katkı tutarları negatif olamaz")
		}

		pp, err := RecordPartialPayment(uint(id), body.Cash, body.Card, body.Ticket)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(pp)
	}
}

// -------------------------------------------------
// GET /api/order-history
// -------------------------------------------------
func ListPastOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		histories, err := ListPastOrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Arşiv listelenemedi")
		}
		return c.JSON(histories)
	}
}
