package cashsession

import (
	"fmt"

	"adisyon-backend/internal/audit"
	"adisyon-backend/internal/auth"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type OpenCashSessionRequest struct {
	OpeningAmount float64 `json:"opening_amount"`
}

type CloseCashSessionRequest struct {
	RealCashCounted float64 `json:"real_cash_counted"`
}

// -------------------------------------------------
// GET /api/cash/status
// -------------------------------------------------
func GetStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := GetOpenSession()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kasa durumu okunamadı")
		}
		return c.JSON(fiber.Map{
			"is_open": session != nil,
			"session": session,
		})
	}
}

// -------------------------------------------------
// POST /api/cash/open
// -------------------------------------------------
func OpenHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OpenCashSessionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.OpeningAmount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Açılış tutarı negatif olamaz")
		}

		user := auth.CurrentUsername(c)
		session, err := Open(user, body.OpeningAmount)
		if err != nil {
			return err
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      auth.CurrentUserID(c),
			UserName:    user,
			EntityType:  "cash_session",
			EntityID:    session.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Kasa açıldı: %.2f TL", body.OpeningAmount),
			After:       session,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(session)
	}
}

// -------------------------------------------------
// POST /api/cash/close
// -------------------------------------------------
func CloseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CloseCashSessionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.RealCashCounted < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Sayılan tutar negatif olamaz")
		}

		user := auth.CurrentUsername(c)
		result, err := Close(user, body.RealCashCounted)
		if err != nil {
			return err
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      auth.CurrentUserID(c),
			UserName:    user,
			EntityType:  "cash_session",
			EntityID:    result.Session.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Kasa kapatıldı: beklenen fark %.2f TL", *result.Session.Difference),
			After:       result.Session,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.JSON(result)
	}
}
