package order

import (
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	TableID       *uint            `json:"table_id"`
	OrderType     models.OrderType `json:"order_type"`
	CustomerID    *uint            `json:"customer_id"`
	CustomerName  *string          `json:"customer_name"`
	Items         []NewOrderItem   `json:"items"`
	IsPaid        bool             `json:"is_paid"`
	PaymentMethod string           `json:"payment_method"`
}

type AddItemsRequest struct {
	Items []NewOrderItem `json:"items"`
}

type UpdateStatusRequest struct {
	Status          models.OrderStatus `json:"status"`
	ExpectedVersion *int               `json:"expected_version"`
}

// -------------------------------------------------
// POST /api/orders
// -------------------------------------------------
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Sipariş en az bir kalem içermeli")
		}

		o, err := CreateOrder(CreateOrderInput{
			TableID:       body.TableID,
			OrderType:     body.OrderType,
			CustomerID:    body.CustomerID,
			CustomerName:  body.CustomerName,
			Items:         body.Items,
			IsPaid:        body.IsPaid,
			PaymentMethod: body.PaymentMethod,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(o)
	}
}

// -------------------------------------------------
// POST /api/orders/:id/items
// -------------------------------------------------
func AddItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		var body AddItemsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		o, err := AddItemsToOrder(uint(id), body.Items)
		if err != nil {
			return err
		}
		return c.JSON(o)
	}
}

// -------------------------------------------------
// GET /api/orders/:id
// -------------------------------------------------
func GetOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}
		o, err := GetOrderWithItems(uint(id))
		if err != nil {
			return err
		}
		return c.JSON(o)
	}
}

// -------------------------------------------------
// GET /api/tables/:id/open-order
// -------------------------------------------------
func GetOpenOrderForTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz masa id")
		}
		o, err := GetOpenOrderForTable(uint(id))
		if err != nil {
			return err
		}
		if o == nil {
			return c.JSON(nil)
		}
		return c.JSON(o)
	}
}

// -------------------------------------------------
// GET /api/orders/active
// -------------------------------------------------
func ListActiveOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, err := ListActiveOrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}
		return c.JSON(orders)
	}
}

// -------------------------------------------------
// GET /api/orders
// -------------------------------------------------
func ListUnpaidOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, err := ListUnpaidOrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}
		return c.JSON(orders)
	}
}

// -------------------------------------------------
// PUT /api/orders/:id/status
// -------------------------------------------------
func UpdateStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Status == "" {
			return fiber.NewError(fiber.StatusBadRequest, "status alanı zorunlu")
		}

		o, err := UpdateOrderStatus(uint(id), body.Status, body.ExpectedVersion)
		if err != nil {
			return err
		}
		return c.JSON(o)
	}
}

// -------------------------------------------------
// PUT /api/orders/:id/status/force  (yalnızca manager)
// -------------------------------------------------
func ForceUpdateStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		o, err := ForceUpdateOrderStatus(uint(id), body.Status)
		if err != nil {
			return err
		}
		return c.JSON(o)
	}
}

// -------------------------------------------------
// DELETE /api/orders/:id
// -------------------------------------------------
func DeleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}
		if err := DeleteOrder(uint(id)); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
