package main

import (
	"errors"
	"log"
	"strings"

	"adisyon-backend/internal/apperr"
	"adisyon-backend/internal/audit"
	"adisyon-backend/internal/auth"
	"adisyon-backend/internal/cashsession"
	"adisyon-backend/internal/config"
	"adisyon-backend/internal/customer"
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/debt"
	"adisyon-backend/internal/localtime"
	"adisyon-backend/internal/menu"
	"adisyon-backend/internal/models"
	"adisyon-backend/internal/order"
	"adisyon-backend/internal/payment"
	"adisyon-backend/internal/reporting"
	"adisyon-backend/internal/table"
	"adisyon-backend/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	localtime.Init(cfg.RestaurantTZ)
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *apperr.Error
			if errors.As(err, &appErr) {
				return c.Status(appErr.Status).JSON(appErr)
			}
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Siparişler
	protected.Post("/orders", order.CreateOrderHandler())
	protected.Get("/orders", order.ListUnpaidOrdersHandler())
	protected.Get("/orders/active", order.ListActiveOrdersHandler())
	protected.Get("/orders/:id", order.GetOrderHandler())
	protected.Post("/orders/:id/items", order.AddItemsHandler())
	protected.Put("/orders/:id/status", order.UpdateStatusHandler())
	protected.Delete("/orders/:id", order.DeleteOrderHandler())
	protected.Get("/tables/:id/open-order", order.GetOpenOrderForTableHandler())

	// Ödemeler
	protected.Post("/payments/process", payment.ProcessPaymentHandler())
	protected.Post("/orders/:id/partials", payment.RecordPartialContributionHandler())
	protected.Post("/order-history/:id/partials", payment.RecordPartialPaymentHandler())
	protected.Get("/order-history", payment.ListPastOrdersHandler())
	protected.Get("/order-history/customers", debt.GetAllCustomerOrderHistoryHandler())

	// Kasa
	protected.Get("/cash/status", cashsession.GetStatusHandler())
	protected.Post("/cash/open", cashsession.OpenHandler())
	protected.Post("/cash/close", cashsession.CloseHandler())

	// Borçlar
	protected.Get("/debts/customers", debt.GetCustomersWithDebtHandler())
	protected.Get("/customers/:id/debts", debt.GetCustomerDebtsHandler())
	protected.Post("/customers/:id/debts/settle", debt.SettleCustomerDebtsHandler(cfg))
	protected.Get("/customers/:id/order-history", debt.GetCustomerOrderHistoryHandler())

	// Menü
	protected.Get("/menu-items", menu.ListMenuItemsHandler())
	protected.Post("/menu-items", menu.CreateMenuItemHandler())
	protected.Put("/menu-items/:id", menu.UpdateMenuItemHandler())
	protected.Delete("/menu-items/:id", menu.DeleteMenuItemHandler())
	protected.Post("/menu-items/:id/reactivate", menu.ReactivateMenuItemHandler())
	protected.Get("/menu-categories", menu.ListMenuCategoriesHandler())
	protected.Post("/menu-categories", menu.CreateMenuCategoryHandler())
	protected.Put("/menu-categories/:id", menu.UpdateMenuCategoryHandler())
	protected.Delete("/menu-categories/:id", menu.DeleteMenuCategoryHandler())

	// Masalar
	protected.Get("/tables", table.ListTablesHandler())
	protected.Post("/tables", table.CreateTableHandler())
	protected.Put("/tables/:id", table.UpdateTableHandler())
	protected.Put("/tables/:id/status", table.UpdateTableStatusHandler())
	protected.Delete("/tables/:id", table.DeleteTableHandler())
	protected.Get("/table-categories", table.ListTableCategoriesHandler())
	protected.Post("/table-categories", table.CreateTableCategoryHandler())
	protected.Put("/table-categories/:id", table.UpdateTableCategoryHandler())
	protected.Delete("/table-categories/:id", table.DeleteTableCategoryHandler())

	// Müşteriler
	protected.Get("/customers", customer.ListCustomersHandler())
	protected.Post("/customers", customer.CreateCustomerHandler())
	protected.Put("/customers/:id", customer.UpdateCustomerHandler())
	protected.Delete("/customers/:id", customer.DeleteCustomerHandler())

	// Raporlar
	protected.Get("/reports/product-sales", reporting.ProductSalesHandler())
	protected.Get("/reports/product-sales/export", reporting.ExportProductSalesHandler())
	protected.Get("/reports/revenue", reporting.RevenueHandler())

	// Yalnızca manager
	managerRoutes := protected.Group("")
	managerRoutes.Use(auth.RequireRole(models.RoleManager))
	managerRoutes.Put("/orders/:id/status/force", order.ForceUpdateStatusHandler())
	managerRoutes.Get("/users", user.ListUsersHandler())
	managerRoutes.Post("/users", user.CreateUserHandler())
	managerRoutes.Put("/users/:id", user.UpdateUserHandler())
	managerRoutes.Delete("/users/:id", user.DeactivateUserHandler())
	managerRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
