package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"adisyon-backend/internal/models"
	"adisyon-backend/internal/order"
	"adisyon-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/tables", CreateTableHandler())
	app.Delete("/tables/:id", DeleteTableHandler())
	app.Put("/tables/:id/status", UpdateTableStatusHandler())
	app.Delete("/table-categories/:id", DeleteTableCategoryHandler())
	return app
}

func jsonReq(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("gövde kodlanamadı: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateTableHandler(t *testing.T) {
	t.Run("aynı numarayla ikinci masa 409", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		existing := testutil.SeedTable(t, db, "B1")

		app := newTestApp()
		resp, err := app.Test(jsonReq(t, "POST", "/tables", CreateTableRequest{
			Number: "B1", Seats: 4, CategoryID: existing.CategoryID,
		}))
		if err != nil {
			t.Fatalf("istek hata: %v", err)
		}
		if resp.StatusCode != fiber.StatusConflict {
			t.Errorf("status = %d, beklenen 409", resp.StatusCode)
		}
	})
}

func TestDeleteTableHandler(t *testing.T) {
	t.Run("aktif siparişi olan masa silinemez", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		item := testutil.SeedMenuItem(t, db, "Çay", 10.00)
		tbl := testutil.SeedTable(t, db, "B2")

		if _, err := order.CreateOrder(order.CreateOrderInput{
			TableID:   &tbl.ID,
			OrderType: models.OrderTypeDineIn,
			Items:     []order.NewOrderItem{{MenuItemID: item.ID, Quantity: 1}},
		}); err != nil {
			t.Fatalf("CreateOrder hata: %v", err)
		}

		app := newTestApp()
		resp, err := app.Test(jsonReq(t, "DELETE", fmt.Sprintf("/tables/%d", tbl.ID), nil))
		if err != nil {
			t.Fatalf("istek hata: %v", err)
		}
		if resp.StatusCode != fiber.StatusConflict {
			t.Errorf("status = %d, beklenen 409", resp.StatusCode)
		}

		var count int64
		db.Model(&models.Table{}).Where("id = ?", tbl.ID).Count(&count)
		if count != 1 {
			t.Error("masa silinmiş, korunmalıydı")
		}
	})

	t.Run("boş masa silinir", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		tbl := testutil.SeedTable(t, db, "B3")

		app := newTestApp()
		resp, err := app.Test(jsonReq(t, "DELETE", fmt.Sprintf("/tables/%d", tbl.ID), nil))
		if err != nil {
			t.Fatalf("istek hata: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, beklenen 200", resp.StatusCode)
		}

		var count int64
		db.Model(&models.Table{}).Where("id = ?", tbl.ID).Count(&count)
		if count != 0 {
			t.Error("masa silinmemiş")
		}
	})
}

func TestUpdateTableStatusHandler(t *testing.T) {
	t.Run("bilinmeyen durum 400", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		tbl := testutil.SeedTable(t, db, "B4")

		app := newTestApp()
		resp, err := app.Test(jsonReq(t, "PUT", fmt.Sprintf("/tables/%d/status", tbl.ID),
			fiber.Map{"status": "uzayda"}))
		if err != nil {
			t.Fatalf("istek hata: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, beklenen 400", resp.StatusCode)
		}
	})

	t.Run("geçerli durum yazılır", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		tbl := testutil.SeedTable(t, db, "B5")

		app := newTestApp()
		resp, err := app.Test(jsonReq(t, "PUT", fmt.Sprintf("/tables/%d/status", tbl.ID),
			fiber.Map{"status": "reserved"}))
		if err != nil {
			t.Fatalf("istek hata: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, beklenen 200", resp.StatusCode)
		}

		var fresh models.Table
		db.First(&fresh, tbl.ID)
		if fresh.Status != models.TableStatusReserved {
			t.Errorf("durum = %v, beklenen reserved", fresh.Status)
		}
	})
}

func TestDeleteTableCategoryHandler(t *testing.T) {
	t.Run("masası olan kategori silinemez", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		tbl := testutil.SeedTable(t, db, "B6")

		app := newTestApp()
		resp, err := app.Test(jsonReq(t, "DELETE",
			fmt.Sprintf("/table-categories/%d", tbl.CategoryID), nil))
		if err != nil {
			t.Fatalf("istek hata: %v", err)
		}
		if resp.StatusCode != fiber.StatusConflict {
			t.Errorf("status = %d, beklenen 409", resp.StatusCode)
		}
	})
}
