package reporting

import (
	"bytes"
	"fmt"

	"adisyon-backend/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ProductSalesRow struct {
	MenuItemID    uint    `json:"menu_item_id"`
	Name          string  `json:"name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgPrice      float64 `json:"avg_price"`
}

type RevenueRow struct {
	Date          string  `json:"date"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

func productSales(start, end, orderBy string) ([]ProductSalesRow, error) {
	where := ""
	params := []interface{}{}
	if start != "" {
		where = "WHERE oh.created_at >= ?"
		params = append(params, start+" 00:00:00")
	}
	if end != "" {
		if where == "" {
			where = "WHERE oh.created_at <= ?"
		} else {
			where += " AND oh.created_at <= ?"
		}
		params = append(params, end+" 23:59:59")
	}

	orderCol := "total_revenue"
	if orderBy == "quantity" {
		orderCol = "total_quantity"
	}

	var rows []ProductSalesRow
	err := database.DB.Raw(fmt.Sprintf(`
		SELECT mi.id AS menu_item_id,
		       mi.name AS name,
		       SUM(ohi.quantity) AS total_quantity,
		       SUM(ohi.quantity * ohi.price) AS total_revenue,
		       CASE WHEN SUM(ohi.quantity) > 0
		            THEN SUM(ohi.quantity * ohi.price) / SUM(ohi.quantity)
		            ELSE 0 END AS avg_price
		FROM order_history_items ohi
		JOIN order_history oh ON ohi.order_history_id = oh.id
		JOIN menu_items mi ON ohi.menu_item_id = mi.id
		%s
		GROUP BY mi.id, mi.name
		ORDER BY %s DESC`, where, orderCol), params...).
		Scan(&rows).Error
	return rows, err
}

// -------------------------------------------------
// GET /api/reports/product-sales?start=2025-01-01&end=2025-01-31&order_by=revenue
// -------------------------------------------------
func ProductSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := productSales(c.Query("start"), c.Query("end"), c.Query("order_by"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış raporu oluşturulamadı")
		}
		return c.JSON(rows)
	}
}

// -------------------------------------------------
// GET /api/reports/revenue?start=...&end=...&group_by=day|month|year
// -------------------------------------------------
func RevenueHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		groupBy := c.Query("group_by", "day")
		var dateFormat string
		switch groupBy {
		case "day":
			dateFormat = "YYYY-MM-DD"
		case "month":
			dateFormat = "YYYY-MM"
		case "year":
			dateFormat = "YYYY"
		default:
			return fiber.NewError(fiber.StatusBadRequest, "group_by day|month|year olmalı")
		}

		where := ""
		params := []interface{}{}
		if start := c.Query("start"); start != "" {
			where = "WHERE oh.created_at >= ?"
			params = append(params, start)
		}
		if end := c.Query("end"); end != "" {
			if where == "" {
				where = "WHERE oh.created_at <= ?"
			} else {
				where += " AND oh.created_at <= ?"
			}
			params = append(params, end+" 23:59:59")
		}

		var rows []RevenueRow
		err := database.DB.Raw(fmt.Sprintf(`
			SELECT TO_CHAR(oh.created_at, '%s') AS date,
			       COALESCE(SUM(ohi.quantity), 0) AS total_quantity,
			       COALESCE(SUM(ohi.quantity * ohi.price), 0) AS total_revenue
			FROM order_history_items ohi
			JOIN order_history oh ON ohi.order_history_id = oh.id
			%s
			GROUP BY date
			ORDER BY date ASC`, dateFormat, where), params...).
			Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ciro raporu oluşturulamadı")
		}
		return c.JSON(rows)
	}
}

// -------------------------------------------------
// GET /api/reports/product-sales/export
// Satış raporunu xlsx olarak indirir.
// -------------------------------------------------
func ExportProductSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := productSales(c.Query("start"), c.Query("end"), c.Query("order_by"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış raporu oluşturulamadı")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)
		headers := []string{"Ürün", "Adet", "Ciro", "Ort. Fiyat"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for r, row := range rows {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", r+2), row.Name)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", r+2), row.TotalQuantity)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", r+2), row.TotalRevenue)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", r+2), row.AvgPrice)
		}

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", `attachment; filename="urun-satislari.xlsx"`)
		return c.Send(buf.Bytes())
	}
}
