package menu

import (
	"errors"

	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"gorm.io/gorm"
)

// ActivePrice - satışta olan (available + is_active) menü öğesinin güncel
// fiyatını döndürür. Öğe satışta değilse ok=false döner; sipariş katmanı
// bunu MENU_ITEM_UNAVAILABLE hatasına çevirir.
func ActivePrice(menuItemID uint) (price float64, ok bool, err error) {
	return ActivePriceTx(database.DB, menuItemID)
}

// ActivePriceTx - ActivePrice'ın transaction içinde kullanılan hali.
func ActivePriceTx(tx *gorm.DB, menuItemID uint) (price float64, ok bool, err error) {
	var item models.MenuItem
	res := tx.Select("price").
		Where("id = ? AND available = ? AND is_active = ?", menuItemID, true, true).
		First(&item)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, res.Error
	}
	return item.Price, true, nil
}
