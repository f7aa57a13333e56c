// Package apperr, alan katmanının ürettiği kodlu hataları taşır. Transport
// katmanı (cmd/server) bu hataları {code, message} JSON gövdesine çevirir;
// istemciler code alanına göre dallanır.
package apperr

import "net/http"

type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

var (
	ErrOrderNotFound       = New(http.StatusNotFound, "ORDER_NOT_FOUND", "Sipariş bulunamadı")
	ErrOrderLocked         = New(http.StatusConflict, "ORDER_LOCKED", "Sipariş hazırlandı, yeni ürün eklenemez")
	ErrMenuItemUnavailable = New(http.StatusUnprocessableEntity, "MENU_ITEM_UNAVAILABLE", "Menü öğesi satışta değil")
	ErrInvalidStatus       = New(http.StatusConflict, "INVALID_STATUS", "Geçersiz durum geçişi")
	ErrVersionConflict     = New(http.StatusConflict, "VERSION_CONFLICT", "Sipariş başka bir istemci tarafından güncellendi")
	ErrOrderCreateFailed   = New(http.StatusInternalServerError, "ORDER_CREATE_FAILED", "Sipariş oluşturulamadı")
	ErrCashSessionOpen     = New(http.StatusConflict, "CASH_SESSION_OPEN", "Zaten açık bir kasa oturumu var")
	ErrCashSessionNotOpen  = New(http.StatusConflict, "CASH_SESSION_NOT_OPEN", "Açık kasa oturumu bulunamadı")
	ErrArchiveFailed       = New(http.StatusServiceUnavailable, "ARCHIVE_FAILED", "Sipariş arşivlenemedi, ödeme kaydedilmedi; tekrar deneyin")
)
