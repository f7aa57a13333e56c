// Package localtime, restoranın yerel saat diliminde (DST dahil) duvar saati
// üretir. Tüm created_at/paid_at/opened_at damgaları bu saatle atılır.
package localtime

import (
	"log"
	"time"
)

var loc = time.Local

// Init, IANA bölge adını yükler (ör. "Europe/Istanbul"). Açılışta bir kez çağrılır.
func Init(name string) {
	l, err := time.LoadLocation(name)
	if err != nil {
		log.Fatalf("Saat dilimi yüklenemedi (%s): %v", name, err)
	}
	loc = l
}

func Now() time.Time {
	return time.Now().In(loc)
}

// Format, damgayı "YYYY-MM-DD HH:MM:SS" biçiminde yerel saat olarak döndürür.
func Format(t time.Time) string {
	return t.In(loc).Format("2006-01-02 15:04:05")
}
