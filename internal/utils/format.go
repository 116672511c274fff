package utils

import (
	"fmt"
	"time"
)

var (
	idWeekdays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	idMonths   = [...]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"}
)

// DateID formats a date the way id-ID locales print it: 1/5/2024.
func DateID(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// DateTimeID formats a long date: Rabu, 1 Mei 2024 pukul 10.11.
func DateTimeID(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d pukul %02d.%02d",
		idWeekdays[t.Weekday()], t.Day(), idMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
