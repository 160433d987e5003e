package exporter

import (
	"fmt"
	"time"
)

// jalaliToGregorian converts a Solar Hijri (Jalali) date, as printed on
// Iranian registration systems, to a Gregorian date.
func jalaliToGregorian(jy, jm, jd int) (int, time.Month, int, error) {
	if jm < 1 || jm > 12 || jd < 1 || jd > jalaliMonthDays(jm) {
		return 0, 0, 0, fmt.Errorf("invalid jalali date %04d/%02d/%02d", jy, jm, jd)
	}

	jy += 1595
	days := -355668 + 365*jy + (jy/33)*8 + ((jy%33)+3)/4 + jd
	if jm < 7 {
		days += (jm - 1) * 31
	} else {
		days += (jm-7)*30 + 186
	}

	gy := 400 * (days / 146097)
	days %= 146097
	if days > 36524 {
		days--
		gy += 100 * (days / 36524)
		days %= 36524
		if days >= 365 {
			days++
		}
	}
	gy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd := days + 1
	monthDays := [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if (gy%4 == 0 && gy%100 != 0) || gy%400 == 0 {
		monthDays[2] = 29
	}
	gm := 0
	for gm < 13 && gd > monthDays[gm] {
		gd -= monthDays[gm]
		gm++
	}
	return gy, time.Month(gm), gd, nil
}

// jalaliMonthDays is the longest a month can be; Esfand has 30 days in leap years.
func jalaliMonthDays(m int) int {
	if m <= 6 {
		return 31
	}
	return 30
}
