package domain

import "time"

// The backend stores order timestamps as local restaurant time (GMT+8) in
// minute precision, e.g. "2025-06-01T18:30".
var restaurantZone = time.FixedZone("GMT+8", 8*60*60)

func FormatOrderTime(t time.Time) string {
	return t.In(restaurantZone).Format("2006-01-02T15:04")
}
