package dashboard

// MonthlyEarning is one calendar-month bucket of completed booking revenue.
type MonthlyEarning struct {
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

type Stats struct {
	Bookings        map[string]int64 `json:"bookings"`
	TotalBookings   int64            `json:"totalBookings"`
	TotalEarnings   float64          `json:"totalEarnings"`
	MonthlyEarnings []MonthlyEarning `json:"monthlyEarnings"`
	Rating          float64          `json:"rating"`
	NumReviews      int              `json:"numReviews"`
}
