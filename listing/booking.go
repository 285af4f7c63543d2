package listing

import "time"

// DefaultNights is used when a quote has no usable date range.
const DefaultNights = 7

const dateLayout = "2006-01-02"

// BookingQuote is what the booking panel shows for a stay.
type BookingQuote struct {
	CheckIn       string  `json:"checkIn,omitempty"`
	CheckOut      string  `json:"checkOut,omitempty"`
	PricePerNight float64 `json:"pricePerNight"`
	Nights        int     `json:"nights"`
	Total         float64 `json:"total"`
}

// Quote prices a stay. checkIn and checkOut are YYYY-MM-DD; if either is
// missing or unparsable, or checkOut is not after checkIn, the stay lasts
// DefaultNights.
func Quote(price float64, checkIn, checkOut string) BookingQuote {
	q := BookingQuote{
		PricePerNight: price,
		Nights:        DefaultNights,
	}

	in, errIn := time.Parse(dateLayout, checkIn)
	out, errOut := time.Parse(dateLayout, checkOut)
	if errIn == nil && errOut == nil && out.After(in) {
		q.CheckIn = checkIn
		q.CheckOut = checkOut
		q.Nights = int(out.Sub(in).Hours() / 24)
	}

	q.Total = price * float64(q.Nights)
	return q
}
