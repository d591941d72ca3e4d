package clock

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// ShopClock reports the current business date and time-of-day in the shop's
// configured zone. Record rows are stamped with these values so that the
// ledger stays anchored to the shop's calendar regardless of the server's
// local zone.
type ShopClock struct {
	clock Clock
	loc   *time.Location
}

func NewShopClock(clock Clock, timeZone string) (*ShopClock, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, err
	}
	return &ShopClock{clock: clock, loc: loc}, nil
}

func (s *ShopClock) Now() time.Time {
	return s.clock.Now().In(s.loc)
}

// Today returns the current business date as YYYY-MM-DD.
func (s *ShopClock) Today() string {
	return s.Now().Format(DateLayout)
}

// Stamp returns the business date and time-of-day for a new record.
func (s *ShopClock) Stamp() (date string, timeOfDay string) {
	now := s.Now()
	return now.Format(DateLayout), now.Format(TimeLayout)
}

func (s *ShopClock) Location() *time.Location {
	return s.loc
}
