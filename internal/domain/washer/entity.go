package washer

// Washer is a reference-data entity. Only active washers are selectable for
// new records; historical records keep the full-name snapshot taken at
// assignment time, so deactivating or renaming a washer never rewrites the
// ledger.
type Washer struct {
	ID        int64
	FirstName string
	LastName  string
	IsActive  bool
}

func (w Washer) FullName() string {
	return w.FirstName + " " + w.LastName
}
