package booking

import "time"

// Bay - a physical golf simulator booth being scheduled.
type Bay struct {
	ID          string
	Name        string  // display name, e.g. "Bay 1"
	APIName     string  // stable identifier used by the availability check
	IsActive    bool
	DisplayRank int
}

// Booking - a reserved slot on one bay.
type Booking struct {
	ID            string
	CustomerName  string
	CustomerPhone *string
	Date          time.Time
	StartTime     string  // "HH:MM" venue-local
	DurationHours float64 // half-hour granularity
	BayAPIName    string
	NumberOfPax   int
	Status        string // "confirmed" or "cancelled"
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BayAvailability - the outcome of one bay's slot check.
type BayAvailability struct {
	Name        string `json:"name"`
	APIName     string `json:"apiName"`
	IsAvailable bool   `json:"isAvailable"`
}
