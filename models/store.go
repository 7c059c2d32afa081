package models

// Store represents a studio listing as returned by the public search
// and detail endpoints.
type Store struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Description string       `json:"description,omitempty"`
	Classes     []StoreClass `json:"classes"` // rehearsal rooms offered by the store
}

// StoreClass is one rehearsal room within a store.
type StoreClass struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description,omitempty"`
	Instruments       []string    `json:"instruments"`       // instrument codes, e.g. "DRUMS"
	OrderDateTimeList []DateTimes `json:"orderDateTimeList"` // bookable dates with their time grid
}

// DateTimes groups the bookable time keys of a single calendar date.
type DateTimes struct {
	Date     string   `json:"date"`     // "YYYY-MM-DD"
	TimeList []string `json:"timeList"` // e.g. ["14:00", "15:00"]
}

// StoreSearchResult is the payload of the store search endpoint.
type StoreSearchResult struct {
	Stores []Store `json:"stores"`
}
