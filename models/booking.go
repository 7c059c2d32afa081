package models

// Book status codes used by the remote service.
const (
	BookStatusReviewing  = "REVIEWING"  // awaiting studio review
	BookStatusPurchasing = "PURCHASING" // approved, deposit pending
	BookStatusActive     = "ACTIVE"     // confirmed
	BookStatusCancel     = "CANCEL"     // cancelled by either side
)

// BookStatusMap maps book status codes to display names.
var BookStatusMap = map[string]string{
	BookStatusReviewing:  "審查中",
	BookStatusPurchasing: "待付訂金",
	BookStatusActive:     "預約成功",
	BookStatusCancel:     "取消預約",
}

// ClassOrder is one confirmed booking record for a room, as returned by
// the class-orders endpoint: a date with the time keys already taken.
type ClassOrder struct {
	Date     string   `json:"date"`
	TimeList []string `json:"timeList"`
}

// BookContent is one (room, date) entry of a booking submission.
type BookContent struct {
	ClassID  string   `json:"classId"`
	BookDate string   `json:"bookDate"`
	Times    []string `json:"times"`
}

// BookRequest is the body of the booking submission endpoint.
type BookRequest struct {
	BookContents []BookContent `json:"bookContents"`
}

// BookResult carries the identifiers of the bookings created by a
// successful submission.
type BookResult struct {
	BookIDs []string `json:"bookIds"`
}

// Booking is one row of the signed-in user's booking list.
type Booking struct {
	BookID        string  `json:"bookId"`
	ClassName     string  `json:"className"`
	StoreID       string  `json:"storeId"`
	StoreName     string  `json:"storeName"`
	BookStartDate string  `json:"bookStartDate"`
	BookEndDate   string  `json:"bookEndDate"`
	Price         float64 `json:"price"`
	BookStatus    string  `json:"bookStatus"`
}
