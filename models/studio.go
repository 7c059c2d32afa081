package models

// StudioUpdate is the owner-side listing update body. Zero-value fields
// are left untouched server-side.
type StudioUpdate struct {
	Name        string `json:"name,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
}

// ClassInput creates or updates a rehearsal room on the owner's store.
type ClassInput struct {
	Name              string      `json:"name"`
	Description       string      `json:"description,omitempty"`
	Instruments       []string    `json:"instruments"`
	OrderDateTimeList []DateTimes `json:"orderDateTimeList,omitempty"`
}

// StudioOrder is one booking row as seen by the studio owner.
type StudioOrder struct {
	BookID     string   `json:"bookId"`
	ClassID    string   `json:"classId"`
	ClassName  string   `json:"className"`
	UserName   string   `json:"userName"`
	BookDate   string   `json:"bookDate"`
	Times      []string `json:"times"`
	Price      float64  `json:"price"`
	BookStatus string   `json:"bookStatus"`
}

// Review decisions a studio owner can take on an order in review.
const (
	ReviewApprove = "APPROVE"
	ReviewReject  = "REJECT"
)

// ReviewOrderRequest is the body of the owner's order review endpoint.
type ReviewOrderRequest struct {
	Action string `json:"action"` // ReviewApprove or ReviewReject
}
