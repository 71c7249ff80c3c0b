package domain

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// PaymentHistory is one row of the payment history listing.
type PaymentHistory struct {
	PaymentID     int64         `json:"paymentId"`
	CourseID      int64         `json:"courseId"`
	CourseTitle   string        `json:"courseTitle"`
	UserName      string        `json:"userName"`
	Amount        float64       `json:"amount"`
	PaymentMethod string        `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId"`
	CreatedAt     string        `json:"createdAt"`
	PaidAt        string        `json:"paidAt"`
}

// PaymentRequest starts a purchase of a course.
type PaymentRequest struct {
	CourseID      int64  `json:"courseId"`
	PaymentMethod string `json:"paymentMethod"`
}

// PaymentResponse is returned by both the purchase and the gateway test
// endpoints.
type PaymentResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	PaymentURL    string `json:"paymentUrl,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	PaymentID     int64  `json:"paymentId,omitempty"`
}

// CallbackResult is returned by the simulated gateway callback.
type CallbackResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GatewayConfig reports which gateway settings the backend has.
type GatewayConfig struct {
	TmnCode          string `json:"tmnCode"`
	TmnCodeExists    bool   `json:"tmnCodeExists"`
	HashSecretExists bool   `json:"hashSecretExists"`
	PayURL           string `json:"payUrl"`
	PayURLExists     bool   `json:"payUrlExists"`
	ReturnURL        string `json:"returnUrl"`
	ReturnURLExists  bool   `json:"returnUrlExists"`
	IsValid          bool   `json:"isValid"`
}

// GatewayTestPayment is the payload posted by the gateway test panels.
type GatewayTestPayment struct {
	CourseID  int64  `json:"courseId" form:"courseId" validate:"required,min=1"`
	Amount    int64  `json:"amount" form:"amount" validate:"required,min=10000"`
	OrderInfo string `json:"orderInfo" form:"orderInfo" validate:"required"`
}
