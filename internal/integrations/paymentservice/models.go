package paymentservice

// Статусы платежа в PaymentService
const (
	StatusSuccess = "success"
	StatusPending = "pending"
)

// Payment модель платежа из PaymentService
type Payment struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"` // success | pending
	TransactionID string  `json:"transaction_id"`
}

// IsCaptured сообщает, что платёж успешно проведён
func (p *Payment) IsCaptured() bool {
	return p.PaymentStatus == StatusSuccess
}

// ErrorResponse модель ошибки от PaymentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
