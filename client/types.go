package client

// Wire types for the PPOB REST API. Amounts are Rupiah with no subunits.

type UserProfile struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ProfileImage string `json:"profile_image"`
}

type Service struct {
	ServiceCode   string `json:"service_code"`
	ServiceName   string `json:"service_name"`
	ServiceIcon   string `json:"service_icon"`
	ServiceTariff int64  `json:"service_tariff"`
}

type Banner struct {
	BannerName  string `json:"banner_name"`
	BannerImage string `json:"banner_image"`
	Description string `json:"description"`
}

const (
	TransactionTypeTopUp   = "TOPUP"
	TransactionTypePayment = "PAYMENT"
)

type Transaction struct {
	InvoiceNumber   string `json:"invoice_number"`
	ServiceCode     string `json:"service_code"`
	ServiceName     string `json:"service_name"`
	TransactionType string `json:"transaction_type"`
	Description     string `json:"description"`
	TotalAmount     int64  `json:"total_amount"`
	CreatedOn       string `json:"created_on"`
}

// HistoryPage is one offset/limit window of the transaction history.
// The server never reports a total count; callers infer "more pages may
// exist" from len(Records) == Limit.
type HistoryPage struct {
	Offset  int           `json:"offset"`
	Limit   int           `json:"limit"`
	Records []Transaction `json:"records"`
}

type Balance struct {
	Balance int64 `json:"balance"`
}

type TopUpResult struct {
	Balance int64 `json:"balance"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}
