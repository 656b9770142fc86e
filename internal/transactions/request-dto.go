package transactions

// buy/sell request payload. Price defaults to the crypto's current market
// price when omitted.
type CreateTransactionRequest struct {
	WalletID uint    `json:"wallet_id" validate:"required,min=1"`
	CryptoID uint    `json:"crypto_id" validate:"required,min=1"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"omitempty,gt=0"`
	Type     string  `json:"type" validate:"required,oneof=buy sell"`
}
