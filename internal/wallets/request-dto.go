package wallets

// wallet creation payload
type CreateWalletRequest struct {
	WalletName string  `json:"wallet_name" validate:"required,min=2,max=100"`
	Balance    float64 `json:"balance" validate:"omitempty,min=0"`
}
