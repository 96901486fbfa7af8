package models

// Wallet is the backend-held balance pair. Deposits, escrow and refunds all
// happen server-side; the client only displays the numbers.
type Wallet struct {
	Balance       float64 `json:"balance"`
	EscrowBalance float64 `json:"escrowBalance"`
}

func (w Wallet) Total() float64 {
	return w.Balance + w.EscrowBalance
}
