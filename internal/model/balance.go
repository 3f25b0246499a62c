package model

// BalanceResult is the payload for get_balance. Both the raw smallest-unit
// integer and the human-scaled decimal string are returned.
type BalanceResult struct {
	Address  string `json:"address"`
	Lamports uint64 `json:"lamports"`
	SOL      string `json:"sol"`
	Network  string `json:"network"`
}

// TokenBalanceResult is the payload for get_token_balance.
type TokenBalanceResult struct {
	Address  string `json:"address"`
	Mint     string `json:"mint"`
	Amount   uint64 `json:"amount"`
	UIAmount string `json:"uiAmount"`
	Decimals uint8  `json:"decimals"`
	Network  string `json:"network"`
}
