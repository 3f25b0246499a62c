package model

// TransactionResult is the payload for get_transaction.
type TransactionResult struct {
	Signature   string   `json:"signature"`
	Slot        uint64   `json:"slot"`
	BlockTime   string   `json:"blockTime,omitempty"`
	Status      string   `json:"status"` // "success" or "failed"
	Fee         uint64   `json:"fee"`
	FeeSOL      string   `json:"feeSol"`
	Logs        []string `json:"logs,omitempty"`
	ExplorerURL string   `json:"explorerUrl"`
	Network     string   `json:"network"`
}
