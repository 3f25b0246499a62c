package model

// TransferResult is the payload for transfer_sol and transfer_token.
type TransferResult struct {
	Signature   string `json:"signature"`
	ExplorerURL string `json:"explorerUrl"`
	From        string `json:"from"`
	To          string `json:"to"`
	Amount      string `json:"amount"`
	Mint        string `json:"mint,omitempty"`
	Network     string `json:"network"`
}

// AirdropResult is the payload for request_airdrop.
type AirdropResult struct {
	Signature   string `json:"signature"`
	ExplorerURL string `json:"explorerUrl"`
	To          string `json:"to"`
	Amount      string `json:"amount"`
	Network     string `json:"network"`
}
