package model

// CreateTokenResult is the payload for create_token.
type CreateTokenResult struct {
	Mint        string `json:"mint"`
	Authority   string `json:"authority"`
	Decimals    uint8  `json:"decimals"`
	Signature   string `json:"signature"`
	ExplorerURL string `json:"explorerUrl"`
	Network     string `json:"network"`
}

// TokenOpResult is the shared payload for mint_token, burn_token,
// freeze_account, thaw_account and set_token_authority.
type TokenOpResult struct {
	Operation   string `json:"operation"`
	Mint        string `json:"mint"`
	Account     string `json:"account,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Signature   string `json:"signature"`
	ExplorerURL string `json:"explorerUrl"`
	Network     string `json:"network"`
}
