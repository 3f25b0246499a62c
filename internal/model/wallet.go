package model

// CreateWalletResult is the payload for create_wallet. The private key is
// disclosed here and only here: it is generated server-side and would be
// unknowable to the caller otherwise.
type CreateWalletResult struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
}

// ImportWalletResult is the payload for import_wallet. The caller already
// holds the key, so it is deliberately not echoed back.
type ImportWalletResult struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WalletInfo is one entry of list_wallets.
type WalletInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ListWalletsResult is the payload for list_wallets.
type ListWalletsResult struct {
	Wallets []WalletInfo `json:"wallets"`
}

// WalletAddressResult is the payload for get_wallet_address.
type WalletAddressResult struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	ExplorerURL string `json:"explorerUrl"`
}

// WalletQRResult is the payload for get_wallet_qr.
type WalletQRResult struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	PNG      string `json:"pngBase64"`
	Encoding string `json:"encoding"`
}
