package tool

// DefaultRegistry builds the full tool catalog. Registration order is the
// order tools/list reports.
func DefaultRegistry() *Registry {
	return NewRegistry(
		&Tool{
			Name:        "create_wallet",
			Description: "Generate a new Solana keypair and store it in memory under a unique name. The private key is returned once and never again.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"name": {Type: "string", Description: "Unique name for the wallet"},
				},
				Required: []string{"name"},
			},
			Handler: handleCreateWallet,
		},
		&Tool{
			Name:        "import_wallet",
			Description: "Import an existing wallet from a base58-encoded private key and store it under a unique name.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"name":        {Type: "string", Description: "Unique name for the wallet"},
					"private_key": {Type: "string", Description: "Base58-encoded 64-byte private key"},
				},
				Required: []string{"name", "private_key"},
			},
			Handler: handleImportWallet,
		},
		&Tool{
			Name:        "list_wallets",
			Description: "List the names and public addresses of all wallets held in this session. Private keys are never included.",
			Schema: InputSchema{
				Type:       "object",
				Properties: map[string]Property{},
			},
			Handler: handleListWallets,
		},
		&Tool{
			Name:        "get_wallet_address",
			Description: "Return the public address of a named wallet.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"name": {Type: "string", Description: "Name of the wallet"},
				},
				Required: []string{"name"},
			},
			Handler: handleGetWalletAddress,
		},
		&Tool{
			Name:        "get_wallet_qr",
			Description: "Render a named wallet's public address as a QR code PNG, returned base64-encoded.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"name": {Type: "string", Description: "Name of the wallet"},
				},
				Required: []string{"name"},
			},
			Handler: handleGetWalletQR,
		},
		&Tool{
			Name:        "get_balance",
			Description: "Get the SOL balance of a wallet name or base58 address on the current network.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"owner": {Type: "string", Description: "Wallet name or base58 address"},
				},
				Required: []string{"owner"},
			},
			Handler: handleGetBalance,
		},
		&Tool{
			Name:        "get_token_balance",
			Description: "Get the balance of an SPL token held by a wallet name or address, in both raw and decimal form.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"owner": {Type: "string", Description: "Wallet name or base58 address"},
					"mint":  {Type: "string", Description: "Token mint address"},
				},
				Required: []string{"owner", "mint"},
			},
			Handler: handleGetTokenBalance,
		},
		&Tool{
			Name:        "transfer_sol",
			Description: "Transfer SOL from a stored wallet to a wallet name or address. Amount is a decimal SOL string; excess precision is truncated.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"from":   {Type: "string", Description: "Name of the sending wallet"},
					"to":     {Type: "string", Description: "Recipient wallet name or base58 address"},
					"amount": {Type: "string", Description: "Amount in SOL, e.g. \"0.5\""},
				},
				Required: []string{"from", "to", "amount"},
			},
			Handler: handleTransferSOL,
		},
		&Tool{
			Name:        "transfer_token",
			Description: "Transfer an SPL token from a stored wallet to a wallet name or address. Creates the recipient's associated token account if missing.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"from":   {Type: "string", Description: "Name of the sending wallet"},
					"to":     {Type: "string", Description: "Recipient wallet name or base58 address"},
					"mint":   {Type: "string", Description: "Token mint address"},
					"amount": {Type: "string", Description: "Amount in token units, e.g. \"12.5\""},
				},
				Required: []string{"from", "to", "mint", "amount"},
			},
			Handler: handleTransferToken,
		},
		&Tool{
			Name:        "request_airdrop",
			Description: "Request a SOL airdrop to a wallet name or address. Refused on mainnet-beta.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"to":     {Type: "string", Description: "Recipient wallet name or base58 address"},
					"amount": {Type: "string", Description: "Amount in SOL"},
				},
				Required: []string{"to", "amount"},
			},
			Handler: handleRequestAirdrop,
		},
		&Tool{
			Name:        "create_token",
			Description: "Create a new SPL token mint with the given decimal count. The authority wallet becomes both mint and freeze authority.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"authority": {Type: "string", Description: "Name of the wallet that pays and controls the mint"},
					"decimals":  {Type: "number", Description: "Decimal places, 0 to 9"},
				},
				Required: []string{"authority", "decimals"},
			},
			Handler: handleCreateToken,
		},
		&Tool{
			Name:        "mint_token",
			Description: "Mint new tokens to a recipient's associated token account, creating the account if missing.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"authority": {Type: "string", Description: "Name of the mint-authority wallet"},
					"mint":      {Type: "string", Description: "Token mint address"},
					"to":        {Type: "string", Description: "Recipient wallet name or base58 address"},
					"amount":    {Type: "string", Description: "Amount in token units"},
				},
				Required: []string{"authority", "mint", "to", "amount"},
			},
			Handler: handleMintToken,
		},
		&Tool{
			Name:        "burn_token",
			Description: "Burn tokens from the owner wallet's associated token account.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"owner":  {Type: "string", Description: "Name of the wallet holding the tokens"},
					"mint":   {Type: "string", Description: "Token mint address"},
					"amount": {Type: "string", Description: "Amount in token units"},
				},
				Required: []string{"owner", "mint", "amount"},
			},
			Handler: handleBurnToken,
		},
		&Tool{
			Name:        "freeze_account",
			Description: "Freeze a holder's associated token account using the mint's freeze authority.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"authority": {Type: "string", Description: "Name of the freeze-authority wallet"},
					"mint":      {Type: "string", Description: "Token mint address"},
					"owner":     {Type: "string", Description: "Holder wallet name or base58 address"},
				},
				Required: []string{"authority", "mint", "owner"},
			},
			Handler: handleFreezeAccount,
		},
		&Tool{
			Name:        "thaw_account",
			Description: "Thaw a previously frozen associated token account using the mint's freeze authority.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"authority": {Type: "string", Description: "Name of the freeze-authority wallet"},
					"mint":      {Type: "string", Description: "Token mint address"},
					"owner":     {Type: "string", Description: "Holder wallet name or base58 address"},
				},
				Required: []string{"authority", "mint", "owner"},
			},
			Handler: handleThawAccount,
		},
		&Tool{
			Name:        "set_token_authority",
			Description: "Transfer a mint's mint or freeze authority to a new holder.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"authority":      {Type: "string", Description: "Name of the wallet currently holding the authority"},
					"mint":           {Type: "string", Description: "Token mint address"},
					"new_authority":  {Type: "string", Description: "New authority wallet name or base58 address"},
					"authority_type": {Type: "string", Description: "\"mint\" or \"freeze\""},
				},
				Required: []string{"authority", "mint", "new_authority", "authority_type"},
			},
			Handler: handleSetTokenAuthority,
		},
		&Tool{
			Name:        "get_transaction",
			Description: "Fetch a confirmed transaction by signature and report slot, fee, status and logs.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"signature": {Type: "string", Description: "Base58 transaction signature"},
				},
				Required: []string{"signature"},
			},
			Handler: handleGetTransaction,
		},
		&Tool{
			Name:        "switch_network",
			Description: "Switch the active Solana network. Accepts mainnet-beta, devnet, testnet, localnet, or a full RPC URL for a custom endpoint.",
			Schema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"network": {Type: "string", Description: "Network identifier or RPC URL"},
				},
				Required: []string{"network"},
			},
			Handler: handleSwitchNetwork,
		},
		&Tool{
			Name:        "get_network",
			Description: "Report the currently selected network and its RPC endpoint.",
			Schema: InputSchema{
				Type:       "object",
				Properties: map[string]Property{},
			},
			Handler: handleGetNetwork,
		},
		&Tool{
			Name:        "health_check",
			Description: "Probe the current RPC endpoint: node health, version and current slot. Reports healthy or degraded.",
			Schema: InputSchema{
				Type:       "object",
				Properties: map[string]Property{},
			},
			Handler: handleHealthCheck,
		},
	)
}
