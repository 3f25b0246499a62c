package client

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// Ledger is the capability handlers program against: balances, transfers and
// token-program operations on whatever network the connection manager has
// currently dialed. *Client implements it; handler tests use fakes.
type Ledger interface {
	Endpoint() string

	Balance(ctx context.Context, owner solana.PublicKey) (uint64, error)
	TokenBalance(ctx context.Context, owner, mint solana.PublicKey) (amount uint64, decimals uint8, err error)

	TransferSOL(ctx context.Context, from solana.PrivateKey, to solana.PublicKey, lamports uint64) (solana.Signature, error)
	TransferToken(ctx context.Context, from solana.PrivateKey, to, mint solana.PublicKey, amount uint64, decimals uint8) (solana.Signature, error)
	Airdrop(ctx context.Context, to solana.PublicKey, lamports uint64) (solana.Signature, error)

	MintDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error)
	CreateMint(ctx context.Context, authority solana.PrivateKey, decimals uint8) (solana.PublicKey, solana.Signature, error)
	MintTo(ctx context.Context, authority solana.PrivateKey, mint, toOwner solana.PublicKey, amount uint64) (solana.Signature, error)
	Burn(ctx context.Context, owner solana.PrivateKey, mint solana.PublicKey, amount uint64) (solana.Signature, error)
	FreezeAccount(ctx context.Context, authority solana.PrivateKey, mint, owner solana.PublicKey) (solana.Signature, error)
	ThawAccount(ctx context.Context, authority solana.PrivateKey, mint, owner solana.PublicKey) (solana.Signature, error)
	SetAuthority(ctx context.Context, authority solana.PrivateKey, mint, newAuthority solana.PublicKey, authorityType token.AuthorityType) (solana.Signature, error)

	Transaction(ctx context.Context, signature solana.Signature) (*TransactionInfo, error)

	Health(ctx context.Context) error
	Version(ctx context.Context) (string, error)
	Slot(ctx context.Context) (uint64, error)
}

// TransactionInfo is the decoded view of a fetched transaction.
type TransactionInfo struct {
	Signature string
	Slot      uint64
	BlockTime *time.Time
	Status    string // "success" or "failed"
	Fee       uint64
	Logs      []string
}
