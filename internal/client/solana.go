// Package client wraps the Solana JSON-RPC client with the typed operations
// this server exposes. Transaction construction, signing and submission all
// live here; handlers never touch the RPC connection directly.
package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
)

const (
	// On-chain account sizes for rent-exemption lookups.
	mintAccountSize = 82

	// Confirmation polling for standalone token-account creation.
	confirmPollInterval = 500 * time.Millisecond
	confirmPollAttempts = 20
)

// Client talks to a single RPC endpoint at the "confirmed" commitment level.
type Client struct {
	rpc      RPC
	endpoint string
}

// New dials endpoint. No network traffic happens until the first call.
func New(endpoint string) *Client {
	return &Client{rpc: rpc.New(endpoint), endpoint: endpoint}
}

// NewWithRPC builds a client over an existing RPC implementation.
func NewWithRPC(rpcClient RPC, endpoint string) *Client {
	return &Client{rpc: rpcClient, endpoint: endpoint}
}

// Dial adapts New to the connection manager's dial signature.
func Dial(endpoint string) Ledger {
	return New(endpoint)
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Balance returns the SOL balance of owner in lamports.
func (c *Client) Balance(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	out, err := c.rpc.GetBalance(ctx, owner, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return out.Value, nil
}

// TokenBalance returns owner's balance of mint in smallest units, plus the
// token's decimal count. A missing token account reads as zero.
func (c *Client) TokenBalance(ctx context.Context, owner, mint solana.PublicKey) (uint64, uint8, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to derive token account address: %w", err)
	}

	out, err := c.rpc.GetTokenAccountBalance(ctx, ata, rpc.CommitmentConfirmed)
	if err != nil {
		if isNotFound(err) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("failed to get token balance: %w", err)
	}
	if out.Value == nil {
		return 0, 0, nil
	}

	amount, err := strconv.ParseUint(out.Value.Amount, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse token balance: %w", err)
	}
	return amount, out.Value.Decimals, nil
}

// TransferSOL moves lamports from the signing key to the destination in a
// single system-transfer transaction. No local balance check is made:
// insufficient funds surface as the network's rejection.
func (c *Client) TransferSOL(ctx context.Context, from solana.PrivateKey, to solana.PublicKey, lamports uint64) (solana.Signature, error) {
	ix := system.NewTransferInstruction(lamports, from.PublicKey(), to).Build()
	return c.sendTx(ctx, []solana.PrivateKey{from}, ix)
}

// TransferToken moves amount smallest units of mint from the signer to the
// destination owner. When the destination's token account does not exist yet,
// its creation is prepended to the same transaction so creation and transfer
// commit or fail together.
func (c *Client) TransferToken(ctx context.Context, from solana.PrivateKey, to, mint solana.PublicKey, amount uint64, decimals uint8) (solana.Signature, error) {
	owner := from.PublicKey()

	source, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to derive source token account: %w", err)
	}
	if _, err := c.rpc.GetTokenAccountBalance(ctx, source, rpc.CommitmentConfirmed); err != nil {
		if isNotFound(err) {
			return solana.Signature{}, &model.Fault{
				Kind:    model.FaultNetworkRejection,
				Message: fmt.Sprintf("sender holds no token account for mint %s", mint),
				Hint:    "the sender must receive some of this token before transferring it",
			}
		}
		return solana.Signature{}, fmt.Errorf("failed to check source token account: %w", err)
	}

	dest, _, err := solana.FindAssociatedTokenAddress(to, mint)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to derive destination token account: %w", err)
	}

	var instructions []solana.Instruction
	info, err := c.rpc.GetAccountInfo(ctx, dest)
	switch {
	case err != nil && !isNotFound(err):
		return solana.Signature{}, fmt.Errorf("failed to check destination token account: %w", err)
	case err != nil || info.Value == nil:
		instructions = append(instructions, associatedtokenaccount.NewCreateInstruction(owner, to, mint).Build())
	}

	instructions = append(instructions, token.NewTransferCheckedInstruction(
		amount,
		decimals,
		source,
		mint,
		dest,
		owner,
		[]solana.PublicKey{},
	).Build())

	return c.sendTx(ctx, []solana.PrivateKey{from}, instructions...)
}

// Airdrop requests test funds for the destination. Policy (mainnet denial)
// is enforced by the handler before this is reached.
func (c *Client) Airdrop(ctx context.Context, to solana.PublicKey, lamports uint64) (solana.Signature, error) {
	sig, err := c.rpc.RequestAirdrop(ctx, to, lamports, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("airdrop request failed: %w", err)
	}
	return sig, nil
}

// MintDecimals reads the decimal count from the mint account. Fetched fresh
// on every call; never cached.
func (c *Client) MintDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error) {
	info, err := c.rpc.GetAccountInfo(ctx, mint)
	if err != nil {
		if isNotFound(err) {
			return 0, model.InvalidAddress("mint", fmt.Errorf("no account at %s", mint))
		}
		return 0, fmt.Errorf("failed to fetch mint account: %w", err)
	}
	if info.Value == nil {
		return 0, model.InvalidAddress("mint", fmt.Errorf("no account at %s", mint))
	}

	var mintAccount token.Mint
	if err := bin.NewBinDecoder(info.Value.Data.GetBinary()).Decode(&mintAccount); err != nil {
		return 0, model.InvalidAddress("mint", fmt.Errorf("account at %s is not a token mint: %w", mint, err))
	}
	return mintAccount.Decimals, nil
}

// CreateMint creates and initializes a new token mint with the authority as
// payer, mint authority and freeze authority.
func (c *Client) CreateMint(ctx context.Context, authority solana.PrivateKey, decimals uint8) (solana.PublicKey, solana.Signature, error) {
	rent, err := c.rpc.GetMinimumBalanceForRentExemption(ctx, mintAccountSize, rpc.CommitmentFinalized)
	if err != nil {
		return solana.PublicKey{}, solana.Signature{}, fmt.Errorf("failed to get rent exemption: %w", err)
	}

	mintKey := solana.NewWallet().PrivateKey
	payer := authority.PublicKey()

	createIx := system.NewCreateAccountInstruction(
		rent,
		mintAccountSize,
		token.ProgramID,
		payer,
		mintKey.PublicKey(),
	).Build()
	initIx := token.NewInitializeMintInstruction(
		decimals,
		payer,
		payer,
		mintKey.PublicKey(),
		solana.SysVarRentPubkey,
	).Build()

	sig, err := c.sendTx(ctx, []solana.PrivateKey{authority, mintKey}, createIx, initIx)
	if err != nil {
		return solana.PublicKey{}, solana.Signature{}, err
	}
	return mintKey.PublicKey(), sig, nil
}

// MintTo mints amount smallest units into toOwner's token account, creating
// that account first when needed.
func (c *Client) MintTo(ctx context.Context, authority solana.PrivateKey, mint, toOwner solana.PublicKey, amount uint64) (solana.Signature, error) {
	dest, err := c.ensureTokenAccount(ctx, authority, toOwner, mint)
	if err != nil {
		return solana.Signature{}, err
	}

	ix := token.NewMintToInstruction(amount, mint, dest, authority.PublicKey(), []solana.PublicKey{}).Build()
	return c.sendTx(ctx, []solana.PrivateKey{authority}, ix)
}

// Burn destroys amount smallest units from the owner's token account.
func (c *Client) Burn(ctx context.Context, owner solana.PrivateKey, mint solana.PublicKey, amount uint64) (solana.Signature, error) {
	source, _, err := solana.FindAssociatedTokenAddress(owner.PublicKey(), mint)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to derive token account: %w", err)
	}

	ix := token.NewBurnInstruction(amount, source, mint, owner.PublicKey(), []solana.PublicKey{}).Build()
	return c.sendTx(ctx, []solana.PrivateKey{owner}, ix)
}

// FreezeAccount freezes the owner's token account for mint. The signer must
// hold the mint's freeze authority on chain; this is not validated locally.
func (c *Client) FreezeAccount(ctx context.Context, authority solana.PrivateKey, mint, owner solana.PublicKey) (solana.Signature, error) {
	account, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to derive token account: %w", err)
	}

	ix := token.NewFreezeAccountInstruction(account, mint, authority.PublicKey(), []solana.PublicKey{}).Build()
	return c.sendTx(ctx, []solana.PrivateKey{authority}, ix)
}

// ThawAccount reverses FreezeAccount.
func (c *Client) ThawAccount(ctx context.Context, authority solana.PrivateKey, mint, owner solana.PublicKey) (solana.Signature, error) {
	account, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to derive token account: %w", err)
	}

	ix := token.NewThawAccountInstruction(account, mint, authority.PublicKey(), []solana.PublicKey{}).Build()
	return c.sendTx(ctx, []solana.PrivateKey{authority}, ix)
}

// SetAuthority reassigns a mint authority. Authority holdership is the
// network's to verify.
func (c *Client) SetAuthority(ctx context.Context, authority solana.PrivateKey, mint, newAuthority solana.PublicKey, authorityType token.AuthorityType) (solana.Signature, error) {
	ix := token.NewSetAuthorityInstruction(
		authorityType,
		newAuthority,
		mint,
		authority.PublicKey(),
		[]solana.PublicKey{},
	).Build()
	return c.sendTx(ctx, []solana.PrivateKey{authority}, ix)
}

// Transaction fetches a transaction by signature.
func (c *Client) Transaction(ctx context.Context, signature solana.Signature) (*TransactionInfo, error) {
	maxVersion := uint64(0)
	out, err := c.rpc.GetTransaction(ctx, signature, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}

	info := &TransactionInfo{
		Signature: signature.String(),
		Slot:      out.Slot,
		Status:    "success",
	}
	if out.BlockTime != nil {
		t := time.Unix(int64(*out.BlockTime), 0).UTC()
		info.BlockTime = &t
	}
	if out.Meta != nil {
		info.Fee = out.Meta.Fee
		info.Logs = out.Meta.LogMessages
		if out.Meta.Err != nil {
			info.Status = "failed"
		}
	}
	return info, nil
}

// Health reports whether the RPC node considers itself healthy.
func (c *Client) Health(ctx context.Context) error {
	out, err := c.rpc.GetHealth(ctx)
	if err != nil {
		return err
	}
	if out != rpc.HealthOk {
		return errors.New(out)
	}
	return nil
}

func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.rpc.GetVersion(ctx)
	if err != nil {
		return "", err
	}
	return out.SolanaCore, nil
}

func (c *Client) Slot(ctx context.Context) (uint64, error) {
	return c.rpc.GetSlot(ctx, rpc.CommitmentConfirmed)
}

// ensureTokenAccount returns the associated token account of owner for mint,
// creating it in a standalone transaction first when it does not exist. The
// creation is polled to confirmation before the caller proceeds.
func (c *Client) ensureTokenAccount(ctx context.Context, payer solana.PrivateKey, owner, mint solana.PublicKey) (solana.PublicKey, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive token account address: %w", err)
	}

	info, err := c.rpc.GetAccountInfo(ctx, ata)
	if err == nil && info.Value != nil {
		return ata, nil
	}
	if err != nil && !isNotFound(err) {
		return solana.PublicKey{}, fmt.Errorf("failed to check token account: %w", err)
	}

	ix := associatedtokenaccount.NewCreateInstruction(payer.PublicKey(), owner, mint).Build()
	sig, err := c.sendTx(ctx, []solana.PrivateKey{payer}, ix)
	if err != nil {
		return solana.PublicKey{}, err
	}
	if err := c.waitConfirmed(ctx, sig); err != nil {
		return solana.PublicKey{}, err
	}
	return ata, nil
}

// waitConfirmed polls signature statuses until the transaction reaches the
// confirmed commitment or the attempt budget runs out.
func (c *Client) waitConfirmed(ctx context.Context, sig solana.Signature) error {
	for attempt := 0; attempt < confirmPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(confirmPollInterval):
		}

		out, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
		if err != nil || out == nil || len(out.Value) == 0 || out.Value[0] == nil {
			continue
		}
		status := out.Value[0]
		if status.Err != nil {
			return fmt.Errorf("transaction %s failed on chain: %v", sig, status.Err)
		}
		switch status.ConfirmationStatus {
		case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
			return nil
		}
	}
	return fmt.Errorf("transaction %s not confirmed after %s", sig, time.Duration(confirmPollAttempts)*confirmPollInterval)
}

// sendTx fetches a fresh blockhash, builds a transaction paid by the first
// signer, signs it and submits it.
func (c *Client) sendTx(ctx context.Context, signers []solana.PrivateKey, instructions ...solana.Instruction) (solana.Signature, error) {
	recent, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(signers[0].PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to build transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	return sig, nil
}

// isNotFound reports whether err indicates a missing account.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, rpc.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "could not find account") ||
		strings.Contains(errStr, "not found")
}
