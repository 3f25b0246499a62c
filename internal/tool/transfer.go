package tool

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/ExpertVagabond/solana-mcp-server/internal/client"
	"github.com/ExpertVagabond/solana-mcp-server/internal/common"
	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
	"github.com/ExpertVagabond/solana-mcp-server/internal/network"
)

func handleTransferSOL(ctx context.Context, s *Session, args Args) (any, error) {
	from, err := s.Wallets.Get(args.String("from"))
	if err != nil {
		return nil, err
	}
	to, err := resolveOwner(s, "to", args.String("to"))
	if err != nil {
		return nil, err
	}
	lamports, err := common.SOLToLamports(args.String("amount"))
	if err != nil {
		return nil, model.InvalidArgumentf("invalid amount %q: %v", args.String("amount"), err)
	}

	sig, err := ledgerCall(ctx, s, "transfer SOL", func(ctx context.Context, led client.Ledger) (solana.Signature, error) {
		return led.TransferSOL(ctx, from.Key, to, lamports)
	})
	if err != nil {
		return nil, err
	}

	id, _ := s.Networks.Current()
	return model.TransferResult{
		Signature:   sig.String(),
		ExplorerURL: common.ExplorerTxURL(sig.String(), s.Networks.Cluster()),
		From:        from.Address().String(),
		To:          to.String(),
		// Echo the truncated amount actually moved, not the caller's input.
		Amount:  common.LamportsToSOL(lamports),
		Network: string(id),
	}, nil
}

func handleTransferToken(ctx context.Context, s *Session, args Args) (any, error) {
	from, err := s.Wallets.Get(args.String("from"))
	if err != nil {
		return nil, err
	}
	to, err := resolveOwner(s, "to", args.String("to"))
	if err != nil {
		return nil, err
	}
	mint, err := parseAddress("mint", args.String("mint"))
	if err != nil {
		return nil, err
	}

	// Decimal count comes from the chain on every call, never a cache.
	decimals, err := ledgerCall(ctx, s, "fetch mint", func(ctx context.Context, led client.Ledger) (uint8, error) {
		return led.MintDecimals(ctx, mint)
	})
	if err != nil {
		return nil, err
	}
	amount, err := common.ParseAmount(args.String("amount"), decimals)
	if err != nil {
		return nil, model.InvalidArgumentf("invalid amount %q: %v", args.String("amount"), err)
	}

	sig, err := ledgerCall(ctx, s, "transfer token", func(ctx context.Context, led client.Ledger) (solana.Signature, error) {
		return led.TransferToken(ctx, from.Key, to, mint, amount, decimals)
	})
	if err != nil {
		return nil, err
	}

	id, _ := s.Networks.Current()
	return model.TransferResult{
		Signature:   sig.String(),
		ExplorerURL: common.ExplorerTxURL(sig.String(), s.Networks.Cluster()),
		From:        from.Address().String(),
		To:          to.String(),
		Amount:      common.FormatAmount(amount, decimals),
		Mint:        mint.String(),
		Network:     string(id),
	}, nil
}

func handleRequestAirdrop(ctx context.Context, s *Session, args Args) (any, error) {
	// Policy gate: runs before any identity resolution or network call.
	if id, _ := s.Networks.Current(); id == network.Mainnet {
		return nil, model.OperationNotPermitted(
			"airdrops are not available on mainnet-beta",
			"switch to devnet or testnet to request test funds",
		)
	}

	to, err := resolveOwner(s, "to", args.String("to"))
	if err != nil {
		return nil, err
	}
	lamports, err := common.SOLToLamports(args.String("amount"))
	if err != nil {
		return nil, model.InvalidArgumentf("invalid amount %q: %v", args.String("amount"), err)
	}

	sig, err := ledgerCall(ctx, s, "request airdrop", func(ctx context.Context, led client.Ledger) (solana.Signature, error) {
		return led.Airdrop(ctx, to, lamports)
	})
	if err != nil {
		return nil, err
	}

	id, _ := s.Networks.Current()
	return model.AirdropResult{
		Signature:   sig.String(),
		ExplorerURL: common.ExplorerTxURL(sig.String(), s.Networks.Cluster()),
		To:          to.String(),
		Amount:      common.LamportsToSOL(lamports),
		Network:     string(id),
	}, nil
}
