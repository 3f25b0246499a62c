package tool

import (
	"context"

	"github.com/ExpertVagabond/solana-mcp-server/internal/client"
	"github.com/ExpertVagabond/solana-mcp-server/internal/common"
	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
)

func handleGetBalance(ctx context.Context, s *Session, args Args) (any, error) {
	owner, err := resolveOwner(s, "owner", args.String("owner"))
	if err != nil {
		return nil, err
	}

	lamports, err := ledgerCall(ctx, s, "get balance", func(ctx context.Context, led client.Ledger) (uint64, error) {
		return led.Balance(ctx, owner)
	})
	if err != nil {
		return nil, err
	}

	id, _ := s.Networks.Current()
	return model.BalanceResult{
		Address:  owner.String(),
		Lamports: lamports,
		SOL:      common.LamportsToSOL(lamports),
		Network:  string(id),
	}, nil
}

func handleGetTokenBalance(ctx context.Context, s *Session, args Args) (any, error) {
	owner, err := resolveOwner(s, "owner", args.String("owner"))
	if err != nil {
		return nil, err
	}
	mint, err := parseAddress("mint", args.String("mint"))
	if err != nil {
		return nil, err
	}

	type tokenBalance struct {
		amount   uint64
		decimals uint8
	}
	bal, err := ledgerCall(ctx, s, "get token balance", func(ctx context.Context, led client.Ledger) (tokenBalance, error) {
		amount, decimals, err := led.TokenBalance(ctx, owner, mint)
		return tokenBalance{amount: amount, decimals: decimals}, err
	})
	if err != nil {
		return nil, err
	}

	id, _ := s.Networks.Current()
	return model.TokenBalanceResult{
		Address:  owner.String(),
		Mint:     mint.String(),
		Amount:   bal.amount,
		UIAmount: common.FormatAmount(bal.amount, bal.decimals),
		Decimals: bal.decimals,
		Network:  string(id),
	}, nil
}
