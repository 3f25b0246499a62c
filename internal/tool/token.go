package tool

import (
	"context"
	"math"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/ExpertVagabond/solana-mcp-server/internal/client"
	"github.com/ExpertVagabond/solana-mcp-server/internal/common"
	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
)

func handleCreateToken(ctx context.Context, s *Session, args Args) (any, error) {
	authority, err := s.Wallets.Get(args.String("authority"))
	if err != nil {
		return nil, err
	}

	raw := args.Number("decimals")
	if math.Trunc(raw) != raw || raw < 0 || raw > 9 {
		return nil, model.InvalidArgumentf("decimals must be an integer between 0 and 9, got %v", raw)
	}
	decimals := uint8(raw)

	type created struct {
		mint solana.PublicKey
		sig  solana.Signature
	}
	out, err := ledgerCall(ctx, s, "create token", func(ctx context.Context, led client.Ledger) (created, error) {
		mint, sig, err := led.CreateMint(ctx, authority.Key, decimals)
		return created{mint: mint, sig: sig}, err
	})
	if err != nil {
		return nil, err
	}

	id, _ := s.Networks.Current()
	return model.CreateTokenResult{
		Mint:        out.mint.String(),
		Authority:   authority.Address().String(),
		Decimals:    decimals,
		Signature:   out.sig.String(),
		ExplorerURL: common.ExplorerTxURL(out.sig.String(), s.Networks.Cluster()),
		Network:     string(id),
	}, nil
}

func handleMintToken(ctx context.Context, s *Session, args Args) (any, error) {
	authority, err := s.Wallets.Get(args.String("authority"))
	if err != nil {
		return nil, err
	}
	mint, err := parseAddress("mint", args.String("mint"))
	if err != nil {
		return nil, err
	}
	to, err := resolveOwner(s, "to", args.String("to"))
	if err != nil {
		return nil, err
	}

	amount, decimals, err := parseTokenAmount(ctx, s, mint, args.String("amount"))
	if err != nil {
		return nil, err
	}

	sig, err := ledgerCall(ctx, s, "mint token", func(ctx context.Context, led client.Ledger) (solana.Signature, error) {
		return led.MintTo(ctx, authority.Key, mint, to, amount)
	})
	if err != nil {
		return nil, err
	}

	return tokenOpResult(s, "mint", mint, to.String(), common.FormatAmount(amount, decimals), sig), nil
}

func handleBurnToken(ctx context.Context, s *Session, args Args) (any, error) {
	owner, err := s.Wallets.Get(args.String("owner"))
	if err != nil {
		return nil, err
	}
	mint, err := parseAddress("mint", args.String("mint"))
	if err != nil {
		return nil, err
	}

	amount, decimals, err := parseTokenAmount(ctx, s, mint, args.String("amount"))
	if err != nil {
		return nil, err
	}

	sig, err := ledgerCall(ctx, s, "burn token", func(ctx context.Context, led client.Ledger) (solana.Signature, error) {
		return led.Burn(ctx, owner.Key, mint, amount)
	})
	if err != nil {
		return nil, err
	}

	return tokenOpResult(s, "burn", mint, owner.Address().String(), common.FormatAmount(amount, decimals), sig), nil
}

func handleFreezeAccount(ctx context.Context, s *Session, args Args) (any, error) {
	return freezeOrThaw(ctx, s, args, "freeze")
}

func handleThawAccount(ctx context.Context, s *Session, args Args) (any, error) {
	return freezeOrThaw(ctx, s, args, "thaw")
}

func freezeOrThaw(ctx context.Context, s *Session, args Args, op string) (any, error) {
	authority, err := s.Wallets.Get(args.String("authority"))
	if err != nil {
		return nil, err
	}
	mint, err := parseAddress("mint", args.String("mint"))
	if err != nil {
		return nil, err
	}
	owner, err := resolveOwner(s, "owner", args.String("owner"))
	if err != nil {
		return nil, err
	}

	sig, err := ledgerCall(ctx, s, op+" account", func(ctx context.Context, led client.Ledger) (solana.Signature, error) {
		if op == "freeze" {
			return led.FreezeAccount(ctx, authority.Key, mint, owner)
		}
		return led.ThawAccount(ctx, authority.Key, mint, owner)
	})
	if err != nil {
		return nil, err
	}

	return tokenOpResult(s, op, mint, owner.String(), "", sig), nil
}

func handleSetTokenAuthority(ctx context.Context, s *Session, args Args) (any, error) {
	authority, err := s.Wallets.Get(args.String("authority"))
	if err != nil {
		return nil, err
	}
	mint, err := parseAddress("mint", args.String("mint"))
	if err != nil {
		return nil, err
	}
	newAuthority, err := resolveOwner(s, "new_authority", args.String("new_authority"))
	if err != nil {
		return nil, err
	}

	var authorityType token.AuthorityType
	switch args.String("authority_type") {
	case "mint":
		authorityType = token.AuthorityMintTokens
	case "freeze":
		authorityType = token.AuthorityFreezeAccount
	default:
		return nil, model.InvalidArgumentf("authority_type must be %q or %q, got %q", "mint", "freeze", args.String("authority_type"))
	}

	sig, err := ledgerCall(ctx, s, "set token authority", func(ctx context.Context, led client.Ledger) (solana.Signature, error) {
		return led.SetAuthority(ctx, authority.Key, mint, newAuthority, authorityType)
	})
	if err != nil {
		return nil, err
	}

	return tokenOpResult(s, "set_authority:"+args.String("authority_type"), mint, newAuthority.String(), "", sig), nil
}

// parseTokenAmount fetches the mint's decimal count fresh from the network
// and converts the caller's decimal string to smallest units (truncating).
func parseTokenAmount(ctx context.Context, s *Session, mint solana.PublicKey, raw string) (uint64, uint8, error) {
	decimals, err := ledgerCall(ctx, s, "fetch mint", func(ctx context.Context, led client.Ledger) (uint8, error) {
		return led.MintDecimals(ctx, mint)
	})
	if err != nil {
		return 0, 0, err
	}
	amount, err := common.ParseAmount(raw, decimals)
	if err != nil {
		return 0, 0, model.InvalidArgumentf("invalid amount %q: %v", raw, err)
	}
	return amount, decimals, nil
}

func tokenOpResult(s *Session, op string, mint solana.PublicKey, account, amount string, sig solana.Signature) model.TokenOpResult {
	id, _ := s.Networks.Current()
	return model.TokenOpResult{
		Operation:   op,
		Mint:        mint.String(),
		Account:     account,
		Amount:      amount,
		Signature:   sig.String(),
		ExplorerURL: common.ExplorerTxURL(sig.String(), s.Networks.Cluster()),
		Network:     string(id),
	}
}
