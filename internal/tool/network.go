package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/ExpertVagabond/solana-mcp-server/internal/client"
	"github.com/ExpertVagabond/solana-mcp-server/internal/common"
	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
	"github.com/ExpertVagabond/solana-mcp-server/internal/timeout"
)

func handleSwitchNetwork(_ context.Context, s *Session, args Args) (any, error) {
	id, endpoint := s.Networks.Switch(args.String("network"))
	s.Log.Info("network switched", zap.String("network", string(id)), zap.String("endpoint", endpoint))
	return model.NetworkResult{
		Network:  string(id),
		Endpoint: endpoint,
	}, nil
}

func handleGetNetwork(_ context.Context, s *Session, _ Args) (any, error) {
	id, endpoint := s.Networks.Current()
	return model.NetworkResult{
		Network:  string(id),
		Endpoint: endpoint,
	}, nil
}

func handleHealthCheck(ctx context.Context, s *Session, _ Args) (any, error) {
	led := s.Networks.Client()
	id, endpoint := s.Networks.Current()

	out := model.HealthResult{
		Status:   model.HealthStatusHealthy,
		Network:  string(id),
		Endpoint: endpoint,
	}

	probe := func(name string, fn func(ctx context.Context) (string, error)) {
		detail, err := timeout.Run(ctx, s.Cfg.HealthTimeout, name, fn)
		p := model.HealthProbe{Name: name, Status: "ok", Detail: detail}
		if err != nil {
			p.Status = "failed"
			p.Detail = err.Error()
			out.Status = model.HealthStatusDegraded
		}
		out.Probes = append(out.Probes, p)
	}

	probe("rpc_health", func(ctx context.Context) (string, error) {
		return "", led.Health(ctx)
	})
	probe("node_version", func(ctx context.Context) (string, error) {
		return led.Version(ctx)
	})
	probe("current_slot", func(ctx context.Context) (string, error) {
		slot, err := led.Slot(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", slot), nil
	})

	return out, nil
}

func handleGetTransaction(ctx context.Context, s *Session, args Args) (any, error) {
	sig, err := solana.SignatureFromBase58(args.String("signature"))
	if err != nil {
		return nil, model.InvalidArgumentf("invalid signature %q: %v", args.String("signature"), err)
	}

	info, err := ledgerCall(ctx, s, "get transaction", func(ctx context.Context, led client.Ledger) (*client.TransactionInfo, error) {
		return led.Transaction(ctx, sig)
	})
	if err != nil {
		return nil, err
	}

	id, _ := s.Networks.Current()
	out := model.TransactionResult{
		Signature:   info.Signature,
		Slot:        info.Slot,
		Status:      info.Status,
		Fee:         info.Fee,
		FeeSOL:      common.LamportsToSOL(info.Fee),
		Logs:        info.Logs,
		ExplorerURL: common.ExplorerTxURL(info.Signature, s.Networks.Cluster()),
		Network:     string(id),
	}
	if info.BlockTime != nil {
		out.BlockTime = info.BlockTime.UTC().Format(time.RFC3339)
	}
	return out, nil
}
