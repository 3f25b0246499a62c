package tool

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/ExpertVagabond/solana-mcp-server/internal/common"
	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
)

func handleCreateWallet(_ context.Context, s *Session, args Args) (any, error) {
	id, err := s.Wallets.Create(args.String("name"))
	if err != nil {
		return nil, err
	}

	s.Log.Info("wallet created", zap.String("name", id.Name))
	return model.CreateWalletResult{
		Name:    id.Name,
		Address: id.Address().String(),
		// Disclosed once, at creation; never retrievable again.
		PrivateKey: id.Key.String(),
	}, nil
}

func handleImportWallet(_ context.Context, s *Session, args Args) (any, error) {
	id, err := s.Wallets.Import(args.String("name"), args.String("private_key"))
	if err != nil {
		return nil, err
	}

	s.Log.Info("wallet imported", zap.String("name", id.Name))
	return model.ImportWalletResult{
		Name:    id.Name,
		Address: id.Address().String(),
	}, nil
}

func handleListWallets(_ context.Context, s *Session, _ Args) (any, error) {
	ids := s.Wallets.List()
	sort.Slice(ids, func(i, j int) bool { return ids[i].Name < ids[j].Name })

	out := model.ListWalletsResult{Wallets: make([]model.WalletInfo, 0, len(ids))}
	for _, id := range ids {
		out.Wallets = append(out.Wallets, model.WalletInfo{
			Name:    id.Name,
			Address: id.Address().String(),
		})
	}
	return out, nil
}

func handleGetWalletAddress(_ context.Context, s *Session, args Args) (any, error) {
	id, err := s.Wallets.Get(args.String("name"))
	if err != nil {
		return nil, err
	}

	address := id.Address().String()
	return model.WalletAddressResult{
		Name:        id.Name,
		Address:     address,
		ExplorerURL: common.ExplorerAddressURL(address, s.Networks.Cluster()),
	}, nil
}

func handleGetWalletQR(_ context.Context, s *Session, args Args) (any, error) {
	id, err := s.Wallets.Get(args.String("name"))
	if err != nil {
		return nil, err
	}

	address := id.Address().String()
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	png, err := qr.PNG(256)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	return model.WalletQRResult{
		Name:     id.Name,
		Address:  address,
		PNG:      base64.StdEncoding.EncodeToString(png),
		Encoding: "image/png;base64",
	}, nil
}
