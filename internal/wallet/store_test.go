package wallet

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
)

func TestCreateAndGet(t *testing.T) {
	s := NewStore()

	id, err := s.Create("alice")
	require.NoError(t, err)
	require.Equal(t, "alice", id.Name)
	require.Len(t, id.Key, 64)

	got, err := s.Get("alice")
	require.NoError(t, err)
	require.Equal(t, id.Address(), got.Address())
}

func TestCreateDuplicateLeavesBindingUnchanged(t *testing.T) {
	s := NewStore()

	first, err := s.Create("alice")
	require.NoError(t, err)

	_, err = s.Create("alice")
	require.True(t, model.IsKind(err, model.FaultDuplicateIdentity))

	got, err := s.Get("alice")
	require.NoError(t, err)
	require.Equal(t, first.Address(), got.Address())
}

func TestImportRoundTrip(t *testing.T) {
	s := NewStore()
	key := solana.NewWallet().PrivateKey

	id, err := s.Import("bob", key.String())
	require.NoError(t, err)
	require.Equal(t, key.PublicKey(), id.Address())

	// Importing the same key under the same name is still a duplicate.
	_, err = s.Import("bob", key.String())
	require.True(t, model.IsKind(err, model.FaultDuplicateIdentity))
}

func TestImportRejectsBadKeyMaterial(t *testing.T) {
	s := NewStore()

	_, err := s.Import("bob", "not-base58-0OIl")
	require.True(t, model.IsKind(err, model.FaultInvalidKeyMaterial))

	// Valid base58 but wrong length (a 32-byte public key, not a keypair).
	_, err = s.Import("bob", solana.NewWallet().PublicKey().String())
	require.True(t, model.IsKind(err, model.FaultInvalidKeyMaterial))

	_, err = s.Get("bob")
	require.True(t, model.IsKind(err, model.FaultIdentityNotFound))
}

func TestGetUnknown(t *testing.T) {
	s := NewStore()
	_, err := s.Get("nobody")
	require.True(t, model.IsKind(err, model.FaultIdentityNotFound))
}

func TestEmptyNameRejected(t *testing.T) {
	s := NewStore()
	_, err := s.Create("   ")
	require.True(t, model.IsKind(err, model.FaultInvalidArgument))
}

func TestList(t *testing.T) {
	s := NewStore()
	_, err := s.Create("alice")
	require.NoError(t, err)
	_, err = s.Create("bob")
	require.NoError(t, err)

	ids := s.List()
	require.Len(t, ids, 2)
	names := map[string]bool{}
	for _, id := range ids {
		names[id.Name] = true
	}
	require.True(t, names["alice"])
	require.True(t, names["bob"])
}
