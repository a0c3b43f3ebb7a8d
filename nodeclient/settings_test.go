package nodeclient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsStore(t *testing.T) {
	t.Run("fresh directory starts with defaults", func(t *testing.T) {
		store, err := LoadSettings(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, WalletTypeEmbedded, store.WalletType())
		assert.Equal(t, NetworkRegtest, store.Network())
		assert.False(t, store.HideExhaustedAssets())
		assert.Equal(t, uint64(defaultUtxoFeeRate), store.DefaultFeeRate())
	})

	t.Run("preferences survive a reload", func(t *testing.T) {
		dir := t.TempDir()
		store, err := LoadSettings(dir)
		require.NoError(t, err)

		require.NoError(t, store.SetWalletType(WalletTypeRemote))
		require.NoError(t, store.SetNetwork(NetworkTestnet))
		require.NoError(t, store.SetHideExhaustedAssets(true))
		require.NoError(t, store.SetDefaultFeeRate(12))
		require.NoError(t, store.SetWalletInitialized(true))
		require.NoError(t, store.SetNativeAuthEnabled(true))

		reloaded, err := LoadSettings(dir)
		require.NoError(t, err)
		assert.Equal(t, WalletTypeRemote, reloaded.WalletType())
		assert.Equal(t, NetworkTestnet, reloaded.Network())
		assert.True(t, reloaded.HideExhaustedAssets())
		assert.Equal(t, uint64(12), reloaded.DefaultFeeRate())
		assert.True(t, reloaded.WalletInitialized())
		assert.True(t, reloaded.NativeAuthEnabled())
	})

	t.Run("invalid enum values are rejected on write", func(t *testing.T) {
		store, err := LoadSettings(t.TempDir())
		require.NoError(t, err)

		err = store.SetNetwork(Network("signet"))
		require.Error(t, err)
		require.Equal(t, KindInvalidNetwork, KindOf(err))

		err = store.SetWalletType(WalletType("cloud"))
		require.Error(t, err)
		require.Equal(t, KindSchemaValidation, KindOf(err))
	})

	t.Run("corrupt stored network fails the load", func(t *testing.T) {
		dir := t.TempDir()
		data := []byte("wallet_type: embedded\nnetwork: signet\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), data, 0o600))

		_, err := LoadSettings(dir)
		require.Error(t, err)
		require.Equal(t, KindInvalidNetwork, KindOf(err))
	})
}
