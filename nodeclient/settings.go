package nodeclient

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Preferences are the user choices the core persists between sessions.
type Preferences struct {
	WalletType          WalletType `yaml:"wallet_type"`
	Network             Network    `yaml:"network"`
	WalletInitialized   bool       `yaml:"wallet_initialized"`
	BackupConfigured    bool       `yaml:"backup_configured"`
	HideExhaustedAssets bool       `yaml:"hide_exhausted_assets"`
	ShowHiddenAssets    bool       `yaml:"show_hidden_assets"`
	NativeAuthEnabled   bool       `yaml:"native_auth_enabled"`
	DefaultFeeRate      uint64     `yaml:"default_fee_rate"`
}

// Settings is the narrow read surface the service layer consumes.
type Settings interface {
	WalletType() WalletType
	Network() Network
	HideExhaustedAssets() bool
	DefaultFeeRate() uint64
}

// SettingsStore persists preferences as a YAML file under the given
// directory. All accessors are safe for concurrent use.
type SettingsStore struct {
	path  string
	mu    sync.RWMutex
	prefs Preferences
}

// LoadSettings reads <dir>/settings.yaml, creating defaults when the file
// does not exist yet.
func LoadSettings(dir string) (*SettingsStore, error) {
	store := &SettingsStore{
		path: filepath.Join(dir, settingsFileName),
		prefs: Preferences{
			WalletType:     WalletTypeEmbedded,
			Network:        NetworkRegtest,
			DefaultFeeRate: defaultUtxoFeeRate,
		},
	}

	f, err := os.Open(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, errors.Wrap(err, "opening settings file")
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&store.prefs); err != nil {
		return nil, errors.Wrap(err, "decoding settings file")
	}
	if err := store.verify(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SettingsStore) verify() error {
	if !s.prefs.Network.Valid() {
		return errorf(KindInvalidNetwork, "invalid network type: %s", string(s.prefs.Network))
	}
	if !s.prefs.WalletType.Valid() {
		return errorf(KindSchemaValidation, "invalid wallet type: %s", string(s.prefs.WalletType))
	}
	if s.prefs.DefaultFeeRate == 0 {
		s.prefs.DefaultFeeRate = defaultUtxoFeeRate
	}
	return nil
}

func (s *SettingsStore) save() error {
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return errors.Wrap(err, "encoding settings")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "creating settings directory")
	}
	return errors.Wrap(os.WriteFile(s.path, data, 0o600), "writing settings file")
}

func (s *SettingsStore) WalletType() WalletType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.WalletType
}

func (s *SettingsStore) SetWalletType(wt WalletType) error {
	if !wt.Valid() {
		return errorf(KindSchemaValidation, "invalid wallet type: %s", string(wt))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.WalletType = wt
	return s.save()
}

func (s *SettingsStore) Network() Network {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.Network
}

func (s *SettingsStore) SetNetwork(n Network) error {
	if !n.Valid() {
		return errorf(KindInvalidNetwork, "invalid network type: %s", string(n))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.Network = n
	return s.save()
}

func (s *SettingsStore) WalletInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.WalletInitialized
}

func (s *SettingsStore) SetWalletInitialized(v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.WalletInitialized = v
	return s.save()
}

func (s *SettingsStore) BackupConfigured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.BackupConfigured
}

func (s *SettingsStore) SetBackupConfigured(v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.BackupConfigured = v
	return s.save()
}

func (s *SettingsStore) HideExhaustedAssets() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.HideExhaustedAssets
}

func (s *SettingsStore) SetHideExhaustedAssets(v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.HideExhaustedAssets = v
	return s.save()
}

func (s *SettingsStore) ShowHiddenAssets() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.ShowHiddenAssets
}

func (s *SettingsStore) SetShowHiddenAssets(v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.ShowHiddenAssets = v
	return s.save()
}

func (s *SettingsStore) NativeAuthEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.NativeAuthEnabled
}

func (s *SettingsStore) SetNativeAuthEnabled(v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.NativeAuthEnabled = v
	return s.save()
}

func (s *SettingsStore) DefaultFeeRate() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.DefaultFeeRate
}

func (s *SettingsStore) SetDefaultFeeRate(rate uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.DefaultFeeRate = rate
	return s.save()
}
