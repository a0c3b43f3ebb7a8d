package nodeclient

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Defaults shared by request models and services.
const (
	defaultRequestTimeout = 120 * time.Second

	defaultUtxoNum     = 1
	defaultUtxoSizeSat = 1000
	defaultUtxoFeeRate = 5

	// Colorable UTXO size required when opening an asset channel.
	channelUtxoSizeSat = 32000

	defaultRgbInvoiceDurationSeconds = 86400

	defaultInvoiceAmtMsat    = 3000000
	defaultInvoiceExpirySec  = 420
	defaultOpenChannelCapSat = 30010
	defaultOpenChannelPush   = 1394000
	defaultFeeBaseMsat       = 1000

	// Block target used when estimating the fee for channel UTXOs.
	mediumTransactionFeeBlocks = 7
)

// Config holds the client core configuration, loaded from the
// environment.
type Config struct {
	NodeURL        string        `env:"IRIS_WALLET_NODE_URL" env-default:"http://127.0.0.1:3001"`
	AuthToken      string        `env:"IRIS_WALLET_NODE_TOKEN" env-default:""`
	RequestTimeout time.Duration `env:"IRIS_WALLET_REQUEST_TIMEOUT" env-default:"120s"`

	Network    Network    `env:"IRIS_WALLET_NETWORK" env-default:"regtest"`
	WalletType WalletType `env:"IRIS_WALLET_TYPE" env-default:"embedded"`

	CacheEnabled bool          `env:"IRIS_WALLET_CACHE_ENABLED" env-default:"true"`
	CachePath    string        `env:"IRIS_WALLET_CACHE_PATH" env-default:""`
	CacheTTL     time.Duration `env:"IRIS_WALLET_CACHE_TTL" env-default:"600s"`

	FaucetURL string `env:"IRIS_WALLET_FAUCET_URL" env-default:""`
	FaucetKey string `env:"IRIS_WALLET_FAUCET_KEY" env-default:""`

	SettingsPath string `env:"IRIS_WALLET_SETTINGS_PATH" env-default:""`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the closed enum fields.
func (c Config) Validate() error {
	if !c.Network.Valid() {
		return errorf(KindInvalidNetwork, "invalid network type: %s", string(c.Network))
	}
	if !c.WalletType.Valid() {
		return errorf(KindSchemaValidation, "invalid wallet type: %s", string(c.WalletType))
	}
	return nil
}
