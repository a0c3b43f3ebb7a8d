package nodeclient

// Network is the bitcoin network the node operates on.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkRegtest Network = "regtest"
)

// Valid reports whether the network is one of the recognized values.
func (n Network) Valid() bool {
	switch n {
	case NetworkMainnet, NetworkTestnet, NetworkRegtest:
		return true
	}
	return false
}

// WalletType distinguishes a node embedded in the app from a remote one.
type WalletType string

const (
	WalletTypeEmbedded WalletType = "embedded"
	WalletTypeRemote   WalletType = "remote"
)

func (w WalletType) Valid() bool {
	return w == WalletTypeEmbedded || w == WalletTypeRemote
}

// AssetIface is the RGB asset interface tag.
type AssetIface string

const (
	AssetIfaceNia AssetIface = "Nia"
	AssetIfaceCfa AssetIface = "Cfa"
	AssetIfaceUda AssetIface = "Uda"
)

func (a AssetIface) Valid() bool {
	switch a {
	case AssetIfaceNia, AssetIfaceCfa, AssetIfaceUda:
		return true
	}
	return false
}

// TransferKind is the node-reported kind of an RGB transfer.
type TransferKind string

const (
	TransferKindIssuance       TransferKind = "Issuance"
	TransferKindSend           TransferKind = "Send"
	TransferKindReceiveBlind   TransferKind = "ReceiveBlind"
	TransferKindReceiveWitness TransferKind = "ReceiveWitness"
)

// TransferStatus is the derived, user-facing direction of a transfer.
type TransferStatus string

const (
	TransferStatusInternal TransferStatus = "INTERNAL"
	TransferStatusSent     TransferStatus = "SENT"
	TransferStatusReceived TransferStatus = "RECEIVED"
)

// TransactionStatus is the node-reported settlement state of a transfer.
type TransactionStatus string

const (
	TransactionStatusWaitingConfirmations TransactionStatus = "WaitingConfirmations"
	TransactionStatusWaitingCounterparty  TransactionStatus = "WaitingCounterparty"
	TransactionStatusSettled              TransactionStatus = "Settled"
	TransactionStatusConfirmed            TransactionStatus = "Confirmed"
	TransactionStatusFailed               TransactionStatus = "Failed"
)

// PaymentStatus is the state of an off-chain payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusSucceeded PaymentStatus = "Succeeded"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// Bitcoin display identity by network, used by the main page aggregation.
const (
	tickerMainnet = "BTC"
	tickerTestnet = "tBTC"
	tickerRegtest = "rBTC"

	nameMainnet = "Bitcoin"
	nameTestnet = "tBitcoin"
	nameRegtest = "rBitcoin"
)

// BitcoinTicker returns the offline BTC ticker for the network.
func BitcoinTicker(n Network) (string, error) {
	switch n {
	case NetworkMainnet:
		return tickerMainnet, nil
	case NetworkTestnet:
		return tickerTestnet, nil
	case NetworkRegtest:
		return tickerRegtest, nil
	}
	return "", errorf(KindInvalidNetwork, "invalid network type: %s", string(n))
}

// BitcoinName returns the offline BTC display name for the network.
func BitcoinName(n Network) (string, error) {
	switch n {
	case NetworkMainnet:
		return nameMainnet, nil
	case NetworkTestnet:
		return nameTestnet, nil
	case NetworkRegtest:
		return nameRegtest, nil
	}
	return "", errorf(KindInvalidNetwork, "invalid network type: %s", string(n))
}
