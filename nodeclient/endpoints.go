package nodeclient

// Endpoint identifies a path on the RGB Lightning Node HTTP API.
type Endpoint string

// Channels
const (
	CloseChannelEndpoint Endpoint = "/closechannel"
	ListChannelsEndpoint Endpoint = "/listchannels"
	OpenChannelEndpoint  Endpoint = "/openchannel"
)

// Peers
const (
	ConnectPeerEndpoint    Endpoint = "/connectpeer"
	DisconnectPeerEndpoint Endpoint = "/disconnectpeer"
	ListPeersEndpoint      Endpoint = "/listpeers"
)

// Payments
const (
	KeySendEndpoint      Endpoint = "/keysend"
	ListPaymentsEndpoint Endpoint = "/listpayments"
	SendPaymentEndpoint  Endpoint = "/sendpayment"
)

// Invoices
const (
	DecodeLnInvoiceEndpoint Endpoint = "/decodelninvoice"
	InvoiceStatusEndpoint   Endpoint = "/invoicestatus"
	LnInvoiceEndpoint       Endpoint = "/lninvoice"
)

// On-chain
const (
	AddressEndpoint          Endpoint = "/address"
	BtcBalanceEndpoint       Endpoint = "/btcbalance"
	ListTransactionsEndpoint Endpoint = "/listtransactions"
	ListUnspentsEndpoint     Endpoint = "/listunspents"
	SendBtcEndpoint          Endpoint = "/sendbtc"
	EstimateFeeEndpoint      Endpoint = "/estimatefee"
)

// RGB
const (
	AssetBalanceEndpoint     Endpoint = "/assetbalance"
	CreateUtxosEndpoint      Endpoint = "/createutxos"
	DecodeRgbInvoiceEndpoint Endpoint = "/decodergbinvoice"
	FailTransfersEndpoint    Endpoint = "/failtransfers"
	IssueAssetNiaEndpoint    Endpoint = "/issueassetnia"
	IssueAssetCfaEndpoint    Endpoint = "/issueassetcfa"
	IssueAssetUdaEndpoint    Endpoint = "/issueassetuda"
	ListAssetsEndpoint       Endpoint = "/listassets"
	ListTransfersEndpoint    Endpoint = "/listtransfers"
	RefreshTransfersEndpoint Endpoint = "/refreshtransfers"
	RgbInvoiceEndpoint       Endpoint = "/rgbinvoice"
	SendAssetEndpoint        Endpoint = "/sendasset"
	GetAssetMediaEndpoint    Endpoint = "/getassetmedia"
	PostAssetMediaEndpoint   Endpoint = "/postassetmedia"
)

// Swaps
const (
	ListTradesEndpoint   Endpoint = "/listtrades"
	MakerExecuteEndpoint Endpoint = "/makerexecute"
	MakerInitEndpoint    Endpoint = "/makerinit"
	TakerEndpoint        Endpoint = "/taker"
)

// Control
const (
	BackupEndpoint             Endpoint = "/backup"
	ChangePasswordEndpoint     Endpoint = "/changepassword"
	CheckIndexerURLEndpoint    Endpoint = "/checkindexerurl"
	CheckProxyEndpointEndpoint Endpoint = "/checkproxyendpoint"
	InitEndpoint               Endpoint = "/init"
	LockEndpoint               Endpoint = "/lock"
	NetworkInfoEndpoint        Endpoint = "/networkinfo"
	NodeInfoEndpoint           Endpoint = "/nodeinfo"
	RestoreEndpoint            Endpoint = "/restore"
	SendOnionMessageEndpoint   Endpoint = "/sendonionmessage"
	ShutdownEndpoint           Endpoint = "/shutdown"
	SignMessageEndpoint        Endpoint = "/signmessage"
	UnlockEndpoint             Endpoint = "/unlock"
)

// Faucet (external service, separate base URL)
const (
	ListFaucetAssetsEndpoint   Endpoint = "/control/assets"
	WalletConfigEndpoint       Endpoint = "/receive/config"
	RequestFaucetAssetEndpoint Endpoint = "/receive/asset"
)

// cacheableEndpoints is the closed set of read endpoints whose responses
// may be memoized. Changing this set is a deliberate policy edit.
var cacheableEndpoints = map[Endpoint]struct{}{
	BtcBalanceEndpoint:       {},
	ListTransactionsEndpoint: {},
	ListUnspentsEndpoint:     {},
}

// IsCacheable reports whether responses for the endpoint may be cached.
func IsCacheable(e Endpoint) bool {
	_, ok := cacheableEndpoints[e]
	return ok
}
