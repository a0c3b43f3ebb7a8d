package nodeclient

import (
	"context"
	"strconv"
)

// Media describes an asset media attachment known to the node. Hex is a
// lazily fetched copy of the payload, populated only for remote wallets.
type Media struct {
	FilePath string  `json:"file_path"`
	Digest   string  `json:"digest"`
	Mime     string  `json:"mime"`
	Hex      *string `json:"hex,omitempty"`
}

// Token is the UDA token detail attached to a unique asset.
type Token struct {
	Index         uint32           `json:"index"`
	Ticker        *string          `json:"ticker,omitempty"`
	Name          *string          `json:"name,omitempty"`
	Details       *string          `json:"details,omitempty"`
	EmbeddedMedia bool             `json:"embedded_media"`
	Media         *Media           `json:"media,omitempty"`
	Attachments   map[string]Media `json:"attachments,omitempty"`
	Reserves      bool             `json:"reserves"`
}

// Balance is the full balance breakdown of an RGB asset.
type Balance struct {
	Settled          uint64 `json:"settled"`
	Future           uint64 `json:"future"`
	Spendable        uint64 `json:"spendable"`
	OffchainOutbound uint64 `json:"offchain_outbound"`
	OffchainInbound  uint64 `json:"offchain_inbound"`
}

// Asset is one RGB asset as reported by the node.
type Asset struct {
	AssetID      string     `json:"asset_id"`
	AssetIface   AssetIface `json:"asset_iface"`
	Ticker       *string    `json:"ticker,omitempty"`
	Name         string     `json:"name"`
	Details      *string    `json:"details,omitempty"`
	Precision    uint8      `json:"precision"`
	IssuedSupply uint64     `json:"issued_supply"`
	Timestamp    int64      `json:"timestamp"`
	AddedAt      int64      `json:"added_at"`
	Balance      Balance    `json:"balance"`
	Media        *Media     `json:"media,omitempty"`
	Token        *Token     `json:"token,omitempty"`
}

// TransportEndpoint is one RGB transport endpoint of a transfer.
type TransportEndpoint struct {
	Endpoint      string `json:"endpoint"`
	TransportType string `json:"transport_type"`
	Used          bool   `json:"used"`
}

// TransferAsset is one transfer of an RGB asset. TransferStatus and
// AmountStatus are derived display fields assigned by the service layer
// from the transfer kind.
type TransferAsset struct {
	Timestamps

	Idx                *int64              `json:"idx,omitempty"`
	Status             TransactionStatus   `json:"status"`
	Amount             uint64              `json:"amount"`
	Kind               TransferKind        `json:"kind"`
	Txid               *string             `json:"txid,omitempty"`
	RecipientID        *string             `json:"recipient_id,omitempty"`
	ReceiveUtxo        *string             `json:"receive_utxo,omitempty"`
	ChangeUtxo         *string             `json:"change_utxo,omitempty"`
	Expiration         *int64              `json:"expiration,omitempty"`
	TransportEndpoints []TransportEndpoint `json:"transport_endpoints"`

	TransferStatus TransferStatus `json:"transfer_status,omitempty"`
	AmountStatus   string         `json:"amount_status,omitempty"`
}

// Selector exclusivity messages for TransactionTx.
const (
	errMsgSelectorNone = "Either 'tx_id' or 'idx' must be provided"
	errMsgSelectorBoth = "Both 'tx_id' and 'idx' cannot be accepted at the same time"
)

// TransactionTx selects a single transfer by txid or by index. Exactly
// one of the two must be set.
type TransactionTx struct {
	TxID *string
	Idx  *int64
}

// NewTransactionTx builds a transfer selector, enforcing that exactly
// one of txID and idx is provided.
func NewTransactionTx(txID *string, idx *int64) (TransactionTx, error) {
	if txID == nil && idx == nil {
		return TransactionTx{}, newError(KindSelectorExclusivity, errMsgSelectorNone)
	}
	if txID != nil && idx != nil {
		return TransactionTx{}, newError(KindSelectorExclusivity, errMsgSelectorBoth)
	}
	return TransactionTx{TxID: txID, Idx: idx}, nil
}

// Matches reports whether the transfer is the one the selector names.
func (s TransactionTx) Matches(t TransferAsset) bool {
	if s.TxID != nil {
		return t.Txid != nil && *t.Txid == *s.TxID
	}
	return t.Idx != nil && *t.Idx == *s.Idx
}

// AssetBalanceRequest queries the balance of one asset.
type AssetBalanceRequest struct {
	AssetID string `json:"asset_id" validate:"required"`
}

// AssetBalanceResponse is the per-asset balance breakdown.
type AssetBalanceResponse = Balance

// CreateUtxosRequest creates colorable UTXOs.
type CreateUtxosRequest struct {
	UpTo     bool   `json:"up_to"`
	Num      uint8  `json:"num"`
	Size     uint32 `json:"size"`
	FeeRate  uint64 `json:"fee_rate"`
	SkipSync bool   `json:"skip_sync"`
}

// NewCreateUtxosRequest returns a create request with the default
// count, size and fee rate.
func NewCreateUtxosRequest() CreateUtxosRequest {
	return CreateUtxosRequest{
		Num:     defaultUtxoNum,
		Size:    defaultUtxoSizeSat,
		FeeRate: defaultUtxoFeeRate,
	}
}

// DecodeRgbInvoiceRequest decodes an encoded RGB invoice.
type DecodeRgbInvoiceRequest struct {
	Invoice string `json:"invoice" validate:"required"`
}

// DecodeRgbInvoiceResponse is the decoded RGB invoice detail.
type DecodeRgbInvoiceResponse struct {
	RecipientID        string      `json:"recipient_id"`
	AssetIface         *AssetIface `json:"asset_iface,omitempty"`
	AssetID            *string     `json:"asset_id,omitempty"`
	Amount             *uint64     `json:"amount,omitempty"`
	Network            string      `json:"network"`
	Expiration         *int64      `json:"expiration,omitempty"`
	TransportEndpoints []string    `json:"transport_endpoints"`
}

// FailTransfersRequest fails pending transfers, one by batch index or
// all eligible ones.
type FailTransfersRequest struct {
	BatchTransferIdx *int32 `json:"batch_transfer_idx,omitempty"`
	NoAssetOnly      bool   `json:"no_asset_only"`
	SkipSync         bool   `json:"skip_sync"`
}

// FailTransfersResponse reports whether any transfer changed state.
type FailTransfersResponse struct {
	TransfersChanged bool `json:"transfers_changed"`
}

// IssueAssetNiaRequest issues a fungible NIA asset.
type IssueAssetNiaRequest struct {
	Amounts   []uint64 `json:"amounts" validate:"required,min=1"`
	Ticker    string   `json:"ticker" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Precision uint8    `json:"precision"`
}

// IssueAssetCfaRequest issues a CFA asset, optionally referencing an
// uploaded media digest.
type IssueAssetCfaRequest struct {
	Amounts    []uint64 `json:"amounts" validate:"required,min=1"`
	Ticker     string   `json:"ticker" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	Details    *string  `json:"details,omitempty"`
	Precision  uint8    `json:"precision"`
	FileDigest *string  `json:"file_digest,omitempty"`
}

// IssueAssetUdaRequest issues a unique digital asset.
type IssueAssetUdaRequest struct {
	Ticker               string   `json:"ticker" validate:"required"`
	Name                 string   `json:"name" validate:"required"`
	Details              *string  `json:"details,omitempty"`
	Precision            uint8    `json:"precision"`
	MediaFilePath        *string  `json:"media_file_path,omitempty"`
	AttachmentsFilePaths []string `json:"attachments_file_paths,omitempty"`
}

// IssueAssetResponse envelopes the issued asset, matching the node's
// {"asset": {...}} response shape.
type IssueAssetResponse struct {
	Asset Asset `json:"asset"`
}

// ListAssetsRequest filters the asset list by interface.
type ListAssetsRequest struct {
	FilterAssetSchemas []AssetIface `json:"filter_asset_schemas" validate:"required,min=1,dive,oneof=Nia Cfa Uda"`
}

// ListAssetsResponse groups assets by interface.
type ListAssetsResponse struct {
	Nia []Asset `json:"nia"`
	Uda []Asset `json:"uda"`
	Cfa []Asset `json:"cfa"`
}

// ListTransfersRequest lists the transfers of one asset.
type ListTransfersRequest struct {
	AssetID string `json:"asset_id" validate:"required"`
}

// ListTransfersResponse is the list transfers response.
type ListTransfersResponse struct {
	Transfers []TransferAsset `json:"transfers"`
}

// RefreshTransfersRequest syncs pending transfers with the network.
type RefreshTransfersRequest struct {
	SkipSync bool `json:"skip_sync"`
}

// RgbInvoiceRequest creates a blinded receive invoice.
type RgbInvoiceRequest struct {
	MinConfirmations uint8   `json:"min_confirmations"`
	AssetID          *string `json:"asset_id,omitempty"`
	DurationSeconds  uint32  `json:"duration_seconds"`
}

// NewRgbInvoiceRequest returns an invoice request with the default
// duration.
func NewRgbInvoiceRequest() RgbInvoiceRequest {
	return RgbInvoiceRequest{DurationSeconds: defaultRgbInvoiceDurationSeconds}
}

// RgbInvoiceResponse is the created receive invoice.
type RgbInvoiceResponse struct {
	RecipientID         string `json:"recipient_id"`
	Invoice             string `json:"invoice"`
	ExpirationTimestamp *int64 `json:"expiration_timestamp,omitempty"`
	BatchTransferIdx    int32  `json:"batch_transfer_idx"`
}

// SendAssetRequest sends an RGB asset to a decoded invoice recipient.
type SendAssetRequest struct {
	AssetID            string   `json:"asset_id" validate:"required"`
	Amount             uint64   `json:"amount" validate:"required"`
	RecipientID        string   `json:"recipient_id" validate:"required"`
	Donation           bool     `json:"donation"`
	FeeRate            uint64   `json:"fee_rate"`
	MinConfirmations   uint8    `json:"min_confirmations"`
	TransportEndpoints []string `json:"transport_endpoints" validate:"required,min=1"`
	SkipSync           bool     `json:"skip_sync"`
}

// SendAssetResponse carries the consignment txid.
type SendAssetResponse struct {
	Txid string `json:"txid"`
}

// GetAssetMediaRequest fetches the media payload for a digest.
type GetAssetMediaRequest struct {
	Digest string `json:"digest" validate:"required"`
}

// GetAssetMediaResponse carries the media payload as hex.
type GetAssetMediaResponse struct {
	BytesHex string `json:"bytes_hex"`
}

// PostAssetMediaResponse carries the digest of an uploaded media file.
type PostAssetMediaResponse struct {
	Digest string `json:"digest"`
}

// assignTransferStatus derives the display status and signed amount from
// the transfer kind. Unknown kinds are a hard failure.
func assignTransferStatus(t *TransferAsset) error {
	amount := strconv.FormatUint(t.Amount, 10)
	switch t.Kind {
	case TransferKindIssuance:
		t.TransferStatus = TransferStatusInternal
		t.AmountStatus = "+" + amount
	case TransferKindReceiveBlind, TransferKindReceiveWitness:
		t.TransferStatus = TransferStatusReceived
		t.AmountStatus = "+" + amount
	case TransferKindSend:
		t.TransferStatus = TransferStatusSent
		t.AmountStatus = "-" + amount
	default:
		return errorf(KindUnknownTransferKind, "unknown transfer kind: %s", string(t.Kind))
	}
	return nil
}

// AssetBalance returns the balance breakdown of one asset.
func (c *Client) AssetBalance(ctx context.Context, req AssetBalanceRequest) (*AssetBalanceResponse, error) {
	var out AssetBalanceResponse
	op := operation{endpoint: AssetBalanceEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUtxos creates colorable UTXOs. Mutating.
func (c *Client) CreateUtxos(ctx context.Context, req CreateUtxosRequest) (*StatusResponse, error) {
	op := operation{endpoint: CreateUtxosEndpoint, mutating: true, gates: unlockGates}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// DecodeRgbInvoice decodes an encoded RGB invoice.
func (c *Client) DecodeRgbInvoice(ctx context.Context, req DecodeRgbInvoiceRequest) (*DecodeRgbInvoiceResponse, error) {
	var out DecodeRgbInvoiceResponse
	op := operation{endpoint: DecodeRgbInvoiceEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FailTransfers fails eligible pending transfers. Mutating.
func (c *Client) FailTransfers(ctx context.Context, req FailTransfersRequest) (*FailTransfersResponse, error) {
	var out FailTransfersResponse
	op := operation{endpoint: FailTransfersEndpoint, mutating: true, gates: colorableGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IssueAssetNia issues a fungible NIA asset. Mutating, colorable gated.
func (c *Client) IssueAssetNia(ctx context.Context, req IssueAssetNiaRequest) (*Asset, error) {
	var out IssueAssetResponse
	op := operation{endpoint: IssueAssetNiaEndpoint, mutating: true, gates: colorableGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out.Asset, nil
}

// IssueAssetCfa issues a CFA asset. Mutating, colorable gated.
func (c *Client) IssueAssetCfa(ctx context.Context, req IssueAssetCfaRequest) (*Asset, error) {
	var out IssueAssetResponse
	op := operation{endpoint: IssueAssetCfaEndpoint, mutating: true, gates: colorableGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out.Asset, nil
}

// IssueAssetUda issues a unique digital asset. Mutating, colorable gated.
func (c *Client) IssueAssetUda(ctx context.Context, req IssueAssetUdaRequest) (*Asset, error) {
	var out IssueAssetResponse
	op := operation{endpoint: IssueAssetUdaEndpoint, mutating: true, gates: colorableGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out.Asset, nil
}

// ListAssets lists assets by interface filter. Invalidates the cache on
// success so derived balances stay fresh; never served from cache.
func (c *Client) ListAssets(ctx context.Context, req ListAssetsRequest) (*ListAssetsResponse, error) {
	var out ListAssetsResponse
	op := operation{endpoint: ListAssetsEndpoint, mutating: true, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTransfers lists the transfers of one asset.
func (c *Client) ListTransfers(ctx context.Context, req ListTransfersRequest) (*ListTransfersResponse, error) {
	var out ListTransfersResponse
	op := operation{endpoint: ListTransfersEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshTransfers syncs pending transfers with the network.
func (c *Client) RefreshTransfers(ctx context.Context, req RefreshTransfersRequest) (*StatusResponse, error) {
	op := operation{endpoint: RefreshTransfersEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// RgbInvoice creates a blinded receive invoice. Mutating, colorable
// gated.
func (c *Client) RgbInvoice(ctx context.Context, req RgbInvoiceRequest) (*RgbInvoiceResponse, error) {
	var out RgbInvoiceResponse
	op := operation{endpoint: RgbInvoiceEndpoint, mutating: true, gates: colorableGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendAsset sends an RGB asset. Mutating, colorable gated.
func (c *Client) SendAsset(ctx context.Context, req SendAssetRequest) (*SendAssetResponse, error) {
	var out SendAssetResponse
	op := operation{endpoint: SendAssetEndpoint, mutating: true, gates: colorableGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAssetMedia fetches a media payload by digest.
func (c *Client) GetAssetMedia(ctx context.Context, req GetAssetMediaRequest) (*GetAssetMediaResponse, error) {
	var out GetAssetMediaResponse
	op := operation{endpoint: GetAssetMediaEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PostAssetMedia uploads a media file and returns its digest.
func (c *Client) PostAssetMedia(ctx context.Context, file MultipartFile) (*PostAssetMediaResponse, error) {
	var out PostAssetMediaResponse
	op := operation{endpoint: PostAssetMediaEndpoint, gates: unlockGates}
	if err := c.postMultipart(ctx, op, file, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
