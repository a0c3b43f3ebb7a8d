package nodeclient

import "context"

// LnInvoiceRequest creates a new LN invoice, optionally carrying an RGB
// asset amount.
type LnInvoiceRequest struct {
	AmtMsat     uint64  `json:"amt_msat"`
	ExpirySec   uint32  `json:"expiry_sec"`
	AssetID     *string `json:"asset_id,omitempty"`
	AssetAmount *uint64 `json:"asset_amount,omitempty"`
}

// NewLnInvoiceRequest returns an invoice request with the default msat
// amount and expiry.
func NewLnInvoiceRequest() LnInvoiceRequest {
	return LnInvoiceRequest{
		AmtMsat:   defaultInvoiceAmtMsat,
		ExpirySec: defaultInvoiceExpirySec,
	}
}

// LnInvoiceResponse is the created invoice.
type LnInvoiceResponse struct {
	Invoice string `json:"invoice"`
}

// DecodeLnInvoiceRequest decodes an encoded LN invoice.
type DecodeLnInvoiceRequest struct {
	Invoice string `json:"invoice" validate:"required"`
}

// DecodeLnInvoiceResponse is the decoded invoice detail.
type DecodeLnInvoiceResponse struct {
	AmtMsat       uint64  `json:"amt_msat"`
	ExpirySec     uint32  `json:"expiry_sec"`
	Timestamp     int64   `json:"timestamp"`
	AssetID       *string `json:"asset_id,omitempty"`
	AssetAmount   *uint64 `json:"asset_amount,omitempty"`
	PaymentHash   string  `json:"payment_hash"`
	PaymentSecret string  `json:"payment_secret"`
	PayeePubkey   string  `json:"payee_pubkey"`
	Network       string  `json:"network"`
}

// InvoiceStatusRequest queries the status of an invoice.
type InvoiceStatusRequest struct {
	Invoice string `json:"invoice" validate:"required"`
}

// InvoiceStatusResponse carries the node side invoice status, one of
// Pending, Succeeded, Failed or Expired.
type InvoiceStatusResponse struct {
	Status string `json:"status"`
}

// LnInvoice creates a LN invoice on the node.
func (c *Client) LnInvoice(ctx context.Context, req LnInvoiceRequest) (*LnInvoiceResponse, error) {
	var out LnInvoiceResponse
	op := operation{endpoint: LnInvoiceEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DecodeLnInvoice decodes an encoded LN invoice.
func (c *Client) DecodeLnInvoice(ctx context.Context, req DecodeLnInvoiceRequest) (*DecodeLnInvoiceResponse, error) {
	var out DecodeLnInvoiceResponse
	op := operation{endpoint: DecodeLnInvoiceEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InvoiceStatus returns the current status of an invoice.
func (c *Client) InvoiceStatus(ctx context.Context, req InvoiceStatusRequest) (*InvoiceStatusResponse, error) {
	var out InvoiceStatusResponse
	op := operation{endpoint: InvoiceStatusEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
