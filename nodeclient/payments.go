package nodeclient

import (
	"context"
	"strconv"
)

// Payment is one off-chain payment from the list payments response. The
// AssetAmountStatus display field is derived by the service layer.
type Payment struct {
	Timestamps

	AmtMsat           uint64  `json:"amt_msat"`
	AssetAmount       *uint64 `json:"asset_amount,omitempty"`
	AssetAmountStatus string  `json:"asset_amount_status,omitempty"`
	AssetID           *string `json:"asset_id,omitempty"`
	PaymentHash       string  `json:"payment_hash"`
	Inbound           bool    `json:"inbound"`
	Status            string  `json:"status"`
	PayeePubkey       string  `json:"payee_pubkey"`
}

// fillDisplayFields computes the derived date/time strings and the
// signed asset amount: inbound payments show "+amount", outbound
// "-amount".
func (p *Payment) fillDisplayFields() {
	p.fillUpdatedDisplay()
	p.fillCreatedDisplay()

	amount := uint64(0)
	if p.AssetAmount != nil {
		amount = *p.AssetAmount
	}
	if p.Inbound {
		p.AssetAmountStatus = "+" + strconv.FormatUint(amount, 10)
	} else {
		p.AssetAmountStatus = "-" + strconv.FormatUint(amount, 10)
	}
}

// KeySendRequest sends a spontaneous payment to a node.
type KeySendRequest struct {
	DestPubkey  string `json:"dest_pubkey" validate:"required"`
	AmtMsat     uint64 `json:"amt_msat"`
	AssetID     string `json:"asset_id" validate:"required"`
	AssetAmount uint64 `json:"asset_amount"`
}

// NewKeySendRequest returns a keysend request with the default msat
// amount.
func NewKeySendRequest(destPubkey, assetID string, assetAmount uint64) KeySendRequest {
	return KeySendRequest{
		DestPubkey:  destPubkey,
		AmtMsat:     defaultInvoiceAmtMsat,
		AssetID:     assetID,
		AssetAmount: assetAmount,
	}
}

// SendPaymentRequest pays a LN invoice.
type SendPaymentRequest struct {
	Invoice string `json:"invoice" validate:"required"`
}

// KeysendResponse is shared by keysend and send payment.
type KeysendResponse struct {
	PaymentHash   string `json:"payment_hash"`
	PaymentSecret string `json:"payment_secret"`
	Status        string `json:"status"`
}

// SendPaymentResponse is the send payment response.
type SendPaymentResponse = KeysendResponse

// ListPaymentsResponse is the list payments response.
type ListPaymentsResponse struct {
	Payments []Payment `json:"payments"`
}

// KeySend sends a spontaneous payment. Mutating.
func (c *Client) KeySend(ctx context.Context, req KeySendRequest) (*KeysendResponse, error) {
	var out KeysendResponse
	op := operation{endpoint: KeySendEndpoint, mutating: true, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendPayment pays a LN invoice. Mutating.
func (c *Client) SendPayment(ctx context.Context, req SendPaymentRequest) (*SendPaymentResponse, error) {
	var out SendPaymentResponse
	op := operation{endpoint: SendPaymentEndpoint, mutating: true, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPayments lists all off-chain payments.
func (c *Client) ListPayments(ctx context.Context) (*ListPaymentsResponse, error) {
	var out ListPaymentsResponse
	op := operation{endpoint: ListPaymentsEndpoint, gates: unlockGates}
	if err := c.get(ctx, op, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
