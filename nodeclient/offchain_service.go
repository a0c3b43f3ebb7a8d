package nodeclient

import "context"

// OffchainService composes the off-chain send flow: pay the invoice,
// then decode it so the caller gets the payment detail in one result.
type OffchainService struct {
	client *Client
}

func NewOffchainService(client *Client) *OffchainService {
	return &OffchainService{client: client}
}

// CombinedDecodedPayment pairs the send result with the decoded
// invoice.
type CombinedDecodedPayment struct {
	Send   SendPaymentResponse     `json:"send"`
	Decode DecodeLnInvoiceResponse `json:"decode"`
}

// SendAndDecode pays a LN invoice and returns the payment together with
// the decoded invoice detail. A node-reported Failed status is an
// error.
func (s *OffchainService) SendAndDecode(ctx context.Context, invoice string) (*CombinedDecodedPayment, error) {
	sent, err := s.client.SendPayment(ctx, SendPaymentRequest{Invoice: invoice})
	if err != nil {
		return nil, err
	}
	if PaymentStatus(sent.Status) == PaymentStatusFailed {
		return nil, newError(KindPaymentFailed, userMessages[KindPaymentFailed])
	}

	decoded, err := s.client.DecodeLnInvoice(ctx, DecodeLnInvoiceRequest{Invoice: invoice})
	if err != nil {
		return nil, err
	}

	return &CombinedDecodedPayment{
		Send:   *sent,
		Decode: *decoded,
	}, nil
}
