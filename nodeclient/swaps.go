package nodeclient

import "context"

// MakerInitRequest opens a swap offer as the maker.
type MakerInitRequest struct {
	QtyFrom    uint64  `json:"qty_from" validate:"required"`
	QtyTo      uint64  `json:"qty_to" validate:"required"`
	FromAsset  *string `json:"from_asset,omitempty"`
	ToAsset    *string `json:"to_asset,omitempty"`
	TimeoutSec uint32  `json:"timeout_sec" validate:"required"`
}

// MakerInitResponse carries the swapstring handed to the taker.
type MakerInitResponse struct {
	PaymentHash string `json:"payment_hash"`
	Swapstring  string `json:"swapstring"`
}

// MakerExecuteRequest finalizes a swap after the taker whitelisted it.
type MakerExecuteRequest struct {
	Swapstring    string `json:"swapstring" validate:"required"`
	PaymentSecret string `json:"payment_secret" validate:"required"`
	TakerPubkey   string `json:"taker_pubkey" validate:"required"`
}

// TakerRequest whitelists a maker swapstring on the taker side.
type TakerRequest struct {
	Swapstring string `json:"swapstring" validate:"required"`
}

// SwapDetail is one swap as reported by the trade list.
type SwapDetail struct {
	QtyFrom     uint64  `json:"qty_from"`
	QtyTo       uint64  `json:"qty_to"`
	FromAsset   *string `json:"from_asset,omitempty"`
	ToAsset     *string `json:"to_asset,omitempty"`
	PaymentHash string  `json:"payment_hash"`
	Status      string  `json:"status"`
	RequestedAt int64   `json:"requested_at"`
	InitiatedAt *int64  `json:"initiated_at,omitempty"`
	ExpiresAt   int64   `json:"expires_at"`
	CompletedAt *int64  `json:"completed_at,omitempty"`
}

// ListTradesResponse groups swaps by role.
type ListTradesResponse struct {
	Maker []SwapDetail `json:"maker"`
	Taker []SwapDetail `json:"taker"`
}

// MakerInit opens a swap offer as the maker.
func (c *Client) MakerInit(ctx context.Context, req MakerInitRequest) (*MakerInitResponse, error) {
	var out MakerInitResponse
	op := operation{endpoint: MakerInitEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MakerExecute finalizes a swap as the maker. Mutating.
func (c *Client) MakerExecute(ctx context.Context, req MakerExecuteRequest) (*StatusResponse, error) {
	op := operation{endpoint: MakerExecuteEndpoint, mutating: true, gates: unlockGates}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// Taker whitelists a maker swapstring on the taker side.
func (c *Client) Taker(ctx context.Context, req TakerRequest) (*StatusResponse, error) {
	op := operation{endpoint: TakerEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// ListTrades lists the node's swaps grouped by role.
func (c *Client) ListTrades(ctx context.Context) (*ListTradesResponse, error) {
	var out ListTradesResponse
	op := operation{endpoint: ListTradesEndpoint, gates: unlockGates}
	if err := c.get(ctx, op, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
