package nodeclient

import (
	"context"
	"time"
)

// SkipSyncRequest is the shared body of the sync-aware read endpoints.
type SkipSyncRequest struct {
	SkipSync bool `json:"skip_sync"`
}

// AddressResponse carries a fresh receive address.
type AddressResponse struct {
	Address string `json:"address"`
}

// BalanceStatus is one balance bucket of the on-chain wallet.
type BalanceStatus struct {
	Settled   uint64 `json:"settled"`
	Future    uint64 `json:"future"`
	Spendable uint64 `json:"spendable"`
}

// BtcBalanceResponse splits the on-chain balance into the vanilla
// (uncolored) and colored parts.
type BtcBalanceResponse struct {
	Vanilla BalanceStatus `json:"vanilla"`
	Colored BalanceStatus `json:"colored"`
}

// ConfirmationTime is the block inclusion point of a transaction.
type ConfirmationTime struct {
	Height    uint32 `json:"height"`
	Timestamp int64  `json:"timestamp"`
}

// Transaction is one on-chain wallet transaction.
type Transaction struct {
	TransactionType  string            `json:"transaction_type"`
	Txid             string            `json:"txid"`
	Received         uint64            `json:"received"`
	Sent             uint64            `json:"sent"`
	Fee              uint64            `json:"fee"`
	ConfirmationTime *ConfirmationTime `json:"confirmation_time,omitempty"`

	ConfirmationDate      string `json:"confirmation_date,omitempty"`
	ConfirmationTimeOfDay string `json:"confirmation_normal_time,omitempty"`
}

// fillDisplayFields derives the confirmation date and time strings for
// confirmed transactions.
func (t *Transaction) fillDisplayFields() {
	if t.ConfirmationTime == nil || t.ConfirmationTime.Timestamp == 0 {
		return
	}
	ts := time.Unix(t.ConfirmationTime.Timestamp, 0)
	t.ConfirmationDate = ts.Format(displayDateFormat)
	t.ConfirmationTimeOfDay = ts.Format(displayTimeFormat)
}

// ListTransactionsResponse is the list transactions response.
type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// Utxo is one wallet output.
type Utxo struct {
	Outpoint  string `json:"outpoint"`
	BtcAmount uint64 `json:"btc_amount"`
	Colorable bool   `json:"colorable"`
}

// RgbAllocation is an RGB asset allocation bound to an output.
type RgbAllocation struct {
	AssetID *string `json:"asset_id,omitempty"`
	Amount  uint64  `json:"amount"`
	Settled bool    `json:"settled"`
}

// Unspent pairs an output with its RGB allocations.
type Unspent struct {
	Utxo           Utxo            `json:"utxo"`
	RgbAllocations []RgbAllocation `json:"rgb_allocations"`
}

// ListUnspentsResponse is the list unspents response.
type ListUnspentsResponse struct {
	Unspents []Unspent `json:"unspents"`
}

// SendBtcRequest sends bitcoin to an address.
type SendBtcRequest struct {
	Amount   uint64 `json:"amount" validate:"required"`
	Address  string `json:"address" validate:"required"`
	FeeRate  uint64 `json:"fee_rate" validate:"required"`
	SkipSync bool   `json:"skip_sync"`
}

// SendBtcResponse carries the broadcast txid.
type SendBtcResponse struct {
	Txid string `json:"txid"`
}

// EstimateFeeRequest asks for a fee rate estimate at a block target.
type EstimateFeeRequest struct {
	Blocks uint16 `json:"blocks" validate:"required"`
}

// EstimateFeeResponse carries the estimated fee rate in sat/vB.
type EstimateFeeResponse struct {
	FeeRate float64 `json:"fee_rate"`
}

// Address returns a fresh on-chain receive address.
func (c *Client) Address(ctx context.Context) (*AddressResponse, error) {
	var out AddressResponse
	op := operation{endpoint: AddressEndpoint, gates: unlockGates}
	if err := c.get(ctx, op, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BtcBalance returns the on-chain balance. Cacheable.
func (c *Client) BtcBalance(ctx context.Context, req SkipSyncRequest) (*BtcBalanceResponse, error) {
	var out BtcBalanceResponse
	op := operation{endpoint: BtcBalanceEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTransactions lists the on-chain wallet transactions with display
// fields filled for confirmed ones. Cacheable.
func (c *Client) ListTransactions(ctx context.Context, req SkipSyncRequest) (*ListTransactionsResponse, error) {
	var out ListTransactionsResponse
	op := operation{endpoint: ListTransactionsEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	for i := range out.Transactions {
		out.Transactions[i].fillDisplayFields()
	}
	return &out, nil
}

// ListUnspents lists the wallet outputs with RGB allocations. Cacheable.
func (c *Client) ListUnspents(ctx context.Context, req SkipSyncRequest) (*ListUnspentsResponse, error) {
	var out ListUnspentsResponse
	op := operation{endpoint: ListUnspentsEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendBtc sends bitcoin on-chain. Mutating.
func (c *Client) SendBtc(ctx context.Context, req SendBtcRequest) (*SendBtcResponse, error) {
	var out SendBtcResponse
	op := operation{endpoint: SendBtcEndpoint, mutating: true, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EstimateFee returns a fee rate estimate for the given block target.
func (c *Client) EstimateFee(ctx context.Context, req EstimateFeeRequest) (*EstimateFeeResponse, error) {
	var out EstimateFeeResponse
	op := operation{endpoint: EstimateFeeEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
