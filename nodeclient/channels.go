package nodeclient

import "context"

// Channel is one entry of the list channels response. The client only
// ever holds immutable snapshots; the node owns the lifecycle.
type Channel struct {
	ChannelID           string  `json:"channel_id"`
	FundingTxid         *string `json:"funding_txid"`
	PeerPubkey          string  `json:"peer_pubkey"`
	PeerAlias           *string `json:"peer_alias"`
	ShortChannelID      *int64  `json:"short_channel_id,omitempty"`
	Status              string  `json:"status"`
	Ready               bool    `json:"ready"`
	CapacitySat         uint64  `json:"capacity_sat"`
	LocalBalanceSat     uint64  `json:"local_balance_sat"`
	OutboundBalanceMsat *uint64 `json:"outbound_balance_msat,omitempty"`
	InboundBalanceMsat  *uint64 `json:"inbound_balance_msat,omitempty"`
	IsUsable            bool    `json:"is_usable"`
	Public              bool    `json:"public"`
	AssetID             *string `json:"asset_id,omitempty"`
	AssetLocalAmount    *uint64 `json:"asset_local_amount,omitempty"`
	AssetRemoteAmount   *uint64 `json:"asset_remote_amount,omitempty"`
}

// CloseChannelRequest asks the node to close a channel.
type CloseChannelRequest struct {
	ChannelID  string `json:"channel_id" validate:"required"`
	PeerPubkey string `json:"peer_pubkey" validate:"required"`
	Force      bool   `json:"force"`
}

// OpenChannelRequest asks the node to open a channel, optionally with an
// RGB asset allocation.
type OpenChannelRequest struct {
	PeerPubkeyAndOptAddr      string  `json:"peer_pubkey_and_opt_addr" validate:"required"`
	CapacitySat               uint64  `json:"capacity_sat"`
	PushMsat                  uint64  `json:"push_msat"`
	AssetAmount               *uint64 `json:"asset_amount,omitempty"`
	AssetID                   *string `json:"asset_id,omitempty"`
	Public                    bool    `json:"public"`
	WithAnchors               bool    `json:"with_anchors"`
	FeeBaseMsat               uint64  `json:"fee_base_msat"`
	FeeProportionalMillionths uint64  `json:"fee_proportional_millionths"`
}

// NewOpenChannelRequest returns an open channel request carrying the
// documented defaults.
func NewOpenChannelRequest(peerPubkeyAndOptAddr string) OpenChannelRequest {
	return OpenChannelRequest{
		PeerPubkeyAndOptAddr:      peerPubkeyAndOptAddr,
		CapacitySat:               defaultOpenChannelCapSat,
		PushMsat:                  defaultOpenChannelPush,
		Public:                    true,
		WithAnchors:               true,
		FeeBaseMsat:               defaultFeeBaseMsat,
		FeeProportionalMillionths: 0,
	}
}

// ListChannelsResponse is the list channels response.
type ListChannelsResponse struct {
	Channels []Channel `json:"channels"`
}

// OpenChannelResponse is the open channel response.
type OpenChannelResponse struct {
	TemporaryChannelID string `json:"temporary_channel_id"`
}

// CloseChannel closes a channel. Mutating: the response cache is
// invalidated before the call returns.
func (c *Client) CloseChannel(ctx context.Context, req CloseChannelRequest) (*StatusResponse, error) {
	op := operation{endpoint: CloseChannelEndpoint, mutating: true, gates: unlockGates}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// OpenChannel opens a channel. Mutating.
func (c *Client) OpenChannel(ctx context.Context, req OpenChannelRequest) (*OpenChannelResponse, error) {
	var out OpenChannelResponse
	op := operation{endpoint: OpenChannelEndpoint, mutating: true, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListChannels lists the node's channels.
func (c *Client) ListChannels(ctx context.Context) (*ListChannelsResponse, error) {
	var out ListChannelsResponse
	op := operation{endpoint: ListChannelsEndpoint, gates: unlockGates}
	if err := c.get(ctx, op, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
