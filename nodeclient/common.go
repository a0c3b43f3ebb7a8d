package nodeclient

import "context"

// InitRequest initializes a fresh wallet on the node.
type InitRequest struct {
	Password string `json:"password" validate:"required"`
}

// InitResponse carries the generated mnemonic. The caller is responsible
// for showing it to the user exactly once.
type InitResponse struct {
	Mnemonic string `json:"mnemonic"`
}

// UnlockRequest unlocks the node wallet. The bitcoind and transport
// settings are forwarded to the node daemon verbatim.
type UnlockRequest struct {
	Password            string   `json:"password" validate:"required"`
	BitcoindRPCUsername string   `json:"bitcoind_rpc_username"`
	BitcoindRPCPassword string   `json:"bitcoind_rpc_password"`
	BitcoindRPCHost     string   `json:"bitcoind_rpc_host"`
	BitcoindRPCPort     uint16   `json:"bitcoind_rpc_port"`
	IndexerURL          *string  `json:"indexer_url,omitempty"`
	ProxyEndpoint       *string  `json:"proxy_endpoint,omitempty"`
	AnnounceAddresses   []string `json:"announce_addresses,omitempty"`
	AnnounceAlias       *string  `json:"announce_alias,omitempty"`
}

// BackupRequest writes an encrypted node backup to the given path.
type BackupRequest struct {
	BackupPath string `json:"backup_path" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// RestoreRequest restores the node from an encrypted backup.
type RestoreRequest struct {
	BackupPath string `json:"backup_path" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// ChangePasswordRequest rotates the node wallet password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// CheckIndexerURLRequest probes an indexer URL.
type CheckIndexerURLRequest struct {
	IndexerURL string `json:"indexer_url" validate:"required"`
}

// CheckIndexerURLResponse reports the detected indexer protocol.
type CheckIndexerURLResponse struct {
	IndexerProtocol string `json:"indexer_protocol"`
}

// CheckProxyEndpointRequest probes an RGB proxy endpoint.
type CheckProxyEndpointRequest struct {
	ProxyEndpoint string `json:"proxy_endpoint" validate:"required"`
}

// SignMessageRequest signs a message with the node key.
type SignMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// SignMessageResponse carries the signature.
type SignMessageResponse struct {
	SignedMessage string `json:"signed_message"`
}

// SendOnionMessageRequest sends an onion message along a node path.
type SendOnionMessageRequest struct {
	NodeIDs []string `json:"node_ids" validate:"required,min=1"`
	TLVType uint64   `json:"tlv_type" validate:"required"`
	Data    string   `json:"data" validate:"required"`
}

// NodeInfoResponse is the node identity and limits snapshot.
type NodeInfoResponse struct {
	Pubkey                   string `json:"pubkey"`
	NumChannels              uint32 `json:"num_channels"`
	NumUsableChannels        uint32 `json:"num_usable_channels"`
	LocalBalanceSat          uint64 `json:"local_balance_sat"`
	NumPeers                 uint32 `json:"num_peers"`
	OnchainPubkey            string `json:"onchain_pubkey"`
	MaxMediaUploadSizeMB     uint32 `json:"max_media_upload_size_mb"`
	RgbHtlcMinMsat           uint64 `json:"rgb_htlc_min_msat"`
	RgbChannelCapacityMinSat uint64 `json:"rgb_channel_capacity_min_sat"`
	ChannelCapacityMinSat    uint64 `json:"channel_capacity_min_sat"`
	ChannelCapacityMaxSat    uint64 `json:"channel_capacity_max_sat"`
	ChannelAssetMinAmount    uint64 `json:"channel_asset_min_amount"`
	ChannelAssetMaxAmount    uint64 `json:"channel_asset_max_amount"`
}

// NetworkInfoResponse is the node's network and chain tip.
type NetworkInfoResponse struct {
	Network string `json:"network"`
	Height  uint32 `json:"height"`
}

// Init initializes a fresh wallet. No gates: the node is locked at this
// point by definition.
func (c *Client) Init(ctx context.Context, req InitRequest) (*InitResponse, error) {
	var out InitResponse
	op := operation{endpoint: InitEndpoint}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Unlock unlocks the node wallet and flips the client unlocked flag on
// success.
func (c *Client) Unlock(ctx context.Context, req UnlockRequest) (*StatusResponse, error) {
	op := operation{endpoint: UnlockEndpoint}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	c.SetUnlocked(true)
	return &StatusResponse{Status: true}, nil
}

// Lock locks the node wallet and clears the client unlocked flag.
func (c *Client) Lock(ctx context.Context) (*StatusResponse, error) {
	op := operation{endpoint: LockEndpoint}
	if err := c.post(ctx, op, nil, nil); err != nil {
		return nil, err
	}
	c.SetUnlocked(false)
	return &StatusResponse{Status: true}, nil
}

// Shutdown asks the node daemon to exit.
func (c *Client) Shutdown(ctx context.Context) (*StatusResponse, error) {
	op := operation{endpoint: ShutdownEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, nil, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// NodeInfo returns the node identity snapshot. A successful response
// proves the node is unlocked, so the flag is set as a side effect.
func (c *Client) NodeInfo(ctx context.Context) (*NodeInfoResponse, error) {
	var out NodeInfoResponse
	op := operation{endpoint: NodeInfoEndpoint}
	if err := c.get(ctx, op, &out); err != nil {
		return nil, err
	}
	c.SetUnlocked(true)
	return &out, nil
}

// NetworkInfo returns the node network and chain height.
func (c *Client) NetworkInfo(ctx context.Context) (*NetworkInfoResponse, error) {
	var out NetworkInfoResponse
	op := operation{endpoint: NetworkInfoEndpoint}
	if err := c.get(ctx, op, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Backup writes an encrypted node backup. The node must be locked; the
// daemon enforces its own state, so no client gate applies.
func (c *Client) Backup(ctx context.Context, req BackupRequest) (*StatusResponse, error) {
	op := operation{endpoint: BackupEndpoint}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// Restore restores the node from an encrypted backup. Runs against a
// locked node.
func (c *Client) Restore(ctx context.Context, req RestoreRequest) (*StatusResponse, error) {
	op := operation{endpoint: RestoreEndpoint}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// ChangePassword rotates the wallet password. Runs against a locked
// node.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*StatusResponse, error) {
	op := operation{endpoint: ChangePasswordEndpoint}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// CheckIndexerURL probes an indexer URL through the node.
func (c *Client) CheckIndexerURL(ctx context.Context, req CheckIndexerURLRequest) (*CheckIndexerURLResponse, error) {
	var out CheckIndexerURLResponse
	op := operation{endpoint: CheckIndexerURLEndpoint}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckProxyEndpoint probes an RGB proxy endpoint through the node.
func (c *Client) CheckProxyEndpoint(ctx context.Context, req CheckProxyEndpointRequest) (*StatusResponse, error) {
	op := operation{endpoint: CheckProxyEndpointEndpoint}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// SignMessage signs a message with the node key.
func (c *Client) SignMessage(ctx context.Context, req SignMessageRequest) (*SignMessageResponse, error) {
	var out SignMessageResponse
	op := operation{endpoint: SignMessageEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendOnionMessage sends an onion message along the given node path.
func (c *Client) SendOnionMessage(ctx context.Context, req SendOnionMessageRequest) (*StatusResponse, error) {
	op := operation{endpoint: SendOnionMessageEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}
