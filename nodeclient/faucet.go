package nodeclient

import "context"

// BriefAssetInfo is the compact asset description the faucet returns.
type BriefAssetInfo struct {
	AssetID   string  `json:"asset_id"`
	Name      string  `json:"name"`
	Ticker    *string `json:"ticker,omitempty"`
	Schema    string  `json:"schema"`
	Amount    uint64  `json:"amount"`
	Precision uint8   `json:"precision"`
}

// ListFaucetAssetsResponse lists the assets the faucet can hand out,
// keyed by asset identifier.
type ListFaucetAssetsResponse struct {
	Assets map[string]BriefAssetInfo `json:"assets"`
}

// FaucetDistribution describes how a faucet group hands out assets.
type FaucetDistribution struct {
	Mode int `json:"mode"`
}

// FaucetGroup is one asset group offered to a wallet.
type FaucetGroup struct {
	Label        string             `json:"label"`
	Distribution FaucetDistribution `json:"distribution"`
	RequestsLeft int                `json:"requests_left"`
}

// WalletConfigResponse is the faucet configuration for one wallet xpub.
type WalletConfigResponse struct {
	Name   string                 `json:"name"`
	Groups map[string]FaucetGroup `json:"groups"`
}

// RequestFaucetAssetRequest asks the faucet to send an asset to the
// given RGB invoice.
type RequestFaucetAssetRequest struct {
	WalletID   string `json:"wallet_id" validate:"required"`
	Invoice    string `json:"invoice" validate:"required"`
	AssetGroup string `json:"asset_group" validate:"required"`
}

// RequestFaucetAssetResponse describes the asset the faucet will send.
type RequestFaucetAssetResponse struct {
	Asset        BriefAssetInfo     `json:"asset"`
	Distribution FaucetDistribution `json:"distribution"`
}

// faucetReady fails fast when no faucet base URL is configured.
func (c *Client) faucetReady() error {
	if c.faucet == nil {
		return newError(KindRequestFailed, "faucet url is not configured")
	}
	return nil
}

// ListFaucetAssets lists the assets the faucet can hand out.
func (c *Client) ListFaucetAssets(ctx context.Context) (*ListFaucetAssetsResponse, error) {
	if err := c.faucetReady(); err != nil {
		return nil, err
	}
	var out ListFaucetAssetsResponse
	op := operation{endpoint: ListFaucetAssetsEndpoint}
	raw, err := c.run(ctx, op, string(op.endpoint), func(ctx context.Context) ([]byte, error) {
		return c.faucet.Get(ctx, op.endpoint)
	})
	if err != nil {
		return nil, err
	}
	if err := decodeResponse(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WalletConfig returns the faucet configuration for a wallet xpub.
func (c *Client) WalletConfig(ctx context.Context, xpub string) (*WalletConfigResponse, error) {
	if err := c.faucetReady(); err != nil {
		return nil, err
	}
	if xpub == "" {
		return nil, newError(KindSchemaValidation, "wallet xpub is required")
	}
	var out WalletConfigResponse
	target := Endpoint(string(WalletConfigEndpoint) + "/" + xpub)
	op := operation{endpoint: WalletConfigEndpoint}
	raw, err := c.run(ctx, op, string(target), func(ctx context.Context) ([]byte, error) {
		return c.faucet.Get(ctx, target)
	})
	if err != nil {
		return nil, err
	}
	if err := decodeResponse(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestFaucetAsset asks the faucet to send an asset to an RGB invoice.
// Mutating: the incoming transfer changes wallet state, so the read
// cache is dropped.
func (c *Client) RequestFaucetAsset(ctx context.Context, req RequestFaucetAssetRequest) (*RequestFaucetAssetResponse, error) {
	if err := c.faucetReady(); err != nil {
		return nil, err
	}
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	var out RequestFaucetAssetResponse
	op := operation{endpoint: RequestFaucetAssetEndpoint, mutating: true}
	raw, err := c.run(ctx, op, string(op.endpoint), func(ctx context.Context) ([]byte, error) {
		return c.faucet.PostJSON(ctx, op.endpoint, req)
	})
	if err != nil {
		return nil, err
	}
	if err := decodeResponse(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
