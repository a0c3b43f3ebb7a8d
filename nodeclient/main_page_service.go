package nodeclient

import (
	"context"

	"github.com/rahilmansuri1/iris-wallet-desktop-sub004/pkg/log"
)

// MainPageService assembles the asset overview the wallet main page
// renders: refreshed RGB assets grouped by interface plus the vanilla
// BTC pseudo-asset.
type MainPageService struct {
	client   *Client
	settings Settings
	logger   log.Logger
}

func NewMainPageService(client *Client, settings Settings) *MainPageService {
	return &MainPageService{
		client:   client,
		settings: settings,
		logger:   client.logger.NewSystem("main-page"),
	}
}

// VanillaAsset is the offline BTC entry of the main page.
type VanillaAsset struct {
	Ticker  string        `json:"ticker"`
	Name    string        `json:"name"`
	Balance BalanceStatus `json:"balance"`
}

// MainPageAssets is the aggregated main page payload.
type MainPageAssets struct {
	Nia     []Asset      `json:"nia"`
	Cfa     []Asset      `json:"cfa"`
	Uda     []Asset      `json:"uda"`
	Vanilla VanillaAsset `json:"vanilla"`
}

// Assets refreshes pending transfers and aggregates the asset lists and
// on-chain balance. With hide-exhausted enabled, assets whose future
// balance is zero are dropped. For remote wallets, CFA media payloads
// are fetched and attached as hex.
func (s *MainPageService) Assets(ctx context.Context) (*MainPageAssets, error) {
	network := s.settings.Network()
	ticker, err := BitcoinTicker(network)
	if err != nil {
		return nil, err
	}
	name, err := BitcoinName(network)
	if err != nil {
		return nil, err
	}

	if _, err := s.client.RefreshTransfers(ctx, RefreshTransfersRequest{}); err != nil {
		return nil, err
	}

	assets, err := s.client.ListAssets(ctx, ListAssetsRequest{
		FilterAssetSchemas: []AssetIface{AssetIfaceNia, AssetIfaceCfa, AssetIfaceUda},
	})
	if err != nil {
		return nil, err
	}

	balance, err := s.client.BtcBalance(ctx, SkipSyncRequest{})
	if err != nil {
		return nil, err
	}

	nia, cfa, uda := assets.Nia, assets.Cfa, assets.Uda
	if s.settings.HideExhaustedAssets() {
		nia = filterExhausted(nia)
		cfa = filterExhausted(cfa)
		uda = filterExhausted(uda)
	}

	if s.settings.WalletType() == WalletTypeRemote {
		if err := s.attachMediaHex(ctx, cfa); err != nil {
			return nil, err
		}
	}

	return &MainPageAssets{
		Nia: nia,
		Cfa: cfa,
		Uda: uda,
		Vanilla: VanillaAsset{
			Ticker:  ticker,
			Name:    name,
			Balance: balance.Vanilla,
		},
	}, nil
}

// filterExhausted keeps only assets with a non-zero future balance.
func filterExhausted(assets []Asset) []Asset {
	kept := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if a.Balance.Future != 0 {
			kept = append(kept, a)
		}
	}
	return kept
}

// attachMediaHex fetches media payloads by digest and caches them on
// the asset records. Only remote wallets need this: embedded nodes
// share the local filesystem with the app.
func (s *MainPageService) attachMediaHex(ctx context.Context, assets []Asset) error {
	for i := range assets {
		media := assets[i].Media
		if media == nil || media.Digest == "" || media.Hex != nil {
			continue
		}
		resp, err := s.client.GetAssetMedia(ctx, GetAssetMediaRequest{Digest: media.Digest})
		if err != nil {
			return err
		}
		hex := resp.BytesHex
		media.Hex = &hex
	}
	return nil
}
