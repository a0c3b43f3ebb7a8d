package nodeclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubMainPageNode(t *testing.T, assets ListAssetsResponse) *nodeStub {
	t.Helper()
	stub := newNodeStub(t)
	stub.respond(string(RefreshTransfersEndpoint), map[string]any{})
	stub.respond(string(ListAssetsEndpoint), assets)
	stub.respond(string(BtcBalanceEndpoint), BtcBalanceResponse{
		Vanilla: BalanceStatus{Settled: 5000, Future: 5000, Spendable: 5000},
		Colored: BalanceStatus{Settled: 64000, Future: 64000, Spendable: 64000},
	})
	return stub
}

func TestMainPageAssets(t *testing.T) {
	t.Run("regtest with hide-exhausted drops zero-future assets", func(t *testing.T) {
		assets := ListAssetsResponse{
			Nia: []Asset{
				{AssetID: "rgb:nia-live", Name: "Live", Balance: Balance{Future: 10}},
				{AssetID: "rgb:nia-spent", Name: "Spent", Balance: Balance{Future: 0}},
			},
			Cfa: []Asset{
				{AssetID: "rgb:cfa-spent", Name: "Gone", Balance: Balance{Future: 0}},
			},
			Uda: []Asset{
				{AssetID: "rgb:uda-live", Name: "Unique", Balance: Balance{Future: 1}},
			},
		}
		stub := stubMainPageNode(t, assets)
		client := newTestClient(t, stub)
		service := NewMainPageService(client, stubSettings{
			walletType:    WalletTypeEmbedded,
			network:       NetworkRegtest,
			hideExhausted: true,
		})

		page, err := service.Assets(context.Background())
		require.NoError(t, err)

		require.Len(t, page.Nia, 1)
		assert.Equal(t, "rgb:nia-live", page.Nia[0].AssetID)
		assert.Empty(t, page.Cfa)
		require.Len(t, page.Uda, 1)

		assert.Equal(t, "rBTC", page.Vanilla.Ticker)
		assert.Equal(t, "rBitcoin", page.Vanilla.Name)
		assert.Equal(t, uint64(5000), page.Vanilla.Balance.Settled)

		// The aggregation refreshes transfers before listing.
		assert.Equal(t, 1, stub.hitCount(string(RefreshTransfersEndpoint)))
	})

	t.Run("hide-exhausted filtering is idempotent", func(t *testing.T) {
		assets := []Asset{
			{AssetID: "a", Balance: Balance{Future: 3}},
			{AssetID: "b", Balance: Balance{Future: 0}},
		}
		once := filterExhausted(assets)
		twice := filterExhausted(once)
		assert.Equal(t, once, twice)
	})

	t.Run("remote wallet attaches media hex to cfa assets", func(t *testing.T) {
		assets := ListAssetsResponse{
			Cfa: []Asset{
				{
					AssetID: "rgb:cfa-1",
					Name:    "Art",
					Balance: Balance{Future: 5},
					Media:   &Media{FilePath: "/media/a", Digest: "digest-a", Mime: "image/png"},
				},
			},
		}
		stub := stubMainPageNode(t, assets)
		stub.respond(string(GetAssetMediaEndpoint), GetAssetMediaResponse{BytesHex: "cafef00d"})
		client := newTestClient(t, stub)
		service := NewMainPageService(client, stubSettings{
			walletType: WalletTypeRemote,
			network:    NetworkRegtest,
		})

		page, err := service.Assets(context.Background())
		require.NoError(t, err)
		require.Len(t, page.Cfa, 1)
		require.NotNil(t, page.Cfa[0].Media.Hex)
		assert.Equal(t, "cafef00d", *page.Cfa[0].Media.Hex)
	})

	t.Run("embedded wallet never fetches media", func(t *testing.T) {
		assets := ListAssetsResponse{
			Cfa: []Asset{
				{
					AssetID: "rgb:cfa-1",
					Balance: Balance{Future: 5},
					Media:   &Media{Digest: "digest-a", Mime: "image/png"},
				},
			},
		}
		stub := stubMainPageNode(t, assets)
		client := newTestClient(t, stub)
		service := NewMainPageService(client, stubSettings{
			walletType: WalletTypeEmbedded,
			network:    NetworkRegtest,
		})

		page, err := service.Assets(context.Background())
		require.NoError(t, err)
		assert.Nil(t, page.Cfa[0].Media.Hex)
		assert.Zero(t, stub.hitCount(string(GetAssetMediaEndpoint)))
	})

	t.Run("unknown network fails before any node call", func(t *testing.T) {
		stub := newNodeStub(t)
		client := newTestClient(t, stub)
		service := NewMainPageService(client, stubSettings{network: Network("signet")})

		_, err := service.Assets(context.Background())
		require.Error(t, err)
		require.Equal(t, KindInvalidNetwork, KindOf(err))
		assert.Zero(t, stub.hitCount(string(RefreshTransfersEndpoint)))
	})
}
