package nodeclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func uint64Ptr(v uint64) *uint64 { return &v }

func TestNewTransactionTx(t *testing.T) {
	t.Run("neither selector fails", func(t *testing.T) {
		_, err := NewTransactionTx(nil, nil)
		require.Error(t, err)
		require.Equal(t, KindSelectorExclusivity, KindOf(err))
		require.Equal(t, "Either 'tx_id' or 'idx' must be provided", err.Error())
	})

	t.Run("both selectors fail", func(t *testing.T) {
		_, err := NewTransactionTx(strPtr("x"), int64Ptr(2))
		require.Error(t, err)
		require.Equal(t, KindSelectorExclusivity, KindOf(err))
		require.Equal(t, "Both 'tx_id' and 'idx' cannot be accepted at the same time", err.Error())
	})

	t.Run("txid alone is accepted", func(t *testing.T) {
		sel, err := NewTransactionTx(strPtr("txid-a"), nil)
		require.NoError(t, err)
		assert.True(t, sel.Matches(TransferAsset{Txid: strPtr("txid-a")}))
		assert.False(t, sel.Matches(TransferAsset{Txid: strPtr("txid-b")}))
		assert.False(t, sel.Matches(TransferAsset{}))
	})

	t.Run("idx alone is accepted", func(t *testing.T) {
		sel, err := NewTransactionTx(nil, int64Ptr(7))
		require.NoError(t, err)
		assert.True(t, sel.Matches(TransferAsset{Idx: int64Ptr(7)}))
		assert.False(t, sel.Matches(TransferAsset{Idx: int64Ptr(8)}))
	})
}

func TestAssignTransferStatus(t *testing.T) {
	cases := []struct {
		kind       TransferKind
		wantStatus TransferStatus
		wantAmount string
	}{
		{TransferKindIssuance, TransferStatusInternal, "+500"},
		{TransferKindReceiveBlind, TransferStatusReceived, "+500"},
		{TransferKindReceiveWitness, TransferStatusReceived, "+500"},
		{TransferKindSend, TransferStatusSent, "-500"},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			transfer := TransferAsset{Kind: tc.kind, Amount: 500}
			require.NoError(t, assignTransferStatus(&transfer))
			assert.Equal(t, tc.wantStatus, transfer.TransferStatus)
			assert.Equal(t, tc.wantAmount, transfer.AmountStatus)
		})
	}

	t.Run("unknown kind is a hard failure", func(t *testing.T) {
		transfer := TransferAsset{Kind: "Invalid", Amount: 500}
		err := assignTransferStatus(&transfer)
		require.Error(t, err)
		require.Equal(t, KindUnknownTransferKind, KindOf(err))
	})
}

func TestIssueAssetEnvelope(t *testing.T) {
	stub := newNodeStub(t)
	stub.respond(string(IssueAssetNiaEndpoint), map[string]any{
		"asset": map[string]any{
			"asset_id":      "rgb:asset-1",
			"asset_iface":   "Nia",
			"ticker":        "USDT",
			"name":          "Tether",
			"precision":     0,
			"issued_supply": 777,
			"balance": map[string]any{
				"settled": 777, "future": 777, "spendable": 777,
			},
		},
	})
	client := newTestClient(t, stub)

	asset, err := client.IssueAssetNia(context.Background(), IssueAssetNiaRequest{
		Amounts: []uint64{777},
		Ticker:  "USDT",
		Name:    "Tether",
	})
	require.NoError(t, err)
	assert.Equal(t, "rgb:asset-1", asset.AssetID)
	assert.Equal(t, AssetIfaceNia, asset.AssetIface)
	assert.Equal(t, uint64(777), asset.Balance.Future)
}

func TestRequestDefaults(t *testing.T) {
	t.Run("open channel", func(t *testing.T) {
		req := NewOpenChannelRequest("02abc@host:9735")
		assert.Equal(t, uint64(30010), req.CapacitySat)
		assert.Equal(t, uint64(1394000), req.PushMsat)
		assert.True(t, req.Public)
		assert.True(t, req.WithAnchors)
		assert.Equal(t, uint64(1000), req.FeeBaseMsat)
		assert.Zero(t, req.FeeProportionalMillionths)
	})

	t.Run("create utxos", func(t *testing.T) {
		req := NewCreateUtxosRequest()
		assert.Equal(t, uint8(1), req.Num)
		assert.Equal(t, uint32(1000), req.Size)
		assert.Equal(t, uint64(5), req.FeeRate)
		assert.False(t, req.SkipSync)
	})

	t.Run("rgb invoice", func(t *testing.T) {
		assert.Equal(t, uint32(86400), NewRgbInvoiceRequest().DurationSeconds)
	})

	t.Run("ln invoice", func(t *testing.T) {
		req := NewLnInvoiceRequest()
		assert.Equal(t, uint64(3000000), req.AmtMsat)
		assert.Equal(t, uint32(420), req.ExpirySec)
	})

	t.Run("keysend", func(t *testing.T) {
		req := NewKeySendRequest("02abc", "rgb:asset-1", 10)
		assert.Equal(t, uint64(3000000), req.AmtMsat)
	})
}
