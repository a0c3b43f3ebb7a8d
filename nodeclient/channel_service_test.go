package nodeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failThenSucceed answers the first open with an allocation error and
// every later one with a success.
func failThenSucceed(calls *atomic.Int32, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": message, "code": 403})
			return
		}
		_ = json.NewEncoder(w).Encode(OpenChannelResponse{TemporaryChannelID: "temp-chan-1"})
	}
}

func TestChannelServiceOpen(t *testing.T) {
	settings := stubSettings{feeRate: 5}

	t.Run("recovers from insufficient allocation with one retry", func(t *testing.T) {
		stub := newNodeStub(t)
		var opens atomic.Int32
		stub.handle(string(OpenChannelEndpoint), failThenSucceed(&opens, errMsgInsufficientAllocation))
		stub.respond(string(ListUnspentsEndpoint), ListUnspentsResponse{})
		stub.respond(string(BtcBalanceEndpoint), BtcBalanceResponse{
			Vanilla: BalanceStatus{Spendable: 100000},
		})
		stub.respond(string(EstimateFeeEndpoint), EstimateFeeResponse{FeeRate: 2.5})

		var created CreateUtxosRequest
		stub.handle(string(CreateUtxosEndpoint), func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			_, _ = w.Write([]byte("{}"))
		})

		service := NewChannelService(newTestClient(t, stub), settings)
		resp, err := service.Open(context.Background(), NewOpenChannelRequest("02abc@host:9735"))
		require.NoError(t, err)
		assert.Equal(t, "temp-chan-1", resp.TemporaryChannelID)
		assert.Equal(t, int32(2), opens.Load())

		// Channel UTXO: at least 32000 sat, fee from the estimate.
		assert.Equal(t, uint32(32000), created.Size)
		assert.Equal(t, uint64(2), created.FeeRate)
	})

	t.Run("not enough uncolored also triggers the recovery", func(t *testing.T) {
		stub := newNodeStub(t)
		var opens atomic.Int32
		stub.handle(string(OpenChannelEndpoint), failThenSucceed(&opens, errMsgNotEnoughUncolored))
		stub.respond(string(ListUnspentsEndpoint), ListUnspentsResponse{})
		stub.respond(string(BtcBalanceEndpoint), BtcBalanceResponse{
			Vanilla: BalanceStatus{Spendable: 100000},
		})
		stub.respond(string(EstimateFeeEndpoint), EstimateFeeResponse{FeeRate: 3})
		stub.respond(string(CreateUtxosEndpoint), map[string]any{})

		service := NewChannelService(newTestClient(t, stub), settings)
		_, err := service.Open(context.Background(), NewOpenChannelRequest("02abc@host:9735"))
		require.NoError(t, err)
		assert.Equal(t, int32(2), opens.Load())
	})

	t.Run("an existing channel-sized utxo skips creation", func(t *testing.T) {
		stub := newNodeStub(t)
		var opens atomic.Int32
		stub.handle(string(OpenChannelEndpoint), failThenSucceed(&opens, errMsgInsufficientAllocation))
		stub.respond(string(ListUnspentsEndpoint), ListUnspentsResponse{
			Unspents: []Unspent{
				{Utxo: Utxo{Outpoint: "aa:0", BtcAmount: 40000, Colorable: true}},
			},
		})

		service := NewChannelService(newTestClient(t, stub), settings)
		_, err := service.Open(context.Background(), NewOpenChannelRequest("02abc@host:9735"))
		require.NoError(t, err)
		assert.Zero(t, stub.hitCount(string(CreateUtxosEndpoint)))
	})

	t.Run("insufficient spendable balance is a hard failure", func(t *testing.T) {
		stub := newNodeStub(t)
		stub.fail(string(OpenChannelEndpoint), http.StatusForbidden, errMsgInsufficientAllocation)
		stub.respond(string(ListUnspentsEndpoint), ListUnspentsResponse{})
		stub.respond(string(BtcBalanceEndpoint), BtcBalanceResponse{
			Vanilla: BalanceStatus{Spendable: 1000},
		})

		service := NewChannelService(newTestClient(t, stub), settings)
		_, err := service.Open(context.Background(), NewOpenChannelRequest("02abc@host:9735"))
		require.Error(t, err)
		require.Equal(t, KindNotEnoughUncolored, KindOf(err))
		assert.Zero(t, stub.hitCount(string(CreateUtxosEndpoint)))
	})

	t.Run("non-positive fee estimate falls back to the default rate", func(t *testing.T) {
		stub := newNodeStub(t)
		var opens atomic.Int32
		stub.handle(string(OpenChannelEndpoint), failThenSucceed(&opens, errMsgInsufficientAllocation))
		stub.respond(string(ListUnspentsEndpoint), ListUnspentsResponse{})
		stub.respond(string(BtcBalanceEndpoint), BtcBalanceResponse{
			Vanilla: BalanceStatus{Spendable: 100000},
		})
		stub.respond(string(EstimateFeeEndpoint), EstimateFeeResponse{FeeRate: 0})

		var created CreateUtxosRequest
		stub.handle(string(CreateUtxosEndpoint), func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			_, _ = w.Write([]byte("{}"))
		})

		service := NewChannelService(newTestClient(t, stub), settings)
		_, err := service.Open(context.Background(), NewOpenChannelRequest("02abc@host:9735"))
		require.NoError(t, err)
		assert.Equal(t, uint64(5), created.FeeRate)
	})

	t.Run("other errors surface without a retry", func(t *testing.T) {
		stub := newNodeStub(t)
		stub.fail(string(OpenChannelEndpoint), http.StatusBadRequest, "Invalid peer info")
		service := NewChannelService(newTestClient(t, stub), settings)

		_, err := service.Open(context.Background(), NewOpenChannelRequest("02abc@host:9735"))
		require.Error(t, err)
		require.Equal(t, KindHTTPStatus, KindOf(err))
		assert.Equal(t, 1, stub.hitCount(string(OpenChannelEndpoint)))
		assert.Zero(t, stub.hitCount(string(CreateUtxosEndpoint)))
	})
}
