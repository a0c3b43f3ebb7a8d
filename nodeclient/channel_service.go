package nodeclient

import (
	"context"

	"github.com/rahilmansuri1/iris-wallet-desktop-sub004/pkg/log"
)

// ChannelService wraps channel opening with the allocation recovery
// flow: when the node rejects an open for lack of colorable allocation
// slots or uncolored UTXOs, a channel-sized UTXO is created and the
// open is retried once.
type ChannelService struct {
	client   *Client
	settings Settings
	logger   log.Logger
}

func NewChannelService(client *Client, settings Settings) *ChannelService {
	return &ChannelService{
		client:   client,
		settings: settings,
		logger:   client.logger.NewSystem("channel"),
	}
}

// recoverableOpenFailure reports whether the open channel error is one
// the create-UTXO-then-retry flow can address.
func recoverableOpenFailure(err error) bool {
	kind := KindOf(err)
	return kind == KindInsufficientAllocation || kind == KindNotEnoughUncolored
}

// Open opens a channel, recovering once from an allocation failure by
// creating a UTXO large enough to fund the channel. Any other failure
// surfaces directly.
func (s *ChannelService) Open(ctx context.Context, req OpenChannelRequest) (*OpenChannelResponse, error) {
	resp, err := s.client.OpenChannel(ctx, req)
	if err == nil {
		return resp, nil
	}
	if !recoverableOpenFailure(err) {
		return nil, err
	}

	s.logger.Info("open channel rejected for allocation, creating utxo",
		"kind", string(KindOf(err)), "capacity_sat", req.CapacitySat)
	if err := s.ensureChannelUtxo(ctx, req.CapacitySat); err != nil {
		return nil, err
	}
	return s.client.OpenChannel(ctx, req)
}

// ensureChannelUtxo makes sure an uncolored colorable UTXO large enough
// for the channel exists, creating one when absent.
func (s *ChannelService) ensureChannelUtxo(ctx context.Context, capacitySat uint64) error {
	size := uint64(channelUtxoSizeSat)
	if capacitySat > size {
		size = capacitySat
	}

	unspents, err := s.client.ListUnspents(ctx, SkipSyncRequest{})
	if err != nil {
		return err
	}
	for _, u := range unspents.Unspents {
		if u.Utxo.Colorable && len(u.RgbAllocations) == 0 && u.Utxo.BtcAmount >= size {
			return nil
		}
	}

	balance, err := s.client.BtcBalance(ctx, SkipSyncRequest{})
	if err != nil {
		return err
	}
	if balance.Vanilla.Spendable < size {
		return errorf(KindNotEnoughUncolored,
			"spendable balance %d sat is below the channel utxo size %d sat",
			balance.Vanilla.Spendable, size)
	}

	feeRate, err := s.channelUtxoFeeRate(ctx)
	if err != nil {
		return err
	}

	_, err = s.client.CreateUtxos(ctx, CreateUtxosRequest{
		Num:     defaultUtxoNum,
		Size:    uint32(size),
		FeeRate: feeRate,
	})
	return err
}

// channelUtxoFeeRate estimates the fee at the medium block target and
// falls back to the configured default when the node returns a
// non-positive rate.
func (s *ChannelService) channelUtxoFeeRate(ctx context.Context) (uint64, error) {
	est, err := s.client.EstimateFee(ctx, EstimateFeeRequest{Blocks: mediumTransactionFeeBlocks})
	if err != nil {
		return 0, err
	}
	if est.FeeRate <= 0 {
		s.logger.Warn("node returned a non-positive fee rate, using default",
			"fee_rate", est.FeeRate)
		return s.settings.DefaultFeeRate(), nil
	}
	return uint64(est.FeeRate), nil
}
