package nodeclient

import (
	"context"
	"sort"

	"github.com/rahilmansuri1/iris-wallet-desktop-sub004/pkg/log"
)

// AssetDetailService merges the on-chain transfer history of one asset
// with its off-chain payments and balance into a single view.
type AssetDetailService struct {
	client *Client
	logger log.Logger
}

func NewAssetDetailService(client *Client) *AssetDetailService {
	return &AssetDetailService{
		client: client,
		logger: client.logger.NewSystem("asset-detail"),
	}
}

// AssetTransactions is the merged history of one asset.
type AssetTransactions struct {
	OnchainTransfers  []TransferAsset `json:"onchain_transfers"`
	OffchainTransfers []Payment       `json:"off_chain_transfers"`
	AssetBalance      Balance         `json:"asset_balance"`
}

// displayStatuses are the transfer states whose updated-at display
// fields are filled.
var displayStatuses = map[TransactionStatus]struct{}{
	TransactionStatusSettled:              {},
	TransactionStatusFailed:               {},
	TransactionStatusConfirmed:            {},
	TransactionStatusWaitingConfirmations: {},
	TransactionStatusWaitingCounterparty:  {},
}

// AssetTransactions fetches the asset's transfers and balance together
// with the full lightning payment history and derives the display
// fields. Transfers come back sorted by idx descending, transfers
// without an idx last.
func (s *AssetDetailService) AssetTransactions(ctx context.Context, assetID string) (*AssetTransactions, error) {
	transfers, err := s.client.ListTransfers(ctx, ListTransfersRequest{AssetID: assetID})
	if err != nil {
		return nil, err
	}
	balance, err := s.client.AssetBalance(ctx, AssetBalanceRequest{AssetID: assetID})
	if err != nil {
		return nil, err
	}
	payments, err := s.client.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	offchain := make([]Payment, 0, len(payments.Payments))
	for _, p := range payments.Payments {
		p.fillDisplayFields()
		offchain = append(offchain, p)
	}

	onchain := transfers.Transfers
	for i := range onchain {
		t := &onchain[i]
		if _, ok := displayStatuses[t.Status]; ok {
			t.fillUpdatedDisplay()
		}
		t.fillCreatedDisplay()
		if err := assignTransferStatus(t); err != nil {
			s.logger.Error("transfer with unrecognized kind",
				"asset_id", assetID, "kind", string(t.Kind))
			return nil, err
		}
	}
	sort.SliceStable(onchain, func(i, j int) bool {
		a, b := onchain[i].Idx, onchain[j].Idx
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})

	return &AssetTransactions{
		OnchainTransfers:  onchain,
		OffchainTransfers: offchain,
		AssetBalance:      *balance,
	}, nil
}

// AssetTransaction returns the first on-chain transfer matching the
// selector, or nil when the asset history holds no such transfer.
func (s *AssetDetailService) AssetTransaction(ctx context.Context, assetID string, selector TransactionTx) (*TransferAsset, error) {
	merged, err := s.AssetTransactions(ctx, assetID)
	if err != nil {
		return nil, err
	}
	for i := range merged.OnchainTransfers {
		if selector.Matches(merged.OnchainTransfers[i]) {
			return &merged.OnchainTransfers[i], nil
		}
	}
	return nil, nil
}
