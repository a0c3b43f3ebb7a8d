package nodeclient

import "context"

// gate is a declarative precondition attached to a repository operation.
// Gates run inside the request context, in order, before any HTTP call.
type gate interface {
	name() string
	check(ctx context.Context, c *Client) error
}

// unlockGate fails the operation unless the wallet daemon is unlocked.
type unlockGate struct{}

func (unlockGate) name() string { return "unlock_required" }

func (unlockGate) check(_ context.Context, c *Client) error {
	if !c.unlocked.Load() {
		return newError(KindUnlockRequired, errMsgNodeLocked)
	}
	return nil
}

// colorableGate confirms colored UTXO slots are available before an
// RGB-touching operation. The service layer may convert the resulting
// InsufficientAllocation into a create-UTXO-then-retry flow.
type colorableGate struct{}

func (colorableGate) name() string { return "colorable_available" }

func (colorableGate) check(ctx context.Context, c *Client) error {
	ok, err := c.colorable.ColorableAvailable(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return newError(KindInsufficientAllocation, errMsgInsufficientAllocation)
	}
	return nil
}

// Gate order: unlock first (cheapest), colorable second.
var (
	unlockGates    = []gate{unlockGate{}}
	colorableGates = []gate{unlockGate{}, colorableGate{}}
)

// ColorablePolicy answers whether the node currently has colorable
// allocation slots free.
type ColorablePolicy interface {
	ColorableAvailable(ctx context.Context) (bool, error)
}

// utxoColorablePolicy inspects the unspent list: a colorable UTXO with no
// RGB allocations counts as a free slot.
type utxoColorablePolicy struct {
	c *Client
}

func (p utxoColorablePolicy) ColorableAvailable(ctx context.Context) (bool, error) {
	resp, err := p.c.ListUnspents(ctx, SkipSyncRequest{})
	if err != nil {
		return false, err
	}
	for _, unspent := range resp.Unspents {
		if unspent.Utxo.Colorable && len(unspent.RgbAllocations) == 0 {
			return true, nil
		}
	}
	return false, nil
}
