package nodeclient

import "context"

// Peer is one entry of the list peers response.
type Peer struct {
	Pubkey string `json:"pubkey"`
}

// ConnectPeerRequest connects to a peer by pubkey@host:port.
type ConnectPeerRequest struct {
	PeerPubkeyAndAddr string `json:"peer_pubkey_and_addr" validate:"required"`
}

// DisconnectPeerRequest disconnects a connected peer.
type DisconnectPeerRequest struct {
	PeerPubkey string `json:"peer_pubkey" validate:"required"`
}

// ListPeersResponse is the list peers response.
type ListPeersResponse struct {
	Peers []Peer `json:"peers"`
}

// ConnectPeer connects to a peer.
func (c *Client) ConnectPeer(ctx context.Context, req ConnectPeerRequest) (*StatusResponse, error) {
	op := operation{endpoint: ConnectPeerEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// DisconnectPeer disconnects from a peer.
func (c *Client) DisconnectPeer(ctx context.Context, req DisconnectPeerRequest) (*StatusResponse, error) {
	op := operation{endpoint: DisconnectPeerEndpoint, gates: unlockGates}
	if err := c.post(ctx, op, req, nil); err != nil {
		return nil, err
	}
	return &StatusResponse{Status: true}, nil
}

// ListPeers lists the connected peers.
func (c *Client) ListPeers(ctx context.Context) (*ListPeersResponse, error) {
	var out ListPeersResponse
	op := operation{endpoint: ListPeersEndpoint, gates: unlockGates}
	if err := c.get(ctx, op, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
