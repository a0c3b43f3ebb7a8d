package nodeclient

import (
	"context"
	"mime"
	"os"
	"path/filepath"

	"github.com/rahilmansuri1/iris-wallet-desktop-sub004/pkg/log"
)

// IssueAssetService handles issuance flows that need more than a single
// node call.
type IssueAssetService struct {
	client *Client
	logger log.Logger
}

func NewIssueAssetService(client *Client) *IssueAssetService {
	return &IssueAssetService{
		client: client,
		logger: client.logger.NewSystem("issue-asset"),
	}
}

// IssueCfaParams describes a CFA issuance with a local media file.
type IssueCfaParams struct {
	Amounts  []uint64
	Ticker   string
	Name     string
	Details  *string
	FilePath string
}

// IssueCfa uploads the media file to the node and issues a CFA asset
// referencing its digest. The file path is checked before any HTTP call
// is made.
func (s *IssueAssetService) IssueCfa(ctx context.Context, params IssueCfaParams) (*Asset, error) {
	info, err := os.Stat(params.FilePath)
	if err != nil || info.IsDir() {
		return nil, errorf(KindMediaPathMissing, "media file not found: %s", params.FilePath)
	}

	data, err := os.ReadFile(params.FilePath)
	if err != nil {
		return nil, wrapError(KindMediaPathMissing, "reading media file", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(params.FilePath))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	media, err := s.client.PostAssetMedia(ctx, MultipartFile{
		Filename: filepath.Base(params.FilePath),
		MIME:     mimeType,
		Data:     data,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("media uploaded", "digest", media.Digest, "mime", mimeType)

	asset, err := s.client.IssueAssetCfa(ctx, IssueAssetCfaRequest{
		Amounts:    params.Amounts,
		Ticker:     params.Ticker,
		Name:       params.Name,
		Details:    params.Details,
		FileDigest: &media.Digest,
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}
