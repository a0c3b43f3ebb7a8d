package nodeclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCfa(t *testing.T) {
	t.Run("missing media path fails before any HTTP call", func(t *testing.T) {
		stub := newNodeStub(t)
		client := newTestClient(t, stub)
		service := NewIssueAssetService(client)

		_, err := service.IssueCfa(context.Background(), IssueCfaParams{
			Amounts:  []uint64{100},
			Ticker:   "ART",
			Name:     "Collectible",
			FilePath: filepath.Join(t.TempDir(), "does-not-exist.png"),
		})
		require.Error(t, err)
		require.Equal(t, KindMediaPathMissing, KindOf(err))
		require.Zero(t, stub.hitCount(string(PostAssetMediaEndpoint)))
		require.Zero(t, stub.hitCount(string(IssueAssetCfaEndpoint)))
	})

	t.Run("uploads media then issues with its digest", func(t *testing.T) {
		mediaPath := filepath.Join(t.TempDir(), "artwork.png")
		require.NoError(t, os.WriteFile(mediaPath, []byte("png-bytes"), 0o600))

		stub := newNodeStub(t)
		var uploadedMIME string
		var uploadedBytes []byte
		stub.handle(string(PostAssetMediaEndpoint), func(w http.ResponseWriter, r *http.Request) {
			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			uploadedBytes, err = io.ReadAll(file)
			require.NoError(t, err)
			uploadedMIME = header.Header.Get("Content-Type")
			assert.Equal(t, "artwork.png", header.Filename)
			_ = json.NewEncoder(w).Encode(PostAssetMediaResponse{Digest: "digest-123"})
		})

		var issued IssueAssetCfaRequest
		stub.handle(string(IssueAssetCfaEndpoint), func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&issued))
			_ = json.NewEncoder(w).Encode(IssueAssetResponse{
				Asset: Asset{AssetID: "rgb:cfa-1", AssetIface: AssetIfaceCfa, Name: "Collectible"},
			})
		})

		client := newTestClient(t, stub)
		service := NewIssueAssetService(client)

		asset, err := service.IssueCfa(context.Background(), IssueCfaParams{
			Amounts:  []uint64{100},
			Ticker:   "ART",
			Name:     "Collectible",
			FilePath: mediaPath,
		})
		require.NoError(t, err)
		assert.Equal(t, "rgb:cfa-1", asset.AssetID)

		assert.Equal(t, []byte("png-bytes"), uploadedBytes)
		assert.Equal(t, "image/png", uploadedMIME)
		require.NotNil(t, issued.FileDigest)
		assert.Equal(t, "digest-123", *issued.FileDigest)
		assert.Equal(t, "ART", issued.Ticker)
		assert.Equal(t, []uint64{100}, issued.Amounts)
	})
}
