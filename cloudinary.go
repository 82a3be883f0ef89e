package portfolio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryFileStore stores uploads in Cloudinary and returns the hosted
// secure URL. Public ids are remembered per path so Delete can address the
// remote asset.
type CloudinaryFileStore struct {
	client *cloudinary.Cloudinary

	mu        sync.Mutex
	publicIDs map[string]string // storage path -> cloudinary public id
}

// NewCloudinaryFileStore builds a store from a CLOUDINARY_URL-style DSN.
func NewCloudinaryFileStore(cloudURL string) (*CloudinaryFileStore, error) {
	client, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryFileStore{
		client:    client,
		publicIDs: make(map[string]string),
	}, nil
}

// Upload pushes the object to Cloudinary under a public id derived from the
// storage path and returns the hosted secure URL.
func (c *CloudinaryFileStore) Upload(ctx context.Context, r io.Reader, path string) (string, error) {
	publicID := strings.TrimSuffix(path, "."+extOf(path))
	res, err := c.client.Upload.Upload(ctx, r, uploader.UploadParams{PublicID: publicID})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	c.mu.Lock()
	c.publicIDs[path] = res.PublicID
	c.mu.Unlock()
	return res.SecureURL, nil
}

// Delete destroys the remote asset for the given storage path.
func (c *CloudinaryFileStore) Delete(ctx context.Context, path string) error {
	c.mu.Lock()
	publicID, ok := c.publicIDs[path]
	c.mu.Unlock()
	if !ok {
		publicID = strings.TrimSuffix(path, "."+extOf(path))
	}
	_, err := c.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	c.mu.Lock()
	delete(c.publicIDs, path)
	c.mu.Unlock()
	return nil
}

// List returns the assets uploaded through this store under the prefix.
// Cloudinary's admin search API is not exercised here; the in-memory index
// covers the dashboard's media listing for assets uploaded this session.
func (c *CloudinaryFileStore) List(ctx context.Context, prefix string) ([]StoredFile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var files []StoredFile
	for path, publicID := range c.publicIDs {
		if prefix != "" && !strings.HasPrefix(path, prefix) {
			continue
		}
		img, err := c.client.Image(publicID)
		if err != nil {
			continue
		}
		url, err := img.String()
		if err != nil {
			continue
		}
		files = append(files, StoredFile{
			Name: path[strings.LastIndex(path, "/")+1:],
			Path: path,
			URL:  url,
		})
	}
	return files, nil
}

func extOf(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return ""
}
