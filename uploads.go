package portfolio

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 80
	maxUploadSize = 10 << 20 // 10MB
)

// StoredFile describes one object in file storage.
type StoredFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// FileStore abstracts blob storage for uploaded media. Upload returns the
// public URL of the stored object synchronously; there is no deferred
// completion path.
type FileStore interface {
	Upload(ctx context.Context, r io.Reader, path string) (url string, err error)
	Delete(ctx context.Context, path string) error
	List(ctx context.Context, prefix string) ([]StoredFile, error)
}

// ObjectPath builds the canonical storage path for an upload:
// {feature}/{subfolder}/{unix}_{filename}, e.g.
// projects/images/1699999999_cover.png.
func ObjectPath(feature, subfolder, filename string) string {
	return fmt.Sprintf("%s/%s/%d_%s", feature, subfolder, time.Now().Unix(), sanitizeFilename(filename))
}

// sanitizeFilename slugs the base name while keeping the extension, so the
// storage path stays URL-safe.
func sanitizeFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := Slugify(strings.TrimSuffix(name, filepath.Ext(name)))
	if base == "" {
		base = "file"
	}
	return base + ext
}

// LocalFileStore writes uploads under <root>/uploads and serves them from
// the site's own static file handler. Images run through a decode, resize
// and JPEG re-encode pipeline before hitting disk.
type LocalFileStore struct {
	root    string // static dir
	baseURL string // public URL prefix the uploads dir is mounted at, e.g. "/uploads"
}

// NewLocalFileStore creates a local store rooted at the static directory.
func NewLocalFileStore(staticDir, baseURL string) *LocalFileStore {
	return &LocalFileStore{root: staticDir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Upload writes the object and returns its public URL. Image payloads are
// resized down to maxImageWidth and re-encoded as JPEG; other payloads are
// stored as-is.
func (l *LocalFileStore) Upload(ctx context.Context, r io.Reader, path string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > maxUploadSize {
		return "", fmt.Errorf("file too large (max %d bytes)", maxUploadSize)
	}

	if isImagePath(path) {
		if processed, err := processImage(bytes.NewReader(data)); err == nil {
			data = processed
			path = strings.TrimSuffix(path, filepath.Ext(path)) + ".jpg"
		}
		// Undecodable "images" (e.g. SVG) fall through unprocessed.
	}

	dst := filepath.Join(l.root, "uploads", filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return l.baseURL + "/" + path, nil
}

// Delete removes a stored object. Deleting a missing object is not an error.
// Image uploads land on disk as .jpg regardless of their original extension,
// so deletes by the original path fall back to the rewritten name.
func (l *LocalFileStore) Delete(ctx context.Context, path string) error {
	err := os.Remove(filepath.Join(l.root, "uploads", filepath.FromSlash(path)))
	if err == nil || !os.IsNotExist(err) {
		return err
	}
	if isImagePath(path) {
		if alt := strings.TrimSuffix(path, filepath.Ext(path)) + ".jpg"; alt != path {
			if err := os.Remove(filepath.Join(l.root, "uploads", filepath.FromSlash(alt))); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}
	return nil
}

// List walks stored objects under the given prefix.
func (l *LocalFileStore) List(ctx context.Context, prefix string) ([]StoredFile, error) {
	root := filepath.Join(l.root, "uploads", filepath.FromSlash(prefix))
	var files []StoredFile
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(filepath.Join(l.root, "uploads"), p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		files = append(files, StoredFile{
			Name: filepath.Base(p),
			Path: rel,
			URL:  l.baseURL + "/" + rel,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func isImagePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

// processImage decodes an image, scales it down to maxImageWidth if wider,
// and re-encodes it as JPEG.
func processImage(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
