// Package storage keeps proof-of-payment images in a bucket directory on the
// local filesystem and hands out signed, time-limited links to them.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/turma62/fundraiser/internal/apperrors"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
	"github.com/turma62/fundraiser/internal/utils"
)

// Options configures a FileStore.
type Options struct {
	BasePath      string // root directory; the bucket is a subdirectory
	Bucket        string
	PublicBaseURL string // e.g. "https://api.example.com"
	SigningSecret string
	Issuer        string
}

// FileStore persists assets onto the local filesystem.
type FileStore struct {
	root          string
	bucket        string
	publicBaseURL string
	secret        string
	issuer        string
}

var _ portsrepo.AssetStore = (*FileStore)(nil)

// NewFileStore initializes a FileStore rooted at BasePath/Bucket.
func NewFileStore(opts Options) (*FileStore, error) {
	basePath := strings.TrimSpace(opts.BasePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	bucket, err := sanitizeKey(opts.Bucket)
	if err != nil || strings.Contains(bucket, "/") {
		return nil, fmt.Errorf("storage: invalid bucket %q", opts.Bucket)
	}
	if opts.SigningSecret == "" {
		return nil, errors.New("storage: signing secret is required")
	}
	root := filepath.Join(basePath, bucket)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &FileStore{
		root:          root,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		secret:        opts.SigningSecret,
		issuer:        opts.Issuer,
	}, nil
}

// Bucket returns the bucket name.
func (s *FileStore) Bucket() string {
	return s.bucket
}

// Upload persists data under name and returns the canonical key. Existing
// objects are never overwritten.
func (s *FileStore) Upload(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := sanitizeKey(name)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: ensure directory: %w", err)
	}

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("storage: object %s: %w", key, apperrors.ErrDuplicate)
		}
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: close file: %w", err)
	}
	return key, nil
}

// PublicURL returns the reference stored on ledger records. It does not grant
// access by itself; reading requires a signed token.
func (s *FileStore) PublicURL(name string) string {
	return fmt.Sprintf("%s/proofs/%s/%s", s.publicBaseURL, url.PathEscape(s.bucket), url.PathEscape(name))
}

// CreateSignedURL returns PublicURL(name) with a token valid for ttl.
func (s *FileStore) CreateSignedURL(ctx context.Context, name string, ttl time.Duration) (string, time.Time, error) {
	key, err := sanitizeKey(name)
	if err != nil {
		return "", time.Time{}, err
	}
	if _, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(key))); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", time.Time{}, fmt.Errorf("storage: object %s: %w", key, apperrors.ErrNotFound)
		}
		return "", time.Time{}, fmt.Errorf("storage: stat file: %w", err)
	}

	expiresAt := time.Now().Add(ttl)
	token, err := utils.GenerateScopedJWT(key, s.secret, ttl, s.issuer, s.bucket)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("storage: sign url: %w", err)
	}
	return s.PublicURL(key) + "?token=" + url.QueryEscape(token), expiresAt, nil
}

// Open verifies token for name and opens the object. The caller closes the reader.
func (s *FileStore) Open(ctx context.Context, name string, token string) (io.ReadCloser, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	key, err := sanitizeKey(name)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrNotFound, err)
	}
	if token == "" {
		return nil, "", apperrors.ErrUnauthorized
	}
	claims, err := utils.ParseAndValidateJWT(token, s.secret, s.bucket)
	if err != nil {
		return nil, "", fmt.Errorf("storage: %w: %v", apperrors.ErrUnauthorized, err)
	}
	if claims.Subject != key {
		return nil, "", fmt.Errorf("storage: token not issued for %s: %w", key, apperrors.ErrUnauthorized)
	}

	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("storage: object %s: %w", key, apperrors.ErrNotFound)
		}
		return nil, "", fmt.Errorf("storage: open file: %w", err)
	}
	return f, contentTypeFor(key), nil
}

func contentTypeFor(key string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(key))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// sanitizeKey normalizes a key and prevents escaping the storage root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.ToSlash(filepath.Clean(key))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}
