package artifacts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"printorders/internal/core/ports"
	"printorders/internal/pkg/errs"
)

const (
	// UploadPrefix namespaces order PDF keys.
	UploadPrefix = "orders/"

	DefaultFileName    = "upload.pdf"
	DefaultContentType = "application/pdf"

	DefaultUploadURLTTL = 60 * time.Second
	DefaultViewURLTTL   = 60 * time.Second

	// LocalURLPrefix is the path under which locally stored files are served.
	LocalURLPrefix = "/uploads/"
)

var whitespace = regexp.MustCompile(`\s+`)

// Settings carries the object-store configuration. All four of Bucket,
// Region, AccessKey and SecretKey must be present for object-store mode.
type Settings struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string

	UploadURLTTL time.Duration
	ViewURLTTL   time.Duration
	LocalDir     string
}

// Missing lists the names of absent object-store settings.
func (s Settings) Missing() []string {
	var missing []string
	for _, setting := range []struct{ name, value string }{
		{"bucket", s.Bucket},
		{"region", s.Region},
		{"access key", s.AccessKey},
		{"secret key", s.SecretKey},
	} {
		if strings.TrimSpace(setting.value) == "" {
			missing = append(missing, setting.name)
		}
	}
	return missing
}

// UploadTarget is where a client should PUT an artifact.
type UploadTarget struct {
	URL string
	Key string
}

// Gateway mediates time-bounded access to order artifacts.
//
// Example:
//
//	gw := artifacts.NewGateway(settings, store, time.Now, logger)
//	target, err := gw.PresignUpload(ctx, "my book.pdf", "")
//	// target.Key == "orders/1760000000000-my_book.pdf"
type Gateway struct {
	store      ports.ObjectStore
	configured bool
	missing    []string
	uploadTTL  time.Duration
	viewTTL    time.Duration
	localDir   string
	now        func() time.Time
	logger     *slog.Logger
}

// NewGateway decides once whether object-store mode is available. store may
// be nil when settings are incomplete.
func NewGateway(settings Settings, store ports.ObjectStore, now func() time.Time, logger *slog.Logger) *Gateway {
	if now == nil {
		now = time.Now
	}
	missing := settings.Missing()
	g := &Gateway{
		store:      store,
		configured: len(missing) == 0 && store != nil,
		missing:    missing,
		uploadTTL:  settings.UploadURLTTL,
		viewTTL:    settings.ViewURLTTL,
		localDir:   settings.LocalDir,
		now:        now,
		logger:     logger.With("component", "artifact-gateway"),
	}
	if g.uploadTTL <= 0 {
		g.uploadTTL = DefaultUploadURLTTL
	}
	if g.viewTTL <= 0 {
		g.viewTTL = DefaultViewURLTTL
	}
	if g.localDir == "" {
		g.localDir = "uploads"
	}
	return g
}

// IsConfigured reports whether object-store mode is available.
func (g *Gateway) IsConfigured() bool {
	return g.configured
}

// LocalDir returns the directory local uploads are written to.
func (g *Gateway) LocalDir() string {
	return g.localDir
}

// UploadKey builds the object key for a caller-supplied filename:
// orders/<millis>-<filename with whitespace runs replaced by "_">.
func UploadKey(fileName string, at time.Time) string {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		fileName = DefaultFileName
	}
	return fmt.Sprintf("%s%d-%s", UploadPrefix, at.UnixMilli(), whitespace.ReplaceAllString(fileName, "_"))
}

// PresignUpload returns a URL the caller can PUT the file to, valid for the
// upload TTL. Empty fileName and contentType take their defaults.
func (g *Gateway) PresignUpload(ctx context.Context, fileName, contentType string) (UploadTarget, error) {
	if err := g.requireStore(); err != nil {
		return UploadTarget{}, err
	}
	if strings.TrimSpace(contentType) == "" {
		contentType = DefaultContentType
	}

	key := UploadKey(fileName, g.now())
	url, err := g.store.PresignPut(ctx, key, contentType, g.uploadTTL)
	if err != nil {
		return UploadTarget{}, upstream(err)
	}
	return UploadTarget{URL: url, Key: key}, nil
}

// PresignView returns a URL for reading key, valid for the view TTL.
func (g *Gateway) PresignView(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errs.NewValueIsRequiredError("key")
	}
	if err := g.requireStore(); err != nil {
		return "", err
	}

	url, err := g.store.PresignGet(ctx, key, g.viewTTL)
	if err != nil {
		return "", upstream(err)
	}
	return url, nil
}

// LocalUpload writes data under the local upload directory, creating it if
// needed, and returns the path the file is served under. Only the base name
// of filename is used. It is refused with a ConflictError while the object
// store is configured.
func (g *Gateway) LocalUpload(filename string, data []byte) (string, error) {
	if g.configured {
		return "", errs.NewConflictError("local upload is disabled while the object store is configured")
	}

	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", errs.NewValueIsRequiredError("filename")
	}

	if err := os.MkdirAll(g.localDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.localDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	g.logger.Info("stored local upload", "path", LocalURLPrefix+name, "bytes", len(data))
	return LocalURLPrefix + name, nil
}

// ListKeys returns the keys under prefix. It is best effort: when the store
// is unconfigured or fails, it logs a warning and returns an empty list.
func (g *Gateway) ListKeys(ctx context.Context, prefix string) []string {
	if !g.configured {
		g.logger.WarnContext(ctx, "listing skipped, object store not configured", "prefix", prefix)
		return []string{}
	}
	keys, err := g.store.List(ctx, prefix)
	if err != nil {
		g.logger.WarnContext(ctx, "listing failed, returning empty result", "prefix", prefix, "error", err)
		return []string{}
	}
	if keys == nil {
		keys = []string{}
	}
	return keys
}

// PutJSON stores a JSON document under key.
func (g *Gateway) PutJSON(ctx context.Context, key string, body []byte) error {
	if err := g.requireStore(); err != nil {
		return err
	}
	if err := g.store.PutJSON(ctx, key, body); err != nil {
		return upstream(err)
	}
	return nil
}

// GetJSON reads a JSON document back. A missing key is an ObjectNotFoundError.
func (g *Gateway) GetJSON(ctx context.Context, key string) ([]byte, error) {
	if err := g.requireStore(); err != nil {
		return nil, err
	}
	body, err := g.store.GetJSON(ctx, key)
	if err != nil {
		return nil, upstream(err)
	}
	return body, nil
}

func (g *Gateway) requireStore() error {
	if !g.configured {
		return errs.NewNotConfiguredError("object store", g.missing...)
	}
	return nil
}

// upstream keeps typed errors from the store and wraps everything else.
func upstream(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrUpstream) {
		return err
	}
	return errs.NewUpstreamError("object store", err)
}
