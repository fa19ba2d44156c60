// Package assets maps logical asset names to the hashed filenames the build
// pipeline emits into manifest.json. Templates ask for "css/app.css" and get
// back whatever fingerprinted path is current.
package assets

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// devReloadThrottle bounds how often dev mode re-reads the manifest.
const devReloadThrottle = 50 * time.Millisecond

// AssetResolver answers logical-to-hashed asset lookups from manifest.json.
// The zero value is usable: every lookup falls through to the logical name.
type AssetResolver struct {
	mu           sync.RWMutex
	manifest     map[string]string
	manifestPath string
	diskPath     string
	fsys         fs.FS
	modTime      time.Time
	devReloadAt  time.Time
	logger       *slog.Logger
}

// NewAssetResolverFromDisk reads the manifest from a file on disk. The file
// is re-read when its mtime changes, so a rebuild is picked up without a
// restart.
func NewAssetResolverFromDisk(manifestPath string) (*AssetResolver, error) {
	ar := &AssetResolver{
		manifest:     map[string]string{},
		manifestPath: manifestPath,
		diskPath:     manifestPath,
	}
	return ar, ar.Reload()
}

// NewAssetResolverFromFS reads the manifest from an fs.FS, typically the
// embedded static tree in production builds.
func NewAssetResolverFromFS(fsys fs.FS, manifestPath string) (*AssetResolver, error) {
	ar := &AssetResolver{
		manifest:     map[string]string{},
		manifestPath: manifestPath,
		fsys:         fsys,
	}
	return ar, ar.Reload()
}

// Reload re-reads the manifest from its configured source.
func (ar *AssetResolver) Reload() error {
	ar.mu.Lock()
	defer ar.mu.Unlock()

	if ar.diskPath == "" && ar.fsys == nil {
		ar.manifest = map[string]string{}
		ar.modTime = time.Time{}
		return nil
	}

	data, err := ar.readManifest()
	if err != nil {
		return err
	}
	ar.applyManifest(data)
	if ar.diskPath != "" {
		if info, statErr := os.Stat(ar.diskPath); statErr == nil {
			ar.modTime = info.ModTime()
		} else {
			ar.modTime = time.Time{}
		}
	}
	return nil
}

// ReloadIfChanged reloads a disk-backed manifest when its mtime moved. A
// deleted manifest empties the mapping so lookups fall back to logical names.
func (ar *AssetResolver) ReloadIfChanged() {
	if ar == nil || ar.diskPath == "" {
		return
	}

	info, err := os.Stat(ar.diskPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ar.mu.Lock()
			ar.manifest = map[string]string{}
			ar.modTime = time.Time{}
			ar.mu.Unlock()
		}
		return
	}

	ar.mu.RLock()
	stale := info.ModTime().After(ar.modTime)
	ar.mu.RUnlock()
	if !stale {
		return
	}

	if err := ar.Reload(); err != nil {
		ar.log().Error("asset manifest reload failed",
			"manifest", ar.manifestPath, "error", err)
	}
}

// Resolve returns the /static/ path for a logical asset name. Names absent
// from the manifest resolve to themselves, which serves unhashed dev assets.
func (ar *AssetResolver) Resolve(logicalName string) string {
	ar.mu.RLock()
	defer ar.mu.RUnlock()

	if hashed, ok := ar.manifest[logicalName]; ok {
		return "/static/" + hashed
	}
	return "/static/" + logicalName
}

// SetLogger replaces the resolver's logger; nil restores slog.Default().
func (ar *AssetResolver) SetLogger(logger *slog.Logger) {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	ar.logger = logger
}

func (ar *AssetResolver) readManifest() ([]byte, error) {
	read := func(data []byte, err error) ([]byte, error) {
		if errors.Is(err, fs.ErrNotExist) {
			ar.manifest = map[string]string{}
			ar.modTime = time.Time{}
			return nil, nil
		}
		return data, err
	}
	if ar.diskPath != "" {
		return read(os.ReadFile(ar.diskPath))
	}
	return read(fs.ReadFile(ar.fsys, ar.manifestPath))
}

func (ar *AssetResolver) applyManifest(data []byte) {
	if len(data) == 0 {
		ar.manifest = map[string]string{}
		return
	}
	var manifest map[string]string
	if err := json.Unmarshal(data, &manifest); err != nil {
		ar.log().Error("asset manifest is not valid JSON",
			"manifest", ar.manifestPath, "error", err)
		ar.manifest = map[string]string{}
		return
	}
	ar.manifest = manifest
}

// throttledReload is the dev-mode reload path: at most one re-read per
// throttle window, so templates can call it on every asset lookup.
func (ar *AssetResolver) throttledReload() error {
	if ar == nil {
		return nil
	}

	now := time.Now()
	ar.mu.Lock()
	if !ar.devReloadAt.IsZero() && now.Sub(ar.devReloadAt) < devReloadThrottle {
		ar.mu.Unlock()
		return nil
	}
	ar.devReloadAt = now
	ar.mu.Unlock()

	if err := ar.Reload(); err != nil {
		ar.mu.Lock()
		if ar.devReloadAt.Equal(now) {
			ar.devReloadAt = time.Time{}
		}
		ar.mu.Unlock()
		return err
	}
	return nil
}

func (ar *AssetResolver) log() *slog.Logger {
	if ar != nil && ar.logger != nil {
		return ar.logger
	}
	return slog.Default()
}

// ResolveAsset is the template-facing lookup. In dev mode it refreshes the
// manifest and verifies the resolved file exists on disk before vouching for
// it; in production it only reloads when the manifest file changed.
func ResolveAsset(resolver *AssetResolver, logicalName string, devMode bool) string {
	fallback := "/static/" + logicalName
	if resolver == nil {
		return fallback
	}

	if devMode {
		if err := resolver.throttledReload(); err != nil {
			resolver.log().Error("asset manifest reload failed",
				"manifest", resolver.manifestPath, "error", err)
		}
	} else {
		resolver.ReloadIfChanged()
	}

	resolved := resolver.Resolve(logicalName)
	if devMode && !assetOnDisk(resolved) {
		resolver.log().Warn("resolved asset missing on disk, serving logical name",
			"logical", logicalName, "resolved", resolved)
		return fallback
	}
	return resolved
}

// assetOnDisk checks the dev source trees for the resolved file.
func assetOnDisk(resolvedPath string) bool {
	rel := strings.TrimPrefix(resolvedPath, "/static/")
	if rel == "" || rel == resolvedPath {
		return false
	}
	for _, p := range []string{
		filepath.Join("frontend", "static", rel),
		filepath.Join("frontend", "public", rel),
	} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
