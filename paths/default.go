package paths

import (
	"path/filepath"

	vgfs "github.com/ozonechain/ozone/libs/fs"

	"github.com/adrg/xdg"
)

const namespace = "ozone"

// DefaultPaths lays files out following the XDG base directory
// specification, under an "ozone" namespace.
type DefaultPaths struct{}

func (p *DefaultPaths) CachePathFor(relPath CachePath) string {
	return filepath.Join(xdg.CacheHome, namespace, string(relPath))
}

func (p *DefaultPaths) CreateCachePathFor(relPath CachePath) (string, error) {
	fullPath := p.CachePathFor(relPath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", err
	}
	return fullPath, nil
}

func (p *DefaultPaths) ConfigPathFor(relPath ConfigPath) string {
	return filepath.Join(xdg.ConfigHome, namespace, string(relPath))
}

func (p *DefaultPaths) CreateConfigPathFor(relPath ConfigPath) (string, error) {
	fullPath := p.ConfigPathFor(relPath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", err
	}
	return fullPath, nil
}

func (p *DefaultPaths) DataPathFor(relPath DataPath) string {
	return filepath.Join(xdg.DataHome, namespace, string(relPath))
}

func (p *DefaultPaths) CreateDataPathFor(relPath DataPath) (string, error) {
	fullPath := p.DataPathFor(relPath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", err
	}
	return fullPath, nil
}

func (p *DefaultPaths) StatePathFor(relPath StatePath) string {
	return filepath.Join(xdg.StateHome, namespace, string(relPath))
}

func (p *DefaultPaths) CreateStatePathFor(relPath StatePath) (string, error) {
	fullPath := p.StatePathFor(relPath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", err
	}
	return fullPath, nil
}
