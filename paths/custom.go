package paths

import (
	"path/filepath"

	vgfs "github.com/ozonechain/ozone/libs/fs"
)

// CustomPaths mimics the default layout, but everything lives under a
// single custom home. Mostly used in tests and one-off tooling.
type CustomPaths struct {
	CustomHome string
}

func (p *CustomPaths) CachePathFor(relPath CachePath) string {
	return filepath.Join(p.CustomHome, "cache", string(relPath))
}

func (p *CustomPaths) CreateCachePathFor(relPath CachePath) (string, error) {
	fullPath := p.CachePathFor(relPath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", err
	}
	return fullPath, nil
}

func (p *CustomPaths) ConfigPathFor(relPath ConfigPath) string {
	return filepath.Join(p.CustomHome, "config", string(relPath))
}

func (p *CustomPaths) CreateConfigPathFor(relPath ConfigPath) (string, error) {
	fullPath := p.ConfigPathFor(relPath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", err
	}
	return fullPath, nil
}

func (p *CustomPaths) DataPathFor(relPath DataPath) string {
	return filepath.Join(p.CustomHome, "data", string(relPath))
}

func (p *CustomPaths) CreateDataPathFor(relPath DataPath) (string, error) {
	fullPath := p.DataPathFor(relPath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", err
	}
	return fullPath, nil
}

func (p *CustomPaths) StatePathFor(relPath StatePath) string {
	return filepath.Join(p.CustomHome, "state", string(relPath))
}

func (p *CustomPaths) CreateStatePathFor(relPath StatePath) (string, error) {
	fullPath := p.StatePathFor(relPath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", err
	}
	return fullPath, nil
}
