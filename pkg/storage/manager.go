package storage

import (
	"fmt"

	"github.com/modece/storefront/config"
)

// Manager holds the configured disks and selects the default media sink.
type Manager struct {
	disks       map[string]Disk
	defaultDisk string
}

// NewManager boots the storage manager from config. The local disk is
// always available; the s3 disk is booted only when a bucket is configured.
func NewManager(cfg config.StorageConfig) (*Manager, error) {
	m := &Manager{
		disks:       map[string]Disk{"local": newLocalDisk(cfg.LocalRoot, cfg.LocalURL)},
		defaultDisk: cfg.Disk,
	}

	if cfg.S3Bucket != "" {
		d, err := newS3Disk(cfg)
		if err != nil {
			return nil, err
		}
		m.disks["s3"] = d
	}

	if _, ok := m.disks[m.defaultDisk]; !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", m.defaultDisk)
	}

	return m, nil
}

// Default returns the default disk selected by config.
func (m *Manager) Default() Disk {
	return m.disks[m.defaultDisk]
}

// Disk returns the named disk ("local" or "s3").
func (m *Manager) Disk(name string) (Disk, error) {
	d, ok := m.disks[name]
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", name)
	}
	return d, nil
}
