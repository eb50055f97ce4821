package storage

import (
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/storage/codec"
)

// ErrCorruptState is returned by Load together with a usable state when a
// section of the persisted document could not be decoded. The failed section
// comes back empty.
var ErrCorruptState = codec.ErrCorruptState

// ErrNotInitialized is returned by Load before Init has created the store.
var ErrNotInitialized = codec.ErrNotInitialized

// Provider persists the whole ledger state. The ledger hands it a complete
// snapshot after every mutation and reads one back on start.
type Provider interface {
	// Lifecycle
	Init() error
	Load() (models.State, error)
	Save(models.State) error
	Close() error

	// Utils
	GetConfigPath() string
}
