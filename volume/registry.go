package volume

import (
	"fmt"
	"runtime"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/kchaow/filemanager"
	"github.com/kchaow/filemanager/internal/util"
)

// Factory builds the VolumePlatform for one operating system
type Factory func() filemanager.VolumePlatform

// Registry maps GOOS values to platform factories
type Registry struct {
	factories *xsync.Map[string, Factory]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		factories: xsync.NewMap[string, Factory](),
	}
}

// Register ties a factory to goos. The first registration for a key wins.
func (r *Registry) Register(goos string, factory Factory) {
	if _, loaded := r.factories.LoadOrStore(goos, factory); loaded {
		logger := util.GetLogger("Volume.Register")
		logger.Warn().Str("goos", goos).Msg("Platform already registered, ignoring")
	}
}

// GetPlatform builds the platform registered for goos
func (r *Registry) GetPlatform(goos string) (filemanager.VolumePlatform, error) {
	factory, ok := r.factories.Load(goos)
	if !ok {
		return nil, fmt.Errorf("no volume platform for %q: %w", goos, filemanager.ErrNotFound)
	}
	return factory(), nil
}

var builtins = NewRegistry()

// register is called from the init of each OS-specific platform file
func register(goos string, factory Factory) {
	builtins.Register(goos, factory)
}

// SystemPlatform returns the platform of the running OS
func SystemPlatform() (filemanager.VolumePlatform, error) {
	return builtins.GetPlatform(runtime.GOOS)
}
