package component

import (
	"slices"
	"sync"
)

// Default is the process-wide registry that distributed registrations feed.
// It is never torn down; snapshots taken from it own their data outright.
var Default = NewRegistry()

// The collected registration callbacks. Component packages append from
// their init() functions, so linking a package into the binary contributes
// its registrations with no central manifest. Collection order is link
// order and carries no semantics beyond last-write-wins for duplicates.
var (
	collectMu    sync.Mutex
	componentFns []func()
	previewFns   []func()
)

var initOnce sync.Once

// AddComponentRegistration queues a component-registration callback to run
// during Init. Callbacks are zero-argument; their sole effect should be a
// Register call.
func AddComponentRegistration(fn func()) {
	collectMu.Lock()
	defer collectMu.Unlock()
	componentFns = append(componentFns, fn)
}

// AddPreviewRegistration queues a preview-registration callback to run
// during Init, after every component callback.
func AddPreviewRegistration(fn func()) {
	collectMu.Lock()
	defer collectMu.Unlock()
	previewFns = append(previewFns, fn)
}

// Init invokes every collected registration callback: the component pass
// first, then the preview pass. It runs at most once per process; callers
// that need to re-drain after loading more registrations use Reinit.
func Init() {
	initOnce.Do(drain)
}

// Reinit re-runs every collected callback unconditionally. Registration is
// last-write-wins, so a re-drain is idempotent; it exists for hot reload
// and for tests that queue registrations after startup.
func Reinit() {
	drain()
}

func drain() {
	collectMu.Lock()
	components := slices.Clone(componentFns)
	previews := slices.Clone(previewFns)
	collectMu.Unlock()

	// Iterate local copies so callbacks that queue further registrations
	// cannot invalidate the pass.
	for _, fn := range components {
		fn()
	}
	for _, fn := range previews {
		fn()
	}
}

// Register records c's metadata in the default registry. It is the entry
// point component-registration callbacks call.
func Register(c Component) {
	Default.RegisterComponent(c.Scope(), c.Name(), c.Description())
}

// RegisterPreview records p's preview callback in the default registry.
func RegisterPreview(p Previewable) {
	Default.RegisterPreview(p.Name(), p.Preview)
}

// Components returns a snapshot of the default registry.
func Components() *AllComponents {
	return Default.Components()
}
