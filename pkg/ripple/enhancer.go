package ripple

import (
	"fmt"

	"github.com/go-tide/tide/pkg/core"
)

// With returns the enhancer that attaches press feedback to the entity's
// host element. It requires the element capability, so it must come after
// element.Bind in the pipeline. The manager mounts immediately and is
// exposed as the entity's ripple capability; unmounting the host is
// registered as a teardown.
func With(opts Options) core.Enhancer {
	return func(e *core.Entity) (*core.Entity, error) {
		if e.Element == nil {
			return nil, fmt.Errorf("ripple: enhancer requires a bound element")
		}
		if opts.Prefix == "" {
			opts.Prefix = e.Config.Prefix
		}
		m := NewManager(e.Config.Scheduler, opts)
		m.Mount(e.Element)
		e.Ripple = m

		host := e.Element
		e.RegisterTeardown(func() { m.Unmount(host) })
		return e, nil
	}
}
