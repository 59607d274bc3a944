// SPDX-License-Identifier: MIT

package centerline

import "github.com/katalvlaran/lvrot/rotation"

// Option configures Build.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	initial    rotation.Rotation
	hasInitial bool
}

// WithInitialRotation seeds the first triad. The first tangent is reached from
// r by a smallest rotation, so r only needs to be close to the wanted frame.
// Without it the first triad comes from the tangent and the Cartesian axis it
// is least aligned with.
func WithInitialRotation(r rotation.Rotation) Option {
	return func(o *Options) {
		o.initial = r
		o.hasInitial = true
	}
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
