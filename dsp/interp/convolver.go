package interp

import (
	"fmt"

	"github.com/cwbudde/algo-subpel/dsp/buffer"
	"github.com/cwbudde/algo-subpel/dsp/core"
	"github.com/cwbudde/algo-subpel/dsp/kernel"
)

// Convolver runs the interpolation passes with a fixed bit depth, round0
// and tiling variant. It is immutable and safe for concurrent use.
type Convolver struct {
	cfg      core.Config
	tile     int
	impl     string
	selector kernel.Selector
}

type options struct {
	bitDepth int
	round0   int
	impl     string
	selector kernel.Selector
}

// Option configures [New].
type Option func(*options)

// WithBitDepth sets the sample bit depth (default 10).
func WithBitDepth(bd int) Option {
	return func(o *options) { o.bitDepth = bd }
}

// WithRound0 sets the first-stage shift of the horizontal pass. By default
// it is derived from the bit depth with [core.DefaultRound0].
func WithRound0(round0 int) Option {
	return func(o *options) { o.round0 = round0 }
}

// WithSelector sets the kernel source used by PredictY and PredictX.
func WithSelector(sel kernel.Selector) Option {
	return func(o *options) { o.selector = sel }
}

// WithImplementation pins a registered tiling variant by name, such as
// "tile8". Every variant produces the same samples.
func WithImplementation(name string) Option {
	return func(o *options) { o.impl = name }
}

// New returns a Convolver.
func New(opts ...Option) (*Convolver, error) {
	def := core.DefaultConfig()
	o := options{bitDepth: def.BitDepth, round0: -1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if !core.ValidBitDepth(o.bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrBitDepth, o.bitDepth)
	}
	coreOpts := []core.Option{core.WithBitDepth(o.bitDepth)}
	if o.round0 >= 0 {
		if o.round0 > core.FilterBits {
			return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrRound0, o.round0, core.FilterBits)
		}
		coreOpts = append(coreOpts, core.WithRound0(o.round0))
	} else if o.round0 != -1 {
		return nil, fmt.Errorf("%w: %d", ErrRound0, o.round0)
	}

	entry, err := variant(o.impl)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, o.impl)
	}

	return &Convolver{
		cfg:      core.ApplyOptions(coreOpts...),
		tile:     entry.TileWidth,
		impl:     entry.Name,
		selector: o.selector,
	}, nil
}

// Config returns the resolved numeric settings.
func (c *Convolver) Config() core.Config { return c.cfg }

// Implementation returns the name of the tiling variant in use.
func (c *Convolver) Implementation() string { return c.impl }

// Y runs [ConvolveY] at the configured bit depth.
func (c *Convolver) Y(dst, src buffer.Plane, w, h int, k kernel.Kernel) {
	convolveY(dst, src, w, h, k, c.cfg.BitDepth, c.tile)
}

// X runs [ConvolveX] with the configured round0 and bit depth.
func (c *Convolver) X(dst, src buffer.Plane, w, h int, k kernel.Kernel) {
	convolveX(dst, src, w, h, k, c.cfg.Round0, c.cfg.BitDepth, c.tile)
}

// PredictY interpolates a block at vertical sub-pixel phase subpel. Only the
// low SubpelBits bits of subpel are used; the integer part of a motion
// vector is applied by the caller when positioning src. Phase 0 of a
// unity-gain table copies the block.
func (c *Convolver) PredictY(dst, src buffer.Plane, w, h int, filter kernel.FilterType, subpel int) error {
	k, err := c.kernel(filter, subpel)
	if err != nil {
		return err
	}
	if err := checkArgs(vertical, dst, src, w, h, k, 0, c.cfg.BitDepth); err != nil {
		return err
	}
	c.Y(dst, src, w, h, k)
	return nil
}

// PredictX interpolates a block at horizontal sub-pixel phase subpel.
func (c *Convolver) PredictX(dst, src buffer.Plane, w, h int, filter kernel.FilterType, subpel int) error {
	k, err := c.kernel(filter, subpel)
	if err != nil {
		return err
	}
	if err := checkArgs(horizontal, dst, src, w, h, k, c.cfg.Round0, c.cfg.BitDepth); err != nil {
		return err
	}
	c.X(dst, src, w, h, k)
	return nil
}

func (c *Convolver) kernel(filter kernel.FilterType, subpel int) (kernel.Kernel, error) {
	if c.selector == nil {
		return kernel.Kernel{}, ErrNoSelector
	}
	k, err := c.selector.Select(filter, subpel&kernel.SubpelMask)
	if err != nil {
		return kernel.Kernel{}, fmt.Errorf("interp: select kernel: %w", err)
	}
	return k, nil
}
