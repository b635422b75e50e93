package nn

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/born-ml/simnet/internal/backend/cpu"
	"github.com/born-ml/simnet/internal/tensor"
)

// ContextConfig holds configuration for a graph-construction Context.
type ContextConfig struct {
	Backend tensor.Backend // Kernel backend (default: cpu.New())
	Seed    uint64         // Seed for weight initialization
	Logger  *slog.Logger   // Logger (default: slog.Default())
}

// Context is the explicit computation context every layer is built in.
//
// It owns:
//   - the backend that runs forward passes
//   - the seeded RNG used for weight initialization
//   - the parameter arena: every weight tensor created by its layers
//   - the layer-name registry (names are unique per context)
//
// The first graph-construction error is sticky. Later layer calls become
// no-ops returning nil nodes, and Err and NewModel report the error. This
// keeps builder code linear:
//
//	ctx := nn.NewContext(nn.ContextConfig{Seed: 1})
//	in := nn.ImageInput(ctx, "input", tensor.ImageShape{Height: 32, Width: 32, Channels: 3})
//	x := nn.NewConv2D(ctx, "conv", nn.Conv2DConfig{Filters: 8, KernelSize: 3}).Call(in)
//	model, err := nn.NewModel(ctx, "net", []*nn.Node{in}, x)
//
// A Context is not safe for concurrent graph construction.
type Context struct {
	id      uuid.UUID
	backend tensor.Backend
	rng     *rand.Rand
	logger  *slog.Logger

	params     map[string]*Parameter
	paramOrder []*Parameter
	names      map[string]struct{}
	counters   map[string]int
	nodes      []*Node

	err error
}

// NewContext creates a Context, filling unset fields with defaults.
func NewContext(cfg ContextConfig) *Context {
	if cfg.Backend == nil {
		cfg.Backend = cpu.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	id := uuid.New()
	return &Context{
		id:       id,
		backend:  cfg.Backend,
		rng:      rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		logger:   cfg.Logger.With("build", id.String()),
		params:   make(map[string]*Parameter),
		names:    make(map[string]struct{}),
		counters: make(map[string]int),
	}
}

// ID returns the build id attached to every log line of this context.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// Backend returns the kernel backend.
func (c *Context) Backend() tensor.Backend {
	return c.backend
}

// Logger returns the context logger.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Err returns the first graph-construction error, if any.
func (c *Context) Err() error {
	return c.err
}

// Parameter looks up a parameter by its qualified name ("layer/kernel").
// Parameters of layers pruned from every model are still found here.
func (c *Context) Parameter(name string) (*Parameter, bool) {
	p, ok := c.params[name]
	return p, ok
}

// Parameters returns every parameter created in this context, in creation order.
func (c *Context) Parameters() []*Parameter {
	out := make([]*Parameter, len(c.paramOrder))
	copy(out, c.paramOrder)
	return out
}

// fail records err unless an earlier error is already recorded.
func (c *Context) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// register reserves a layer name. Empty names get the next "prefix_N" name.
func (c *Context) register(name, prefix string) string {
	if name == "" {
		for {
			c.counters[prefix]++
			name = fmt.Sprintf("%s_%d", prefix, c.counters[prefix])
			if _, taken := c.names[name]; !taken {
				break
			}
		}
	}
	if _, taken := c.names[name]; taken {
		c.fail(fmt.Errorf("%w: %q", ErrDuplicateName, name))
		return name
	}
	if strings.Contains(name, "/") {
		c.fail(fmt.Errorf("%w: layer name %q contains '/'", ErrInvalidConfig, name))
		return name
	}
	c.names[name] = struct{}{}
	return name
}

// newParameter allocates a weight tensor in the arena.
func (c *Context) newParameter(layer, suffix string, t *tensor.Tensor) *Parameter {
	p := &Parameter{name: layer + "/" + suffix, layer: layer, tensor: t}
	c.params[p.name] = p
	c.paramOrder = append(c.paramOrder, p)
	return p
}

// newNode appends a node to the context's construction log.
func (c *Context) newNode(layer Layer, inputs []*Node, shape tensor.Shape) *Node {
	n := &Node{ctx: c, id: len(c.nodes), layer: layer, inputs: inputs, shape: shape}
	c.nodes = append(c.nodes, n)
	return n
}
