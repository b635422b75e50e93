package zoo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/born-ml/simnet/internal/nn"
	"github.com/born-ml/simnet/internal/optim"
	"github.com/born-ml/simnet/internal/tensor"
)

// Models is the result of Make.
//
// Model is always set. Tower is set for the siamese architectures: it is
// the embedding-only entry point, compiled on its own, and shares every
// weight with Model.
type Models struct {
	Model   *nn.Model
	Tower   *nn.Model
	Context *nn.Context
}

// List returns [Tower, Model] for siamese architectures and [Model] otherwise.
func (m *Models) List() []*nn.Model {
	if m.Tower != nil {
		return []*nn.Model{m.Tower, m.Model}
	}
	return []*nn.Model{m.Model}
}

// architecture describes how Make builds and compiles one entry.
type architecture struct {
	lr      float32
	build   func(ctx *nn.Context, shape tensor.ImageShape) (*nn.Model, error)
	towerFn func(ctx *nn.Context, shape tensor.ImageShape, prefix string) (*nn.Model, error)
	tower   string // tower prefix for siamese architectures
	pair    string // pair model name
}

var architectures = []struct {
	name string
	arch architecture
}{
	{DAE, architecture{lr: 2e-4, build: BuildDAE}},
	{DAEStackedConv, architecture{lr: 2e-4, build: BuildDAEStackedConv}},
	{Siamese, architecture{lr: 2e-4, towerFn: BuildTower, tower: "tower", pair: "siamese"}},
	{SiameseVGG, architecture{lr: 1e-5, towerFn: BuildTowerVGG, tower: "tower_vgg19likeconvs", pair: SiameseVGG}},
}

// Architectures returns the names accepted by Make.
func Architectures() []string {
	names := make([]string, len(architectures))
	for i, a := range architectures {
		names[i] = a.name
	}
	return names
}

// LearningRate returns the Adam learning rate Make compiles name with.
func LearningRate(name string) (float32, error) {
	a, err := lookup(name)
	if err != nil {
		return 0, err
	}
	return a.lr, nil
}

func lookup(name string) (architecture, error) {
	for _, a := range architectures {
		if a.name == name {
			return a.arch, nil
		}
	}
	return architecture{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownArchitecture, name, strings.Join(Architectures(), ", "))
}

// Make builds and compiles the architecture called name.
//
// Autoencoders are compiled with Adam and mean absolute error. Siamese
// architectures return the tower, compiled with mean absolute error, and
// the pair model, compiled with the contrastive loss. Every model built by
// one call lives in a fresh nn.Context.
func Make(name string, cfg Config) (*Models, error) {
	a, err := lookup(name)
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	logger := cfg.Logger.With("arch", name)

	ctx := nn.NewContext(nn.ContextConfig{
		Backend: cfg.Backend,
		Seed:    cfg.Seed,
		Logger:  logger,
	})
	models := &Models{Context: ctx}

	if a.towerFn == nil {
		if models.Model, err = a.build(ctx, cfg.ImageShape); err != nil {
			return nil, err
		}
		if err := compile(models.Model, a.lr, nn.MeanAbsoluteError{}); err != nil {
			return nil, err
		}
	} else {
		if models.Tower, err = a.towerFn(ctx, cfg.ImageShape, a.tower); err != nil {
			return nil, err
		}
		if err := compile(models.Tower, a.lr, nn.MeanAbsoluteError{}); err != nil {
			return nil, err
		}
		logSummary(ctx.Logger(), models.Tower)

		if models.Model, err = BuildSiamese(ctx, cfg.ImageShape, models.Tower, a.pair); err != nil {
			return nil, err
		}
		if err := compile(models.Model, a.lr, nn.ContrastiveLoss{Margin: nn.DefaultMargin}); err != nil {
			return nil, err
		}
	}

	ctx.Logger().Info("model built",
		"model", models.Model.Name(),
		"image", cfg.ImageShape.String(),
		"params", models.Model.CountParams(),
		"lr", a.lr)
	logSummary(ctx.Logger(), models.Model)
	return models, nil
}

func compile(m *nn.Model, lr float32, loss nn.Loss) error {
	return m.Compile(optim.NewAdam(m.Parameters(), optim.AdamConfig{LR: lr}), loss)
}

// logSummary logs the model summary at debug level.
func logSummary(logger *slog.Logger, m *nn.Model) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	var sb strings.Builder
	if err := m.Summary(&sb); err != nil {
		logger.Debug("summary failed", "model", m.Name(), "error", err)
		return
	}
	logger.Debug("model summary", "model", m.Name(), "summary", sb.String())
}
