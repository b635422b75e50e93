package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/simnet/internal/envconfig"
	"github.com/born-ml/simnet/internal/tensor"
	"github.com/born-ml/simnet/internal/zoo"
)

// appendEnvDocs adds the environment variables to the usage text.
func appendEnvDocs(cmd *cobra.Command) {
	envs := envconfig.AsMap()
	usage := "\nEnvironment Variables:\n"
	for _, k := range []string{"SIMNET_DEBUG", "SIMNET_SEED"} {
		usage += fmt.Sprintf("      %-24s   %s\n", envs[k].Name, envs[k].Description)
	}
	cmd.SetUsageTemplate(cmd.UsageTemplate() + usage)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "simnet [model]",
		Short:         "Build image-similarity and image-reconstruction networks",
		Long:          "Build one of the zoo architectures (default: dae), compile it and print its summary.",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHandler(cmd, args, stdout, stderr)
		},
	}

	cmd.Flags().Int("size", 256, "Input image height and width")
	cmd.Flags().Int("channels", 3, "Input image channels")
	cmd.Flags().Uint64("seed", envconfig.Seed(), "Weight-initialization seed")
	cmd.Flags().Bool("all", false, "Build every architecture")
	cmd.Flags().Bool("list", false, "List the architectures and exit")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	appendEnvDocs(cmd)
	return cmd
}

func runHandler(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, name := range zoo.Architectures() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	size, _ := cmd.Flags().GetInt("size")
	channels, _ := cmd.Flags().GetInt("channels")
	seed, _ := cmd.Flags().GetUint64("seed")
	all, _ := cmd.Flags().GetBool("all")

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: envconfig.LogLevel()}))
	cfg := zoo.Config{
		ImageShape: tensor.ImageShape{Height: size, Width: size, Channels: channels},
		Seed:       seed,
		Logger:     logger,
	}

	names := []string{zoo.DAE}
	switch {
	case all && len(args) > 0:
		return fmt.Errorf("--all does not take a model name")
	case all:
		names = zoo.Architectures()
	case len(args) == 1:
		names = args
	}

	// Summaries are rendered per architecture and printed in order.
	outputs := make([]bytes.Buffer, len(names))
	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			models, err := zoo.Make(name, cfg)
			if err != nil {
				return err
			}
			for _, m := range models.List() {
				if err := m.Summary(&outputs[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range outputs {
		if _, err := outputs[i].WriteTo(stdout); err != nil {
			return err
		}
	}
	return nil
}
