// Command ytpick downloads a video from a hosting site at a user-chosen
// resolution. It resolves the available quality tiers from yt-dlp metadata,
// prompts for a choice (or accepts one via --resolution), and delegates the
// fetch to yt-dlp.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ytpick/ytpick/internal/config"
	"github.com/ytpick/ytpick/internal/download"
	"github.com/ytpick/ytpick/internal/match"
	"github.com/ytpick/ytpick/internal/platform"
	"github.com/ytpick/ytpick/internal/prompt"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	resolution int
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:   "ytpick [flags] URL",
	Short: "Download a video with a chosen quality",
	Example: "  ytpick https://www.youtube.com/watch?v=VIDEO_ID\n" +
		"  ytpick -r 1080 -o ~/Videos https://www.youtube.com/watch?v=VIDEO_ID",
	Args:          cobra.ExactArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.Flags().IntVarP(&resolution, "resolution", "r", 0,
		"Target resolution in p (one of 360, 480, 720, 1080, 1440, 2160). If omitted, prompts with the available options.")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", ".",
		"Directory where the downloaded file should be saved. Defaults to the current working directory.")
}

func run(ctx context.Context, url string) error {
	cfg, err := config.Load(url, resolution, outputDir)
	if err != nil {
		return err
	}

	if err := platform.EnsureYTDLP(ctx); err != nil {
		return err
	}
	if err := platform.CreateDirectoryIfNotExists(cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to ensure output directory: %w", err)
	}

	fetcher := platform.NewFetcher(cfg.CookiesFile)
	info, err := fetcher.FetchVideoInfo(ctx, cfg.URL)
	if err != nil {
		return err
	}

	table := match.BuildTable(info.Formats)

	reader, err := prompt.NewTerminalReader(prompt.DefaultPrompt)
	if err != nil {
		return fmt.Errorf("failed to initialize console input: %w", err)
	}
	defer reader.Close()

	selector := prompt.NewSelector(reader, os.Stdout, os.Stderr)
	height, err := selector.Choose(table, cfg.Resolution)
	if err != nil {
		return err
	}

	svc := download.NewService(cfg.OutputDir, cfg.CookiesFile)
	path, err := svc.Download(ctx, cfg.URL, height)
	if err != nil {
		return err
	}

	if path != "" {
		if fi, statErr := os.Stat(path); statErr == nil {
			fmt.Printf("Saved: %s (%s)\n", path, humanize.Bytes(uint64(fi.Size())))
		} else {
			fmt.Printf("Saved: %s\n", path)
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
