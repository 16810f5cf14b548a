package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MingxuanGame/OsuDB/application"
)

func BuildIndex(ctx context.Context, w io.Writer, dir string, output string) error {
	config, err := LoadConfig(dir)
	if err != nil {
		return err
	}
	if output != "" {
		config.Index.Path = output
	}
	logger.Info().Str("osu", config.Osu.Path).Str("index", config.Index.Path).Msg("Building index...")
	summary, err := application.BuildIndex(ctx, config)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Indexed %d beatmaps, %d collections, %d scores into %s\n",
		summary.Beatmaps, summary.Collections, summary.Scores, config.Index.Path)
	return nil
}

// Verify round-trips every file and fails when any of them is not reproduced byte for byte.
func Verify(w io.Writer, paths []string, kind string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no file specified")
	}
	mismatched := 0
	for _, path := range paths {
		k, err := fileKind(path, kind)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		result, err := application.VerifyRoundTrip(k, data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if result.Match {
			_, _ = fmt.Fprintf(w, "OK        %s (%s, %d bytes)\n", path, result.Kind, result.Size)
			continue
		}
		mismatched++
		_, _ = fmt.Fprintf(w, "MISMATCH  %s (%s): first difference at offset %d, %d bytes in, %d bytes out\n",
			path, result.Kind, result.FirstDifference, result.Size, result.EncodedSize)
	}
	if mismatched > 0 {
		return fmt.Errorf("%d of %d files did not round-trip", mismatched, len(paths))
	}
	return nil
}

func fileKind(path string, kind string) (application.FileKind, error) {
	if kind != "" {
		return application.ParseFileKind(kind)
	}
	return application.DetectFileKind(path)
}
