package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MingxuanGame/OsuDB/application"
	"github.com/MingxuanGame/OsuDB/base_service"
	cli2 "github.com/MingxuanGame/OsuDB/cli"
	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

func commonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{Name: "osu", Aliases: []string{"o"}, Usage: "osu! directory, overrides the config file"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Value: false, Usage: "print debug logs"},
	}, flags...)
}

func prepare(cmd *cli.Command) (*Config, error) {
	if cmd.Bool("verbose") {
		base_service.SetLogLevel(zerolog.DebugLevel)
	}
	return cli2.LoadConfig(cmd.String("osu"))
}

func main() {
	base_service.CreateLog()
	defer base_service.CloseLog()
	ctx := application.CreateSignalCancelContext()

	cmd := &cli.Command{
		Name:                  "osu-db",
		Usage:                 "Read osu! stable databases and replays",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Generate config file",
				Action: func(context.Context, *cli.Command) error {
					err := cli2.GenerateConfig()
					if err != nil {
						return err
					}
					fmt.Println("Config file generated successfully")
					return nil
				},
			},
			{
				Name:      "beatmaps",
				Usage:     "list the beatmaps of osu!.db",
				ArgsUsage: "[osu!.db]",
				Flags: commonFlags(
					&cli.StringFlag{Name: "hash", Aliases: []string{"s"}, Usage: "show one beatmap by MD5 hash"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 50, Usage: "list at most n beatmaps, 0 for all"},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := prepare(cmd)
					if err != nil {
						return err
					}
					path := cli2.ResolvePath(cmd.Args().First(), config, config.Osu.BeatmapDB)
					return cli2.ShowBeatmaps(os.Stdout, path, cmd.String("hash"), int(cmd.Int("limit")))
				},
			},
			{
				Name:      "collections",
				Usage:     "list the collections of collection.db",
				ArgsUsage: "[collection.db]",
				Flags:     commonFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := prepare(cmd)
					if err != nil {
						return err
					}
					path := cli2.ResolvePath(cmd.Args().First(), config, config.Osu.CollectionDB)
					return cli2.ShowCollections(os.Stdout, path, base_service.DatabasePath(config, config.Osu.BeatmapDB))
				},
			},
			{
				Name:      "scores",
				Usage:     "list the scores of scores.db",
				ArgsUsage: "[scores.db]",
				Flags: commonFlags(
					&cli.StringFlag{Name: "hash", Aliases: []string{"s"}, Usage: "only scores on the beatmap with this MD5 hash"},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := prepare(cmd)
					if err != nil {
						return err
					}
					path := cli2.ResolvePath(cmd.Args().First(), config, config.Osu.ScoreDB)
					return cli2.ShowScores(os.Stdout, path, cmd.String("hash"))
				},
			},
			{
				Name:      "replay",
				Usage:     "show .osr replays",
				ArgsUsage: "<file.osr>...",
				Flags:     commonFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := prepare(cmd)
					if err != nil {
						return err
					}
					return cli2.ShowReplays(os.Stdout, cmd.Args().Slice())
				},
			},
			{
				Name:  "index",
				Usage: "build a SQLite index of the osu! directory",
				Flags: commonFlags(
					&cli.StringFlag{Name: "output", Aliases: []string{"out"}, Usage: "index database path, overrides the config file"},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Bool("verbose") {
						base_service.SetLogLevel(zerolog.DebugLevel)
					}
					return cli2.BuildIndex(ctx, os.Stdout, cmd.String("osu"), cmd.String("output"))
				},
			},
			{
				Name:      "verify",
				Usage:     "check that files are re-encoded byte for byte",
				ArgsUsage: "<file>...",
				Flags: commonFlags(
					&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Usage: "beatmaps, collections, scores or replay; guessed from the file name when empty"},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := prepare(cmd)
					if err != nil {
						return err
					}
					return cli2.Verify(os.Stdout, cmd.Args().Slice(), cmd.String("kind"))
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Println(err)
		base_service.CloseLog()
		os.Exit(1)
	}
}
