package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/selfhash/cmd/app/commands"
	"github.com/allisson/selfhash/internal/app"
	"github.com/allisson/selfhash/internal/config"
)

func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "Prefix prepended to every hash (overrides HASH_PREFIX)",
		},
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Usage:   "Digest algorithm (overrides HASH_ALGORITHM)",
		},
		&cli.StringFlag{
			Name:    "encoding",
			Aliases: []string{"e"},
			Usage:   "hex, base64, base64url or base32 (overrides HASH_ENCODING)",
		},
		&cli.IntFlag{
			Name:  "crc-length",
			Usage: "Checksum characters kept, below 1 keeps all (overrides HASH_CRC_LENGTH)",
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "data",
			Aliases: []string{"d"},
			Usage:   "Input data as text",
		},
		&cli.BoolFlag{
			Name:  "stdin",
			Usage: "Read input data from stdin",
		},
	}
}

// loadConfig reads the environment and applies the global profile flags on top.
func loadConfig(cmd *cli.Command) *config.Config {
	cfg := config.Load()
	if cmd.IsSet("prefix") {
		cfg.HashPrefix = cmd.String("prefix")
	}
	if cmd.IsSet("algorithm") {
		cfg.HashAlgorithm = cmd.String("algorithm")
	}
	if cmd.IsSet("encoding") {
		cfg.HashEncoding = cmd.String("encoding")
	}
	if cmd.IsSet("crc-length") {
		cfg.HashCrcLength = int(cmd.Int("crc-length"))
	}
	return cfg
}

// offlineContainer builds a container for one-shot commands. Metrics are pointless
// outside the server.
func offlineContainer(cmd *cli.Command) *app.Container {
	cfg := loadConfig(cmd)
	cfg.MetricsEnabled = false
	return app.NewContainer(cfg)
}

func getCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP API and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, loadConfig(cmd), version)
			},
		},
		{
			Name:  "generate",
			Usage: "Hash input data or random bytes",
			Flags: append(inputFlags(),
				&cli.BoolFlag{
					Name:    "random",
					Aliases: []string{"r"},
					Usage:   "Hash 16 random bytes instead of input data",
				},
				&cli.BoolFlag{
					Name:    "self-validating",
					Aliases: []string{"s"},
					Usage:   "Append the checksum to the hash",
				},
				formatFlag(),
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := offlineContainer(cmd)
				useCase, err := container.HashUseCase()
				if err != nil {
					return err
				}

				hasInput := cmd.IsSet("data") || cmd.Bool("stdin")
				var data []byte
				if !cmd.Bool("random") {
					data, err = commands.ReadInput(cmd.String("data"), cmd.Bool("stdin"), commands.DefaultIO().Reader)
					if err != nil {
						return err
					}
				}

				return commands.RunGenerate(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					commands.GenerateOptions{
						Data:           data,
						HasInput:       hasInput,
						Random:         cmd.Bool("random"),
						SelfValidating: cmd.Bool("self-validating"),
						Format:         cmd.String("format"),
					},
				)
			},
		},
		{
			Name:  "crc",
			Usage: "Print the checksum of input data",
			Flags: append(inputFlags(), formatFlag()),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := offlineContainer(cmd)
				useCase, err := container.HashUseCase()
				if err != nil {
					return err
				}

				data, err := commands.ReadInput(cmd.String("data"), cmd.Bool("stdin"), commands.DefaultIO().Reader)
				if err != nil {
					return err
				}

				return commands.RunCrc(ctx, useCase, commands.DefaultIO().Writer, data, cmd.String("format"))
			},
		},
		{
			Name:  "verify",
			Usage: "Verify a hash; exits 1 when it is not valid",
			Flags: append(inputFlags(),
				&cli.StringFlag{
					Name:     "hash",
					Required: true,
					Usage:    "Hash to verify. Without --data or --stdin the embedded checksum is checked",
				},
				formatFlag(),
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := offlineContainer(cmd)
				useCase, err := container.HashUseCase()
				if err != nil {
					return err
				}

				hasData := cmd.IsSet("data") || cmd.Bool("stdin")
				var data []byte
				if hasData {
					data, err = commands.ReadInput(cmd.String("data"), cmd.Bool("stdin"), commands.DefaultIO().Reader)
					if err != nil {
						return err
					}
				}

				return commands.RunVerify(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					commands.VerifyOptions{
						Hash:    cmd.String("hash"),
						Data:    data,
						HasData: hasData,
						Format:  cmd.String("format"),
					},
				)
			},
		},
		{
			Name:  "inspect",
			Usage: "Show the active profile and optionally split a hash into its parts",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "hash",
					Usage: "Self-validating hash to split",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := offlineContainer(cmd)
				useCase, err := container.HashUseCase()
				if err != nil {
					return err
				}

				return commands.RunInspect(ctx, useCase, commands.DefaultIO().Writer, cmd.String("hash"), cmd.String("format"))
			},
		},
	}
}
