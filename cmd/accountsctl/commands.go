package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/myaccounts/portalkit/cmd/accountsctl/commands"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getValidateCommand())
	cmds = append(cmds, getSanitizeCommand())
	cmds = append(cmds, getMaskCommand())
	cmds = append(cmds, getGenerateCommand())
	return cmds
}

// withApp loads configuration and the output format before running fn with
// a context carrying the environment and run id.
func withApp(fn func(ctx context.Context, a *app, format commands.Format, cmd *cli.Command) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		format, err := commands.ParseFormat(cmd.String("format"))
		if err != nil {
			return err
		}
		a, err := loadApp(cmd.StringSlice("env-file")...)
		if err != nil {
			return err
		}
		ctx, err = a.runContext(ctx)
		if err != nil {
			return err
		}
		return fn(ctx, a, format, cmd)
	}
}

// firstArg returns the single positional argument of cmd.
func firstArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("%s expects exactly one value (use - to read it from stdin)", cmd.Name)
	}
	return cmd.Args().First(), nil
}

func valueCommand(name, usage string, run func(ctx context.Context, a *app, value string, format commands.Format) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<value>",
		Action: withApp(func(ctx context.Context, a *app, format commands.Format, cmd *cli.Command) error {
			value, err := firstArg(cmd)
			if err != nil {
				return err
			}
			return run(ctx, a, value, format)
		}),
	}
}

func getValidateCommand() *cli.Command {
	validate := func(kind string) func(ctx context.Context, a *app, value string, format commands.Format) error {
		return func(ctx context.Context, a *app, value string, format commands.Format) error {
			return commands.RunValidate(ctx, a.kit, a.logger, kind, value, format, commands.DefaultIO())
		}
	}

	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a form value",
		Commands: []*cli.Command{
			valueCommand(commands.KindEmail, "Validate an email address", validate(commands.KindEmail)),
			valueCommand(commands.KindPhone, "Validate a phone number", validate(commands.KindPhone)),
			valueCommand(commands.KindOTP, "Validate a one-time verification code", validate(commands.KindOTP)),
			valueCommand(commands.KindPassword, "Validate a password and show its strength", validate(commands.KindPassword)),
			{
				Name:  "file",
				Usage: "Validate an upload by declared type and size, or by sniffing a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "File to sniff and validate",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Declared MIME type (ignored with --path)",
					},
					&cli.Int64Flag{
						Name:    "size",
						Aliases: []string{"s"},
						Usage:   "Declared size in bytes (ignored with --path)",
					},
				},
				Action: withApp(func(ctx context.Context, a *app, format commands.Format, cmd *cli.Command) error {
					return commands.RunValidateFile(
						ctx,
						a.kit,
						a.logger,
						cmd.String("path"),
						cmd.String("type"),
						cmd.Int64("size"),
						format,
						commands.DefaultIO(),
					)
				}),
			},
		},
	}
}

func getSanitizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "sanitize",
		Usage: "Sanitize a value before it is rendered",
		Commands: []*cli.Command{
			valueCommand("url", "Sanitize a URL for use as a link target", func(ctx context.Context, a *app, value string, format commands.Format) error {
				return commands.RunSanitizeURL(ctx, a.kit, a.logger, value, format, commands.DefaultIO())
			}),
		},
	}
}

func getMaskCommand() *cli.Command {
	variantFlag := func(usage string) cli.Flag {
		return &cli.StringFlag{
			Name:  "variant",
			Value: commands.VariantStandard,
			Usage: usage,
		}
	}
	mask := func(kind string) cli.ActionFunc {
		return withApp(func(_ context.Context, a *app, format commands.Format, cmd *cli.Command) error {
			value, err := firstArg(cmd)
			if err != nil {
				return err
			}
			return commands.RunMask(a.kit, kind, cmd.String("variant"), value, format, commands.DefaultIO())
		})
	}

	return &cli.Command{
		Name:  "mask",
		Usage: "Mask a contact value for display",
		Commands: []*cli.Command{
			{
				Name:      commands.KindEmail,
				Usage:     "Mask an email address",
				ArgsUsage: "<value>",
				Flags:     []cli.Flag{variantFlag("Masking variant: 'standard' or 'minimal'")},
				Action:    mask(commands.KindEmail),
			},
			{
				Name:      commands.KindPhone,
				Usage:     "Mask a phone number",
				ArgsUsage: "<value>",
				Flags:     []cli.Flag{variantFlag("Masking variant: 'standard', 'country' or 'partial'")},
				Action:    mask(commands.KindPhone),
			},
		},
	}
}

func getGenerateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "Generate a secret: password, invite, recovery-codes, id, token or otp",
		ArgsUsage: "<kind>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"l"},
				Usage:   "Length of a token (default 32) or password (default from policy)",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Value:   10,
				Usage:   "Number of recovery codes",
			},
			&cli.BoolFlag{
				Name:  "hash",
				Usage: "Also print the bcrypt hash of a generated password",
			},
		},
		Action: withApp(func(ctx context.Context, a *app, format commands.Format, cmd *cli.Command) error {
			kind, err := firstArg(cmd)
			if err != nil {
				return err
			}
			return commands.RunGenerate(ctx, a.kit, a.logger, kind, commands.GenerateOptions{
				Length: int(cmd.Int("length")),
				Count:  int(cmd.Int("count")),
				Hash:   cmd.Bool("hash"),
			}, format, commands.DefaultIO())
		}),
	}
}
