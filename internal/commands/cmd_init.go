package commands

import (
	"context"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	initcmd "github.com/colonyops/tick/internal/commands/init"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize tick configuration with an interactive wizard",
		UsageText: "tick init [options]",
		Description: `Sets up tick for first-time use with an interactive wizard.

The wizard generates ` + DefaultConfigPath() + ` with your
preferred theme and defaults.

Use --yes to accept all defaults without prompts.
Use --force to overwrite existing configuration.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wizard := initcmd.NewWizard(afero.NewOsFs(), initcmd.WizardOptions{
				ConfigPath: cmd.flags.ConfigPath,
				Yes:        cmd.yes,
				Force:      cmd.force,
			})
			return wizard.Run()
		},
	})
	return app
}
