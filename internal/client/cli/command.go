package cli

import (
	"io"

	"github.com/dmitrijs2005/securenote/internal/buildinfo"
	"github.com/dmitrijs2005/securenote/internal/client/config"
	"github.com/dmitrijs2005/securenote/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the securenote command. The optional argument is a
// share link (or "/note/<id>" path) to open.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "securenote [share-link]",
		Short: "Create password-protected notes and open shared ones",
		Long: `SecureNote stores notes behind a password chosen by their author.
Logged-in users create notes and get a share link; anyone holding the link
and the password can read the note.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := config.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flags)
		if err != nil {
			return err
		}
		log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

		var target string
		if len(args) == 1 {
			target = args[0]
		}

		app, err := NewApp(cmd.Context(), cfg, target, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		if err != nil {
			return err
		}
		return app.Run(cmd.Context())
	}

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}
