package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts. Dataset names
// complete too, via the ValidArgs on the render commands.
func (c *CLI) completionCommand() *cobra.Command {
	generators := map[string]func(*cobra.Command, io.Writer) error{
		"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletion(w) },
		"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
		"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
		"powershell": func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	}

	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for the named shell.

The script completes subcommands, flags, and dataset names. Load it in
the current session, for example:

  source <(tidyviz completion bash)
  tidyviz completion fish | source

or install it where your shell picks completions up, such as
/etc/bash_completion.d/tidyviz or "${fpath[1]}/_tidyviz" for zsh.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generators[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}
