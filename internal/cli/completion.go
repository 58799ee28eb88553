package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for mindweave.

Load it for the current session:

  bash:  source <(mindweave completion bash)
  zsh:   source <(mindweave completion zsh)
  fish:  mindweave completion fish | source

Or install it permanently:

  bash:  mindweave completion bash > /etc/bash_completion.d/mindweave
  zsh:   mindweave completion zsh > "${fpath[1]}/_mindweave"
  fish:  mindweave completion fish > ~/.config/fish/completions/mindweave.fish

PowerShell users can add the output of "mindweave completion powershell"
to their profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
