package commands

import (
	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for taskboard.

To load completions:

Bash:
  $ source <(taskboard completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ taskboard completion bash > /etc/bash_completion.d/taskboard
  # macOS:
  $ taskboard completion bash > $(brew --prefix)/etc/bash_completion.d/taskboard

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ taskboard completion zsh > "${fpath[1]}/_taskboard"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ taskboard completion fish | source

  # To load completions for each session, execute once:
  $ taskboard completion fish > ~/.config/fish/completions/taskboard.fish

PowerShell:
  PS> taskboard completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> taskboard completion powershell > taskboard.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	// Completion needs neither config nor server
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRun: func(cmd *cobra.Command, args []string) {},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(out, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		default:
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
