package cli

import (
	"fmt"
	"strings"

	"github.com/lord007tn/BlogForge-sub000/internal/completion"
	"github.com/spf13/cobra"
)

var completionInstallCmd = &cobra.Command{
	Use:   "install [bash|zsh|fish|powershell]",
	Short: "Install shell completions for blogforge",
	Long: `Install shell completions for blogforge.

This command auto-detects your shell from the $SHELL environment variable
and installs completions appropriately:

  - Bash: Appends sourcing block to ~/.bashrc
  - Zsh: Appends sourcing block to ~/.zshrc
  - Fish: Writes completion file to ~/.config/fish/completions/
  - PowerShell: Appends sourcing block to $PROFILE

A backup is created before modifying any rc file (with .blogforge-backup-TIMESTAMP suffix).

Use the --manual flag to display manual installation instructions without
modifying any files.`,
	Example: `  # Auto-detect shell and install
  blogforge completion install

  # Install for a specific shell
  blogforge completion install zsh

  # Show manual installation instructions
  blogforge completion install --manual`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE:      runCompletionInstall,
}

var manualFlag bool

func init() {
	completionInstallCmd.Flags().BoolVar(&manualFlag, "manual", false, "Show manual installation instructions without modifying files")
}

// attachCompletionInstall hangs the install subcommand off the generated
// completion command. Safe to call more than once.
func attachCompletionInstall(root *cobra.Command) {
	if completionInstallCmd.Parent() != nil {
		return
	}
	for _, cmd := range root.Commands() {
		if cmd.Name() == "completion" {
			cmd.AddCommand(completionInstallCmd)
			break
		}
	}
}

func runCompletionInstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var shell completion.Shell
	var err error

	if len(args) > 0 {
		shellArg := strings.ToLower(args[0])
		if !completion.IsValidShell(shellArg) {
			supportedShells := make([]string, len(completion.SupportedShells()))
			for i, s := range completion.SupportedShells() {
				supportedShells[i] = string(s)
			}
			return fmt.Errorf("unknown shell: %s\nSupported shells: %s", shellArg, strings.Join(supportedShells, ", "))
		}
		shell = completion.Shell(shellArg)
	} else {
		shell, err = completion.DetectShell()
		if err != nil {
			// Detection failure is not fatal, point at the explicit forms.
			fmt.Fprintln(out, "Could not auto-detect shell:", err)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Please specify a shell explicitly:")
			fmt.Fprintln(out, "  blogforge completion install bash")
			fmt.Fprintln(out, "  blogforge completion install zsh")
			fmt.Fprintln(out, "  blogforge completion install fish")
			fmt.Fprintln(out, "  blogforge completion install powershell")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Or use --manual for installation instructions:")
			fmt.Fprintln(out, "  blogforge completion install --manual")
			return nil
		}
		fmt.Fprintf(out, "Detected shell: %s\n", shell)
	}

	if manualFlag {
		fmt.Fprintln(out, completion.GetManualInstructions(shell))
		return nil
	}

	result, err := completion.Install(shell)
	if err != nil {
		if completion.IsPermissionError(err) {
			fmt.Fprintf(out, "Error: %v\n\n", err)
			fmt.Fprintln(out, "Automatic installation failed. Here are manual instructions:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, completion.GetManualInstructions(shell))
			return nil
		}
		return err
	}

	fmt.Fprintln(out, result.Message)

	return nil
}
