package setup

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildRootCmdWith constructs the command tree; flags write straight into cfg.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "agsetup",
		Short: "Prepare this machine to run " + appTitle,
		Long: `Checks the Python interpreter, creates the project directories, checks
the GGUF model file and optionally installs the backend's Python dependencies.`,
		Example:       "  agsetup\n  agsetup --yes --model ~/models/llm/Qwen3-8B-Q4_K_M.gguf\n  agsetup check all",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}
			return fnRunSetup(cmd.Context(), s)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Config file (.yaml|.json|.toml); defaults to <root>/config.yaml when present")
	pf.StringVar(&cfg.Root, "root", cfg.Root, "Project root holding backend/, frontend/ and prompts/ (defaults AGSETUP_ROOT or .)")
	pf.StringVar(&cfg.ModelPath, "model", cfg.ModelPath, "Path to the GGUF model file (overrides config)")
	pf.StringVar(&cfg.Python, "python", cfg.Python, "Python interpreter to check and install with (overrides config)")
	pf.BoolVarP(&cfg.AssumeYes, "yes", "y", cfg.AssumeYes, "Answer yes to every prompt")
	pf.StringVar(&cfg.LogLvl, "log-level", cfg.LogLvl, "Log level: debug|info|warn|error (defaults AGSETUP_LOG_LEVEL or info)")
	pf.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write step metrics in Prometheus textfile format to this path")
	root.Flags().BoolVar(&cfg.SkipDeps, "skip-deps", cfg.SkipDeps, "Do not offer to install Python dependencies")

	// check group
	checkCmd := &cobra.Command{Use: "check", Short: "Run environment checks without changing anything", RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("check requires a subcommand: python|model|all")
	}}
	checkPython := &cobra.Command{Use: "python", Short: "Check the Python interpreter version", Example: "  agsetup check python --python python3.11", RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, cfg)
		if err != nil {
			return err
		}
		if err := s.step("python", func() error { return fnCheckPython(cmd.Context(), s) }); err != nil {
			return s.abort(cmd.Context(), err)
		}
		return nil
	}}
	checkModel := &cobra.Command{Use: "model", Short: "Check that the GGUF model file exists", RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, cfg)
		if err != nil {
			return err
		}
		if err := s.step("model", func() error { return modelStep(s) }); err != nil {
			return s.abort(cmd.Context(), err)
		}
		return nil
	}}
	checkAll := &cobra.Command{Use: "all", Short: "Check Python and the model file", RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, cfg)
		if err != nil {
			return err
		}
		pyErr := s.step("python", func() error { return fnCheckPython(cmd.Context(), s) })
		modelErr := s.step("model", func() error { return modelStep(s) })
		if pyErr != nil {
			return s.abort(cmd.Context(), pyErr)
		}
		if modelErr != nil {
			return s.abort(cmd.Context(), modelErr)
		}
		return nil
	}}
	checkCmd.AddCommand(checkPython, checkModel, checkAll)
	root.AddCommand(checkCmd)

	dirsCmd := &cobra.Command{Use: "dirs", Short: "Create the project directories", RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, cfg)
		if err != nil {
			return err
		}
		if err := s.step("directories", func() error { return fnCreateDirectories(s) }); err != nil {
			return s.abort(cmd.Context(), err)
		}
		return nil
	}}
	root.AddCommand(dirsCmd)

	installCmd := &cobra.Command{Use: "install", Short: "Install the backend's Python dependencies without prompting", RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, cfg)
		if err != nil {
			return err
		}
		if err := s.step("install", func() error { return fnInstallDependencies(cmd.Context(), s) }); err != nil {
			return s.abort(cmd.Context(), err)
		}
		_ = s.step("verify", func() error { return fnVerifyDependencies(cmd.Context(), s) })
		return nil
	}}
	root.AddCommand(installCmd)

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(cmd.OutOrStdout(), true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error {
		return root.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
	}})
	root.AddCommand(completionCmd)

	return root
}
