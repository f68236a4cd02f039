// Package cmd provides the root command and CLI setup for pyliner.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shock/pyliner/internal/adapter"
	"github.com/shock/pyliner/internal/controller"
	"github.com/shock/pyliner/internal/domain"
	m "github.com/shock/pyliner/internal/model"
)

var storage adapter.Storage
var sysPath adapter.SysPathProvider
var workflow domain.Workflow
var ui controller.UI

// releaseFlag enables the post-processing pipeline.
var releaseFlag bool

// verboseFlag mirrors diagnostic trace lines to the terminal.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	storage = adapter.NewLocalStorage()
	sysPath = adapter.NewPythonSysPath(viper.GetString(pythonBinaryKey))
	workflow = domain.NewWorkflow(storage, sysPath, ui)
}

const rootLongDescription = `Pyliner produces a single self-contained Python file by recursively
replacing imports of local modules with the literal source of the
referenced files, preserving the import site's indentation.

MODULES is a comma-separated list of module or package names eligible
for inlining. Imports relative to the current file (from .x import y)
are always inlined. With --release the output is compacted: imports are
consolidated and sorted, and docstrings, comments and blank lines are
stripped (the shebang and inline script metadata blocks survive).`

const versionTemplate = `pyliner {{.Version}}
Python File Inliner - https://github.com/shock/python-inliner
Copyright (c) 2024 shock. MIT license.
`

// rootCmd represents the base command.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pyliner <input> <output> [modules]",
		Short:   "Inline local Python imports into a single file",
		Long:    rootLongDescription,
		Args:    cobra.RangeArgs(2, 3),
		Version: buildVersion(),
		RunE: func(_ *cobra.Command, args []string) error {
			verbose := viper.GetBool(verboseFlagName)
			configureLogger("", verbose)

			var modules []string
			if len(args) == 3 {
				modules = m.ParseModuleSpec(args[2]).Names
			}

			return workflow.Run(domain.RunArgs{
				Input:   m.Path(args[0]),
				Output:  m.Path(args[1]),
				Modules: modules,
				Options: m.Options{
					Release: viper.GetBool(releaseFlagName),
					Verbose: verbose,
				},
			})
		},
	}

	cmd.SetVersionTemplate(versionTemplate)
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(
		&releaseFlag, releaseFlagName, "r",
		viper.GetBool(releaseFlagName),
		"consolidate imports and strip docstrings, comments and blank lines",
	)
	bindFlagToConfig(cmd.Flags().Lookup(releaseFlagName), releaseFlagName)

	cmd.Flags().BoolVarP(
		&verboseFlag, verboseFlagName, "v",
		viper.GetBool(verboseFlagName),
		"print diagnostic trace lines (search roots, modules found and skipped)",
	)
	bindFlagToConfig(cmd.Flags().Lookup(verboseFlagName), verboseFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
