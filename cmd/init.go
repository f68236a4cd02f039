package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile mirrors the keys read back through viper in config.go.
type configFile struct {
	Version int  `yaml:"version"`
	Release bool `yaml:"release"`
	Verbose bool `yaml:"verbose"`
	Python  struct {
		Binary string `yaml:"binary"`
	} `yaml:"python"`
	Log struct {
		Filename   string `yaml:"filename"`
		Level      int    `yaml:"level"`
		MaxSize    int    `yaml:"max_size"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

func defaultConfigFile() configFile {
	cfg := configFile{
		Version: currentConfigVersion,
		Release: defaultRelease,
		Verbose: defaultVerbose,
	}
	cfg.Python.Binary = defaultPythonBinary
	cfg.Log.Filename = defaultLogFilename
	cfg.Log.Level = defaultLogLevel
	cfg.Log.MaxSize = defaultLogMaxSize
	cfg.Log.MaxBackups = defaultLogMaxBackups
	cfg.Log.MaxAge = defaultLogMaxAge
	cfg.Log.Compress = defaultLogCompress

	return cfg
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default pyliner.yaml configuration file",
		Long: `Create a pyliner.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if _, err := os.Stat(targetPath); err == nil {
				return fmt.Errorf("config file %s already exists", targetPath)
			}

			contents, err := yaml.Marshal(defaultConfigFile())
			if err != nil {
				return fmt.Errorf("failed to render config file: %w", err)
			}

			if err := os.WriteFile(targetPath, contents, 0o644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
