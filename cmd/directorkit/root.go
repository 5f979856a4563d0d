package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ivlev/directorkit/internal/backstory"
	"github.com/ivlev/directorkit/internal/config"
	"github.com/ivlev/directorkit/internal/logging"
)

var (
	dataDir    string
	verbose    bool
	configPath string
	cfg        *config.Config
	closeLog   = func() {}
)

var rootCmd = &cobra.Command{
	Use:           "directorkit",
	Short:         "Turn a screenplay into shot lists, blocking and dialogue rigging",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a missing .env is fine
		_ = godotenv.Load()

		if !cmd.Flags().Changed("config") {
			if p := os.Getenv("DIRECTORKIT_CONFIG"); p != "" {
				configPath = p
			}
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		switch {
		case cmd.Flags().Changed("data-dir"):
		case os.Getenv("DIRECTORKIT_DATA_DIR") != "":
			dataDir = os.Getenv("DIRECTORKIT_DATA_DIR")
		default:
			dataDir = cfg.Data.Dir
		}

		if verbose {
			cfg.Log.Level = "DEBUG"
		}
		closer, err := logging.Init(cfg.Log)
		if err != nil {
			return err
		}
		closeLog = closer
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "directorkit.toml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "Directory holding backstories and the project database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// dataPath resolves p against the data directory unless it is absolute.
func dataPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dataDir, p)
}

func dbPath() string {
	return dataPath("directorkit.db")
}

func loadCatalog() (*backstory.Catalog, error) {
	catalog, err := backstory.LoadFile(dataPath(cfg.Data.Backstory))
	if err != nil {
		return nil, fmt.Errorf("loading backstories: %w", err)
	}
	if catalog.Len() > 0 {
		fmt.Printf("[*] Backstories: %d characters\n", catalog.Len())
	}
	return catalog, nil
}
