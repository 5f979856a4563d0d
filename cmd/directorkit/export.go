package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/screenplay"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <screenplay> <output>",
	Short: "Convert a screenplay to OSF or YAML",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := screenplay.Load(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		format := strings.ToLower(exportFormat)
		if format == "" {
			format = strings.TrimPrefix(strings.ToLower(filepath.Ext(args[1])), ".")
		}

		var write func(io.Writer, *model.Screenplay) error
		switch format {
		case "osf", "xml":
			write = screenplay.WriteOSF
		case "yaml", "yml":
			write = screenplay.WriteYAML
		default:
			return fmt.Errorf("unknown export format %q (want osf or yaml)", format)
		}

		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		if err := write(f, sp); err != nil {
			return err
		}

		fmt.Printf("[+++] Done! %d scenes written to %s\n", len(sp.Scenes), args[1])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "osf or yaml (default: from the output extension)")
	rootCmd.AddCommand(exportCmd)
}
