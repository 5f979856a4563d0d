package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/directorkit/internal/api"
	"github.com/ivlev/directorkit/internal/director"
	"github.com/ivlev/directorkit/internal/store"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planning and rigging review API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			serveHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.Port
		}

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		s, err := store.Open(dbPath())
		if err != nil {
			return err
		}
		defer s.Close()

		d := director.NewDirector(cfg.Tuning, catalog)
		d.MaxWorkers = cfg.Workers

		srv := &api.Server{Director: d, Store: s}
		addr := fmt.Sprintf("%s:%d", serveHost, servePort)
		fmt.Printf("[*] Listening on http://%s\n", addr)
		return srv.ListenAndServe(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
