package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/takakv/algebra/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "algebra",
		Short:        "Compute with elements of groups, rings and fields.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().StringP("config", "c", "", "TOML catalog of named structures")

	root.AddCommand(newCalcCmd(), newTableCmd(), newStructuresCmd())
	return root
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Fatal(err)
	}
	return r
}

// registry returns a registry over the catalog named by --config, if any.
func registry(cmd *cobra.Command) (*config.Registry, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.NewRegistry(nil), nil
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading catalog")
	}
	return config.NewRegistry(c), nil
}
