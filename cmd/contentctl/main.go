package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jsc-site/jsc/backend/go-api/pkg/logger"
)

var (
	dataDir  string
	fileName string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "contentctl",
		Short:         "Inspect and maintain the site content file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", envOr("CONTENT_DATA_DIR", "data"), "Directory holding the content file")
	root.PersistentFlags().StringVar(&fileName, "file", envOr("CONTENT_FILE", "content.json"), "Content file name")
	root.AddCommand(newShowCmd(), newValidateCmd(), newResetCmd())
	return root
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	if err := newRootCmd().Execute(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
