// Root command and shared store plumbing for the carton CLI.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/jpl-au/carton"
	"github.com/spf13/cobra"
)

var (
	filePath     string
	strictCreate bool
	compact      bool
)

var rootCmd = &cobra.Command{
	Use:   "carton",
	Short: "Carton CLI",
	Long:  "Carton is a minimal document store backed by a single JSON file.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "path to store file (required)")
	rootCmd.PersistentFlags().BoolVar(&strictCreate, "strict", false, "fail when creating a collection that already exists")
	rootCmd.PersistentFlags().BoolVar(&compact, "compact", false, "write the store file as compact JSON")
	_ = rootCmd.MarkPersistentFlagRequired("file")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(collectionsCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(restoreCmd)
}

// openStore opens the store at the --file path.
func openStore() (*carton.Store, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("invalid store path: %w", err)
	}

	config := carton.Config{
		StrictCreate: strictCreate,
		Compact:      compact,
	}
	return carton.Open(absPath, config)
}
