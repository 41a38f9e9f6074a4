// Maintenance subcommands: digest, snapshot, restore.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Print a digest of the current document",
	Args:  cobra.NoArgs,
	RunE:  runDigest,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <path>",
	Short: "Write a compressed backup of the document",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <path>",
	Short: "Replace the document with a snapshot",
	Long:  "Replace the document with the contents of a snapshot. The snapshot is validated before anything is overwritten.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func runDigest(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	d, err := s.Digest()
	if err != nil {
		return err
	}
	fmt.Println(d)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return s.Snapshot(args[0])
}

func runRestore(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return s.Restore(args[0])
}
