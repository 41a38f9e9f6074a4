// Collection subcommands: create, collections, rename, clear.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <collection>",
	Short: "Create an empty collection",
	Long:  "Create an empty collection. Creating an existing collection is a no-op unless --strict is set.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List collection names",
	Args:  cobra.NoArgs,
	RunE:  runCollections,
}

var renameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a collection",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard all collections and records",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func runCreate(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return s.CreateCollection(args[0])
}

func runCollections(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	names, err := s.Collections()
	if err != nil {
		return err
	}
	for _, name := range names {
		count, err := s.Count(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%d\n", name, count)
	}
	return nil
}

func runRename(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return s.Rename(args[0], args[1])
}

func runClear(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return s.Clear()
}
