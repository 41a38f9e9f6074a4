// Record subcommands: insert, all, get, remove.
package main

import (
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/jpl-au/carton"
	"github.com/spf13/cobra"
)

var insertCmd = &cobra.Command{
	Use:   "insert <collection> <json-payload>",
	Short: "Insert a record into a collection",
	Long:  "Insert a record built from the JSON payload. The store assigns the id and prints the stored record.",
	Args:  cobra.ExactArgs(2),
	RunE:  runInsert,
}

var allCmd = &cobra.Command{
	Use:   "all <collection>",
	Short: "Print every record in a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runAll,
}

var getCmd = &cobra.Command{
	Use:   "get <collection> <id>",
	Short: "Print the record with the given id",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

var removeCmd = &cobra.Command{
	Use:   "remove <collection> <id>",
	Short: "Remove the record with the given id",
	Long:  "Remove the record with the given id. Removing an unknown id is a no-op.",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemove,
}

func runInsert(cmd *cobra.Command, args []string) error {
	var payload map[string]any
	if err := json.Unmarshal([]byte(args[1]), &payload); err != nil {
		return fmt.Errorf("payload is not a JSON object: %w", err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	rec, err := s.Insert(args[0], payload)
	if err != nil {
		return err
	}
	return printJSON(rec)
}

func runAll(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	records, err := s.GetAll(args[0])
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := printJSON(rec); err != nil {
			return err
		}
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	rec, err := s.GetByID(args[0], args[1])
	if errors.Is(err, carton.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "not found: %s\n", args[1])
		os.Exit(1)
	}
	if err != nil {
		return err
	}
	return printJSON(rec)
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return s.RemoveByID(args[0], args[1])
}

// printJSON writes v to stdout as one line of JSON.
func printJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
