package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/cobra"

	"memdex/registry"
	"memdex/server"
)

// Root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "memdex",
	Short: "In-memory ordered index toolkit",
	Long:  "memdex keeps ordered string indexes in memory, backed by a B-tree of configurable minimum degree, and exposes them through an interactive session or an HTTP API.",
}

// Execute runs the root command
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %v\n", err)
		os.Exit(1)
	}
}

var (
	replDegree int
	replSeed   int
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session over a single in-memory index",
	Run: func(cmd *cobra.Command, args []string) {
		reg := registry.New()
		ix, err := reg.Create("session", replDegree)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating index: %v\n", err)
			os.Exit(1)
		}
		if replSeed > 0 {
			if err := seedIndex(ix, replSeed); err != nil {
				fmt.Fprintf(os.Stderr, "Error seeding index: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Seeded index with %d keys\n", ix.Len())
		}

		repl := NewREPL(bufio.NewScanner(os.Stdin), os.Stdout, ix)
		repl.Start()
	},
}

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the index registry over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		server.Serve(serveAddr)
	},
}

// seedIndex fills the index with faker-generated word pairs, so a demo
// session starts with a tree deep enough to be interesting.
func seedIndex(ix *registry.Index, count int) error {
	for i := 0; i < count; i++ {
		key := fmt.Sprintf("%s_%s_%d", faker.Word(), faker.Word(), i)
		if err := ix.Insert(key); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	replCmd.Flags().IntVar(&replDegree, "degree", 2, "Minimum degree t of the index B-tree.")
	replCmd.Flags().IntVar(&replSeed, "seed", 0, "Pre-populate the index with this many keys created with go-faker.")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":3000", "Listen address for the HTTP server.")

	RootCmd.AddCommand(replCmd)
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(versionCmd)
}
