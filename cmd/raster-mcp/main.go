package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/raster-tools-mcp/internal/pngcodec"
	"github.com/ironsheep/raster-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "raster-mcp",
	Short: "MCP server for in-memory PNG editing",
	Long: `raster-mcp - MCP server for in-memory PNG editing

This server communicates via MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).

Environment variables:
  RASTER_MCP_LOG_LEVEL=debug                 Enable debug logging
  RASTER_MCP_PNG_COMPRESSION=default|none|speed|best
                                             PNG compression used when saving`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("raster-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("RASTER_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Raster MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	level, err := pngcodec.ParseCompression(os.Getenv("RASTER_MCP_PNG_COMPRESSION"))
	if err != nil {
		return err
	}

	srv := server.New(
		server.WithDebug(debug),
		server.WithEncodeOptions(pngcodec.WithCompression(level)),
	)
	if err := srv.Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
