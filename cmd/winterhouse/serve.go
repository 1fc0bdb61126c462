package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"winterhouse/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeScene  string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the diorama SSH server",
	Long: `Start an SSH server that lets people visit the house remotely.

Each SSH connection walks its own copy of the scene; the interaction
journal is shared server-side. Audio stays off for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.winterhouse/host_key

Examples:
  winterhouse serve                           # Listen on :23234 with auto-generated key
  winterhouse serve --ssh :2222               # Listen on port 2222
  winterhouse serve --host-key ./my_host_key  # Use specific host key
  winterhouse serve --db ./journal.db         # Use specific database

Visitors can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeScene, "scene", "house", "Scene served to visitors")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		SceneID:     flagServeScene,
		DBPath:      flagDBPath,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting winterhouse SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
