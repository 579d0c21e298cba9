package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server where every connection plays its own game.
Scores are stored per server, so all users share the scoreboard
(press tab in a session to see it).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the config, generated when missing

Examples:
  term2048 serve                           # Listen on the configured address
  term2048 serve --ssh :2222               # Listen on port 2222
  term2048 serve --host-key ./my_host_key  # Use specific host key
  term2048 serve --hint greedy             # Cheaper hints for every session

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().StringVar(&flagHint, "hint", "expectimax", "Strategy for the hint key in every session (empty disables hints)")
}

// sshServerConfig builds the server settings from the config and flags.
func sshServerConfig() tui.SSHServerConfig {
	sshCfg := tui.SSHServerConfig{
		Address:      cfg.SSH.Address,
		HostKeyPath:  cfg.SSH.HostKey,
		IdleTimeout:  cfg.SSH.IdleTimeout,
		Game:         gameConfig(),
		HintStrategy: flagHint,
		HintOptions:  solverOptions(),
	}
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = flagHostKey
	}
	return sshCfg
}

func runServe(_ *cobra.Command, _ []string) error {
	sshCfg := sshServerConfig()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(sshCfg, store, logger.WithPrefix("term2048-ssh"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting term2048 SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
