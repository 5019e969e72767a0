// Command browserterm-server is the composition root: it wires the core
// vtcore.Terminal state machine to a real PTY (pkg/session) and a browser
// websocket transport (pkg/wsrelay), behind a small HTTP server. Flag and
// config-file handling follow the cobra/pflag + yaml.v3 shape the pack's own
// session binaries (noppefoxwolf-vibetunnel's vibetunnel-server/vibetunnel-fwd)
// use for theirs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/B-Ingwersen/browserterm/pkg/session"
	"github.com/B-Ingwersen/browserterm/pkg/wsrelay"
)

var (
	cfg        = defaultConfig()
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "browserterm-server",
	Short: "Browser-hosted terminal emulator server",
	Long:  `Serves a VT100/ECMA-48 terminal core over a websocket, backed by a real PTY per session.`,
	RunE:  runServer,
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "Address to listen on")
	rootCmd.Flags().StringVar(&cfg.StaticPath, "static", cfg.StaticPath, "Path to static client files (optional)")
	rootCmd.Flags().IntVar(&cfg.Rows, "rows", cfg.Rows, "Initial terminal rows")
	rootCmd.Flags().IntVar(&cfg.Cols, "cols", cfg.Cols, "Initial terminal columns")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.Flags().VarP(newShellValue(&cfg.Shell), "shell", "s", "Shell command and args; repeat to append a word")
}

// shellValue lets --shell be repeated to build up a command and its
// arguments word by word (pflag.Value, not one of the stock slice types, so
// a bare `--shell bash --shell -l` reads naturally instead of needing commas).
type shellValue struct {
	words   *[]string
	touched bool
}

func newShellValue(words *[]string) *shellValue { return &shellValue{words: words} }

func (v *shellValue) String() string {
	if v.words == nil {
		return ""
	}
	return strings.Join(*v.words, " ")
}

func (v *shellValue) Set(word string) error {
	if !v.touched {
		*v.words = nil
		v.touched = true
	}
	*v.words = append(*v.words, word)
	return nil
}

func (v *shellValue) Type() string { return "word" }

var _ pflag.Value = (*shellValue)(nil)

func runServer(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		// The file fills in only the settings not given explicitly by flag.
		fileCfg := cfg
		if err := loadConfigFile(&fileCfg, configPath); err != nil {
			return err
		}
		fromFile := func(flag string, apply func()) {
			if !cmd.Flags().Changed(flag) {
				apply()
			}
		}
		fromFile("addr", func() { cfg.Addr = fileCfg.Addr })
		fromFile("static", func() { cfg.StaticPath = fileCfg.StaticPath })
		fromFile("rows", func() { cfg.Rows = fileCfg.Rows })
		fromFile("cols", func() { cfg.Cols = fileCfg.Cols })
		fromFile("shell", func() { cfg.Shell = fileCfg.Shell })
	}
	if len(cfg.Shell) == 0 {
		return fmt.Errorf("browserterm-server: no shell command configured")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	manager := session.NewManager(logger)
	relay := wsrelay.NewHandler(manager, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleWebsocket(manager, relay, logger, w, r)
	})
	if cfg.StaticPath != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticPath)))
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	go func() {
		logger.Info("listening", "addr", cfg.Addr, "shell", strings.Join(cfg.Shell, " "))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	return nil
}

// handleWebsocket starts a fresh PTY-backed session for every new websocket
// connection and relays it until the client disconnects.
func handleWebsocket(manager *session.Manager, relay *wsrelay.Handler, logger *slog.Logger, w http.ResponseWriter, r *http.Request) {
	sess, err := manager.CreateSession(session.Config{
		Command: cfg.Shell,
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
	})
	if err != nil {
		logger.Error("create session failed", "error", err)
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}
	defer manager.RemoveSession(sess.ID)

	relay.ServeHTTP(sess, w, r)
}
