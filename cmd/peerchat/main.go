package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/shaddyshad/p2p-chat/cli"
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/keystore"
	"github.com/shaddyshad/p2p-chat/moderation"
	"github.com/shaddyshad/p2p-chat/network/p2p"
	"github.com/shaddyshad/p2p-chat/repositories"
	"github.com/shaddyshad/p2p-chat/runtime"
	"github.com/shaddyshad/p2p-chat/runtime/workers"
	"github.com/shaddyshad/p2p-chat/storage"
	"github.com/shaddyshad/p2p-chat/ui"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "peerchat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run returns instead of exiting so deferred cleanups always happen.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Identity & transport
	keys, err := keystore.New()
	if err != nil {
		return exitRuntime, fmt.Errorf("key generation failed: %w", err)
	}
	if err := keys.Verify(); err != nil {
		return exitRuntime, err
	}
	node, err := p2p.New(ctx, log, keys.Identity(), p2p.Config{
		ServiceName: config.MdnsServiceName,
		BufferSize:  config.EventBufferSize,
	})
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing P2P node...")
		_ = node.Close()
	}()

	// 3. Stores
	groups, messages, closeStores, err := openStores(config, log)
	if err != nil {
		return exitRuntime, err
	}
	defer closeStores()

	// 4. Moderation & terminal
	moderator, err := buildModerator(config, log)
	if err != nil {
		return exitConfig, err
	}
	peer := domain.NewPeer(keys.PeerID(), config.Username)
	notifier := ui.NewNotifier(os.Stdout, peer.PeerID, moderator, config.Colours)

	// 5. Orchestration
	orchestrator := runtime.NewOrchestrator(log, peer,
		workers.NewSupervisor(log, config.RestartInterval), node, groups, messages)
	orchestrator.Observe(notifier)
	if config.HeartbeatEvery > 0 {
		orchestrator.Heartbeat(config.HeartbeatEvery)
	}

	for _, addr := range config.Listen() {
		if err := orchestrator.Listen(addr); err != nil {
			return exitRuntime, err
		}
	}
	done := make(chan struct{})
	go func() {
		orchestrator.Start(ctx)
		close(done)
	}()
	for _, addr := range config.Dial() {
		if err := orchestrator.Dial(ctx, addr); err != nil {
			log.Warn("Dial failed", "addr", addr, "error", err)
		}
	}

	for _, addr := range orchestrator.ListenAddrs() {
		_ = notifier.Println("listening on " + addr)
	}
	_ = notifier.Println(fmt.Sprintf("%s is %s, type help", config.Username, peer.PeerID))

	// 6. Terminal until q, EOF or signal
	repl := cli.NewREPL(log, orchestrator, os.Stdout, notifier, moderator)
	replErr := repl.Run(ctx, os.Stdin)

	orchestrator.Stop()
	<-done
	if replErr != nil {
		return exitRuntime, fmt.Errorf("terminal: %w", replErr)
	}
	log.Info("Program stopped cleanly")
	return exitOK, nil
}

// openStores uses Badger when a path is configured, memory otherwise.
func openStores(config Config, log *slog.Logger) (storage.Store[domain.Group], storage.Store[domain.Message], func(), error) {
	if config.BadgerFilepath == "" {
		log.Info("No BADGER_FILEPATH, history is kept in memory")
		return storage.NewMemoryStore[domain.Group](), storage.NewMemoryStore[domain.Message](), func() {}, nil
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database opening failed: %w", err)
	}
	groups, err := repositories.NewBadgerStore[domain.Group](db, log, repositories.GroupsNamespace)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}
	messages, err := repositories.NewBadgerStore[domain.Message](db, log, repositories.MessagesNamespace)
	if err != nil {
		_ = groups.Close()
		_ = db.Close()
		return nil, nil, nil, err
	}
	return groups, messages, func() {
		log.Info("Closing BadgerDB...")
		_ = messages.Close()
		_ = groups.Close()
		_ = db.Close()
	}, nil
}

func buildModerator(config Config, log *slog.Logger) (*moderation.Moderator, error) {
	words := moderation.SplitWords(config.CensoredWords)
	if config.CensoredDir != "" {
		loaded, err := moderation.LoadWords(os.DirFS(config.CensoredDir), ".")
		if err != nil {
			return nil, fmt.Errorf("censored words: %w", err)
		}
		words = append(words, loaded...)
	}
	return moderation.NewModerator(words, config.MaskRune(), log)
}
