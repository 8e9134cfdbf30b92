// Command inspect prints the groups and messages a peer stored in Badger.
// It opens the database read-only, a running peer can keep it open.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/repositories"
	"github.com/shaddyshad/p2p-chat/ui"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	dbPath := flag.String("db", config.BadgerFilepath, "Path to badger DB")
	topic := flag.String("topic", "", "Only show messages of this topic")
	flag.Parse()
	if *dbPath == "" {
		return fmt.Errorf("no database, set BADGER_FILEPATH or -db")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	groups, err := repositories.ReadNamespace[domain.Group](db, repositories.GroupsNamespace)
	if err != nil {
		return err
	}
	messages, err := repositories.ReadNamespace[domain.Message](db, repositories.MessagesNamespace)
	if err != nil {
		return err
	}

	fmt.Println(strings.ToUpper(repositories.GroupsNamespace))
	ui.RenderGroups(os.Stdout, lo.Map(groups, func(r repositories.Record[domain.Group], _ int) domain.Group {
		return r.Item
	}))
	fmt.Println()
	fmt.Println(strings.ToUpper(repositories.MessagesNamespace))
	ui.RenderMessages(os.Stdout, lo.FilterMap(messages, func(r repositories.Record[domain.Message], _ int) (domain.Message, bool) {
		return r.Item, *topic == "" || r.Item.GroupName == *topic
	}), nil)
	return nil
}
