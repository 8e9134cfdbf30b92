package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	Username        string        `env:"PEER_USERNAME,required=true" validate:"required,max=32"`
	ListenAddrs     string        `env:"LISTEN_ADDRS,default=/ip4/0.0.0.0/tcp/0" validate:"required"`
	DialAddrs       string        `env:"DIAL_ADDRS"`
	MdnsServiceName string        `env:"MDNS_SERVICE_NAME,default=peer-chat"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	HeartbeatEvery  time.Duration `env:"HEARTBEAT_INTERVAL,default=0s" validate:"gte=0"`
	EventBufferSize int           `env:"EVENT_BUFFER_SIZE,default=64" validate:"min=1"`
	CensoredWords   string        `env:"CENSORED_WORDS"`
	CensoredDir     string        `env:"CENSORED_DIR"`
	MaskChar        string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*" validate:"len=1"`
	Colours         bool          `env:"COLOURS,default=true"`
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// MaskRune returns the character replacing censored letters.
func (c Config) MaskRune() rune {
	return []rune(c.MaskChar)[0]
}

func (c Config) Listen() []string {
	return splitList(c.ListenAddrs)
}

func (c Config) Dial() []string {
	return splitList(c.DialAddrs)
}

func splitList(list string) []string {
	return lo.FilterMap(strings.Split(list, ","), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}
