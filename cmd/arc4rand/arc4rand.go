// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	"github.com/lk29/arc4random"
	"github.com/lk29/arc4random/internal/version"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

type config struct {
	Count   uint   `short:"c" long:"count" description:"number of values to emit"`
	Uniform uint32 `short:"u" long:"uniform" description:"emit uniform values in [0,BOUND) instead of raw 32-bit words" value-name:"BOUND"`
	Bytes   uint   `short:"b" long:"bytes" description:"emit N random bytes as a hex string instead of words" value-name:"N"`
	Debug   bool   `short:"d" long:"debug" description:"log device and rekey activity to stderr"`
	Version bool   `short:"V" long:"version" description:"print version information and exit"`
}

func main() {
	cfg := config{
		Count: 1,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS]"
	remaining, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(remaining) != 0 {
		fatalf("unexpected arguments: %v", remaining)
	}
	if cfg.Version {
		fmt.Println("arc4rand version", version.String())
		return
	}

	if cfg.Debug {
		logger := slog.NewBackend(os.Stderr).Logger("RAND")
		logger.SetLevel(slog.LevelTrace)
		arc4random.UseLogger(logger)
	}
	defer arc4random.Close()

	if cfg.Bytes > 0 {
		buf := make([]byte, cfg.Bytes)
		arc4random.Read(buf)
		fmt.Println(hex.EncodeToString(buf))
		return
	}

	for n := uint(0); n < cfg.Count; n++ {
		if cfg.Uniform > 0 {
			fmt.Println(arc4random.UniformUint32(cfg.Uniform))
		} else {
			fmt.Println(arc4random.Uint32())
		}
	}
}
