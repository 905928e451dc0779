// Package main implements a headless Game Boy emulator. It loads a ROM
// image, runs it on the SM83 core and stops when the core fetches an
// opcode it does not implement or the process is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"github.com/thelolagemann/go-dmg/internal/cpu"
	"github.com/thelolagemann/go-dmg/internal/dmg"
	"github.com/thelolagemann/go-dmg/pkg/utils"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// pollInterval is the number of instructions executed between checks of
// the run context for cancellation.
const pollInterval = 4096

type optionFlags struct {
	romFile string

	debug bool
	quiet bool
}

func main() {
	options := readArguments()
	logger := createLogger(options)

	printBanner(logger, options)

	rom, err := utils.LoadFile(options.romFile)
	if err != nil {
		logger.Fatal("loading ROM failed", log.Err(err))
	}

	system := dmg.New(rom,
		dmg.WithLogger(logger),
		dmg.WithSerialWriter(os.Stdout),
	)

	logger.Info("cartridge",
		log.Stringer("header", system.Bus.Cart.Header()),
		log.String("fingerprint", fmt.Sprintf("%016x", system.Bus.Cart.Fingerprint())),
	)

	cycles, err := run(app.Context(), system)
	if err != nil {
		var illegal cpu.IllegalOpcodeError
		if errors.As(err, &illegal) {
			logger.Error("execution stopped",
				log.Hex("opcode", illegal.Opcode),
				log.Hex("pc", illegal.PC),
			)
			os.Exit(1)
		}
		logger.Fatal("emulation failed", log.Err(err))
	}

	logger.Info("interrupted",
		log.String("emulated", fmt.Sprintf("%.2fs", float64(cycles)/dmg.ClockSpeed)),
	)
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.BoolVar(&options.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		fmt.Fprintf(os.Stderr, "usage: dmg [options] <rom file>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.romFile = args[0]

	return options
}

func createLogger(options optionFlags) *log.Logger {
	cfg := log.DefaultConfig()
	if options.debug {
		cfg.Level = log.DebugLevel
	} else if options.quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func printBanner(logger *log.Logger, options optionFlags) {
	if options.quiet {
		return
	}
	logger.Info("dmg", log.String("version", buildinfo.Version(version, commit, date)))
}

// run steps the system until ctx is cancelled, polling for cancellation
// every pollInterval instructions. It returns the number of T-cycles
// emulated.
func run(ctx context.Context, system *dmg.System) (uint64, error) {
	var cycles uint64
	for {
		select {
		case <-ctx.Done():
			return cycles, nil
		default:
		}

		for i := 0; i < pollInterval; i++ {
			c, err := system.Step()
			if err != nil {
				return cycles, err
			}
			cycles += c
		}
	}
}
