package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

func init() {
	InitializeLogger()
}

// Populated by ldflags
var (
	version            string
	buildUnixTimestamp string
	commitHash         string
)

func main() {
	ts, _ := strconv.ParseInt(buildUnixTimestamp, 10, 64)
	buildInfo := BuildInfo{
		Version:    version,
		BuildTime:  time.Unix(ts, 0),
		CommitHash: commitHash,
	}

	versionFlag := flag.Bool("version", false, "Print version")
	systemdFlag := flag.Bool("systemd", false, "Print systemd service file")
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	if *versionFlag {
		fmt.Println("cllsim version:", buildInfo.Version)
		fmt.Println("Built on:", buildInfo.BuildTime)
		fmt.Println("Commit hash:", buildInfo.CommitHash)
		return
	}

	if *systemdFlag {
		if err := WriteServiceFile(os.Stdout, ServiceParams{ConfigPath: *configFlag}); err != nil {
			log.Fatal().Err(err).Msg("Failed to write service file")
		}
		return
	}

	log.Info().
		Str("version", buildInfo.Version).
		Str("build_timestamp", buildInfo.BuildTime.Format(time.RFC3339)).
		Str("commit_hash", buildInfo.CommitHash).
		Msg("Initializing cllsim")

	config, err := NewConfig(NewCllsimOSFS(), Flags{ConfigPath: *configFlag}, os.Getenv)
	if err != nil {
		log.Fatal().Err(err).Msg("Config initialization failed")
	}
	SetLogLevel(config.LogLevel())
	if config.Path() != "" {
		log.Info().Str("path", config.Path()).Msg("Loaded config file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := NewSimulator()

	if err := StartServer(ctx, config, buildInfo, sim); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Err(err).Msg("Server closed with error")
	}
}
