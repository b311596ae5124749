package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	ConfigFileName     = "cllsim.toml"
	HomeConfigFileName = ".cllsim.toml"

	DefaultHost     = "127.0.0.1"
	DefaultPort     = 1225
	DefaultLogLevel = "info"
)

// Flags are the command line options that affect config
type Flags struct {
	ConfigPath string
}

type tomlConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
	NoEmbed  bool   `toml:"no_embed"`
}

type Config struct {
	path     string
	host     string
	port     int
	logLevel zerolog.Level
	noEmbed  bool
}

// NewConfig loads the TOML config and applies HOST and PORT from getenv on
// top of it. A config file that is not found is treated as empty unless it
// was named explicitly with Flags.ConfigPath.
func NewConfig(fsys CllsimFS, flags Flags, getenv func(string) string) (*Config, error) {
	tc := tomlConfig{
		Host:     DefaultHost,
		Port:     DefaultPort,
		LogLevel: DefaultLogLevel,
	}

	path, err := findConfigFile(fsys, flags)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := readTOML(fsys, path, &tc); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	if host := getenv("HOST"); host != "" {
		tc.Host = host
	}
	if port := getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		tc.Port = p
	}

	if tc.Port <= 0 || tc.Port > 65535 {
		return nil, fmt.Errorf("port %d out of range", tc.Port)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(tc.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", tc.LogLevel, err)
	}

	return &Config{
		path:     path,
		host:     tc.Host,
		port:     tc.Port,
		logLevel: level,
		noEmbed:  tc.NoEmbed,
	}, nil
}

func findConfigFile(fsys CllsimFS, flags Flags) (string, error) {
	if flags.ConfigPath != "" {
		path, err := fsys.Abs(flags.ConfigPath)
		if err != nil {
			return "", err
		}
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", fmt.Errorf("config file %q: %w", path, fs.ErrNotExist)
		}
		return path, nil
	}

	var candidates []string
	if local, err := fsys.Abs(ConfigFileName); err == nil {
		candidates = append(candidates, local)
	}
	if home, err := fsys.HomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, HomeConfigFileName))
	}

	for _, c := range candidates {
		exists, err := afero.Exists(fsys, c)
		if err != nil {
			return "", err
		}
		if exists {
			return c, nil
		}
	}

	return "", nil
}

func readTOML(fsys afero.Fs, path string, tc *tomlConfig) error {
	f, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = toml.NewDecoder(f).DisallowUnknownFields().Decode(tc)
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		return errors.New(strict.String())
	}
	return err
}

// Path is the config file that was loaded, or "" if none was found
func (c *Config) Path() string {
	return c.path
}

func (c *Config) Host() string {
	return c.host
}

func (c *Config) Port() int {
	return c.port
}

func (c *Config) Address() string {
	return net.JoinHostPort(c.host, strconv.Itoa(c.port))
}

func (c *Config) LogLevel() zerolog.Level {
	return c.logLevel
}

// NoEmbed serves www/ from disk instead of the embedded copy
func (c *Config) NoEmbed() bool {
	return c.noEmbed
}
