package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/othello/search"
)

const (
	ConfigDebug           = "debug"
	ConfigEngine          = "engine"
	ConfigDepthLimit      = "depth-limit"
	ConfigBoardSize       = "board-size"
	ConfigPlayerName      = "player-name"
	ConfigAutoplayGames   = "autoplay-games"
	ConfigAutoplayThreads = "autoplay-threads"
	ConfigAutoplayFile    = "autoplay-file"
	ConfigCPUProfile      = "cpu-profile"
	ConfigConfigFile      = "config-file"
)

type Config struct {
	*viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigEngine, search.EngineAlphaBeta.String())
	v.SetDefault(ConfigDepthLimit, search.DefaultDepthLimit)
	v.SetDefault(ConfigBoardSize, 8)
	v.SetDefault(ConfigPlayerName, "Minimax AI")
	v.SetDefault(ConfigAutoplayGames, 100)
	v.SetDefault(ConfigAutoplayThreads, 4)
	v.SetDefault(ConfigAutoplayFile, "/tmp/autoplay.txt")
	v.SetDefault(ConfigCPUProfile, "")
}

// DefaultConfig returns a config holding only the defaults. It does not
// read flags, the environment or a config file.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	return Config{Viper: v}
}

// Load reads, in increasing order of precedence: defaults, the config
// file (othello.yaml in the working directory or ~/.othello, or the
// --config-file flag), OTHELLO_* environment variables, and flags.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("othello", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigEngine, search.EngineAlphaBeta.String(), "search engine: minimax or alphabeta")
	fs.Int(ConfigDepthLimit, search.DefaultDepthLimit, "alpha-beta depth limit in plies past the root; 0 for unbounded")
	fs.Int(ConfigBoardSize, 8, "board size for new games")
	fs.String(ConfigPlayerName, "Minimax AI", "name sent to the game manager")
	fs.Int(ConfigAutoplayGames, 100, "number of games for autoplay")
	fs.Int(ConfigAutoplayThreads, 4, "number of concurrent autoplay games")
	fs.String(ConfigAutoplayFile, "/tmp/autoplay.txt", "autoplay game log")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigConfigFile, "", "path to a config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("othello")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigConfigFile); path != "" {
		c.SetConfigFile(path)
	} else {
		c.SetConfigName("othello")
		c.SetConfigType("yaml")
		c.AddConfigPath(".")
		c.AddConfigPath("$HOME/.othello")
	}
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// SearchConfig returns the search settings.
func (c *Config) SearchConfig() (search.Config, error) {
	engine, err := search.ParseEngine(c.GetString(ConfigEngine))
	if err != nil {
		return search.Config{}, err
	}
	limit := c.GetInt(ConfigDepthLimit)
	if limit < 0 {
		return search.Config{}, fmt.Errorf("depth limit must not be negative, got %d", limit)
	}
	return search.Config{Engine: engine, DepthLimit: limit}, nil
}
