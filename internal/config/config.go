package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/gamesearch/internal/search"
)

const (
	fileName = "config.yml"
	xdgFile  = "gamesearch/" + fileName
)

const (
	ModeMatch    = "match"
	ModeOptimize = "optimize"

	GameGo       = "go"
	GameBlockade = "blockade"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode      string    `yaml:"mode" env:"MODE" env-default:"match"`
	Game      string    `yaml:"game" env:"GAME" env-default:"go"`
	Redis     Redis     `yaml:"redis"`
	Console   Console   `yaml:"console"`
	Search    Search    `yaml:"search"`
	Blockade  Blockade  `yaml:"blockade"`
	Go        Go        `yaml:"go"`
	Match     Match     `yaml:"match"`
	Optimizer Optimizer `yaml:"optimizer"`
}

type Redis struct {
	Enabled     bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host        string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env-default:"168h"`
}

type Console struct {
	Colors bool `yaml:"colors" env-default:"true"`
}

type Search struct {
	Method            string `yaml:"method" env-default:"negamax"`
	LookAhead         int    `yaml:"look-ahead" env-default:"2"`
	PercentBestMoves  int    `yaml:"percent-best-moves" env-default:"100"`
	MinBestMoves      int    `yaml:"min-best-moves" env-default:"10"`
	AlphaBeta         bool   `yaml:"alpha-beta" env-default:"true"`
	Quiescence        bool   `yaml:"quiescence" env-default:"false"`
	MaxQuiescentDepth int    `yaml:"max-quiescent-depth" env-default:"4"`
	BuildTree         bool   `yaml:"build-tree" env-default:"false"`
	ScoreCache        bool   `yaml:"score-cache" env-default:"false"`
}

type Blockade struct {
	Rows int `yaml:"rows" env-default:"14"`
	Cols int `yaml:"cols" env-default:"11"`
}

type Go struct {
	Size     int `yaml:"size" env-default:"9"`
	Handicap int `yaml:"handicap" env-default:"0"`
}

type Match struct {
	MaxMoves int `yaml:"max-moves" env-default:"200"`
}

type Optimizer struct {
	Iterations        int     `yaml:"iterations" env-default:"20"`
	GamesPerIteration int     `yaml:"games-per-iteration" env-default:"4"`
	Parallelism       int     `yaml:"parallelism" env-default:"4"`
	StepSize          float64 `yaml:"step-size" env-default:"0.1"`
	Seed              int64   `yaml:"seed" env-default:"1"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// Locate - config.yml in baseDir, else in the xdg config directories.
func Locate(baseDir string) (string, error) {
	local := filepath.Join(baseDir, fileName)

	_, err := os.Stat(local)
	if err == nil {
		return local, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("unable to stat %s: %w", local, err)
	}

	path, err := xdg.SearchConfigFile(xdgFile)
	if err != nil {
		return "", fmt.Errorf("no %s in %s or the xdg config directories: %w", fileName, baseDir, err)
	}

	return path, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Options converts the section to search options and validates them.
func (that *Search) Options() (search.Options, error) {
	opts := search.Options{
		Method:            search.Method(that.Method),
		LookAhead:         that.LookAhead,
		PercentBestMoves:  that.PercentBestMoves,
		MinBestMoves:      that.MinBestMoves,
		AlphaBeta:         that.AlphaBeta,
		Quiescence:        that.Quiescence,
		MaxQuiescentDepth: that.MaxQuiescentDepth,
		BuildTree:         that.BuildTree,
	}

	if err := opts.Validate(); err != nil {
		return search.Options{}, err
	}

	return opts, nil
}
