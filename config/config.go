package config

import (
	"os"
	"time"

	"github.com/jasontodev/NoxusIoniaRL/common/influxdb"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	PolicyIdle      = "idle"
	PolicyRandom    = "random"
	PolicyAttractor = "attractor"
	PolicyRemote    = "remote"
)

const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

type TeamPolicies struct {
	Noxus string `yaml:"noxus" json:"noxus"`
	Ionia string `yaml:"ionia" json:"ionia"`
}

func (p TeamPolicies) For(team arena.Team) string {
	if team == arena.Ionia {
		return p.Ionia
	}

	return p.Noxus
}

type ServerConfig struct {
	Tps             int               `yaml:"tps" json:"tps"`
	Realtime        bool              `yaml:"realtime" json:"realtime"`
	DecisionTimeout time.Duration     `yaml:"decision_timeout" json:"decision_timeout"`
	Episodes        int               `yaml:"episodes" json:"episodes"`
	Seed            int64             `yaml:"seed" json:"seed"`
	RecordFile      string            `yaml:"record_file" json:"record_file"`
	VizAddr         string            `yaml:"viz_addr" json:"viz_addr"`
	CommAddr        string            `yaml:"comm_addr" json:"comm_addr"`
	Codec           string            `yaml:"codec" json:"codec"`
	Policies        TeamPolicies      `yaml:"policies" json:"policies"`
	Metrics         influxdb.Settings `yaml:"metrics" json:"metrics"`
}

type Config struct {
	Arena  arena.Config `yaml:"arena" json:"arena"`
	Server ServerConfig `yaml:"server" json:"server"`
}

func Default() Config {
	return Config{
		Arena: arena.DefaultConfig(),
		Server: ServerConfig{
			Tps:             50,
			Realtime:        false,
			DecisionTimeout: 100 * time.Millisecond,
			Episodes:        10,
			Seed:            1,
			CommAddr:        "127.0.0.1:8090",
			Codec:           CodecJSON,
			Policies: TeamPolicies{
				Noxus: PolicyAttractor,
				Ionia: PolicyRandom,
			},
		},
	}
}

// TickDuration is the simulated time consumed by one tick.
func (c Config) TickDuration() float64 {
	return 1.0 / float64(c.Server.Tps)
}

func (c Config) Validate() error {
	if err := c.Arena.Validate(); err != nil {
		return errors.Wrap(err, "invalid arena section")
	}

	if c.Server.Tps <= 0 {
		return errors.Errorf("server.tps must be positive, got %d", c.Server.Tps)
	}

	if c.Server.DecisionTimeout <= 0 {
		return errors.Errorf("server.decision_timeout must be positive, got %s", c.Server.DecisionTimeout)
	}

	if c.Server.Episodes < 0 {
		return errors.Errorf("server.episodes must not be negative, got %d", c.Server.Episodes)
	}

	switch c.Server.Codec {
	case CodecJSON, CodecMsgpack:
	default:
		return errors.Errorf("server.codec: unknown codec %q", c.Server.Codec)
	}

	for _, team := range arena.Teams {
		switch policy := c.Server.Policies.For(team); policy {
		case PolicyIdle, PolicyRandom, PolicyAttractor, PolicyRemote:
		default:
			return errors.Errorf("server.policies.%s: unknown policy %q", team.String(), policy)
		}
	}

	return nil
}

// Resolve finds filename in the working directory first, then next to the executable.
func Resolve(filename string) string {
	if _, err := os.Stat(filename); err == nil {
		return filename
	}

	return utils.GetAbsoluteDir(filename)
}

// Load reads a YAML (or JSON) file on top of the defaults.
func Load(filename string) (Config, error) {
	config := Default()

	if filename != "" {
		resolved := Resolve(filename)

		data, err := os.ReadFile(resolved)
		if err != nil {
			return config, errors.Wrapf(err, "could not read config file %s", resolved)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "could not parse config file %s", resolved)
		}
	}

	if err := LoadEnv(&config, ".env"); err != nil {
		return config, err
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "invalid configuration %s", filename)
	}

	return config, nil
}

// LoadEnv fills the metrics settings from the environment. Values from
// envfile are used for variables the environment leaves empty.
func LoadEnv(config *Config, envfile string) error {
	values := make(map[string]string)

	if envfile != "" {
		if _, err := os.Stat(envfile); err == nil {
			values, err = godotenv.Read(envfile)
			if err != nil {
				return errors.Wrapf(err, "could not load %s", envfile)
			}
		}
	}

	lookup := func(key string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}

		return values[key]
	}

	if addr := lookup("INFLUXDB_ADDR"); addr != "" {
		config.Server.Metrics.Addr = addr
	}

	if db := lookup("INFLUXDB_DB"); db != "" {
		config.Server.Metrics.Database = db
	}

	return nil
}

func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	return data, errors.Wrap(err, "could not serialize configuration")
}
