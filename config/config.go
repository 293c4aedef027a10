package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	PlaybackInterval                         time.Duration
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once. A missing file leaves the
// defaults in place; a malformed one is fatal.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			logrus.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads the configuration from path, or from config.yaml in the working
// directory when path is empty. Environment variables prefixed SCHEDULER_
// override file values (SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM, ...).
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		logrus.Debugf("no config file found, using defaults")
	}

	cfg := &SchedulerConfig{}
	cfg.Port = v.GetInt("port")
	cfg.LogLevel = v.GetString("log_level")
	cfg.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	cfg.PlaybackInterval = v.GetDuration("playback.interval")

	levels, err := intSlice(v, "scheduler.multilevel_feedback_queue.levels_time_quantum")
	if err != nil {
		return nil, err
	}
	cfg.MultilevelFeedbackQueueLevelsTimeQuantum = levels
	return cfg, nil
}

// intSlice reads a list of ints that may come from the file as a sequence or
// from the environment as a string such as "3,6" or "3 6".
func intSlice(v *viper.Viper, key string) ([]int, error) {
	raw := v.Get(key)
	if s, ok := raw.(string); ok {
		raw = strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' ' || r == '[' || r == ']'
		})
	}
	values, err := cast.ToIntSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return values, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{5, 8})
	v.SetDefault("playback.interval", 500*time.Millisecond)
}
