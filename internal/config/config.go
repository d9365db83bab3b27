// Package config loads voicebank configuration from defaults, flags,
// environment variables and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Paths    PathsConfig  `mapstructure:"paths"`
	Audio    AudioConfig  `mapstructure:"audio"`
	TTS      TTSConfig    `mapstructure:"tts"`
	FFmpeg   FFmpegConfig `mapstructure:"ffmpeg"`
	Budget   BudgetConfig `mapstructure:"budget"`
	LogLevel string       `mapstructure:"log_level"`
}

type PathsConfig struct {
	AudioDir   string `mapstructure:"audio_dir"`
	TempDir    string `mapstructure:"temp_dir"`
	OutputFile string `mapstructure:"output_file"`
}

type AudioConfig struct {
	SampleRate int `mapstructure:"sample_rate"`
	Channels   int `mapstructure:"channels"`
	BitDepth   int `mapstructure:"bit_depth"`
}

type TTSConfig struct {
	CLIPath  string `mapstructure:"cli_path"`
	Language string `mapstructure:"language"`
	Slow     bool   `mapstructure:"slow"`
}

type FFmpegConfig struct {
	Path string `mapstructure:"path"`
}

type BudgetConfig struct {
	CapacityBytes int64   `mapstructure:"capacity_bytes"`
	WarnFraction  float64 `mapstructure:"warn_fraction"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			AudioDir:   "audio_files",
			TempDir:    "temp_audio",
			OutputFile: "audio_data.h",
		},
		Audio: AudioConfig{
			SampleRate: 8000,
			Channels:   1,
			BitDepth:   8,
		},
		TTS: TTSConfig{
			CLIPath:  "",
			Language: "en",
			Slow:     false,
		},
		FFmpeg: FFmpegConfig{
			Path: "",
		},
		Budget: BudgetConfig{
			CapacityBytes: 1500 * 1024,
			WarnFraction:  0.6,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("paths-audio-dir", defaults.Paths.AudioDir, "Directory holding generated WAV clips")
	fs.String("paths-temp-dir", defaults.Paths.TempDir, "Directory for intermediate synthesis artifacts")
	fs.String("paths-output-file", defaults.Paths.OutputFile, "Path of the emitted embedding header")
	fs.Int("audio-sample-rate", defaults.Audio.SampleRate, "Target sample rate in Hz")
	fs.Int("audio-channels", defaults.Audio.Channels, "Target channel count")
	fs.Int("audio-bit-depth", defaults.Audio.BitDepth, "Target bits per sample")
	fs.String("tts-cli-path", defaults.TTS.CLIPath, "Path to the TTS executable")
	fs.String("tts-language", defaults.TTS.Language, "Language passed to the TTS CLI")
	fs.Bool("tts-slow", defaults.TTS.Slow, "Request slow speech from the TTS CLI")
	fs.String("ffmpeg-path", defaults.FFmpeg.Path, "Path to the ffmpeg executable")
	fs.Int64("budget-capacity-bytes", defaults.Budget.CapacityBytes, "Flash capacity budget in bytes")
	fs.Float64("budget-warn-fraction", defaults.Budget.WarnFraction, "Fraction of capacity that triggers a size warning")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("VOICEBANK")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("voicebank")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.audio_dir", c.Paths.AudioDir)
	v.SetDefault("paths.temp_dir", c.Paths.TempDir)
	v.SetDefault("paths.output_file", c.Paths.OutputFile)
	v.SetDefault("audio.sample_rate", c.Audio.SampleRate)
	v.SetDefault("audio.channels", c.Audio.Channels)
	v.SetDefault("audio.bit_depth", c.Audio.BitDepth)
	v.SetDefault("tts.cli_path", c.TTS.CLIPath)
	v.SetDefault("tts.language", c.TTS.Language)
	v.SetDefault("tts.slow", c.TTS.Slow)
	v.SetDefault("ffmpeg.path", c.FFmpeg.Path)
	v.SetDefault("budget.capacity_bytes", c.Budget.CapacityBytes)
	v.SetDefault("budget.warn_fraction", c.Budget.WarnFraction)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("paths.audio_dir", "paths-audio-dir")
	v.RegisterAlias("paths.temp_dir", "paths-temp-dir")
	v.RegisterAlias("paths.output_file", "paths-output-file")
	v.RegisterAlias("audio.sample_rate", "audio-sample-rate")
	v.RegisterAlias("audio.channels", "audio-channels")
	v.RegisterAlias("audio.bit_depth", "audio-bit-depth")
	v.RegisterAlias("tts.cli_path", "tts-cli-path")
	v.RegisterAlias("tts.language", "tts-language")
	v.RegisterAlias("tts.slow", "tts-slow")
	v.RegisterAlias("ffmpeg.path", "ffmpeg-path")
	v.RegisterAlias("budget.capacity_bytes", "budget-capacity-bytes")
	v.RegisterAlias("budget.warn_fraction", "budget-warn-fraction")
	v.RegisterAlias("log_level", "log-level")
}
