package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/atikulmunna/agribot/internal/config"
	"github.com/atikulmunna/agribot/internal/logging"
	"github.com/atikulmunna/agribot/internal/session"
)

var (
	cfgFile string
	envFile string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "agribot",
	Short: "AgriBot control panel",
	Long: `AgriBot is a control panel for a simulated agricultural robot.
It streams soil moisture, obstacle distance and water tank telemetry,
keeps a live system log and accepts manual drive and tool commands,
in English, Hindi, Marathi and Malayalam.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.agribot.yaml)")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.Int("port", 8080, "HTTP port for the web dashboard")
	flags.String("locale", "en", "display language: en, hi, mr, ml")
	flags.String("log-level", "info", "process log level: debug, info, warn, error")
	flags.Bool("dev", false, "human-readable development logging")

	cobra.CheckErr(viper.BindPFlag(config.KeyPort, flags.Lookup("port")))
	cobra.CheckErr(viper.BindPFlag(config.KeyLocale, flags.Lookup("locale")))
	cobra.CheckErr(viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag(config.KeyDev, flags.Lookup("dev")))
}

func initConfig() {
	cobra.CheckErr(config.LoadDotEnv(envFile))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".agribot")
		viper.SetConfigType("yaml")
	}

	config.SetDefaults(viper.GetViper())
	config.BindEnv(viper.GetViper())
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			cobra.CheckErr(fmt.Errorf("read config: %w", err))
		}
	}
}

// setup resolves the config, applies mutate and builds the process logger.
func setup(mutate func(*config.Config)) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return cfg, nil, err
	}
	if mutate != nil {
		mutate(&cfg)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

// newSession builds a dashboard session from the resolved config. The
// returned cleanup closes the session and flushes the logger.
func newSession(mutate func(*config.Config)) (*session.Session, func(), error) {
	cfg, logger, err := setup(mutate)
	if err != nil {
		return nil, nil, err
	}
	sess, err := session.New(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("start session: %w", err)
	}
	return sess, func() {
		sess.Close()
		_ = logger.Sync()
	}, nil
}
