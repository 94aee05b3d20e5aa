package cmd

import (
	"bytes"
	"fuelprice/config"
	"fuelprice/data"
	"fuelprice/price"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/spf13/viper"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "fuelprice",
	Short: "Fuel Price Server",
	Long: `Fuel Price Server serves the current fuel price of an Indian city as JSON,
	> scraped from the goodreturns.in price pages`,
	Run: run,
}

func Execute(v string) {
	rootCmd.Version = v
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initCfg)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")

	viper.SetDefault("general.log_level", int(log.InfoLevel))

	viper.SetDefault("server.bind", ":8080")
	viper.SetDefault("server.mode", "release")

	viper.SetDefault("upstream.base_url", price.DefaultBaseURL)
	viper.SetDefault("upstream.user_agent", price.DefaultUserAgent)
	viper.SetDefault("upstream.timeout", 0)

	viper.SetDefault("defaults.fuel", data.DefaultFuel)
	viper.SetDefault("defaults.city", data.DefaultCity)

	rootCmd.AddCommand(fetchCmd)
}

func initCfg() {
	if cfgFile != "" {
		b, err := os.ReadFile(cfgFile)
		if err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
		viper.SetConfigType("toml")
		if err := viper.ReadConfig(bytes.NewBuffer(b)); err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			switch err.(type) {
			case viper.ConfigFileNotFoundError:
				log.Warning("No config file found, use default.")
			default:
				log.WithError(err).Fatal("read config file error")
			}
		}
	}

	viperHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)

	if err := viper.Unmarshal(&config.C, viper.DecodeHook(viperHooks)); err != nil {
		log.WithError(err).Fatal("unmarshal config error")
	}

	if err := validateConfig(config.C); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	log.SetLevel(log.Level(uint8(config.C.General.LogLevel)))
}

func validateConfig(c config.Config) error {
	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return errors.Errorf("server.mode must be one of %s, %s or %s, got %q",
			gin.DebugMode, gin.ReleaseMode, gin.TestMode, c.Server.Mode)
	}
	return nil
}

func newFetcher(c config.Config) *price.Fetcher {
	return price.NewFetcher(price.Options{
		BaseURL:   c.Upstream.BaseURL,
		UserAgent: c.Upstream.UserAgent,
		Timeout:   c.Upstream.Timeout,
	})
}

func defaultQuery(c config.Config) data.Query {
	return data.Query{
		Fuel: c.Defaults.Fuel,
		City: c.Defaults.City,
	}
}
