package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/stoik/intake/services/intake/internal/backend"
	"github.com/stoik/intake/services/intake/internal/intake"
)

var rootCmd = &cobra.Command{
	Use:   "intake",
	Short: "Payload intake and review CLI",
	Long:  "Submits payload records (email envelope plus lead metadata), attaches document links and browses the submitted set through the payload API",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("api.url", "", fmt.Sprintf("Payload API base URL (default %s)", backend.DefaultBaseURL))

	viper.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api.url"))
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./services/intake")
	viper.SetEnvPrefix("INTAKE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// newService builds the service stack shared by every command.
func newService() (*intake.Service, *zap.Logger, error) {
	log, err := zap.NewProduction()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return intake.NewService(backend.NewClient(log), log), log, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
