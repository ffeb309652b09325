package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"iamcatalog/internal/app"
	"iamcatalog/internal/config"
	"iamcatalog/internal/logging"
)

// cli carries state shared by all subcommands
type cli struct {
	debug      bool
	configPath string
	metrics    bool
	jsonOut    bool

	viper   *viper.Viper
	clients app.Clients
	app     *app.App
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Load .env file if present
	_ = godotenv.Load()

	c := &cli{viper: viper.New(), clients: app.DefaultClients()}
	rootCmd := newRootCmd(ctx, c)

	err := rootCmd.ExecuteContext(ctx)
	if c.metrics {
		if snapshot, snapErr := logging.GetMetrics().Snapshot(); snapErr == nil {
			fmt.Fprintln(os.Stderr, string(snapshot))
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(ctx context.Context, c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "iamcatalog",
		Short: "IAM action catalog and policy statement builder",
		Long:  "Browse the IAM actions and resource types of AWS services, build least-privilege policy statements from them, and explain, simulate or publish policy documents.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(ctx, cmd)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&c.debug, "debug", false, "Enable debug logging (verbose output)")
	flags.StringVar(&c.configPath, "config", "", "Path to a YAML config file")
	flags.BoolVar(&c.metrics, "metrics", false, "Print API call and operation metrics to stderr on exit")
	flags.BoolVar(&c.jsonOut, "json", false, "Print JSON instead of tables")
	flags.StringP("output", "o", "", "Where rendered documents go: -, a file, s3://bucket/key, ssm://name or iam://[path/]PolicyName")
	flags.String("partition", "", "ARN partition (default aws)")
	flags.String("region", "", "ARN region, * for any (default *)")
	flags.String("account", "", "ARN account, * for any or auto to ask STS (default *)")
	flags.String("catalog-dir", "", "Directory of YAML service tables merged over the built-in catalog")
	flags.String("log-format", "", "Log line format: json or plain (default json)")

	c.viper.BindPFlag("output", flags.Lookup("output"))
	c.viper.BindPFlag("partition", flags.Lookup("partition"))
	c.viper.BindPFlag("region", flags.Lookup("region"))
	c.viper.BindPFlag("account", flags.Lookup("account"))
	c.viper.BindPFlag("catalog_dir", flags.Lookup("catalog-dir"))
	c.viper.BindPFlag("log_format", flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newServicesCmd(c),
		newActionsCmd(c),
		newResourcesCmd(c),
		newStatementCmd(c),
		newExplainCmd(c),
		newSimulateCmd(c),
		newPublishCmd(c),
	)
	return rootCmd
}

func (c *cli) init(ctx context.Context, cmd *cobra.Command) error {
	settings, err := config.LoadWith(c.viper, c.configPath)
	if err != nil {
		return err
	}

	level, err := logging.ParseLogLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	if c.debug {
		level = logging.LogLevelDebug
	}
	logging.SetLogLevel(level)
	logging.SetPlain(settings.LogFormat == config.LogFormatPlain)
	logging.LogDebug("Debug logging enabled", map[string]interface{}{"partition": settings.Partition, "region": settings.Region})

	a, err := app.New(ctx, settings, c.clients)
	if err != nil {
		return fmt.Errorf("error initializing iamcatalog: %w", err)
	}
	a.Stdout = cmd.OutOrStdout()
	a.Stdin = cmd.InOrStdin()
	c.app = a
	return nil
}
