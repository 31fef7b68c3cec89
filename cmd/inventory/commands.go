package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/inventory/internal/app"
	"github.com/vladislavdragonenkov/inventory/internal/domain"
	"github.com/vladislavdragonenkov/inventory/internal/version"
)

// cli хранит состояние одного запуска: конфиг, зависимости и значения флагов.
type cli struct {
	lookup envLookup
	logger *log.Logger
	deps   *app.Dependencies

	file        string
	logLevel    string
	metricsFile string
	threshold   int64
}

func newRootCmd(lookup envLookup, logger *log.Logger) *cobra.Command {
	c := &cli{lookup: lookup, logger: logger}

	root := &cobra.Command{
		Use:   "inventory",
		Short: "Track item stock in a JSON file",
		Long: `Track integer stock quantities for named items.

State lives in a JSON file (default inventory.json). Every mutating command
loads the file, applies the change and saves it back.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.deps.WriteMetrics(c.deps.Config.MetricsFile)
		},
	}

	root.PersistentFlags().StringVarP(&c.file, "file", "f", "", "inventory JSON file (fallback: "+envFile+")")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug|info|warn|error (fallback: "+envLogLevel+")")
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics of the run to this file (fallback: "+envMetricsFile+")")

	lowCmd := &cobra.Command{
		Use:   "low",
		Short: "List items below the low-stock threshold",
		Args:  cobra.NoArgs,
		RunE:  c.runLow,
	}
	lowCmd.Flags().Int64Var(&c.threshold, "threshold", 0, "exclusive low-stock threshold (fallback: "+envLowThreshold+", default 5)")

	root.AddCommand(
		&cobra.Command{
			Use:   "add <item> <qty>",
			Short: "Add stock for an item (negative qty decreases it)",
			Args:  cobra.ExactArgs(2),
			RunE:  c.runAdd,
		},
		&cobra.Command{
			Use:   "remove <item> <qty>",
			Short: "Remove stock for an item; items reaching zero are dropped",
			Args:  cobra.ExactArgs(2),
			RunE:  c.runRemove,
		},
		&cobra.Command{
			Use:   "get <item>",
			Short: "Print the quantity of an item (0 if absent)",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runGet,
		},
		lowCmd,
		&cobra.Command{
			Use:   "report",
			Short: "Print all items and quantities",
			Args:  cobra.NoArgs,
			RunE:  c.runReport,
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Run the sample walkthrough against the inventory file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.RunDemo(c.deps, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return err
			},
		},
	)

	return root
}

// setup собирает конфигурацию (env, затем флаги) и зависимости.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, warnings := readConfigFromEnv(c.lookup)
	for _, w := range warnings {
		c.logger.Warn(w)
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.FilePath = c.file
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = c.metricsFile
	}
	if flags.Changed("threshold") {
		if c.threshold < 0 {
			return fmt.Errorf("threshold must be >= 0, got %d", c.threshold)
		}
		cfg.LowThreshold = c.threshold
	}
	if flags.Changed("log-level") {
		level, err := log.ParseLevel(c.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	c.logger.SetLevel(cfg.LogLevel)

	entry := c.logger.WithField("component", "cli")
	entry.WithFields(version.Fields()).WithField("file", cfg.FilePath).Debug("starting")
	c.deps = app.NewDependencies(cfg, entry)
	return nil
}

// load читает файл; отсутствующий или битый файл — не ошибка (склад пустой).
func (c *cli) load() error {
	if err := c.deps.Store.Load(c.deps.Config.FilePath); err != nil && !domain.IsRecoverableLoad(err) {
		return err
	}
	return nil
}

func (c *cli) runAdd(cmd *cobra.Command, args []string) error {
	if err := c.load(); err != nil {
		return err
	}
	item := domain.ItemID(args[0])
	if err := c.deps.Store.Add(item, args[1], c.deps.OpLog); err != nil {
		return fmt.Errorf("add %q: %w", args[0], err)
	}
	if err := c.deps.Store.Save(c.deps.Config.FilePath); err != nil {
		return err
	}

	entries, err := c.deps.OpLog.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		c.deps.Logger.WithField("entry_id", e.ID).Info(e.String())
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %d\n", item, c.deps.Store.GetQuantity(item))
	return err
}

func (c *cli) runRemove(cmd *cobra.Command, args []string) error {
	if err := c.load(); err != nil {
		return err
	}
	item := domain.ItemID(args[0])
	if err := c.deps.Store.Remove(item, args[1]); err != nil {
		return fmt.Errorf("remove %q: %w", args[0], err)
	}
	if err := c.deps.Store.Save(c.deps.Config.FilePath); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s -> %d\n", item, c.deps.Store.GetQuantity(item))
	return err
}

func (c *cli) runGet(cmd *cobra.Command, args []string) error {
	if err := c.load(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), c.deps.Store.GetQuantity(domain.ItemID(args[0])))
	return err
}

func (c *cli) runLow(cmd *cobra.Command, args []string) error {
	if err := c.load(); err != nil {
		return err
	}
	for _, item := range c.deps.Store.CheckLowItems(c.deps.Config.LowThreshold) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), item); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) runReport(cmd *cobra.Command, args []string) error {
	if err := c.load(); err != nil {
		return err
	}
	return c.deps.Store.PrintReport(cmd.OutOrStdout())
}
