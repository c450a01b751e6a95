package cmd

import (
	"flag"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ipc2023-classical/planner17-sub002/mis"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitCritical = 32 // search engine invariant broken
)

var rootCmd = &cobra.Command{
	Use:   "misolve",
	Short: "Maximum independent sets by recursive graph decomposition",
	Long: `misolve computes maximum independent sets of undirected graphs given in
DIMACS edge format. Graphs are decomposed into components, reduced by
vertex domination and degree-3 folding, and branched on a maximum-degree
vertex with its mirrors. Identical subgraphs met on different branches are
solved once.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	defer klog.Flush()
	err := rootCmd.Execute()
	if err != nil {
		klog.Errorf("misolve: %v", err)
	}

	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, mis.ErrInconsistentFold), errors.Is(err, mis.ErrInternal):
		return ExitCritical
	default:
		return ExitFailure
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (yaml, toml or json)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	// klog flags (-v, -logtostderr, ...) live on the root command.
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	rootCmd.PersistentFlags().AddGoFlagSet(fset)
}

func initConfig() {
	setDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("misolve")
		viper.AddConfigPath("$HOME/.config/misolve")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MISOLVE")
	// MISOLVE_TIME_LIMIT for time-limit
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		klog.V(1).Infof("misolve: using config %s", viper.ConfigFileUsed())
	}
}
