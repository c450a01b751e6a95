package cmd

import (
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Config keys, shared by flags, config file and MISOLVE_* environment.
const (
	keyTimeLimit   = "time-limit"
	keyMaxSets     = "max-sets"
	keyFindAll     = "find-all"
	keyAllRootSets = "all-root-sets"
	keyCacheDir    = "cache-dir"
	keyJobs        = "jobs"
	keyDump        = "dump"
)

func setDefaults() {
	viper.SetDefault(keyTimeLimit, time.Duration(0))
	viper.SetDefault(keyMaxSets, 1)
	viper.SetDefault(keyFindAll, false)
	viper.SetDefault(keyAllRootSets, false)
	viper.SetDefault(keyCacheDir, "")
	viper.SetDefault(keyJobs, runtime.NumCPU())
	viper.SetDefault(keyDump, false)
}

// solveConfig is the resolved configuration of one solve invocation.
type solveConfig struct {
	TimeLimit   time.Duration
	MaxSets     int
	FindAll     bool
	AllRootSets bool
	CacheDir    string
	Jobs        int
	Dump        bool
}

func loadSolveConfig() solveConfig {
	c := solveConfig{
		TimeLimit:   viper.GetDuration(keyTimeLimit),
		MaxSets:     viper.GetInt(keyMaxSets),
		FindAll:     viper.GetBool(keyFindAll),
		AllRootSets: viper.GetBool(keyAllRootSets),
		CacheDir:    viper.GetString(keyCacheDir),
		Jobs:        viper.GetInt(keyJobs),
		Dump:        viper.GetBool(keyDump),
	}
	if c.Jobs < 1 {
		c.Jobs = 1
	}

	return c
}
