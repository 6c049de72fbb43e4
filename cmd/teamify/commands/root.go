package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dyluth/teamify/internal/config"
	"github.com/spf13/cobra"
)

// defaultRedisURL is used when neither --redis-url nor REDIS_URL is set.
const defaultRedisURL = "redis://localhost:6379/0"

var (
	rosterFile string
	redisURL   string
	namespace  string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "teamify",
	Short: "Teamify - split a group into balanced teams",
	Long: `Teamify splits a group of people into two balanced teams while respecting
who must play together (pairs) and who must not (avoids).

The group is described in a roster.yml file. Teamify lists every valid split,
picks one at random, and can keep a history of picks in Redis.`,
	// Prevent silent success when unknown flags are passed to root command
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd.ErrOrStderr())
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rosterFile, "file", "f", config.DefaultFileName, "Roster file")
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis-url", "", "Redis URL for stored rosters and draws (default $REDIS_URL or "+defaultRedisURL+")")
	rootCmd.PersistentFlags().StringVar(&namespace, "namespace", "default", "Key namespace in Redis")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic logs to stderr")
}

// configureLogging routes the standard logger to w when --verbose is set and
// discards it otherwise
func configureLogging(w io.Writer) {
	if verbose {
		log.SetOutput(w)
		log.SetFlags(log.Ltime | log.Lmicroseconds)
		return
	}
	log.SetOutput(io.Discard)
}

// resolveRedisURL applies flag, then environment, then default
func resolveRedisURL() string {
	if redisURL != "" {
		return redisURL
	}
	if env := os.Getenv("REDIS_URL"); env != "" {
		return env
	}
	return defaultRedisURL
}
