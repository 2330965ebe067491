// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "catfetch"

var longRootCmdDescription = `catfetch fetches metadata catalog URLs with a bounded number of requests
in flight, optionally logging in with HTTP Digest authentication first.

Every flag can also be set through the environment, for example
CATFETCH_PASSWORD or CATFETCH_MAX_ACTIVE.
`

// NewRootCmd returns the catfetch command. Its configuration is read
// from flags and from environment variables through v.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "catfetch [flags] URL...",
		Short:         "Fetch metadata catalog URLs with bounded concurrency.",
		Long:          longRootCmdDescription,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fetchOpts{
				authURL:   v.GetString("auth-url"),
				user:      v.GetString("user"),
				password:  v.GetString("password"),
				maxActive: v.GetInt("max-active"),
				format:    v.GetString("format"),
				timeout:   v.GetDuration("timeout"),
			}
			logger := newLogger(cmd, v.GetBool("debug"))
			return fetch(cmd.Context(), opts, args, cmd.OutOrStdout(), logger)
		},
	}

	flags := rootCmd.Flags()
	flags.String("auth-url", "", "digest authentication endpoint to log into before fetching")
	flags.String("user", "", "user name for digest authentication")
	flags.String("password", "", "password for digest authentication")
	flags.Int("max-active", 4, "maximum number of requests in flight")
	flags.String("format", "raw", "response format, raw or json")
	flags.Duration("timeout", 30*time.Second, "timeout of each request")
	flags.BoolP("debug", "d", false, "turn on debug logging")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	return rootCmd
}

func newLogger(cmd *cobra.Command, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// Execute runs the catfetch command. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCmd(viper.New()).ExecuteContext(ctx); err != nil {
		logrus.Errorf("catfetch: %v", err)
		stop()
		os.Exit(1)
	}
}
