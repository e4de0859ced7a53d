package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/shorts-insights-api/internal/bootstrap"
	"github.com/vfg2006/shorts-insights-api/internal/config"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/shorts-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/shorts-insights-api/pkg/log"
	"github.com/vfg2006/shorts-insights-api/pkg/utils"
)

var version = "dev"

// deps permite trocar config e relatório nos testes
type deps struct {
	loadConfig  func() (*config.Config, error)
	newReporter func(ctx context.Context, cfg *config.Config) (insighting.ShortsReporter, error)
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.NewConfig,
		newReporter: func(ctx context.Context, cfg *config.Config) (insighting.ShortsReporter, error) {
			return bootstrap.NewReporter(ctx, cfg)
		},
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(defaultDeps())
}

func newRootCmdWith(d deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "shortsreport",
		Short:         "YouTube Shorts performance reports",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newReportCmd(d),
		newTokenCmd(d),
		newVersionCmd(),
	)

	return rootCmd
}

func newReportCmd(d deps) *cobra.Command {
	var (
		days    int
		limit   int
		videoID string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the Shorts report and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := d.loadConfig()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			log.Setup(cfg.App.LogLevel)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			reporter, err := d.newReporter(ctx, cfg)
			if err != nil {
				return err
			}

			filters := domain.ReportFilters{
				Days:             days,
				Limit:            limit,
				RequestedVideoID: videoID,
			}

			report, err := reporter.BuildReport(ctx, filters)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().IntVar(&days, "days", domain.DefaultReportDays, "report window in days (1-365)")
	cmd.Flags().IntVar(&limit, "limit", domain.DefaultReportLimit, "number of shorts in the shortlist (1-24)")
	cmd.Flags().StringVar(&videoID, "video-id", domain.AllVideos, "video to focus on")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout for the YouTube calls")

	return cmd
}

func newTokenCmd(d deps) *cobra.Command {
	var (
		operator string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an operator JWT for the dashboard API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := d.loadConfig()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			token, err := authenticating.NewService(cfg).GenerateToken(operator, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "operator name stored in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", authenticating.DefaultTokenTTL, "token lifetime")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func printJSON(w io.Writer, value any) error {
	pretty, err := utils.PrettyJson(value)
	if err != nil {
		return errors.Wrap(err, "failed to encode report")
	}

	_, err = fmt.Fprintln(w, pretty)
	return err
}
