package main

import (
	"Project2Txt/internal"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "project2txt",
		Usage:     "Export a project's common programming and project files to a single text file",
		ArgsUsage: "<project_path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "logfile",
				Usage: "Write logs into file instead of stderr",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
				Value: "info",
			},
		},
		Action: func(c *cli.Context) error {
			internal.InitLogger(c.String("logfile"), c.String("log-level"))

			if c.NArg() != 1 {
				_ = cli.ShowAppHelp(c)
				return cli.Exit("project path is required (use '.' for the current directory)", 1)
			}

			root, err := filepath.Abs(c.Args().First())
			if err != nil {
				return cli.Exit(fmt.Sprintf("Invalid project path: %v", err), 1)
			}
			if st, err := os.Stat(root); err != nil || !st.IsDir() {
				logrus.Errorf("Invalid project path: %s", root)
				_ = cli.ShowAppHelp(c)
				return cli.Exit("", 1)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logrus.Infof("Scanning project directory: %s", root)

			opts := internal.ScanOptions{
				Root:       root,
				OutputName: internal.DefaultOutputName,
			}
			if err := opts.Validate(); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			opts.Prepare()

			var stats internal.AppStats
			stats.Start()

			result, err := internal.Scan(ctx, opts, &stats)
			if err != nil {
				if ctx.Err() != nil {
					logrus.Warn("Process interrupted by user")
					return cli.Exit("", 1)
				}
				logrus.WithError(err).Error("Scan failed")
				return cli.Exit("", 1)
			}

			outPath := filepath.Join(root, opts.OutputName)
			if err := internal.WriteStructure(result, outPath); err != nil {
				logrus.WithError(err).Error("Failed to write text file")
				return cli.Exit("", 1)
			}
			logrus.Infof("Text file written to %s", outPath)

			fmt.Printf(
				"\n======= Export finished in %s =======\nFiles included: %d\nBinary files skipped: %d\nUnreadable files: %d\nErrors: %d\n",
				stats.Elapsed(), stats.FilesIncluded.Load(), stats.BinarySkipped.Load(), stats.Unreadable.Load(), stats.Errors.Load(),
			)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
