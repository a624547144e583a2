package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"skroutz/categorytree/internal/config"
	"skroutz/categorytree/internal/container"
	"skroutz/categorytree/internal/domain"
	"skroutz/categorytree/internal/logger"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		id         int64
		depth      int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "categorytree",
		Short: "Draw the category tree of a Skroutz category " + version,
		Long: `Draw the category tree of a Skroutz category as ASCII boxes.

The tree is at most --depth levels deep and holds at most two categories per
level. Without --id or --depth the values are read from standard input.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return errors.Wrap(err, "failed to load configuration")
			}

			logger.Setup(logger.Options{
				Level:   cfg.Log.Level,
				Format:  cfg.Log.Format,
				Verbose: verbose,
			})
			log.Debug("Configuration loaded successfully")

			in := bufio.NewReader(cmd.InOrStdin())
			if !cmd.Flags().Changed("id") {
				if id, err = promptInt(in, cmd.OutOrStdout(), "Enter category ID: "); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("depth") {
				var level int64
				if level, err = promptInt(in, cmd.OutOrStdout(), "Enter depth level: "); err != nil {
					return err
				}
				depth = int(level)
			}

			app, err := container.New(cmd.Context(), cfg)
			if err != nil {
				return errors.Wrap(err, "failed to initialize container")
			}
			defer func() {
				if err := app.Close(); err != nil {
					log.Warnf("Failed to shut down cleanly: %v", err)
				}
			}()

			out, err := app.Run(cmd.Context(), domain.CategoryID(id), depth)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./config.yaml)")
	cmd.Flags().Int64VarP(&id, "id", "i", 0, "Category ID of the tree root")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Maximum depth level of the tree")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func promptInt(in *bufio.Reader, out io.Writer, prompt string) (int64, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return 0, err
	}

	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, errors.Wrap(err, "failed to read input")
	}

	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", strings.TrimSpace(line))
	}
	return n, nil
}
