package main

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/mdtoc/internal/convert"
	"github.com/thywilljoshua/mdtoc/internal/logging"
)

const (
	codeUsage       = "USAGE_INVALID"
	codeConfig      = "CONFIG_INVALID"
	usageArgs       = "<input-file> <output-file>"
	defaultLogLevel = "debug"
)

var errUsage = errors.New("expected exactly two arguments")

func usageError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid usage").
		WithTextCode(codeUsage)
}

func configError(msg string) error {
	return goerrors.Wrap(errors.New(msg), goerrors.CategoryValidation, msg).
		WithTextCode(codeConfig)
}

func convertCmd() *cobra.Command {
	var marker string
	var firstMarker bool
	var htmlOut string
	var verbose bool
	var logFormat string

	cmd := &cobra.Command{
		Use:           "mdtoc [flags] " + usageArgs,
		Short:         "Insert a table of contents into a Markdown document",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageError(errUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(marker) == "" {
				return configError("marker must not be empty")
			}

			logger := logging.NoOp()
			if verbose {
				l, err := logging.New("mdtoc", logging.Config{Level: defaultLogLevel, Format: logFormat})
				if err != nil {
					return configError(err.Error())
				}
				logger = l
			}

			conf := convert.Config{
				Marker:      marker,
				FirstMarker: firstMarker,
				HTMLOut:     htmlOut,
				Logger:      logger,
			}

			_, err := convert.Run(cmd.Context(), args[0], args[1], conf)
			return err
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(fmt.Errorf("%w: %v", errUsage, err))
	})
	cmd.Flags().StringVar(&marker, "marker", convert.DefaultMarker, "line prefix replaced by the table of contents")
	cmd.Flags().BoolVar(&firstMarker, "first-marker", false, "insert at the first marker line instead of the last")
	cmd.Flags().StringVar(&htmlOut, "html", "", "also write an HTML rendering of the output to this path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log scan and write details")
	cmd.Flags().StringVar(&logFormat, "log-format", "console", "log format: console|json|pretty")
	return cmd
}
