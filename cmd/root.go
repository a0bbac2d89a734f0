package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"keptn/promotion-formatter/pkg/config"
	"keptn/promotion-formatter/pkg/formatter"
	"keptn/promotion-formatter/pkg/handler"
	"keptn/promotion-formatter/pkg/input"
	"keptn/promotion-formatter/pkg/model"
)

type rootOptions struct {
	output      string
	templates   []string
	interactive bool
	event       string
	strict      bool
	verbose     bool
}

// NewRootCommand builds the promotion-formatter command reading prompts from
// stdin, writing the document to stdout and logs and prompts to stderr.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "promotion-formatter [instance source destination promotion_type targets]",
		Short: "Render a promotion batch through the configured line templates",
		Long: `promotion-formatter renders a promotion batch (an instance, a source and
destination environment, a promotion type and a comma separated list of targets)
into text lines using the line templates from templates.yaml.

Targets are rendered three per line. Supported promotion types are images,
secrets, config-maps and templates (singular, plural and underscore variants are
accepted in any case).

Run without arguments to be prompted for every field.`,
		Example: `  promotion-formatter prod1 dev stage images "nginx:1.2,redis:7"
  promotion-formatter --event promotion.triggered.json -o promotion.md
  promotion-formatter -i`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args) == len(input.BatchArgs) {
				return nil
			}
			return fmt.Errorf("accepts 0 or %d arg(s) %v, received %d", len(input.BatchArgs), input.BatchArgs, len(args))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(opts, args, stdin, stdout, stderr)
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to this file instead of stdout (overwrites)")
	cmd.Flags().StringArrayVarP(&opts.templates, "templates", "t", nil, "template file merged over the defaults, may be repeated")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for the batch fields")
	cmd.Flags().StringVar(&opts.event, "event", "", "read the batch from a CloudEvent JSON file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when targets do not match the promotion type")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runRoot(opts *rootOptions, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	env, err := config.ReadEnv()
	if err != nil {
		return err
	}
	if err := config.ConfigureLogger(stderr, env.LogLevel, opts.verbose); err != nil {
		return err
	}
	templates, err := config.LoadTemplates(config.DefaultTemplatesPath(), append(env.Templates, opts.templates...)...)
	if err != nil {
		return err
	}

	var batch model.PromotionBatch
	var confirmed bool
	switch {
	case opts.event != "":
		if len(args) > 0 || opts.interactive {
			return errors.New("--event cannot be combined with arguments or --interactive")
		}
		batch, err = input.FromEventFile(opts.event)
	case len(args) > 0:
		if opts.interactive {
			return errors.New("--interactive cannot be combined with arguments")
		}
		batch, err = input.FromArgs(args)
	default:
		batch, confirmed, err = input.Prompt(stdin, stderr)
	}
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = env.Output
	}
	logger.WithField("func", "runRoot").Debugf("using %d template files, output %q", len(env.Templates)+len(opts.templates), outputPath)
	h := handler.NewPromotionBatchHandler(formatter.NewFormatter(templates, env.GroupSize), stdout, outputPath, opts.strict)
	return h.Handle(batch, confirmed)
}

func Execute() {
	if err := NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
