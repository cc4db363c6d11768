package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xw1nchester/nailsite/internal/app"
	"github.com/xw1nchester/nailsite/internal/page"
)

type pageBuilder interface {
	Build(ctx context.Context, req page.Request) (*page.View, error)
}

type renderOptions struct {
	siteID     string
	templateID string
	output     string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one salon site or template preview as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			cfg, log, err := flags.load()
			if err != nil {
				return err
			}
			defer log.Sync()

			application, err := app.NewApp(log, *cfg)
			if err != nil {
				return err
			}

			return runRender(cmd, application.Host, opts)
		},
	}

	cmd.Flags().StringVar(&opts.siteID, "site", "", "sample url of the salon to render")
	cmd.Flags().StringVar(&opts.templateID, "template", "", "id of the template to preview")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write HTML to this file instead of stdout")

	return cmd
}

func (o *renderOptions) validate() error {
	site := strings.TrimSpace(o.siteID)
	template := strings.TrimSpace(o.templateID)

	if (site == "") == (template == "") {
		return errors.New("exactly one of --site or --template is required")
	}

	return nil
}

func runRender(cmd *cobra.Command, host pageBuilder, opts *renderOptions) error {
	req := page.Request{SiteID: opts.siteID, TemplateID: opts.templateID}
	if opts.siteID != "" {
		req.Path = page.SitePath(opts.siteID)
	} else {
		req.Path = "/preview/template/" + opts.templateID
	}

	view, err := host.Build(cmd.Context(), req)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := page.Render(out, view); err != nil {
		return err
	}

	if view.State != page.Rendered {
		return fmt.Errorf("page ended in state %s: %s", view.State, view.Message)
	}

	return nil
}
