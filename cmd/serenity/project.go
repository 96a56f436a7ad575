package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Dan9191/serenity-service/internal/export"
	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/service"
	"github.com/Dan9191/serenity-service/internal/utils"
	"github.com/spf13/cobra"
)

func projectCmd() *cobra.Command {
	var (
		file     string
		base     float64
		currency string
		horizon  int
		anchor   string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a budget over the coming days",
		Long: `Read a budget (base, currency, horizon_days, entries, scenario) as JSON and
print its projection. Flags override the values found in the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(file, cfg.DefaultCurrency, cfg.DefaultHorizonDays)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base") {
				req.Base = base
			}
			if cmd.Flags().Changed("currency") {
				req.Currency = currency
			}
			if cmd.Flags().Changed("horizon") {
				req.HorizonDays = horizon
			}

			svc := service.NewService(logger, service.WithLocation(cfg.Location()))
			day := svc.Anchor()
			if anchor != "" {
				day, err = parseAnchor(anchor)
				if err != nil {
					return err
				}
			}

			res, err := svc.ProjectAt(day, req)
			if err != nil {
				return err
			}
			return writeProjection(cmd.OutOrStdout(), res, format)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "budget JSON file, - for stdin")
	cmd.Flags().Float64Var(&base, "base", 0, "starting balance")
	cmd.Flags().StringVar(&currency, "currency", "", "currency symbol")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "horizon in days (30-365)")
	cmd.Flags().StringVar(&anchor, "anchor", "", "projection start date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVarP(&format, "format", "o", "text", "output format (json, xml, text)")

	return cmd
}

// readRequest decodes a projection request, pre-filling the defaults the
// document may leave out.
func readRequest(file, currency string, horizon int) (models.ProjectionRequest, error) {
	req := models.ProjectionRequest{Currency: currency, HorizonDays: horizon}

	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return req, fmt.Errorf("failed to open budget: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode budget: %w", err)
	}
	if req.Currency == "" {
		req.Currency = currency
	}
	return req, nil
}

func parseAnchor(s string) (time.Time, error) {
	t, err := time.Parse(utils.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid anchor %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

func writeProjection(w io.Writer, res *models.ProjectionResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "xml":
		body, err := export.ProjectionXML(res)
		if err != nil {
			return err
		}
		_, err = w.Write(body)
		return err
	case "text":
		_, err := fmt.Fprintln(w, renderProjection(res))
		return err
	default:
		return fmt.Errorf("unknown format %q: expected json, xml or text", format)
	}
}
