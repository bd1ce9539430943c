package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/engine"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printMonitorTable(monitors []domain.Monitor) error {
	return writeMonitorTable(os.Stdout, monitors)
}

func writeMonitorTable(w io.Writer, monitors []domain.Monitor) error {
	tw := newTabWriter(w)
	tw.writef("ID\tKIND\tURL\tTRANSPORT\tCURRENCY\tENABLED\n")
	for i := range monitors {
		target := monitors[i].URL
		if monitors[i].Kind == domain.KindSearch {
			target += " (" + monitors[i].Query + ")"
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%v\n",
			monitors[i].ID,
			monitors[i].Kind,
			truncate(target, 60),
			monitors[i].Transport,
			monitors[i].Currency,
			monitors[i].Enabled,
		)
	}
	return tw.finish()
}

func printMonitorDetail(m *domain.Monitor) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", m.ID)
	tw.writef("Name:\t%s\n", m.Name)
	tw.writef("Kind:\t%s\n", m.Kind)
	tw.writef("URL:\t%s\n", m.URL)
	if m.Query != "" {
		tw.writef("Query:\t%s\n", m.Query)
	}
	tw.writef("Currency:\t%s\n", m.Currency)
	tw.writef("Transport:\t%s\n", m.Transport)
	tw.writef("Channel:\t%s\n", m.Channel)
	tw.writef("Enabled:\t%v\n", m.Enabled)
	tw.writef("Created:\t%s\n", m.CreatedAt.Format(timeLayout))
	tw.writef("Updated:\t%s\n", m.UpdatedAt.Format(timeLayout))
	return tw.finish()
}

func printVariantsTable(variants []domain.PersistedVariant) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("PRODUCT\tVARIANT\tTITLE\tPRICE\tAVAILABLE\tUPDATED\n")
	for i := range variants {
		v := &variants[i]
		tw.writef("%s\t%s\t%s\t%s\t%v\t%s\n",
			v.ProductID,
			v.VariantID,
			truncate(v.Title, 40),
			v.Price,
			v.Available,
			v.UpdatedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printResultsTable(results []engine.MonitorResult) error {
	return writeResultsTable(os.Stdout, results)
}

func writeResultsTable(w io.Writer, results []engine.MonitorResult) error {
	tw := newTabWriter(w)
	tw.writef("MONITOR\tKIND\tPRODUCTS\tNEW\tUPDATED\tFAILED\tNOTIFIED\tPRUNED\tERROR\n")
	for i := range results {
		r := &results[i]
		errText := "-"
		switch {
		case r.Error != "":
			errText = truncate(r.Error, 60)
		case r.Skipped:
			errText = "skipped: check already running"
		}
		tw.writef("%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			r.MonitorID,
			r.Kind,
			r.Products,
			r.New,
			r.Updated,
			r.Failed,
			r.Notified,
			r.Pruned,
			errText,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
