package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/outreg/internal/draft"
	"github.com/dshills/outreg/internal/fieldmap"
	"github.com/dshills/outreg/internal/patch"
	"github.com/dshills/outreg/internal/redact"
	"github.com/dshills/outreg/internal/register"
	"github.com/dshills/outreg/internal/render"
	"github.com/dshills/outreg/internal/schema"
)

// saveFlags holds the parsed flags for the save command.
type saveFlags struct {
	asDraft     bool
	acknowledge bool
}

func newSaveCmd(run runner) *cobra.Command {
	var flags saveFlags
	cmd := &cobra.Command{
		Use:   "save <draft-file>",
		Short: "Save a draft into the register",
		Long: "Save a draft into the register. Without flags the draft must be complete " +
			"(pending fields excepted). --draft defers every missing field and stores the " +
			"record as Draft. --acknowledge stores it with its missing fields listed.",
		Args: cobra.ExactArgs(1),
		RunE: run(func(a *app, args []string) error {
			return a.runSave(args[0], flags)
		}),
	}
	f := cmd.Flags()
	f.BoolVar(&flags.asDraft, "draft", false, "Save as draft, deferring every missing field")
	f.BoolVar(&flags.acknowledge, "acknowledge", false, "Save with missing fields recorded as incomplete")
	return cmd
}

func (a *app) runSave(path string, flags saveFlags) error {
	if flags.asDraft && flags.acknowledge {
		return codeError(exitInput, "invalid flags: --draft and --acknowledge are mutually exclusive")
	}
	mode := register.SaveComplete
	switch {
	case flags.asDraft:
		mode = register.SaveDraft
	case flags.acknowledge:
		mode = register.SaveAcknowledged
	}

	df, err := draft.Load(path)
	if err != nil {
		return codeError(exitInput, "loading draft: %s", err)
	}
	if err := a.openStore(); err != nil {
		return err
	}

	rec, err := a.svc.Save(context.Background(), *df.Record, mode)
	if err != nil {
		var ie *register.IncompleteError
		if errors.As(err, &ie) {
			for _, l := range ie.Result.Labels {
				fmt.Fprintf(a.stdout, "missing: %s\n", l)
			}
		}
		return registerError("saving record", err)
	}

	// The draft now carries the id and timestamps so the next save updates
	// the same record.
	if err := draft.Write(path, &rec); err != nil {
		return codeError(exitInput, "%s", err)
	}
	fmt.Fprintf(a.stdout, "saved %s (%s)", rec.ReferenceNumber, rec.Status)
	if n := len(rec.IncompleteFields); n > 0 {
		fmt.Fprintf(a.stdout, ", %d incomplete", n)
	}
	if n := len(rec.PendingFields); n > 0 {
		fmt.Fprintf(a.stdout, ", %d pending", n)
	}
	fmt.Fprintln(a.stdout)
	return nil
}

// listFlags holds the parsed flags for the list command.
type listFlags struct {
	status     string
	category   string
	critical   bool
	withIssues bool
	search     string
	format     string
}

func (f listFlags) filter() (register.Filter, error) {
	if f.status != "" && !schema.Status(f.status).IsValid() {
		return register.Filter{}, fmt.Errorf("unknown status %q", f.status)
	}
	if f.category != "" && !schema.Category(f.category).IsValid() {
		return register.Filter{}, fmt.Errorf("unknown category %q", f.category)
	}
	return register.Filter{
		Status:       schema.Status(f.status),
		Category:     schema.Category(f.category),
		CriticalOnly: f.critical,
		WithIssues:   f.withIssues,
		Search:       f.search,
	}, nil
}

func addFilterFlags(cmd *cobra.Command, flags *listFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.status, "status", "", "Only records with this status")
	f.StringVar(&flags.category, "category", "", "Only records of this category")
	f.BoolVar(&flags.critical, "critical", false, "Only critical or important functions")
	f.BoolVar(&flags.withIssues, "with-issues", false, "Only records saved with incomplete fields")
	f.StringVar(&flags.search, "search", "", "Match reference, function, provider or category")
}

func newListCmd(run runner) *cobra.Command {
	flags := listFlags{format: "table"}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the records in the register",
		Args:  cobra.NoArgs,
		RunE: run(func(a *app, _ []string) error {
			return a.runList(flags)
		}),
	}
	addFilterFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.format, "format", "table", "Output format: table or json")
	return cmd
}

func (a *app) runList(flags listFlags) error {
	filter, err := flags.filter()
	if err != nil {
		return codeError(exitInput, "invalid flags: %s", err)
	}
	if flags.format != "table" && flags.format != "json" {
		return codeError(exitInput, "invalid flags: --format must be table or json, got %q", flags.format)
	}
	if err := a.openStore(); err != nil {
		return err
	}
	records, err := a.svc.List(context.Background(), filter)
	if err != nil {
		return registerError("listing records", err)
	}

	if flags.format == "json" {
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return codeError(exitInput, "encoding records: %s", err)
		}
		return a.writeOutput("", out)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REFERENCE\tSTATUS\tCATEGORY\tCRITICAL\tFUNCTION\tPROVIDER\tISSUES")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			r.ReferenceNumber, r.Status, r.Category, fieldmap.Format(r.Criticality.IsCritical),
			r.FunctionDescription.Name, r.ServiceProvider.Name, len(r.IncompleteFields))
	}
	return tw.Flush()
}

func newShowCmd(run runner) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "show <id-or-reference>",
		Short: "Print a stored record, or write it out as a draft for editing",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(a *app, args []string) error {
			return a.runShow(args[0], out)
		}),
	}
	cmd.Flags().StringVar(&out, "out", "", "Write the record to this draft file instead of stdout")
	return cmd
}

func (a *app) runShow(key, out string) error {
	if err := a.openStore(); err != nil {
		return err
	}
	rec, err := a.svc.Get(context.Background(), key)
	if err != nil {
		return registerError("loading record", err)
	}
	if out != "" {
		if err := draft.Write(out, &rec); err != nil {
			return codeError(exitInput, "%s", err)
		}
		return nil
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return codeError(exitInput, "encoding record: %s", err)
	}
	return a.writeOutput("", data)
}

func newDiffCmd(run runner) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "diff <draft-file>",
		Short: "Show what saving a draft would change in the stored record",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(a *app, args []string) error {
			return a.runDiff(args[0], raw)
		}),
	}
	cmd.Flags().BoolVar(&raw, "patch", false, "Print a diff-match-patch text patch instead of field names")
	return cmd
}

func (a *app) runDiff(path string, raw bool) error {
	df, err := draft.Load(path)
	if err != nil {
		return codeError(exitInput, "loading draft: %s", err)
	}
	if err := a.openStore(); err != nil {
		return err
	}
	key := df.Record.ID
	if key == "" {
		key = df.Record.ReferenceNumber
	}
	stored, err := a.svc.Get(context.Background(), key)
	if err != nil {
		return registerError("loading record", err)
	}
	if !raw {
		_, err := fmt.Fprint(a.stdout, patch.Summary(&stored, df.Record))
		return err
	}
	text, err := patch.Diff(&stored, df.Record)
	if err != nil {
		return codeError(exitInput, "diffing: %s", err)
	}
	_, err = fmt.Fprint(a.stdout, text)
	return err
}

func newDeleteCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id-or-reference>",
		Short: "Remove a record from the register",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(a *app, args []string) error {
			if err := a.openStore(); err != nil {
				return err
			}
			if err := a.svc.Delete(context.Background(), args[0]); err != nil {
				return registerError("deleting record", err)
			}
			fmt.Fprintf(a.stdout, "deleted %s\n", args[0])
			return nil
		}),
	}
}

// exportFlags holds the parsed flags for the export command.
type exportFlags struct {
	listFlags
	format string
	out    string
	redact bool
}

func newExportCmd(run runner) *cobra.Command {
	var flags exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the register as json, md, xlsx or pdf",
		Args:  cobra.NoArgs,
		RunE: run(func(a *app, _ []string) error {
			if flags.format == "" {
				flags.format = a.cfg.Export.Format
			}
			if !flags.redact {
				flags.redact = a.cfg.Export.RedactContacts
			}
			return a.runExport(flags)
		}),
	}
	addFilterFlags(cmd, &flags.listFlags)
	f := cmd.Flags()
	f.StringVar(&flags.format, "format", "", "Output format: "+strings.Join(render.Formats, ", ")+" (default from config)")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.BoolVar(&flags.redact, "redact", false, "Mask contact details in the export")
	return cmd
}

func (a *app) runExport(flags exportFlags) error {
	filter, err := flags.filter()
	if err != nil {
		return codeError(exitInput, "invalid flags: %s", err)
	}
	renderer, err := render.NewRenderer(flags.format)
	if err != nil {
		return codeError(exitInput, "invalid format: %s", err)
	}
	if (flags.format == "xlsx" || flags.format == "pdf") && flags.out == "" {
		return codeError(exitInput, "--out is required for %s exports", flags.format)
	}
	if err := a.openStore(); err != nil {
		return err
	}

	records, err := a.svc.List(context.Background(), filter)
	if err != nil {
		return registerError("listing records", err)
	}
	if flags.redact {
		records = redact.Records(records)
	}

	a.logger.Debug("rendering export", zap.String("format", flags.format), zap.Int("records", len(records)))
	out, err := renderer.Render(records)
	if err != nil {
		return codeError(exitInput, "rendering output: %s", err)
	}
	return a.writeOutput(flags.out, out)
}

func newImportCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "import <json-export>",
		Short: "Load records from a json export into the register",
		Long: "Load records from a json export into the register. Records are matched by id; " +
			"missing fields are re-evaluated and recorded as incomplete.",
		Args: cobra.ExactArgs(1),
		RunE: run(func(a *app, args []string) error {
			return a.runImport(args[0])
		}),
	}
}

func (a *app) runImport(path string) error {
	records, err := draft.LoadCollection(path)
	if err != nil {
		return codeError(exitInput, "loading %s: %s", path, err)
	}
	if err := a.openStore(); err != nil {
		return err
	}
	ctx := context.Background()
	for i, r := range records {
		if _, err := a.svc.Save(ctx, r, register.SaveAcknowledged); err != nil {
			return registerError(fmt.Sprintf("importing record %d (%s)", i, r.ReferenceNumber), err)
		}
	}
	fmt.Fprintf(a.stdout, "imported %d record(s)\n", len(records))
	return nil
}

func newNextRefCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "next-ref",
		Short: "Print the reference number the next draft will get",
		Args:  cobra.NoArgs,
		RunE: run(func(a *app, _ []string) error {
			if err := a.openStore(); err != nil {
				return err
			}
			ref, err := a.svc.NextReference(context.Background())
			if err != nil {
				return registerError("reading register", err)
			}
			fmt.Fprintln(a.stdout, ref)
			return nil
		}),
	}
}
