package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/outreg/internal/draft"
	"github.com/dshills/outreg/internal/fieldmap"
	"github.com/dshills/outreg/internal/fieldpath"
	"github.com/dshills/outreg/internal/normalize"
	"github.com/dshills/outreg/internal/pending"
	"github.com/dshills/outreg/internal/render"
	"github.com/dshills/outreg/internal/review"
	"github.com/dshills/outreg/internal/schema"
)

// newFlags holds the parsed flags for the new command.
type newFlags struct {
	category string
	critical bool
	force    bool
}

func newNewCmd(run runner) *cobra.Command {
	var flags newFlags
	cmd := &cobra.Command{
		Use:   "new <draft-file>",
		Short: "Start a draft with the next reference number",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(a *app, args []string) error {
			return a.runNew(args[0], flags)
		}),
	}
	f := cmd.Flags()
	f.StringVar(&flags.category, "category", "", "Category of the outsourced function")
	f.BoolVar(&flags.critical, "critical", false, "Flag the function as critical or important")
	f.BoolVar(&flags.force, "force", false, "Overwrite an existing draft file")
	return cmd
}

func (a *app) runNew(path string, flags newFlags) error {
	if !flags.force {
		if _, err := os.Stat(path); err == nil {
			return codeError(exitInput, "%s already exists (use --force to overwrite)", path)
		}
	}
	if flags.category != "" && !schema.Category(flags.category).IsValid() {
		return codeError(exitInput, "unknown category %q", flags.category)
	}
	if err := a.openStore(); err != nil {
		return err
	}

	d, err := a.svc.NewDraft(context.Background())
	if err != nil {
		return registerError("creating draft", err)
	}
	if flags.category != "" {
		d = normalize.SetCategory(d, schema.Category(flags.category))
	}
	if flags.critical {
		d = normalize.SetCritical(d, true)
	}

	if err := draft.Write(path, &d); err != nil {
		return codeError(exitInput, "%s", err)
	}
	a.logger.Info("draft created", zap.String("path", path), zap.String("reference", d.ReferenceNumber))
	fmt.Fprintf(a.stdout, "%s %s\n", d.ReferenceNumber, path)
	return nil
}

// checkFlags holds the parsed flags for the check command.
type checkFlags struct {
	format string
	out    string
	groups []string
	failOn string
}

func newCheckCmd(run runner) *cobra.Command {
	flags := checkFlags{format: "json"}
	cmd := &cobra.Command{
		Use:   "check <draft-file>",
		Short: "Report the mandatory fields a draft is missing",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(a *app, args []string) error {
			return a.runCheck(args[0], flags)
		}),
	}
	f := cmd.Flags()
	f.StringVar(&flags.format, "format", "json", "Output format: json or md")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.StringSliceVar(&flags.groups, "group", nil, "Only list missing fields of these groups: mandatory, cloud, critical")
	f.StringVar(&flags.failOn, "fail-on", "", "Exit 2 if verdict >= this level (COMPLETE_WITH_PENDING or INCOMPLETE)")
	return cmd
}

func (a *app) runCheck(path string, flags checkFlags) error {
	if err := validateCheckFlags(flags); err != nil {
		return codeError(exitInput, "invalid flags: %s", err)
	}

	a.logger.Debug("loading draft", zap.String("path", path))
	df, err := draft.Load(path)
	if err != nil {
		return codeError(exitInput, "loading draft: %s", err)
	}
	rec := df.Record

	res := a.svc.Check(*rec, rec.PendingFields)

	var groups []schema.Group
	for _, s := range flags.groups {
		g, _ := review.ParseGroup(s)
		groups = append(groups, g)
	}

	// Summary counts always reflect every missing field, before --group filtering.
	report := &schema.CheckReport{
		Tool:            "outreg",
		Version:         version,
		File:            path,
		FileHash:        df.Hash,
		ReferenceNumber: rec.ReferenceNumber,
		Summary:         review.Summarize(res, rec.PendingFields),
		Missing:         review.FilterByGroup(res.Missing, groups...),
		Pending:         pending.New(rec.PendingFields).Paths(),
	}

	a.logger.Debug("rendering check report", zap.String("format", flags.format))
	renderer, err := render.NewReportRenderer(flags.format)
	if err != nil {
		return codeError(exitInput, "invalid format: %s", err)
	}
	out, err := renderer.Render(report)
	if err != nil {
		return codeError(exitInput, "rendering output: %s", err)
	}
	if err := a.writeOutput(flags.out, out); err != nil {
		return err
	}

	if flags.failOn != "" {
		threshold := schema.Verdict(flags.failOn)
		if schema.VerdictOrdinal(report.Summary.Verdict) >= schema.VerdictOrdinal(threshold) {
			return codeError(exitIncomplete, "verdict %s meets or exceeds --fail-on threshold %s", report.Summary.Verdict, threshold)
		}
	}
	return nil
}

// validateCheckFlags returns an error if any flag value is invalid.
func validateCheckFlags(flags checkFlags) error {
	switch flags.format {
	case "json", "md":
	default:
		return fmt.Errorf("--format must be json or md, got %q", flags.format)
	}
	if flags.failOn != "" {
		switch schema.Verdict(flags.failOn) {
		case schema.VerdictDeferred, schema.VerdictIncomplete:
		default:
			return fmt.Errorf("--fail-on must be COMPLETE_WITH_PENDING or INCOMPLETE, got %q", flags.failOn)
		}
	}
	for _, g := range flags.groups {
		if _, ok := review.ParseGroup(g); !ok {
			return fmt.Errorf("--group must be mandatory, cloud or critical, got %q", g)
		}
	}
	return nil
}

func newPendingCmd(run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Defer fields of a draft to complete later",
	}

	var allowUnknown bool
	toggle := &cobra.Command{
		Use:   "toggle <draft-file> <field-path>...",
		Short: "Mark or unmark fields as pending",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(a *app, args []string) error {
			return a.runPendingToggle(args[0], args[1:], allowUnknown)
		}),
	}
	toggle.Flags().BoolVar(&allowUnknown, "allow-unknown", false, "Accept paths that do not name a field")

	list := &cobra.Command{
		Use:   "list <draft-file>",
		Short: "List the pending fields of a draft",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(a *app, args []string) error {
			return a.runPendingList(args[0])
		}),
	}

	cmd.AddCommand(toggle, list)
	return cmd
}

func (a *app) runPendingToggle(path string, paths []string, allowUnknown bool) error {
	df, err := draft.Load(path)
	if err != nil {
		return codeError(exitInput, "loading draft: %s", err)
	}
	rec := df.Record

	set := pending.New(rec.PendingFields)
	for _, p := range paths {
		var on bool
		if allowUnknown {
			on = set.Toggle(p)
		} else {
			on, err = set.ToggleKnown(p)
			if errors.Is(err, pending.ErrUnknownPath) {
				return codeError(exitInput, "%s (use --allow-unknown to accept it)", err)
			}
		}
		mark := "-"
		if on {
			mark = "+"
		}
		fmt.Fprintf(a.stdout, "%s %s\n", mark, p)
	}

	rec.PendingFields = nil
	if set.Len() > 0 {
		rec.PendingFields = set.Paths()
	}
	if err := draft.Write(path, rec); err != nil {
		return codeError(exitInput, "%s", err)
	}
	a.logger.Debug("pending updated", zap.String("path", path), zap.Int("pending", set.Len()))
	return nil
}

func (a *app) runPendingList(path string) error {
	df, err := draft.Load(path)
	if err != nil {
		return codeError(exitInput, "loading draft: %s", err)
	}
	set := pending.New(df.Record.PendingFields)
	unknown := make(map[string]bool)
	for _, p := range set.Unknown() {
		unknown[p] = true
	}
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, p := range set.Paths() {
		label := fieldmap.LabelFor(p)
		if unknown[p] {
			label = "(unknown field)"
		}
		fmt.Fprintf(tw, "%s\t%s\n", p, label)
	}
	return tw.Flush()
}

func newFieldsCmd(run runner) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the field paths of a record with their labels and citations",
		Args:  cobra.NoArgs,
		RunE: run(func(a *app, _ []string) error {
			return a.runFields(group)
		}),
	}
	cmd.Flags().StringVar(&group, "group", "", "Only list fields of this group: mandatory, cloud, critical")
	return cmd
}

func (a *app) runFields(group string) error {
	fields := fieldmap.All()
	if group != "" {
		g, ok := review.ParseGroup(group)
		if !ok {
			return codeError(exitInput, "--group must be mandatory, cloud or critical, got %q", group)
		}
		fields = fieldmap.ByGroup(g)
	}
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tCITATION\tTYPE\tLABEL")
	for _, f := range fields {
		label := f.Label
		if f.Optional {
			label += " (optional)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Path, f.Citation, f.Type, label)
		if f.Path == fieldmap.SubContractorsPath {
			for _, ef := range fieldmap.SubContractorFields {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					fieldpath.Join(f.Path, "<n>", ef.Name), ef.Citation, fieldmap.TypeText, ef.Label)
			}
		}
	}
	return tw.Flush()
}
