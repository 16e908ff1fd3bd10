package shared

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	"github.com/lord007tn/BlogForge-sub000/internal/schema"
)

// SlugArgs validates the single positional slug of a record command.
func SlugArgs(collection string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.MissingSlugArgument(collection)
		}
		if len(args) > 1 {
			return errors.NewArgumentErrorWithUsage("expected exactly one slug", cmd.UseLine())
		}
		return nil
	}
}

// RelPath renders path relative to root for display. Paths outside the
// root stay absolute.
func RelPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// CreateDocument normalizes, validates, and writes a new record.
// Validation failures print the error block and nothing touches the disk.
func CreateDocument(rt *Runtime, doc *content.Document) error {
	locale, _ := doc.Fields["locale"].(string)
	NormalizeMultilingual(doc.Fields, rt.Config, doc.Collection, locale)

	if rt.Store.Exists(doc.Collection, doc.Slug) {
		return errors.SlugExists(doc.Collection, doc.Slug)
	}
	cs, err := rt.SchemaFor(doc.Collection)
	if err != nil {
		return err
	}
	if res := cs.Validate(doc.Fields); !res.Valid {
		PrintValidationResult(rt.Printer, doc.Slug, res)
		return NewExitError(ExitValidationFailed)
	}
	if err := rt.Store.Create(doc); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	rt.Printer.Successf("created %s", RelPath(rt.Root, doc.Path))
	return nil
}

// RunEdit applies --set pairs onto an existing record, re-validates, and
// rewrites the file preserving body and key order.
func RunEdit(cmd *cobra.Command, collection, slug string, sets []string) error {
	rt, err := NewRuntime(cmd)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		return errors.NewArgumentErrorWithUsage(
			"nothing to change",
			fmt.Sprintf("blogforge %s edit <slug> --set key=value", collection),
			"pass at least one --set key=value pair",
		)
	}

	doc, err := rt.Store.Load(collection, slug)
	if err != nil {
		if stderrors.Is(err, content.ErrNotFound) {
			return errors.SlugNotFound(collection, slug)
		}
		return errors.Wrap(err, errors.Runtime)
	}

	values, err := ParseSetFlags(sets)
	if err != nil {
		return err
	}
	ApplyFieldValues(doc.Fields, values)
	locale, _ := doc.Fields["locale"].(string)
	NormalizeMultilingual(doc.Fields, rt.Config, collection, locale)

	cs, err := rt.SchemaFor(collection)
	if err != nil {
		return err
	}
	label := RelPath(rt.Root, doc.Path)
	if res := cs.Validate(doc.Fields); !res.Valid {
		PrintValidationResult(rt.Printer, label, res)
		return NewExitError(ExitValidationFailed)
	}
	if err := rt.Store.Save(doc); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	rt.Printer.Successf("updated %s", label)
	return nil
}

// RunDelete removes a record after confirmation. Without --yes the user is
// prompted; declining (or a closed stdin) aborts with the confirmation
// error so scripts fail loudly instead of deleting.
func RunDelete(cmd *cobra.Command, collection, slug string, yes bool) error {
	rt, err := NewRuntime(cmd)
	if err != nil {
		return err
	}
	if !rt.Store.Exists(collection, slug) {
		return errors.SlugNotFound(collection, slug)
	}
	if !yes {
		prompt := fmt.Sprintf("delete %s %q and its file?", collection, slug)
		if !Confirm(cmd.InOrStdin(), rt.Printer.Out, prompt) {
			return errors.DeleteNotConfirmed(collection, slug)
		}
	}
	if err := rt.Store.Delete(collection, slug); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	rt.Printer.Successf("deleted %s %q", collection, slug)
	return nil
}

// fileResult is the JSON shape of one validated file.
type fileResult struct {
	File   string              `json:"file"`
	Valid  bool                `json:"valid"`
	Errors []schema.FieldError `json:"errors,omitempty"`
}

// RunValidate checks one record, or the whole collection with all set,
// against the synthesized schema. Any failing file turns the exit code
// into ExitValidationFailed after every result has printed.
func RunValidate(cmd *cobra.Command, collection, slug string, all, jsonOut bool) error {
	rt, err := NewRuntime(cmd)
	if err != nil {
		return err
	}
	cs, err := rt.SchemaFor(collection)
	if err != nil {
		return err
	}

	var entries []content.ValidationEntry
	if all {
		entries, err = rt.Store.ValidateAll(cmd.Context(), collection, cs)
		if err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
	} else {
		if slug == "" {
			return errors.MissingSlugArgument(collection)
		}
		if !rt.Store.Exists(collection, slug) {
			return errors.SlugNotFound(collection, slug)
		}
		entries = []content.ValidationEntry{rt.Store.ValidateOne(collection, slug, cs)}
	}

	failed := 0
	for _, entry := range entries {
		if !entry.OK() {
			failed++
		}
	}

	if jsonOut {
		results := make([]fileResult, 0, len(entries))
		for _, entry := range entries {
			results = append(results, fileResult{
				File:   entryLabel(rt.Root, entry),
				Valid:  entry.OK(),
				Errors: entryErrors(entry),
			})
		}
		if err := PrintJSON(rt.Printer.Out, results); err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
	} else {
		for _, entry := range entries {
			printEntry(rt, entry)
		}
		if all {
			PrintValidationSummary(rt.Printer, len(entries), failed)
		}
	}

	if failed > 0 {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

func entryLabel(root string, entry content.ValidationEntry) string {
	if entry.Path == "" {
		return entry.Slug
	}
	return RelPath(root, entry.Path)
}

func entryErrors(entry content.ValidationEntry) []schema.FieldError {
	if entry.Err != nil {
		return []schema.FieldError{{Message: entry.Err.Error()}}
	}
	if entry.Result == nil {
		return nil
	}
	return entry.Result.Errors
}

func printEntry(rt *Runtime, entry content.ValidationEntry) {
	label := entryLabel(rt.Root, entry)
	if entry.Err != nil {
		rt.Printer.Failuref("%s could not be read", label)
		rt.Printer.Infof("  %s", entry.Err.Error())
		return
	}
	PrintValidationResult(rt.Printer, label, entry.Result)
}
