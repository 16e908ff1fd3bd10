package shared

import (
	"github.com/spf13/cobra"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	"github.com/lord007tn/BlogForge-sub000/internal/progress"
	"github.com/lord007tn/BlogForge-sub000/internal/project"
	"github.com/lord007tn/BlogForge-sub000/internal/schema"
)

// Runtime carries the resolved project state for one command invocation.
// Nothing is cached across invocations; every command re-reads the project
// from disk so concurrent edits by other tools are always picked up.
type Runtime struct {
	Root    string
	Config  *config.Config
	Source  string // winning config file, empty when built-in defaults apply
	Store   *content.Store
	Printer *progress.Printer
	Caps    progress.TerminalCapabilities
	Verbose bool

	schemas map[string]*schema.CollectionSchema
}

// NewRuntime resolves the project root, loads configuration, and prepares
// the content store for a command. Configuration warnings are printed to
// stderr as they are non-fatal.
func NewRuntime(cmd *cobra.Command) (*Runtime, error) {
	rootFlag, _ := cmd.Flags().GetString("root")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	caps := progress.Detect(noColor)
	printer := progress.NewPrinter(caps)
	printer.Out = cmd.OutOrStdout()
	printer.Err = cmd.ErrOrStderr()

	root, err := project.Resolve(rootFlag)
	if err != nil {
		return nil, errors.ProjectNotFound()
	}

	result := config.Load(root)
	for _, warning := range result.Warnings {
		printer.Warnf("%s", warning)
	}

	return &Runtime{
		Root:    root,
		Config:  result.Config,
		Source:  result.Source,
		Store:   content.NewStore(result.Config),
		Printer: printer,
		Caps:    caps,
		Verbose: verbose,
	}, nil
}

// Schemas synthesizes the collection schemas once per invocation.
// Extraction failures degrade to base schemas with a warning; synthesis
// failures are configuration errors because they come from
// schemaExtensions the user wrote.
func (r *Runtime) Schemas() (map[string]*schema.CollectionSchema, error) {
	if r.schemas != nil {
		return r.schemas, nil
	}
	user, err := schema.ExtractUserSchemas(r.Root)
	if err != nil {
		r.Printer.Warnf("%v", err)
		user = map[string]schema.UserSchema{}
	}
	schemas, err := schema.Synthesize(r.Config, user)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"check the schemaExtensions block of your configuration file")
	}
	r.schemas = schemas
	return schemas, nil
}

// SchemaFor returns the synthesized schema for one collection.
func (r *Runtime) SchemaFor(collection string) (*schema.CollectionSchema, error) {
	schemas, err := r.Schemas()
	if err != nil {
		return nil, err
	}
	return schemas[collection], nil
}
