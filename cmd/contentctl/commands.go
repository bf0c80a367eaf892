package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsc-site/jsc/backend/go-api/internal/content"
	"github.com/jsc-site/jsc/backend/go-api/internal/content/repository"
)

func store() *repository.FileStore {
	return repository.NewFileStore(dataDir, fileName)
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "show [pages|events|sermons|ministries|contact|settings]",
		Short:     "Print the content document or one section of it",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"pages", "events", "sermons", "ministries", "contact", "settings"},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDocument(store().Path())
			if err != nil {
				return err
			}
			var section any = d
			if len(args) == 1 {
				switch args[0] {
				case "pages":
					section = d.Pages
				case "events":
					section = d.Events
				case "sermons":
					section = d.Sermons
				case "ministries":
					section = d.Ministries
				case "contact":
					section = d.Contact
				case "settings":
					section = d.Settings
				default:
					return fmt.Errorf("unknown section %q", args[0])
				}
			}
			return printJSON(cmd, section)
		},
	}
}

// readDocument parses the content file without healing it: a corrupt file
// is reported rather than replaced, and a missing one yields the defaults
// the server would create.
func readDocument(path string) (*content.Document, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return content.DefaultDocument(), nil
	}
	if err != nil {
		return nil, err
	}
	d, err := content.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the content file parses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := store().Path()
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s does not exist; the server will create it with defaults\n", path)
				return nil
			}
			d, err := readDocument(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s ok: %d pages, %d events, %d sermons, %d ministries\n",
				path, len(d.Pages), len(d.Events), len(d.Sermons), len(d.Ministries))
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the content file with the default document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			s := store()
			if err := s.Save(cmd.Context(), content.DefaultDocument()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset %s to defaults\n", s.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm overwriting the current content")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := jsonIndent(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func jsonIndent(v any) ([]byte, error) {
	if d, ok := v.(*content.Document); ok {
		return content.Encode(d)
	}
	return json.MarshalIndent(v, "", "  ")
}
