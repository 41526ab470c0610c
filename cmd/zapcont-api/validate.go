package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CathalystLTDA/zapcont-api/internal/schema"
)

func validateCmd() *cobra.Command {
	var kind, version string
	var list bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a document against an NFE.io contract",
		Long: `Validate a company or invoice document the way the proxy does before
forwarding it. On success the normalized body is printed; otherwise every
violation is listed and the command fails. Use "-" or no file for stdin.

Examples:
  zapcont-api validate --kind company --version v2 company.json
  cat nfse.json | zapcont-api validate --kind service-invoice --version v1
  zapcont-api validate --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, c := range schema.Contracts() {
					fmt.Fprintf(out, "%s %s\n", c.Kind(), c.Version())
				}
				return nil
			}

			c, ok := schema.Lookup(kind, version)
			if !ok {
				return fmt.Errorf("unknown contract %s/%s (see --list)", kind, version)
			}
			raw, err := readDocument(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			body, err := c.Validate(raw)
			if vs, isViolations := schema.AsViolations(err); isViolations {
				for _, v := range vs {
					fmt.Fprintf(out, "%s: %s\n", v.Path, v.Message)
				}
				return fmt.Errorf("%d violation(s)", len(vs))
			}
			if err != nil {
				return err
			}

			var pretty any
			if err := json.Unmarshal(body, &pretty); err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(pretty)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", schema.KindServiceInvoice, "document kind: company, service-invoice, product-invoice")
	cmd.Flags().StringVar(&version, "version", "v1", "contract version, e.g. v1 or v2")
	cmd.Flags().BoolVar(&list, "list", false, "list known contracts")
	return cmd
}

func readDocument(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(args[0])
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("no such file: %s", args[0])
	}
	return b, err
}
