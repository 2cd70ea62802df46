package cmd

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/platewell/labkit/internal/catalog"
	"github.com/platewell/labkit/labware"
)

var flagCatalog string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the known labware",
	Long: `catalog lists the labware the other plate commands can resolve by
name: the entries of a catalog file when one is given, plus the
built-in SBS formats. A catalog entry shadows a built-in format of the
same name.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Labware catalog file (default from config)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWELLS\tROWS\tCOLUMNS\tSOURCE")

	seen := make(map[string]bool)
	if c != nil {
		for _, name := range c.Names() {
			def, _ := c.Get(name)
			writeCatalogRow(w, def, c.Source)
			seen[strings.ToLower(name)] = true
		}
	}
	for _, name := range catalog.BuiltinNames() {
		if seen[strings.ToLower(name)] {
			continue
		}
		def, _ := catalog.Builtin(name)
		writeCatalogRow(w, def, "builtin")
	}
	w.Flush()

	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

func writeCatalogRow(w *tabwriter.Writer, def *labware.Definition, source string) {
	fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", def.Name, def.WellCount(), def.RowCount, def.ColumnCount, source)
}

// loadCatalog opens the catalog named by --catalog or the config file.
// No catalog configured is not an error; the built-ins still resolve.
func loadCatalog() (*catalog.Catalog, error) {
	path := flagCatalog
	if path == "" {
		config, err := loadConfig()
		if err != nil {
			return nil, err
		}
		path = config.Catalog
	}
	if path == "" {
		return nil, nil
	}
	return catalog.Load(path)
}

var dimsPattern = regexp.MustCompile(`^(\d+)[xX](\d+)$`)

// resolveDefinition turns a layout argument into a labware definition:
// either explicit dimensions like 8x12 or a name resolved through the
// catalog and the built-in formats.
func resolveDefinition(layout string) (*labware.Definition, error) {
	if m := dimsPattern.FindStringSubmatch(layout); m != nil {
		rows, _ := strconv.Atoi(m[1])
		cols, _ := strconv.Atoi(m[2])
		def := &labware.Definition{
			Name:        fmt.Sprintf("%dx%d", rows, cols),
			RowCount:    rows,
			ColumnCount: cols,
		}
		if err := def.ValidateCounts(); err != nil {
			return nil, err
		}
		return def, nil
	}

	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return catalog.Resolve(c, layout)
}
