package commands

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/prozkosny/pydata-zdenka/internal/logger"
	"github.com/prozkosny/pydata-zdenka/internal/output"
	"github.com/prozkosny/pydata-zdenka/internal/profile"
	"github.com/prozkosny/pydata-zdenka/pkg/vypis"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract registry tables from an XML document",
	Long: `Extract reads a registry full-extract XML file and writes its four
tables to a multi-sheet workbook (or a JSON/YAML document).

Tables with no rows are skipped; an extract yielding no rows at all
produces no output file.

Examples:
  # Default xlsx output next to the input file
  rejstrik extract -i 00039276.xml

  # Explicit output path and format
  rejstrik extract -i 00039276.xml -o tables.yaml --format yaml`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	flags := extractCmd.Flags()
	flags.StringP("input", "i", "", "path to the registry extract XML (required)")
	flags.StringP("output", "o", "", "output file (default: input path with the format's extension)")
	flags.String("format", "xlsx", "output format: xlsx, json, yaml")
	flags.String("profile", "", "path to a sheet-naming profile (JSON or YAML)")

	_ = extractCmd.MarkFlagRequired("input")
}

func runExtract(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	input, _ := flags.GetString("input")
	outPath, _ := flags.GetString("output")
	format, _ := flags.GetString("format")
	profilePath, _ := flags.GetString("profile")

	info, err := os.Stat(input)
	if err != nil {
		logError("input file: %v", err)
		return err
	}
	logger.Debug("reading extract", "path", input, "size", humanize.Bytes(uint64(info.Size())))

	doc, err := vypis.ParseFile(input)
	if err != nil {
		logError("%v", err)
		return err
	}

	tables := vypis.Extract(doc)
	for _, s := range tables.Sheets() {
		logInfo("%-18s %d rows", s.Name, len(s.Table.Rows))
	}

	var names map[string]string
	if profilePath != "" {
		p, err := profile.FromFile(profilePath)
		if err != nil {
			logError("%v", err)
			return err
		}
		names = p.Sheets
	}

	if outPath == "" {
		outPath = strings.TrimSuffix(input, ".xml") + "." + format
	}

	buf := &bytes.Buffer{}
	w, err := output.NewWriter(buf, output.Format(format), output.WithSheetNames(names))
	if err != nil {
		logError("%v", err)
		return err
	}

	if err := w.Write(tables); err != nil {
		if errors.Is(err, output.ErrEmptyTableSet) {
			logInfo("no rows extracted from %s; nothing written", input)
			return nil
		}
		logError("%v", err)
		return err
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		logError("write %s: %v", outPath, err)
		return err
	}

	logInfo("wrote %s (%s, %s)", outPath, format, humanize.Bytes(uint64(buf.Len())))
	return nil
}
