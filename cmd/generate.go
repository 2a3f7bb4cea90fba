package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pycodegen/pygen/internal/manifest"
	"github.com/pycodegen/pygen/internal/writer"
	"github.com/spf13/cobra"
)

const (
	defaultManifestPath = ""
	defaultOutputDir    = ""
	defaultDiffFileName = "pygen.diff"
	defaultDiffFilePath = ""
	defaultIndentChar   = ""
	defaultIndentWidth  = 0
	defaultDiffMode     = false
)

var (
	manifestPath string
	outputDir    string
	diffMode     bool
	diffFile     string
	indentChar   string
	indentWidth  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate a Python module",
	Long:  "generate a Python module source file from a TOML manifest",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		Generate()
	},
}

// validateDiffFile checks that the diff output path is valid
func validateDiffFile(path string) error {
	if filepath.Ext(path) != ".diff" {
		return errors.New("diff file must have a .diff extension")
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("diff file directory does not exist: %v", err)
	}

	return nil
}

func Generate() {
	if manifestPath == "" {
		log.Fatal("--manifest is required")
	}

	if _, err := os.Stat(manifestPath); err != nil {
		cobra.CheckErr(fmt.Errorf("--manifest \"%s\" is invalid: %v", manifestPath, err))
	}

	doc, err := manifest.LoadDocument(manifestPath)
	if err != nil {
		log.Fatal(err)
	}

	// flags win over the manifest
	if outputDir != "" {
		doc.Output = outputDir
	}
	if indentChar != "" {
		doc.IndentChar = indentChar
	}
	if indentWidth != 0 {
		doc.IndentWidth = indentWidth
	}

	module, err := manifest.Build(doc)
	if err != nil {
		log.Fatal(err)
	}

	if diffMode {
		path := diffFile
		if path == "" {
			path = filepath.Join(module.OutputLocation(), defaultDiffFileName)
		}
		if err := validateDiffFile(path); err != nil {
			cobra.CheckErr(err)
		}
		if err := writer.WriteDiff(module, path); err != nil {
			log.Fatal(err)
		}
		return
	}

	path, err := writer.Write(module)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("module written to %s", path)
}

func init() {
	generateCmd.Flags().StringVar(&manifestPath, "manifest", defaultManifestPath, "path to the module manifest")
	generateCmd.Flags().StringVar(&outputDir, "out", defaultOutputDir, "override the manifest output directory")
	generateCmd.Flags().BoolVar(&diffMode, "diff", defaultDiffMode, "write a diff against the existing file instead of overwriting it")
	generateCmd.Flags().StringVar(&diffFile, "diff-file", defaultDiffFilePath, "specify diff output file path")
	generateCmd.Flags().StringVar(&indentChar, "indent-char", defaultIndentChar, "override the indentation character")
	generateCmd.Flags().IntVar(&indentWidth, "indent-width", defaultIndentWidth, "override the indentation width")
	cobra.MarkFlagFilename(generateCmd.Flags(), "manifest", ".toml") // for file completion

	rootCmd.AddCommand(generateCmd)
}
