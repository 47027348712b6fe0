package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// OutputExt is the extension of generated schema files.
const OutputExt = ".ts"

// GeneratedFile represents a generated schema source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "user.ts").
	Filename string
	// Content is the generated schema code.
	Content []byte
}

// OutputName derives the schema file name for an input path:
// "dto/User.java" becomes "User.ts". Stdin ("" or "-") maps to "schemas.ts".
func OutputName(inputPath string) string {
	if inputPath == "" || inputPath == "-" {
		return "schemas" + OutputExt
	}

	base := filepath.Base(inputPath)

	return strings.TrimSuffix(base, filepath.Ext(base)) + OutputExt
}

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
