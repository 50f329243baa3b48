package report

import (
	"bufio"
	"fmt"
	"os"
)

// DefaultFileName is the results file written next to the working directory.
const DefaultFileName = "SalesResults.txt"

// WriteFile writes the rendered report to path, replacing any previous run.
func WriteFile(path, text string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(text); err != nil {
		file.Close()
		return fmt.Errorf("failed to write results file: %w", err)
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush results file: %w", err)
	}

	return file.Close()
}
