package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
)

// Write writes every line newline terminated to the file at path, truncating
// it first, or to stdout when path is empty.
func Write(path string, stdout io.Writer, lines []string) (err error) {
	if path == "" {
		return writeLines(stdout, lines)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening output file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file %s: %w", path, closeErr)
		}
	}()
	if err := writeLines(f, lines); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	logger.WithField("func", "Write").Infof("wrote %d lines to %s", len(lines), path)
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
