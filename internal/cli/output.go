package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/agbru/polymul/internal/format"
	"github.com/agbru/polymul/internal/ui"
)

const (
	// TruncationLimit is the coefficient count above which a product is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 60
	// DisplayEdges specifies the number of coefficients to display at
	// the beginning and end of a truncated product.
	DisplayEdges = 10
)

// DisplayCoefficients prints the product coefficients as signed values.
// Unless full is true, long sequences show only the leading and trailing
// edges.
func DisplayCoefficients(coeffs []uint64, full bool, out io.Writer) {
	if len(coeffs) <= TruncationLimit || full {
		for i, c := range coeffs {
			if i > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprint(out, int64(c))
		}
		fmt.Fprintln(out)
		return
	}

	for i := 0; i < DisplayEdges; i++ {
		fmt.Fprintf(out, "%d ", int64(coeffs[i]))
	}
	fmt.Fprintf(out, "%s… %s omitted …%s ",
		ui.ColorSecondary(), format.Count(len(coeffs)-2*DisplayEdges), ui.ColorReset())
	for i := len(coeffs) - DisplayEdges; i < len(coeffs); i++ {
		if i > len(coeffs)-DisplayEdges {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, int64(coeffs[i]))
	}
	fmt.Fprintln(out)
}

// WriteCoefficientsToFile writes the product to a file as space-separated
// signed coefficients preceded by a comment header.
func WriteCoefficientsToFile(path string, coeffs []uint64, algo string, duration time.Duration) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# Polynomial product over Z/2^64\n")
	fmt.Fprintf(w, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "# Algorithm: %s\n", algo)
	fmt.Fprintf(w, "# Duration: %s\n", duration)
	fmt.Fprintf(w, "# Coefficients: %d\n", len(coeffs))
	for i, c := range coeffs {
		if i > 0 {
			if err := w.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(strconv.FormatInt(int64(c), 10)); err != nil {
			return err
		}
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	return w.Flush()
}
