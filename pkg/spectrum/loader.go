package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load parses a spectrum from r. name becomes the histogram name.
func Load(name string, r io.Reader) (*Histogram, error) {
	var (
		counts  []float64
		columns int
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if columns == 0 {
			columns = len(fields)
			if columns > 2 {
				return nil, fmt.Errorf("%s:%d: expected 1 or 2 columns, got %d", name, lineNo, columns)
			}
		}
		if len(fields) != columns {
			return nil, fmt.Errorf("%s:%d: expected %d columns, got %d", name, lineNo, columns, len(fields))
		}

		if columns == 1 {
			v, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad count: %w", name, lineNo, err)
			}
			counts = append(counts, v)
			continue
		}

		ch, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad channel: %w", name, lineNo, err)
		}
		if ch < 0 {
			return nil, fmt.Errorf("%s:%d: negative channel %d", name, lineNo, ch)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad count: %w", name, lineNo, err)
		}
		for len(counts) <= ch {
			counts = append(counts, 0)
		}
		counts[ch] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: read failed: %w", name, err)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%s: no data", name)
	}

	return NewHistogram(name, counts), nil
}

// LoadFile parses the spectrum file at path.
func LoadFile(path string) (*Histogram, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spectrum: %w", err)
	}
	defer file.Close()

	return Load(filepath.Base(path), file)
}
