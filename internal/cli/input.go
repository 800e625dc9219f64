package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	vectorize "github.com/alnah/go-vectorize"
)

// clampParallel constrains parallel request count to valid range [1, MaxRecommendedParallel].
func clampParallel(n int) int {
	if n < 1 {
		return 1
	}
	if n > vectorize.MaxRecommendedParallel {
		return vectorize.MaxRecommendedParallel
	}
	return n
}

// resolveText returns the input text from the positional argument or, when
// file is set, from the file's contents. Exactly one source must be used.
func resolveText(arg, file string) (string, error) {
	if file != "" {
		if arg != "" {
			return "", fmt.Errorf("provide text as an argument or via --file, not both")
		}
		data, err := os.ReadFile(file) // #nosec G304 -- user-specified input file
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrFileNotFound, file)
			}
			return "", fmt.Errorf("cannot read input file: %w", err)
		}
		arg = string(data)
	}

	if strings.TrimSpace(arg) == "" {
		return "", ErrEmptyInput
	}
	return arg, nil
}

// readLines reads a batch input file: one text per line, empty lines skipped.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-specified input file
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("cannot read input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var texts []string
	scanner := bufio.NewScanner(f)
	// Allow long lines; default 64KB is too small for document inputs.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		texts = append(texts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}
	return texts, nil
}
