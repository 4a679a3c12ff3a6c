package classify

import (
	"os"
	"strings"
)

// ReadLabels reads a label table from a file, one label per line,
// index-aligned with the model output.
func ReadLabels(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(b), "\n")
	var labels []string
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			labels = append(labels, l)
		}
	}
	return labels, nil
}
