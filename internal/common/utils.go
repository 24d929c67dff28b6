package common

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// CollectPDFs resolves the --input value into a list of PDF paths.
// The input is either a directory (every *.pdf directly inside it) or a
// comma-separated list of files. Entries that don't exist or aren't PDFs
// come back in invalid.
func CollectPDFs(input string) (pdfs []string, invalid []string, err error) {
	info, statErr := os.Stat(input)
	if statErr == nil && info.IsDir() {
		entries, readErr := os.ReadDir(input)
		if readErr != nil {
			return nil, nil, fmt.Errorf("failed to read input directory: %w", readErr)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				pdfs = append(pdfs, filepath.Join(input, e.Name()))
			}
		}
		sort.Strings(pdfs)
		return pdfs, nil, nil
	}

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.EqualFold(filepath.Ext(part), ".pdf") {
			invalid = append(invalid, part)
			continue
		}
		if _, err := os.Stat(part); err != nil {
			invalid = append(invalid, part)
			continue
		}
		pdfs = append(pdfs, part)
	}
	return pdfs, invalid, nil
}
