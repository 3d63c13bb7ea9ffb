package features

import (
	"encoding/csv"
	"fmt"
	"os"
)

// whitelistHeader is the single expected column of the feature-whitelist
// asset.
const whitelistHeader = "features"

// LoadWhitelist reads the ordered feature-name whitelist the model was
// trained on. The asset is a one-column CSV with header "features"; order is
// preserved because it fixes the model's input column layout.
func LoadWhitelist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feature whitelist %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read feature whitelist %s: %w", path, err)
	}

	if len(records) == 0 || len(records[0]) != 1 || records[0][0] != whitelistHeader {
		return nil, fmt.Errorf("feature whitelist %s: expected single %q column", path, whitelistHeader)
	}

	names := make([]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		names = append(names, rec[0])
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("feature whitelist %s is empty", path)
	}
	return names, nil
}
