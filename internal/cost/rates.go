package cost

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadRates reads a pricing override file and merges it over the defaults.
// Models present in the file replace the built-in entry wholesale.
func LoadRates(path string) (Rates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "cost: read rates file")
	}

	var overrides Rates
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, eris.Wrap(err, "cost: parse rates file")
	}

	rates := DefaultRates()
	for model, rate := range overrides {
		rates[model] = rate
	}
	return rates, nil
}
