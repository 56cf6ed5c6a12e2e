package assumptions

import (
	"embed"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/areumfire/finplan-engine/internal/planerr"
)

//go:embed data/*.yaml
var bundleFiles embed.FS

// rawCorrelation is the YAML-friendly shape of one correlation entry. The
// registry YAML files express correlations as a list of (a, b, value)
// triples rather than a map, since Bundle.Correlations is keyed on the
// normalized AssetPair struct, which yaml.v3 cannot use as a map key
// directly.
type rawCorrelation struct {
	A     AssetID `yaml:"a"`
	B     AssetID `yaml:"b"`
	Value float64 `yaml:"value"`
}

// rawBundle mirrors Bundle field-for-field except Correlations, which is
// decoded into the list form above and converted after unmarshal.
type rawBundle struct {
	Region        string                  `yaml:"region"`
	Version       string                  `yaml:"version"`
	EffectiveDate string                  `yaml:"effective_date"`
	Assets        map[AssetID]AssetParams `yaml:"assets"`
	Correlations  []rawCorrelation        `yaml:"correlations"`
	Regimes       []Regime                `yaml:"regimes"`
	Inflation     InflationParams         `yaml:"inflation"`
}

func (r rawBundle) toBundle() Bundle {
	correlations := make(map[AssetPair]float64, len(r.Correlations))
	for _, c := range r.Correlations {
		correlations[NewAssetPair(c.A, c.B)] = c.Value
	}
	return Bundle{
		Region:        r.Region,
		Version:       r.Version,
		EffectiveDate: r.EffectiveDate,
		Assets:        r.Assets,
		Correlations:  correlations,
		Regimes:       r.Regimes,
		Inflation:     r.Inflation,
	}
}

var (
	registryOnce sync.Once
	registry     map[RegistryKey]Bundle
	registryErr  error
)

// load parses every embedded bundle fixture exactly once. Bundles are
// compile-time constants: there is no code path that re-reads or mutates
// them after this runs, so a sync.Once guards a package-level map instead
// of a mutex-protected store.
func load() {
	registryOnce.Do(func() {
		entries, err := bundleFiles.ReadDir("data")
		if err != nil {
			registryErr = err
			return
		}
		registry = make(map[RegistryKey]Bundle, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			raw, err := bundleFiles.ReadFile("data/" + entry.Name())
			if err != nil {
				registryErr = err
				return
			}
			var rb rawBundle
			if err := yaml.Unmarshal(raw, &rb); err != nil {
				registryErr = err
				return
			}
			b := rb.toBundle()
			registry[b.Key()] = b
		}
	})
}

// Get returns the bundle for an exact (region, version) pair.
func Get(region, version string) (Bundle, error) {
	load()
	if registryErr != nil {
		return Bundle{}, registryErr
	}
	b, ok := registry[RegistryKey{Region: region, Version: version}]
	if !ok {
		return Bundle{}, planerr.NotFound(region, version)
	}
	return b, nil
}

// GetLatest returns the lexicographically-highest version registered for a
// region. Bundle versions are "YYYY-Qn" strings, so lexicographic order is
// chronological order.
func GetLatest(region string) (Bundle, error) {
	load()
	if registryErr != nil {
		return Bundle{}, registryErr
	}
	var best *Bundle
	for k, b := range registry {
		if k.Region != region {
			continue
		}
		if best == nil || b.Version > best.Version {
			bb := b
			best = &bb
		}
	}
	if best == nil {
		return Bundle{}, planerr.NotFound(region, "latest")
	}
	return *best, nil
}

// List returns every registered (region, version) key, sorted for
// deterministic output.
func List() []RegistryKey {
	load()
	keys := make([]RegistryKey, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Region != keys[j].Region {
			return keys[i].Region < keys[j].Region
		}
		return keys[i].Version < keys[j].Version
	})
	return keys
}
