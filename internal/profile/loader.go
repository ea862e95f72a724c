package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths resolves profile files under a base directory.
type Paths struct {
	BaseDir string // e.g. ./profiles
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "default.yaml")
}
func (p Paths) ProfilePath(name string) string {
	return filepath.Join(p.BaseDir, "profiles", name+".yaml")
}

// Loader reads YAML profiles and merges default → named profile.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: profile name, "" for default only
}

// NewLoader creates a loader rooted at baseDir. An empty baseDir reads no
// files and yields an empty RawConfig.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

// LoadMerged loads default.yaml and, when name is set, overlays the named
// profile on top. The result is not validated.
func (l *Loader) LoadMerged(name string) (RawConfig, error) {
	l.mu.RLock()
	cfg, ok := l.cache[name]
	l.mu.RUnlock()
	if ok {
		return cfg, nil
	}
	if l.paths.BaseDir == "" {
		return RawConfig{}, nil
	}

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	merged := defCfg
	if name != "" {
		profCfg, err := readYAML(l.paths.ProfilePath(name))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read profile %q: %w", name, err)
		}
		merged = mergeRaw(defCfg, profCfg)
	}

	l.mu.Lock()
	l.cache[""] = defCfg
	l.cache[name] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears the loader's cache.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// mergeRaw returns a with every field that b sets replaced by b's value.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	pick := func(dst **float64, src *float64) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}
	pick(&out.Outcomes.Walk, b.Outcomes.Walk)
	pick(&out.Outcomes.Single, b.Outcomes.Single)
	pick(&out.Outcomes.Double, b.Outcomes.Double)
	pick(&out.Outcomes.Triple, b.Outcomes.Triple)
	pick(&out.Outcomes.HomeRun, b.Outcomes.HomeRun)

	if b.Advancement != nil {
		var adv AdvancementConfig
		if out.Advancement != nil {
			adv = *out.Advancement
		}
		pick(&adv.SingleHome, b.Advancement.SingleHome)
		pick(&adv.SingleThird, b.Advancement.SingleThird)
		pick(&adv.DoubleHome, b.Advancement.DoubleHome)
		out.Advancement = &adv
	}
	return out
}
