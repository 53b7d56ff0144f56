package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is the on-disk shape of a seeding profile.
type Preset struct {
	Users   int  `yaml:"users"`
	Posts   int  `yaml:"posts"`
	MaxDays int  `yaml:"max_days"`
	Clean   bool `yaml:"clean"`
}

// LoadPreset reads a YAML seeding profile from disk. Missing counts
// fall back to a small default profile.
func LoadPreset(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read preset %s: %w", path, err)
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return Options{}, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}

	opts := Options{
		NumUsers:    preset.Users,
		NumPosts:    preset.Posts,
		MaxDays:     preset.MaxDays,
		ShouldClean: preset.Clean,
	}
	if opts.NumUsers <= 0 {
		opts.NumUsers = 25
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 200
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 10
	}
	return opts, nil
}
