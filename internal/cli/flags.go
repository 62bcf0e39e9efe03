package cli

import "tdgen/internal/config"

// Flags holds command-line flags
type Flags struct {
	OutputDir string
	File      string
	Format    string
	Database  string
	Builtin   bool
	Filter    string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		OutputDir: f.OutputDir,
		File:      f.File,
		Format:    f.Format,
		Database:  f.Database,
		Builtin:   f.Builtin,
		Filter:    f.Filter,
	}
}
