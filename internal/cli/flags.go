package cli

// Flags holds all command line flag values.
type Flags struct {
	// CfgFile is an alternate config file path (--config).
	CfgFile string

	// Class selects the phoneme class for one-shot lookups (--class).
	Class string

	// Chart prints the phoneme number chart and exits (--chart).
	Chart bool
}

// NewFlags creates a Flags instance with default values.
func NewFlags() *Flags {
	return &Flags{}
}
