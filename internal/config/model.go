package config

// Defaults holds tool-wide settings that a defaults file may override.
// Flag values always win over these.
type Defaults struct {
	// OutputDir is the fixed directory generated images are written to.
	OutputDir string

	// Scale is the pixel width of one QR module in rendered images.
	Scale int

	// Level selects the error-correction level: "low", "medium",
	// "high" or "highest".
	Level string

	// Format selects the output image format: "png", "svg" or "both".
	Format string

	Foreground string
	Background string

	// Preview controls whether a terminal rendering follows a
	// successful encode.
	Preview bool
}

// Builtin returns the defaults used when no defaults file is present.
func Builtin() Defaults {
	return Defaults{
		OutputDir:  "qrcodes",
		Scale:      10,
		Level:      "medium",
		Format:     "png",
		Foreground: "black",
		Background: "white",
		Preview:    true,
	}
}
