// Package config defines the format-agnostic defaults model and the
// loader interface implemented by the concrete file-format package. It
// keeps the rest of the application independent from how defaults are
// stored on disk.
package config
