package lesson

import (
	"encoding/json"
	"fmt"

	"golang.org/x/mod/semver"
)

// FormatVersion is the lesson document format written by this build.
// Importers accept any document whose major version matches.
const FormatVersion = "v1.0.0"

// Envelope wraps an exported lesson with its document format version.
type Envelope struct {
	FormatVersion string `json:"formatVersion"`
	Lesson        Lesson `json:"lesson"`
}

// Export serializes a lesson into a versioned document suitable for
// sharing between installations.
func Export(l Lesson) ([]byte, error) {
	env := Envelope{FormatVersion: FormatVersion, Lesson: l}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal lesson document: %w", err)
	}
	return out, nil
}

// Import parses and validates an exported lesson document. The document is
// checked against the lesson JSON Schema before decoding, and its
// formatVersion must be valid semver with the same major version as
// FormatVersion.
func Import(data []byte) (Lesson, error) {
	if err := ValidateDocument(data); err != nil {
		return Lesson{}, err
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Lesson{}, fmt.Errorf("parse lesson document: %w", err)
	}

	if !semver.IsValid(env.FormatVersion) {
		return Lesson{}, fmt.Errorf("invalid formatVersion %q", env.FormatVersion)
	}
	if semver.Major(env.FormatVersion) != semver.Major(FormatVersion) {
		return Lesson{}, fmt.Errorf("unsupported document format %s (this build reads %s)",
			env.FormatVersion, semver.Major(FormatVersion))
	}

	return env.Lesson, nil
}
