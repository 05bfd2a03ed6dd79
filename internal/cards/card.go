package cards

import (
	"fmt"
	"path/filepath"

	"github.com/anaik-zam/CardConvert/internal/crawl"
	"github.com/anaik-zam/CardConvert/internal/services"
)

// Card binds one asset bundle to the conversion rules of its card class.
// A card is created by a Variant factory and processed exactly once.
type Card struct {
	Name    string
	Locale  string
	Class   string
	Bundle  crawl.Bundle
	Variant Variant

	outputPaths map[string]string
}

// ID returns the card's user-facing identity.
func (c *Card) ID() string {
	return fmt.Sprintf("%s:%s", c.Name, c.Locale)
}

func (c *Card) String() string {
	return fmt.Sprintf("%s:%s::%s", c.Name, c.Locale, c.Bundle.Static)
}

// ResolveOutputs populates the per-kind output directory map. It is called
// once at the start of processing; output paths depend on class and locale,
// so they cannot be resolved before the card exists.
func (c *Card) ResolveOutputs(outputRoot string, kinds []string) {
	c.outputPaths = make(map[string]string, len(kinds))
	for _, kind := range kinds {
		c.outputPaths[kind] = filepath.Join(outputRoot, c.Class, c.Locale, filepath.FromSlash(kind))
	}
}

// OutputDir returns the directory for an output kind. Reading before
// ResolveOutputs or asking for an undeclared kind is an error.
func (c *Card) OutputDir(kind string) (string, error) {
	if c.outputPaths == nil {
		return "", services.Wrap(services.ErrValidation, "cards", "output dir",
			fmt.Sprintf("output paths for %s not resolved yet", c.ID()), nil)
	}
	dir, ok := c.outputPaths[kind]
	if !ok {
		return "", services.Wrap(services.ErrValidation, "cards", "output dir",
			fmt.Sprintf("output kind %q not declared for class %s", kind, c.Class), nil)
	}
	return dir, nil
}

// OutputFile returns the destination path for an output kind using the
// static file's base name.
func (c *Card) OutputFile(kind string) (string, error) {
	dir, err := c.OutputDir(kind)
	if err != nil {
		return "", err
	}
	if c.Bundle.Static == "" {
		return "", services.Wrap(services.ErrValidation, "cards", "output file",
			fmt.Sprintf("bundle for %s has no static file", c.ID()), nil)
	}
	return filepath.Join(dir, filepath.Base(c.Bundle.Static)), nil
}
