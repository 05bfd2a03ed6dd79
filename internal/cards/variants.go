package cards

import (
	"fmt"
	"sort"

	"github.com/anaik-zam/CardConvert/internal/crawl"
	"github.com/anaik-zam/CardConvert/internal/services"
)

// Variant describes one card class of the catalog. The pipeline and
// dispatcher depend only on this interface, never on a concrete variant.
type Variant interface {
	// Class is the configuration lookup key for this card class.
	Class() string
	// Animates reports whether animation stages apply to this class.
	Animates() bool
	// CompositesFrames reports whether animation frames must be composited
	// onto a background before encoding.
	CompositesFrames() bool
	// Instances builds one Card per bundle, named by bundle key, in
	// deterministic (sorted) order.
	Instances(locale string, bundles map[string]crawl.Bundle) []*Card
}

// PlainCards is the regular playing card class.
type PlainCards struct{}

func (PlainCards) Class() string          { return "cards" }
func (PlainCards) Animates() bool         { return true }
func (PlainCards) CompositesFrames() bool { return false }

// Heroes is the hero portrait class. Heroes never animate; animation stages
// are skipped even when frames are present on disk.
type Heroes struct{}

func (Heroes) Class() string          { return "heroes" }
func (Heroes) Animates() bool         { return false }
func (Heroes) CompositesFrames() bool { return false }

// CardBacks is the card back class. Cardback animation frames are composited
// onto a configured background before any animation encoding.
type CardBacks struct{}

func (CardBacks) Class() string          { return "cardbacks" }
func (CardBacks) Animates() bool         { return true }
func (CardBacks) CompositesFrames() bool { return true }

func (v PlainCards) Instances(locale string, bundles map[string]crawl.Bundle) []*Card {
	return instances(v, locale, bundles)
}

func (v Heroes) Instances(locale string, bundles map[string]crawl.Bundle) []*Card {
	return instances(v, locale, bundles)
}

func (v CardBacks) Instances(locale string, bundles map[string]crawl.Bundle) []*Card {
	return instances(v, locale, bundles)
}

func instances(v Variant, locale string, bundles map[string]crawl.Bundle) []*Card {
	names := make([]string, 0, len(bundles))
	for name := range bundles {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Card, 0, len(names))
	for _, name := range names {
		out = append(out, &Card{
			Name:    name,
			Locale:  locale,
			Class:   v.Class(),
			Bundle:  bundles[name],
			Variant: v,
		})
	}
	return out
}

// VariantFor resolves a requested card type name to its variant.
func VariantFor(name string) (Variant, error) {
	switch name {
	case "cards":
		return PlainCards{}, nil
	case "heroes":
		return Heroes{}, nil
	case "cardbacks":
		return CardBacks{}, nil
	default:
		return nil, services.Wrap(services.ErrValidation, "cards", "variant",
			fmt.Sprintf("unknown card type %q", name), nil)
	}
}

// AllTypes lists every known card type name.
func AllTypes() []string {
	return []string{"cards", "heroes", "cardbacks"}
}
