package cards

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"

	"github.com/anaik-zam/CardConvert/internal/config"
	"github.com/anaik-zam/CardConvert/internal/crawl"
	"github.com/anaik-zam/CardConvert/internal/logging"
	"github.com/anaik-zam/CardConvert/internal/services"
)

// Gather resolves every card of the requested types under inputRoot. The
// crawl runs sequentially; filesystem discovery is cheap relative to the
// encoding work that follows.
//
// Input layout is <inputRoot>/<unity_folder>/<locale>/...; a locale folder
// that does not exist simply contributes no cards.
func Gather(cfg *config.Config, types []string, inputRoot string, logger *slog.Logger) ([]*Card, error) {
	log := logging.NewComponentLogger(logger, "cards")

	var out []*Card
	for _, typeName := range types {
		variant, err := VariantFor(typeName)
		if err != nil {
			return nil, err
		}
		spec, ok := cfg.CardTypes[variant.Class()]
		if !ok {
			return nil, services.Wrap(services.ErrConfiguration, "cards", "gather",
				fmt.Sprintf("card_types.%s is not configured", variant.Class()), nil)
		}
		splitPattern, err := regexp.Compile(spec.FrameSplit)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "cards", "gather",
				fmt.Sprintf("card_types.%s.frame_re invalid", variant.Class()), err)
		}

		for _, locale := range cfg.Locales {
			root := filepath.Join(inputRoot, spec.UnityFolder, locale)
			bundles := crawl.Crawl(root, splitPattern, spec.AnimFolder)
			found := variant.Instances(locale, bundles)
			log.Debug("crawled card class",
				logging.String("class", variant.Class()),
				logging.String("locale", locale),
				logging.String("root", root),
				logging.Int("cards", len(found)),
			)
			out = append(out, found...)
		}
	}
	return out, nil
}
