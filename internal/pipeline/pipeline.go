package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/anaik-zam/CardConvert/internal/cards"
	"github.com/anaik-zam/CardConvert/internal/config"
	"github.com/anaik-zam/CardConvert/internal/fileutil"
	"github.com/anaik-zam/CardConvert/internal/logging"
	"github.com/anaik-zam/CardConvert/internal/services"
)

// Pipeline runs the full conversion sequence for one card at a time:
// output folders, original copy, static variants, animation variants.
// A stage failure aborts the remaining stages of that card only.
type Pipeline struct {
	cfg        *config.Config
	runner     Runner
	outputRoot string
	logger     *slog.Logger
}

// New builds a pipeline writing derived assets under outputRoot.
func New(cfg *config.Config, runner Runner, outputRoot string, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		runner:     runner,
		outputRoot: outputRoot,
		logger:     logging.NewComponentLogger(logger, "pipeline"),
	}
}

type staticStage struct {
	stage    Stage
	kind     string
	forceExt string
	args     func(input, output string) []string
}

func staticStages() []staticStage {
	return []staticStage{
		{stage: StageMediumCopy, kind: "medium", args: func(in, out string) []string {
			return resizeArgs(in, mediumGeometry, out)
		}},
		{stage: StageSmallCopy, kind: "small", args: func(in, out string) []string {
			return resizeArgs(in, smallGeometry, out)
		}},
		{stage: StageJPGCopy, kind: "mediumj", forceExt: ".jpg", args: jpgCopyArgs},
		{stage: StageSmallIcon, kind: "icons/small", args: func(in, out string) []string {
			return resizeArgs(in, smallIconGeometry, out)
		}},
		{stage: StageMediumIcon, kind: "icons/medium", args: func(in, out string) []string {
			return resizeArgs(in, mediumIconGeometry, out)
		}},
		{stage: StageLargeIcon, kind: "icons/large", args: func(in, out string) []string {
			return resizeArgs(in, largeIconGeometry, out)
		}},
	}
}

// Process converts one card. It returns a completion message on success or
// the first stage error encountered.
func (p *Pipeline) Process(ctx context.Context, card *cards.Card) (string, error) {
	ctx = logging.WithCard(ctx, card.ID())

	spec, ok := p.cfg.CardTypes[card.Class]
	if !ok {
		return "", services.Wrap(services.ErrConfiguration, "pipeline", "process",
			fmt.Sprintf("card_types.%s is not configured", card.Class), nil)
	}

	if err := p.makeOutputFolders(ctx, card, spec); err != nil {
		return "", err
	}
	if err := p.copyOriginal(ctx, card); err != nil {
		return "", err
	}
	if err := p.makeStaticVariants(ctx, card, spec); err != nil {
		return "", err
	}
	if err := p.makeAnimationVariants(ctx, card, spec); err != nil {
		return "", err
	}

	return fmt.Sprintf("finished processing %s", card.ID()), nil
}

// makeOutputFolders creates one directory per declared output kind.
// Already-existing directories are fine; any other failure is surfaced
// instead of swallowed.
func (p *Pipeline) makeOutputFolders(ctx context.Context, card *cards.Card, spec config.CardType) error {
	card.ResolveOutputs(p.outputRoot, spec.Outputs)
	for _, kind := range spec.Outputs {
		dir, err := card.OutputDir(kind)
		if err != nil {
			return err
		}
		logging.WithContext(ctx, p.logger).Debug("creating output folder", logging.String("path", dir))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return services.Wrap(services.ErrTransient, "pipeline", "create output folder", dir, err)
		}
	}
	return nil
}

func (p *Pipeline) copyOriginal(ctx context.Context, card *cards.Card) error {
	if card.Bundle.Static == "" {
		return services.Wrap(services.ErrValidation, "pipeline", "copy original",
			fmt.Sprintf("bundle for %s has no static file", card.ID()), nil)
	}
	dest, err := card.OutputFile("original")
	if err != nil {
		return err
	}
	if err := fileutil.CopyFile(card.Bundle.Static, dest); err != nil {
		return services.Wrap(services.ErrTransient, "pipeline", "copy original", dest, err)
	}
	logging.WithContext(ctx, p.logger).Debug("copied original",
		logging.String("source", card.Bundle.Static),
		logging.String("dest", dest),
	)
	return nil
}

func (p *Pipeline) makeStaticVariants(ctx context.Context, card *cards.Card, spec config.CardType) error {
	declared := outputSet(spec.Outputs)
	for _, stage := range staticStages() {
		if _, ok := declared[stage.kind]; !ok {
			continue
		}
		output, err := card.OutputFile(stage.kind)
		if err != nil {
			return err
		}
		if stage.forceExt != "" {
			output = swapExt(output, stage.forceExt)
		}
		args := stage.args(card.Bundle.Static, output)
		if err := p.runTool(ctx, stage.stage, p.cfg.ConvertBinary(), args); err != nil {
			return err
		}
	}
	return nil
}

// makeAnimationVariants packs frames into an animated PNG, converts it to a
// looped GIF, and produces the two web encodes. Classes that do not animate
// and bundles without frames skip the whole phase.
func (p *Pipeline) makeAnimationVariants(ctx context.Context, card *cards.Card, spec config.CardType) error {
	if !card.Variant.Animates() || len(card.Bundle.Animated) == 0 {
		logging.WithContext(ctx, p.logger).Debug("no animation", logging.String("card", card.ID()))
		return nil
	}
	if _, ok := outputSet(spec.Outputs)["animation"]; !ok {
		return nil
	}

	splitPattern, err := regexp.Compile(spec.FrameSplit)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "pipeline", "animation",
			fmt.Sprintf("card_types.%s.frame_re invalid", card.Class), err)
	}

	frames := card.Bundle.Animated
	if card.Variant.CompositesFrames() {
		composited, tmpDir, err := p.compositeFrames(ctx, card, frames)
		if err != nil {
			return err
		}
		defer func() {
			if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
				logging.WithContext(ctx, p.logger).Warn("failed to remove composite temp folder",
					logging.String("path", tmpDir), logging.Error(rmErr))
			}
		}()
		frames = composited
	}

	animFile, err := card.OutputFile("animation")
	if err != nil {
		return err
	}

	// Animated PNG container, then the looped GIF derived from it. The
	// container is an intermediate and is removed once the GIF exists.
	if err := p.runTool(ctx, StageAnimatedPNG, p.cfg.APNGAsmBinary(), apngAssembleArgs(animFile, frames)); err != nil {
		return err
	}
	gifFile := swapExt(animFile, ".gif")
	if err := p.runTool(ctx, StageAnimatedGIF, p.cfg.APNG2GIFBinary(), apngToGifArgs(animFile, gifFile)); err != nil {
		return err
	}
	logging.WithContext(ctx, p.logger).Debug("removing intermediate container", logging.String("path", animFile))
	if err := os.Remove(animFile); err != nil {
		logging.WithContext(ctx, p.logger).Warn("failed to remove intermediate container",
			logging.String("path", animFile), logging.Error(err))
	}

	// Web encodes read the raw frame sequence directly through a printf
	// style index pattern, not the assembled container.
	pattern := framePattern(frames[0], splitPattern)
	if err := p.runTool(ctx, StageMP4Encode, p.cfg.FFmpegBinary(), mp4Args(pattern, swapExt(animFile, ".mp4"))); err != nil {
		return err
	}
	return p.runTool(ctx, StageWebMEncode, p.cfg.FFmpegBinary(), webmArgs(pattern, swapExt(animFile, ".webm")))
}

// compositeFrames overlays every animation frame onto the class background
// and returns the composited frame paths alongside their temp folder.
func (p *Pipeline) compositeFrames(ctx context.Context, card *cards.Card, frames []string) ([]string, string, error) {
	background, err := p.cfg.BackgroundPath(card.Class)
	if err != nil {
		return nil, "", services.Wrap(services.ErrConfiguration, "pipeline", "composite", "", err)
	}
	animDir, err := card.OutputDir("animation")
	if err != nil {
		return nil, "", err
	}
	tmpDir := filepath.Join(animDir, "animation_temp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, "", services.Wrap(services.ErrTransient, "pipeline", "composite", tmpDir, err)
	}

	composited := make([]string, 0, len(frames))
	for _, frame := range frames {
		output := filepath.Join(tmpDir, "ff_"+filepath.Base(frame))
		if err := p.runTool(ctx, StageComposite, p.cfg.ConvertBinary(), compositeArgs(background, frame, output)); err != nil {
			return nil, tmpDir, err
		}
		composited = append(composited, output)
	}
	return composited, tmpDir, nil
}

func (p *Pipeline) runTool(ctx context.Context, stage Stage, binary string, args []string) error {
	ctx = logging.WithStage(ctx, string(stage))
	cmdline := commandLine(binary, args)
	logging.WithContext(ctx, p.logger).Debug("executing", logging.String(logging.FieldCommand, cmdline))

	result, err := p.runner.Run(ctx, binary, args...)
	if err != nil {
		return &StageError{Stage: stage, Command: cmdline, ExitCode: result.ExitCode, Stderr: err.Error()}
	}
	if result.ExitCode != 0 {
		return &StageError{
			Stage:    stage,
			Command:  cmdline,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
		}
	}
	return nil
}

// framePattern derives the ffmpeg input pattern from an actual frame path by
// replacing the frame-index suffix with a printf placeholder.
func framePattern(frame string, splitPattern *regexp.Regexp) string {
	dir := filepath.Dir(frame)
	base := filepath.Base(frame)
	ext := filepath.Ext(base)
	header := strings.TrimSuffix(base, ext)
	header = splitPattern.ReplaceAllString(header, "_%04d")
	return filepath.Join(dir, header+ext)
}

func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func outputSet(kinds []string) map[string]struct{} {
	set := make(map[string]struct{}, len(kinds))
	for _, kind := range kinds {
		set[kind] = struct{}{}
	}
	return set
}
