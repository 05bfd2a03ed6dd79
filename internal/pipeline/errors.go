package pipeline

import (
	"fmt"

	"github.com/anaik-zam/CardConvert/internal/services"
)

// Stage names one pipeline step. Each stage invokes a single external tool
// and produces one artifact.
type Stage string

const (
	StageSetup        Stage = "setup"
	StageOriginalCopy Stage = "original-copy"
	StageMediumCopy   Stage = "medium-copy"
	StageSmallCopy    Stage = "small-copy"
	StageJPGCopy      Stage = "jpg-copy"
	StageSmallIcon    Stage = "small-icon"
	StageMediumIcon   Stage = "medium-icon"
	StageLargeIcon    Stage = "large-icon"
	StageComposite    Stage = "composite"
	StageAnimatedPNG  Stage = "animated-png"
	StageAnimatedGIF  Stage = "animated-gif"
	StageMP4Encode    Stage = "mp4-encode"
	StageWebMEncode   Stage = "webm-encode"
)

// StageError reports a failed external tool invocation. It carries the exact
// command line, the process exit code, and the captured output streams, and
// aborts all remaining stages of the owning card.
type StageError struct {
	Stage    Stage
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s\nReturn Code: %d\nSTDOUT: %s\nSTDERR: %s",
		e.Stage, e.Command, e.ExitCode, e.Stdout, e.Stderr)
}

// Is lets callers classify stage errors with errors.Is(err, services.ErrExternalTool).
func (e *StageError) Is(target error) bool {
	return target == services.ErrExternalTool
}
