package pipeline

import "strings"

// The resize stages share one resampling and sharpening recipe. The numeric
// values must not drift: downstream consumers expect visual parity with
// previously converted assets.
const (
	lanczosFilter = "lanczos"
	unsharpRecipe = "1.5x1+0.7+0.02"

	mediumGeometry     = "200x303"
	smallGeometry      = "123x186"
	smallIconGeometry  = "11x16"
	mediumIconGeometry = "30x44"
	largeIconGeometry  = "40x60"

	jpgBackground = "#242424"
	jpgCrop       = "200x302+0+0"
	jpgQuality    = "85%"

	webFramerate = "11"
)

func resizeArgs(input, geometry, output string) []string {
	return []string{
		input,
		"-filter", lanczosFilter,
		"-resize", geometry,
		"-unsharp", unsharpRecipe,
		output,
	}
}

// jpgCopyArgs flattens the card onto a dark background, crops one pixel off
// the bottom, and re-encodes as JPEG.
func jpgCopyArgs(input, output string) []string {
	return []string{
		input,
		"-background", jpgBackground,
		"-layers", "flatten",
		"-filter", lanczosFilter,
		"-resize", mediumGeometry,
		"+repage",
		"-gravity", "south",
		"-crop", jpgCrop,
		"+repage",
		"-unsharp", unsharpRecipe,
		"-quality", jpgQuality,
		output,
	}
}

func compositeArgs(background, frame, output string) []string {
	return []string{background, frame, "-composite", output}
}

func apngAssembleArgs(output string, frames []string) []string {
	return append([]string{output}, frames...)
}

func apngToGifArgs(input, output string) []string {
	return []string{input, output}
}

func mp4Args(pattern, output string) []string {
	return []string{
		"-f", "image2",
		"-framerate", webFramerate,
		"-i", pattern,
		"-profile:v", "baseline",
		"-level", "3.0",
		"-pix_fmt", "yuv420p",
		output,
	}
}

func webmArgs(pattern, output string) []string {
	return []string{
		"-f", "image2",
		"-framerate", webFramerate,
		"-i", pattern,
		output,
	}
}

func commandLine(binary string, args []string) string {
	return strings.Join(append([]string{binary}, args...), " ")
}
