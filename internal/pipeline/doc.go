// Package pipeline drives the per-card conversion sequence.
//
// Each card moves through a fixed stage order: output folders, original
// copy, static raster variants, then (for animated classes) the animated
// PNG container, the looped GIF, and the MP4/WebM web encodes. Every stage
// invokes exactly one external tool with a fixed, reproducible command line;
// a non-zero exit status produces a StageError carrying the command, exit
// code, and captured output, and ends processing for that card only.
//
// External tools are reached through the Runner interface so tests can
// substitute fakes without shelling out.
package pipeline
