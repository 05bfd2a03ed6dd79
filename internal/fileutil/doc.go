// Package fileutil provides small filesystem helpers shared by the pipeline.
package fileutil
