// Command cardconvert converts card artwork exported from the game client
// into the full set of web-ready raster and video variants.
package main
