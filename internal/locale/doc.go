// Package locale validates the compact locale folder names used by the card
// asset tree (enUS, esES) against BCP-47 and renders display names for
// user-facing output.
package locale
