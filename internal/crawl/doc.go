// Package crawl discovers card asset bundles on disk.
//
// It walks an input tree and groups loose files into per-card bundles: one
// static image plus the ordered animation frames found under a designated
// animation subfolder. Discovery never fails; missing or unreadable input
// yields an empty result set.
package crawl
