// Package apps indexes installed applications from freedesktop
// .desktop entries and matches launcher queries against them.
//
// The index scans the XDG application directories (plus Flatpak and
// Snap exports) with a depth-limited parallel walk and is rebuilt
// wholesale on reload. Matching favors prefix over substring over
// fuzzy subsequence hits, with a small frecency boost for recently
// launched entries. Executing a candidate spawns the process and
// returns without waiting for it to exit.
package apps
