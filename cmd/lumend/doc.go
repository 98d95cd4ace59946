// Command lumend runs the launcher query daemon: the provider engine
// behind a loopback HTTP adapter, with a background clipboard poll.
package main
