// Package providers defines the candidate source contract and the
// registry holding one engine's fixed provider set.
//
// A provider owns one candidate kind. Match turns a query into scored
// hints without side effects; Execute performs the selected action and
// reports a typed outcome. Concrete providers live in subpackages:
// apps, calculator, clipboard, command.
package providers
