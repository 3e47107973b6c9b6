// Package sloghandler lets code written against log/slog log through a
// msglog Logger.
//
// The slog message is used as the catalog key and the attribute values,
// in the order they were added, as the positional arguments:
//
//	log := slog.New(sloghandler.New(l, &sloghandler.Options{Name: "Worker"}))
//	log.Info("greet", "who", "World") // Hello, World!
//
// An attribute named "caller" replaces the tag instead of becoming an
// argument. DEBUG records are substituted without a catalog lookup, the
// same as Logger.Log.
package sloghandler
