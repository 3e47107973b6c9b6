// Package catalog loads the message catalog and general logger settings.
//
// Two sources are read once at process start: a settings source with the
// keys write.log.files, log.file.dir and display.date.format, and a
// message source mapping catalog keys to templates such as
//
//	greet=Hello, {0}!
//
// Both sources may be Java-style .properties files or TOML files. The
// date format uses SimpleDateFormat pattern letters (dd-MM-yyyy HH:mm:ss)
// and is compiled once into a DateFormat that renders timestamps; a Go
// layout is also accepted as is.
//
// A Catalog is immutable after Load or New returns. Any failure to read
// or validate a source is returned as *ConfigLoadError and should abort
// startup.
package catalog
