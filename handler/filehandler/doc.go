// Package filehandler provides the daily file sink.
//
// Each calendar day has two files in the configured directory, named
// <day>-<month>-<year>.inf.log for INFO lines and
// <day>-<month>-<year>.err.log for WARN and ERROR lines. DEBUG lines are
// never written. A new day simply starts new files; old files are never
// rotated or removed here.
//
// Every write creates the directory if needed, opens the target file in
// append mode, writes the line and closes the file, all under one lock.
// A crash can therefore lose at most the line being written. Failures are
// returned as *WriteError and counted in Stats.
package filehandler
