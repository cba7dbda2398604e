// Package runlog standardizes file logging for a family of CLI tools and
// interactive apps built on rs/zerolog.
//
// Each application owns a root namespace (for example "spl" or "spl_flow").
// Initialize creates one timestamped file per run and attaches it to that
// root; every logger below the root writes to the same file and nowhere
// else. Calling Initialize again replaces and closes the previous file, so
// test harnesses may set up logging repeatedly without duplicated lines or
// leaked descriptors.
//
// Log files are named
//
//	<log_dir>/<run_name>[-<adapter>]-<YYYYMMDD-HHMMSS>.log
//
// Typical usage
//
//	path, err := runlog.Initialize("run", runlog.Options{
//		RootName: "spl_flow",
//		Adapter:  "openrouter",
//		Level:    "debug",
//	})
//	if err != nil { return err }
//
//	log := runlog.GetLogger("nodes.text2spl", "spl_flow")
//	log.Infof("generated %d statements", n)
//	log.InfoWith().Str("adapter", "openrouter").Msg("done")
//
//	runlog.Disable("spl_flow") // no-op logging from here on
package runlog
