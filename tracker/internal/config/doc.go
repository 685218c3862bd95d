// Package config loads and watches the tracker batch file (tracker.yaml).
//
// Top-level types:
//   - Config{Packages, Output, Log}: full tree parsed from YAML
//   - Package: type (RUN|WLK|SWM), data (positional readings), optional name
//   - OutputConfig: format (text|json|prometheus)
//   - LogConfig: level (debug|info|warn|error); SlogLevel() maps it to slog
//
// Load(path) reads the YAML file, applies defaults (text output, info level),
// then validates structure. Workout codes and parameter counts are NOT
// validated here: the batch processor reports those per package so that one
// bad entry does not reject the whole file.
//
// Default() returns the built-in sample batch used when no file is given.
//
// Watch(ctx, path, onChange) watches the file's directory with fsnotify so
// that atomic saves (write to temp file, rename over target) are seen, and
// calls onChange with each successfully reloaded Config.
package config
