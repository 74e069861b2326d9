// Package lutfile reads and writes lut tables as files in the textfmt layout.
//
// Load and Save are thin wrappers over textfmt plus a single file handle;
// Store adds a bound path, change tracking (Sync writes only when the
// encoded table changed) and zap logging.
//
// File failures are reported as ErrIO with the *fs.PathError kept in the
// chain, so callers can treat a missing file as "build defaults":
//
//	if err := lutfile.Load(t, path); errors.Is(err, fs.ErrNotExist) { ... }
package lutfile
