// Package paths holds the AOSFS naming conventions.
//
// Directories end in ".dir", files end in ".txt" and everything lives under
// the A:/Alteron mount point by default. Windows-style separators are
// accepted and normalized to forward slashes.
//
// # Directory Structure
//
//	A:/Alteron/
//	  ├── System.dir/     (protected)
//	  ├── Programs.dir/
//	  ├── Users.dir/
//	  ├── Config.dir/     (protected)
//	  ├── Temp.dir/
//	  ├── Apps.dir/
//	  └── Documents.dir/
//
// # Usage
//
//	p := paths.CoerceFile(paths.Normalize(`A:\Alteron\notes`)) // A:/Alteron/notes.txt
//	if paths.HasPrefix(p, paths.System) {
//	    // protected
//	}
package paths
