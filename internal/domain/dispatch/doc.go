// Package dispatch routes classified artifacts to platform handlers.
//
// Every supported platform owns a table from file suffix to handler. A
// handler carries the operation it naturally performs (run or install) and
// calls exactly one external collaborator. Dispatch is a single attempt:
// failures are returned as typed errors inside the Outcome and never retried.
//
// Handler tables:
//
//	windows         .exe run (wine)      .msi install (wine msiexec)
//	linux           .deb install (dpkg)  .sh run (shell)   ELF magic run
//	macos           .app run (bundle)    .dmg install (mount)   .pkg install
//	cross_platform  .py .js .jar run (interpreters)   .txt display
//
// Example Usage:
//
//	d := dispatch.New(dispatch.Collaborators{Windows: wine}, logger)
//	out := d.Dispatch(ctx, "setup.exe", types.PlatformWindows, types.OpRun)
//	if err := out.Err(); err != nil {
//	    fmt.Println(err)
//	}
package dispatch
