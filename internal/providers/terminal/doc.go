// Package terminal provides the interactive AOSFS shell.
//
// A Shell reads one command per line, tokenizes it with POSIX quoting rules
// and routes it to the virtual filesystem or the application manager.
// Relative virtual paths resolve against the session's working directory.
//
// Commands:
//   - ls [dir], cat <file>, pwd, find <pattern>, glob <pattern>, fsinfo
//   - mkdir <dir>, touch <file>, edit <file> <content...>, create <file> [content...]
//   - run <host-path> [args...], install <host-path>, classify <host-path>
//   - help, exit
//
// Example Usage:
//
//	sh := terminal.New(store, apps, logger)
//	err := sh.Run(ctx, os.Stdin, os.Stdout)
package terminal
