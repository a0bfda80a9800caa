// Package sniffer classifies application artifacts by platform.
//
// Classification is extension driven. Only when the extension is absent or
// unrecognized does the sniffer open the file and compare its first four
// bytes against the PE, ELF and Mach-O signatures. Classification never
// fails: anything unreadable or unmatched is PlatformUnknown.
//
// Example Usage:
//
//	s := sniffer.New(logger, metrics)
//	switch s.Classify("setup.exe") {
//	case types.PlatformWindows:
//	    ...
//	}
package sniffer
