// Package types provides shared data structures for the AlteronOS backend.
//
// This package defines core types used across all backend components,
// ensuring type safety and consistent data structures.
//
// Core Types:
//   - Platform: Closed set of application origin ecosystems
//   - Operation: Run or Install
//   - ProcessResult: Captured output of an external collaborator process
//   - Outcome: Structured result of a dispatch
//   - Record: One dispatch attempt in the compatibility registry
//   - Error: Typed failure with a human-readable reason
//
// Example Usage:
//
//	p := types.ParsePlatform("macos")
//	if err := outcome.Err(); errors.Is(err, types.ErrUnsupportedFormat) {
//	    fmt.Println(err)
//	}
package types
