// Package fault reports unrecoverable conditions and ends the process.
//
// Entry points:
// - Panic/Panicf: print the message and a backtrace block, then abort
// - Register: idempotently route the fatal signal set (SIGSEGV, SIGILL,
//   SIGFPE, SIGABRT, SIGBUS) to the reporter
// - Recover/Guard: the Go-native hook for faults raised inside Go code,
//   which the runtime turns into panics instead of signals
//
// A report is a header line followed by a block:
//
//	      - Backtrace Symbols -
//	=============================
//	| #0 0x4b2c1f main.run ... |
//	=============================
//
// Per-frame text depends on the toolchain; only the block shape is stable.
// Nothing here returns control to the faulting call site.
package fault
