// Package errors provides typed errors with exit codes for wgstart.
//
// # Error Kinds
//
// Every failure the tool reports carries a Kind so operators can tell a bad
// tunnel config apart from a proxy that is not up yet, and both apart from a
// changed remote page:
//
//	KindMissingField     // required config key absent or blank
//	KindNoPeers          // config has no [Peer] section
//	KindInvalidAddress   // [Interface].Address is not a CIDR
//	KindNetwork          // request through the SOCKS5 listener failed
//	KindPatternNotFound  // response had no egress address
//	KindLaunch           // proxy binary could not be started
//
// # Exit Codes
//
//	ExitSuccess         = 0
//	ExitGeneralError    = 1
//	ExitConfigError     = 3   // MissingField, NoPeers, InvalidAddress
//	ExitNetworkError    = 4
//	ExitPatternNotFound = 5
//	ExitLaunchError     = 6
//	ExitUsage           = 64  // no operation selected, bad arguments
//
// # Matching
//
// Errors match the sentinel of their kind:
//
//	if errors.Is(err, errors.ErrNoPeers) { ... }
//
// Use GetExitCode to turn an error chain into a process exit code:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
