// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
papiparams describes the compiled-in parameters of a Papicoin network.

All networks are built and checked before the command runs.  When a genesis
block does not hash to the value of the deployed network the command panics
and exits with status 2 without printing anything.  Configuration and usage
errors exit with status 1.

The long form of all of the options (except -C) can be specified in a
configuration file that is automatically parsed when papiparams starts up.  By
default, the configuration file is located at ~/.papid/papiparams.conf on
POSIX-style operating systems and %LOCALAPPDATA%\Papid\papiparams.conf on
Windows.  A commented sample is written there when it does not exist.  The -C
(--configfile) flag, as shown below, can be used to override this location.

Usage:

	papiparams [OPTIONS]

Application Options:

	-V, --version           Display version information and exit
	-A, --appdata=          Path to application home directory
	-C, --configfile=       Path to configuration file
	    --logdir=           Directory to log output
	    --nofilelogging     Disable file logging
	-d, --debuglevel=       Logging level for all subsystems {trace, debug,
	                        info, warn, error, critical} -- You may also
	                        specify <subsystem>=<level>,<subsystem2>=<level>,...
	                        to set the log level for individual subsystems --
	                        Use show to list available subsystems (info)
	    --network=          Network to describe {main, test, regtest} (main)
	    --testnet           Use the test network
	    --regtest           Use the regression test network
	    --vbparams=         Override the activation window of a regression test
	                        network deployment as deployment:start:timeout --
	                        may be specified multiple times
	    --assumevalid=      Hash of the block whose ancestors are assumed to
	                        have valid scripts; reported beside the compiled-in
	                        value
	    --minimumchainwork= Minimum cumulative chain work in hex; reported
	                        beside the compiled-in value
	    --dumpgenesis       Write the serialized genesis block of the network as
	                        hex and exit

Help Options:

	-h, --help              Show this help message

The report is written to standard output.  Logs are written to standard error
and, unless disabled, to papiparams.log in a per-network directory below the
log directory.
*/
package main
