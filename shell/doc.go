// Package shell implements the ohiOS command language.
//
// A Dispatcher is the only component that understands text. Each call to
// Execute takes one command line, resolves the first token against a fixed
// grammar (case-insensitively), checks arity before touching any state, runs
// the command against a kernel.System and renders exactly one Result.
// Failures of every kind become message lines; Execute never returns an
// error and never panics.
//
// # Grammar
//
//	help                list commands            (alias /help)
//	run <name> <size>   start a process
//	kill <pid>          terminate a process
//	mem                 memory usage
//	ps                  list processes
//	mkdir <name>        create a directory
//	ls                  list the working directory
//	cd <name|..>        change directory
//	pwd                 print the working directory
//	mkfile <name>       create an empty file     (alias mktxtfile)
//	write <name> <text> replace file content     (rest of line)
//	read <name>         print file content
//	rm <name>           remove a file or subtree (alias del)
//	clear               ask the front end to clear its screen
//	exit                end the session          (alias quit)
package shell
