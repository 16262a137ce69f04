// Command regrep searches input lines for matches of a pattern.
//
// Usage:
//
//	regrep [-r] -E <pattern> [path...]
//
// With no paths, standard input is searched. With -r, each path is walked
// recursively. Matching lines are printed; when more than one file is
// searched (or -r is given), each line is prefixed with its path. The exit
// status is 0 if any line matched, 1 if none did, and 2 on a malformed
// pattern or an unreadable named file; unreadable files found while
// walking with -r are skipped.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
