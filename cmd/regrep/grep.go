package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/regrep/regrep"
)

const usage = "usage: regrep [-r] -E <pattern> [path...]"

// maxLineSize bounds how long a single input line may grow; log files
// routinely exceed bufio's default.
const maxLineSize = 1024 * 1024

// grep holds one invocation's state: the compiled pattern, where output
// goes, and whether any line has matched so far.
type grep struct {
	re      *regrep.Regexp
	out     io.Writer
	color   bool
	matched bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	recursive, pattern, paths, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	re, err := regrep.Compile(pattern)
	if err != nil {
		fmt.Fprintf(stderr, "regrep: %v\n", err)
		return 2
	}

	g := &grep{re: re, out: stdout, color: isTerminal(stdout)}

	switch {
	case len(paths) == 0:
		if err := g.searchReader(stdin, "", false); err != nil {
			fmt.Fprintf(stderr, "regrep: %v\n", err)
			return 2
		}

	case recursive:
		for _, root := range paths {
			if err := g.searchTree(root); err != nil {
				fmt.Fprintf(stderr, "regrep: %v\n", err)
				return 2
			}
		}

	default:
		prefixed := len(paths) > 1
		for _, path := range paths {
			if err := g.searchFile(path, path, prefixed); err != nil {
				fmt.Fprintf(stderr, "regrep: %v\n", err)
				return 2
			}
		}
	}

	if g.matched {
		return 0
	}
	return 1
}

// parseArgs handles [-r] -E <pattern> [path...].
func parseArgs(args []string) (recursive bool, pattern string, paths []string, err error) {
	i := 0
	if i < len(args) && args[i] == "-r" {
		recursive = true
		i++
	}
	if i+1 >= len(args) || args[i] != "-E" {
		return false, "", nil, errors.New(usage)
	}
	pattern = args[i+1]
	paths = args[i+2:]
	return recursive, pattern, paths, nil
}

// searchTree walks root and searches every regular file under it. Printed
// paths are relative to root's parent, so the root's own name appears in
// the output, and always use forward slashes. Files that disappear or
// can't be opened mid-walk are skipped, as grep does; a bad root is an
// error.
func (g *grep) searchTree(root string) error {
	base := filepath.Dir(filepath.Clean(root))
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				// the root itself is missing or unreadable
				return err
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			rel = path
		}
		// unreadable entries are skipped during descent
		_ = g.searchFile(path, filepath.ToSlash(rel), true)
		return nil
	})
}

func (g *grep) searchFile(path, name string, prefixed bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return g.searchReader(f, name, prefixed)
}

// searchReader scans r line by line, printing each matching line. With
// prefixed set, lines are printed as "<name>:<line>".
func (g *grep) searchReader(r io.Reader, name string, prefixed bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if !g.re.MatchString(line) {
			continue
		}
		g.matched = true
		if prefixed {
			fmt.Fprintf(g.out, "%s%s\n", g.prefix(name), line)
		} else {
			fmt.Fprintln(g.out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		if name != "" {
			return fmt.Errorf("%s: %w", name, err)
		}
		return err
	}
	return nil
}

// prefix renders the "path:" part of a match line, colored like GNU grep
// (magenta name, cyan separator) when writing to a terminal.
func (g *grep) prefix(name string) string {
	if g.color {
		return "\x1b[35m" + name + "\x1b[m\x1b[36m:\x1b[m"
	}
	return name + ":"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
