// Command formkit-lint validates form description files. Each problem is
// printed on its own line. The exit status is 1 when a form is invalid and
// 2 on usage errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ytget/formkit/internal/formspec"
	"github.com/ytget/formkit/internal/platform"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("formkit-lint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("q", false, "only print problems")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: formkit-lint [-q] [file or directory ...]")
		fmt.Fprintln(stderr, "Without arguments the forms directory in the user config dir is checked.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	targets := fs.Args()
	if len(targets) == 0 {
		dir, err := platform.GetFormsDir()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		targets = []string{dir}
	}

	files, err := collectFiles(targets)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if len(files) == 0 {
		fmt.Fprintln(stderr, "no form files found")
		return exitUsage
	}

	status := exitOK
	for _, path := range files {
		if !lintFile(path, stdout, *quiet) {
			status = exitInvalid
		}
	}
	return status
}

func collectFiles(targets []string) ([]string, error) {
	var files []string
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, target)
			continue
		}
		found, err := platform.ListFormFiles(target)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func lintFile(path string, out io.Writer, quiet bool) bool {
	form, err := formspec.Load(path)
	if err == nil {
		if !quiet {
			fmt.Fprintf(out, "%s: ok (%d fields)\n", path, len(form.Fields))
		}
		return true
	}

	var verr *formspec.ValidationError
	if errors.As(err, &verr) {
		for _, issue := range verr.Issues {
			fmt.Fprintf(out, "%s: %s\n", path, issue)
		}
		return false
	}
	fmt.Fprintln(out, err)
	return false
}
