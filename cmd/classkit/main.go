package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	json "github.com/goccy/go-json"

	classkit "github.com/reoring/classkit"
	"github.com/reoring/classkit/classfile"
	"github.com/reoring/classkit/jsonschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "lint":
		lintCmd(os.Args[2:])
	case "mro":
		mroCmd(os.Args[2:])
	case "schema":
		schemaCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "classkit CLI\n\nUsage:\n  classkit lint [-watch] classfile\n  classkit mro -class C classfile\n  classkit schema -class C [-o out.json] classfile")
}

func lintCmd(args []string) {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	var watch bool
	fs.BoolVar(&watch, "watch", false, "re-lint when the classfile changes")
	_ = fs.Parse(args)
	path := fs.Arg(0)
	if path == "" {
		fs.Usage()
		os.Exit(2)
	}

	ok := lintOnce(path)
	if !watch {
		if !ok {
			os.Exit(1)
		}
		return
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		fatalf("watch: %v", err)
	}
	defer w.Close()
	// Watch the directory: editors replace files on save, which drops a
	// watch placed on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		fatalf("watch %s: %v", filepath.Dir(path), err)
	}
	for {
		select {
		case ev, open := <-w.Events:
			if !open {
				return
			}
			if ev.Name != path && filepath.Base(ev.Name) != filepath.Base(path) {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				lintOnce(path)
			}
		case err, open := <-w.Errors:
			if !open {
				return
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func lintOnce(path string) bool {
	reg, err := classfile.LoadFile(path)
	if err != nil {
		reportIssues(path, err)
		return false
	}
	fmt.Printf("%s: ok (%d classes: %s)\n", path, reg.Len(), strings.Join(reg.Names(), ", "))
	return true
}

func mroCmd(args []string) {
	fs := flag.NewFlagSet("mro", flag.ExitOnError)
	var class string
	fs.StringVar(&class, "class", "", "class name to linearize")
	_ = fs.Parse(args)
	path := fs.Arg(0)
	if path == "" || class == "" {
		fs.Usage()
		os.Exit(2)
	}
	cls := loadClass(path, class)
	names := []string{}
	for _, a := range cls.MRO() {
		names = append(names, a.Name())
	}
	fmt.Println(strings.Join(names, " -> "))
}

func schemaCmd(args []string) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var class string
	var out string
	fs.StringVar(&class, "class", "", "class name to project")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)
	path := fs.Arg(0)
	if path == "" || class == "" {
		fs.Usage()
		os.Exit(2)
	}
	cls := loadClass(path, class)
	schema, err := jsonschema.FromClass(cls)
	if err != nil {
		reportIssues(path, err)
		os.Exit(1)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fatalf("encode schema: %v", err)
	}
	data = append(data, '\n')
	if out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func loadClass(path, class string) *classkit.Class {
	reg, err := classfile.LoadFile(path)
	if err != nil {
		reportIssues(path, err)
		os.Exit(1)
	}
	cls, ok := reg.Get(class)
	if !ok {
		fatalf("%s: no class %q (have: %s)", path, class, strings.Join(reg.Names(), ", "))
	}
	return cls
}

func reportIssues(path string, err error) {
	if iss, ok := classkit.AsIssues(err); ok {
		for _, it := range iss {
			loc := it.Class
			if it.Attr != "" {
				loc += "." + it.Attr
			}
			fmt.Fprintf(os.Stderr, "%s: %s at %s: %s\n", path, it.Code, loc, it.Message)
			if it.Hint != "" {
				fmt.Fprintf(os.Stderr, "  hint: %s\n", it.Hint)
			}
		}
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
