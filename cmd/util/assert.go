package util

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func Warnf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Verbosef is like Warnf, but only prints when the 'verbose' flag is set.
func Verbosef(format string, v ...interface{}) {
	if FlagVerbose {
		log.Printf(format, v...)
	}
}

func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

func Assert(err error, v ...interface{}) {
	if err != nil {
		if len(v) == 0 {
			Fatalf("ERROR: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Fatalf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
	}
}

func AssertNArg(n int) {
	if flag.NArg() != n {
		flag.Usage()
	}
}

// AssertFlag quits with the usage message if a required string flag was
// left empty.
func AssertFlag(name, value string) {
	if len(value) == 0 {
		log.Printf("The '-%s' flag is required.\n\n", name)
		flag.Usage()
	}
}

func AssertIsDir(path string) {
	info, err := os.Stat(path)
	Assert(err, "Directory '%s' is not accessible", path)
	if !info.IsDir() {
		Fatalf("'%s' is not a directory.", path)
	}
}

// AssertIsFile is like AssertIsDir, but for regular files.
func AssertIsFile(path string) {
	info, err := os.Stat(path)
	Assert(err, "File '%s' is not accessible", path)
	if info.IsDir() {
		Fatalf("'%s' is a directory.", path)
	}
}
