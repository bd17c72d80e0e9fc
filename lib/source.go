package lib

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const SourceExt = ".kal"

// ParseFile parses a whole source file into a Module. Parse errors are
// recorded on the module; the returned error is only for I/O failures.
func ParseFile(filePath string, prec PrecedenceTable) (Module, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return Module{}, err
	}
	defer f.Close()

	builder := NewModuleBuilder(moduleNameFromPath(filePath))
	parser := NewParser(NewLexer(bufio.NewReader(f)), prec)
	if err := NewDriver(parser, builder).Run(); err != nil {
		return Module{}, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	return builder.Module(), nil
}

// ParseDir parses every source file in dir, sorted by file name.
func ParseDir(dir string, prec PrecedenceTable) ([]Module, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != SourceExt {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	modules := []Module{}
	for _, name := range names {
		m, err := ParseFile(filepath.Join(dir, name), prec)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}

func moduleNameFromPath(filePath string) string {
	fileName := filepath.Base(filePath)
	parts := strings.Split(fileName, ".")
	return parts[0]
}
