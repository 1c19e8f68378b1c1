// Package loader discovers JavaScript source files under a project root,
// parses each one with jswalker, and assembles the project.ModuleInput
// slice the Project Analyser consumes.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/complexityscope/complexityscope/internal/jswalker"
	"github.com/complexityscope/complexityscope/internal/project"
)

// jsExtension is the only source extension this loader recognises; the
// project analyser's CommonJS resolver assumes it when a require path
// carries no extension of its own.
const jsExtension = ".js"

// Load walks root recursively, parses every .js file it finds (skipping
// hidden directories and node_modules), and returns the resulting
// ModuleInput slice with Path set to the file's path relative to root.
// Parsed trees are never closed by Load: callers own the returned Tree
// values via ModuleInput.AST and must Close them once analysis is done.
func Load(ctx context.Context, root string) ([]project.ModuleInput, error) {
	var modules []project.ModuleInput

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != jsExtension {
			return nil
		}

		module, err := loadModule(ctx, root, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		modules = append(modules, module)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loader: walk %s: %w", root, err)
	}

	return modules, nil
}

func loadModule(ctx context.Context, root, path string) (project.ModuleInput, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return project.ModuleInput{}, fmt.Errorf("read: %w", err)
	}

	tree, err := jswalker.Parse(ctx, source)
	if err != nil {
		return project.ModuleInput{}, fmt.Errorf("parse: %w", err)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	return project.ModuleInput{AST: tree, Path: rel}, nil
}

// skipDir reports whether a directory should be excluded from the walk:
// dotdirs (.git, .cache, ...) and node_modules, which never contain a
// project's own source.
func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}

	return name == "node_modules"
}
