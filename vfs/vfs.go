// Package vfs implements the read-only virtual filesystem that the shell
// commands navigate. The tree is built once at startup and never mutated.
package vfs

import (
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound = fmt.Errorf("no such file or directory")
	ErrNotDir   = fmt.Errorf("not a directory")
	ErrIsDir    = fmt.Errorf("is a directory")
)

// Node is either a File or a Dir.
type Node interface {
	isNode()
}

type File struct {
	Content string
}

func (File) isNode() {}

type Dir struct {
	Entries map[string]Node
}

func (Dir) isNode() {}

// Names returns the entry names in sorted order.
func (d Dir) Names() []string {
	names := make([]string, 0, len(d.Entries))
	for name := range d.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve computes the path segments that a path string denotes relative to
// cur. Absolute paths are split directly, ".." pops a segment, "." is a
// no-op, anything else is appended. Resolution is pure segment arithmetic:
// nothing is checked against the tree until a command traverses it.
func Resolve(cur []string, path string) []string {
	if strings.HasPrefix(path, "/") {
		return splitPath(path)
	}
	resolved := make([]string, len(cur))
	copy(resolved, cur)
	for _, part := range splitPath(path) {
		switch part {
		case "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		case ".":
		default:
			resolved = append(resolved, part)
		}
	}
	return resolved
}

func splitPath(path string) []string {
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Lookup walks segs from root. A missing entry yields ErrNotFound, a file
// in a directory position yields ErrNotDir.
func Lookup(root Dir, segs []string) (Node, error) {
	var node Node = root
	for _, seg := range segs {
		dir, ok := node.(Dir)
		if !ok {
			return nil, ErrNotDir
		}
		next, found := dir.Entries[seg]
		if !found {
			return nil, ErrNotFound
		}
		node = next
	}
	return node, nil
}

// LookupDir is Lookup restricted to directories.
func LookupDir(root Dir, segs []string) (Dir, error) {
	node, err := Lookup(root, segs)
	if err != nil {
		return Dir{}, err
	}
	dir, ok := node.(Dir)
	if !ok {
		return Dir{}, ErrNotDir
	}
	return dir, nil
}

// LookupFile is Lookup restricted to files.
func LookupFile(root Dir, segs []string) (File, error) {
	node, err := Lookup(root, segs)
	if err != nil {
		return File{}, err
	}
	file, ok := node.(File)
	if !ok {
		return File{}, ErrIsDir
	}
	return file, nil
}

// Walk visits every node below root depth-first in sorted name order,
// calling f with the full slash-separated path of each entry. Returning
// false from f stops the walk.
func Walk(root Dir, f func(path string, node Node) bool) {
	walk(root, "", f)
}

func walk(dir Dir, prefix string, f func(path string, node Node) bool) bool {
	for _, name := range dir.Names() {
		node := dir.Entries[name]
		path := prefix + "/" + name
		if !f(path, node) {
			return false
		}
		if sub, ok := node.(Dir); ok {
			if !walk(sub, path, f) {
				return false
			}
		}
	}
	return true
}

// PathString renders segments as an absolute path, "/" for the root.
func PathString(segs []string) string {
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/")
}
