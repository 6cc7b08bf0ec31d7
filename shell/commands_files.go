package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yashsuthar/termfolio/vfs"
)

func fileCommands() []command {
	return []command{
		{names: m("ls"), f: cmdLs},
		{names: m("cd"), f: cmdCd},
		{names: m("pwd"), f: cmdPwd},
		{names: m("cat"), f: cmdCat},
		{names: m("head"), f: cmdHead},
		{names: m("tail"), f: cmdTail},
		{names: m("grep"), f: cmdGrep},
		{names: m("find"), f: cmdFind},
		{names: m("tree"), f: cmdTree},
	}
}

func cmdLs(args []string, s *Session) Output {
	long, all := false, false
	pathArg := ""
	for _, arg := range args {
		switch arg {
		case "-la", "-al":
			long, all = true, true
		case "-l":
			long = true
		case "-a":
			all = true
		default:
			if pathArg == "" && !strings.HasPrefix(arg, "-") {
				pathArg = arg
			}
		}
	}

	segs := s.Path()
	if pathArg != "" {
		segs = vfs.Resolve(segs, pathArg)
	}
	dir, err := vfs.LookupDir(s.fs, segs)
	if err != nil {
		return errorf(s, fmt.Sprintf("ls: cannot access '%s': No such file or directory", pathArg))
	}

	names := []string{}
	for _, name := range dir.Names() {
		if !all && strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}

	if long {
		lines := []string{fmt.Sprintf("total %d", len(names))}
		for _, name := range names {
			perms, size := "-rw-r--r--", 0
			switch entry := dir.Entries[name].(type) {
			case vfs.Dir:
				perms, size = "drwxr-xr-x", 4096
			case vfs.File:
				size = len(entry.Content)
			}
			lines = append(lines, fmt.Sprintf("%s yash yash %8d Jan 15 12:34 %s", perms, size, name))
		}
		return text(s, strings.Join(lines, "\n"))
	}

	items := []string{}
	for _, name := range names {
		if _, isDir := dir.Entries[name].(vfs.Dir); isDir {
			items = append(items, name+"/")
		} else {
			items = append(items, name)
		}
	}
	return text(s, strings.Join(items, "  "))
}

func cmdCd(args []string, s *Session) Output {
	if len(args) == 0 || args[0] == "~" {
		s.SetPath(vfs.HomePath())
		return text(s, "")
	}
	segs := vfs.Resolve(s.Path(), args[0])
	if _, err := vfs.LookupDir(s.fs, segs); err != nil {
		if err == vfs.ErrNotFound {
			return errorf(s, fmt.Sprintf("cd: %s: No such file or directory", args[0]))
		}
		return errorf(s, fmt.Sprintf("cd: %s: Not a directory", args[0]))
	}
	s.SetPath(segs)
	return text(s, "")
}

func cmdPwd(args []string, s *Session) Output {
	return text(s, vfs.PathString(s.Path()))
}

// loadFile resolves and fetches a file for cat/head/tail, mapping lookup
// failures to the command-specific message.
func loadFile(cmd string, arg string, s *Session) (vfs.File, *Output) {
	segs := vfs.Resolve(s.Path(), arg)
	file, err := vfs.LookupFile(s.fs, segs)
	if err == vfs.ErrIsDir {
		out := errorf(s, fmt.Sprintf("%s: %s: Is a directory", cmd, arg))
		return vfs.File{}, &out
	} else if err != nil {
		out := errorf(s, fmt.Sprintf("%s: %s: No such file or directory", cmd, arg))
		return vfs.File{}, &out
	}
	return file, nil
}

func cmdCat(args []string, s *Session) Output {
	if len(args) == 0 {
		return errorf(s, "cat: missing operand")
	}
	file, errOut := loadFile("cat", args[0], s)
	if errOut != nil {
		return *errOut
	}
	return text(s, file.Content)
}

func cmdHead(args []string, s *Session) Output {
	if len(args) == 0 {
		return errorf(s, "head: missing operand")
	}
	file, errOut := loadFile("head", args[0], s)
	if errOut != nil {
		return *errOut
	}
	lines := strings.Split(file.Content, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	return text(s, strings.Join(lines, "\n"))
}

func cmdTail(args []string, s *Session) Output {
	if len(args) == 0 {
		return errorf(s, "tail: missing operand")
	}
	file, errOut := loadFile("tail", args[0], s)
	if errOut != nil {
		return *errOut
	}
	lines := strings.Split(file.Content, "\n")
	if len(lines) > 10 {
		lines = lines[len(lines)-10:]
	}
	return text(s, strings.Join(lines, "\n"))
}

func cmdGrep(args []string, s *Session) Output {
	if len(args) == 0 {
		return errorf(s, "grep: missing operand")
	}
	return text(s, "grep: requires file input or pipe")
}

func cmdFind(args []string, s *Session) Output {
	if len(args) == 0 {
		return errorf(s, "find: missing operand")
	}
	needle := args[0]
	results := []string{}
	vfs.Walk(s.fs, func(path string, node vfs.Node) bool {
		parts := strings.Split(path, "/")
		if strings.Contains(parts[len(parts)-1], needle) {
			results = append(results, path)
		}
		return true
	})
	if len(results) == 0 {
		return errorf(s, fmt.Sprintf("find: '%s': No such file or directory", needle))
	}
	sort.Strings(results)
	return text(s, strings.Join(results, "\n"))
}

func cmdTree(args []string, s *Session) Output {
	dir, err := vfs.LookupDir(s.fs, s.Path())
	if err != nil {
		return errorf(s, "tree: cannot open directory")
	}
	lines := []string{vfs.PathString(s.Path())}
	renderTree(dir, "", &lines)
	return text(s, strings.Join(lines, "\n"))
}

func renderTree(dir vfs.Dir, prefix string, lines *[]string) {
	names := dir.Names()
	for idx, name := range names {
		connector, childPrefix := "├── ", prefix+"│   "
		if idx == len(names)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		entry := dir.Entries[name]
		if sub, isDir := entry.(vfs.Dir); isDir {
			*lines = append(*lines, prefix+connector+name+"/")
			renderTree(sub, childPrefix, lines)
		} else {
			*lines = append(*lines, prefix+connector+name)
		}
	}
}
