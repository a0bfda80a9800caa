package terminal

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/paths"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

type command struct {
	usage string
	help  string
	args  int // minimum argument count
}

var commands = map[string]command{
	"ls":       {usage: "ls [dir]", help: "List a directory"},
	"cat":      {usage: "cat <file>", help: "Show a file", args: 1},
	"mkdir":    {usage: "mkdir <dir.dir>", help: "Create a directory", args: 1},
	"touch":    {usage: "touch <file>", help: "Create an empty file", args: 1},
	"edit":     {usage: "edit <file> <content...>", help: "Replace a file's content", args: 2},
	"create":   {usage: "create <file> [content...]", help: "Create a file", args: 1},
	"find":     {usage: "find <pattern>", help: "Find files whose path contains pattern", args: 1},
	"glob":     {usage: "glob <pattern>", help: "Match paths with ** patterns", args: 1},
	"pwd":      {usage: "pwd", help: "Print the working directory"},
	"fsinfo":   {usage: "fsinfo", help: "Describe the filesystem"},
	"stats":    {usage: "stats", help: "Show runtime counters"},
	"run":      {usage: "run <host-path> [args...]", help: "Launch an application", args: 1},
	"install":  {usage: "install <host-path>", help: "Install a package", args: 1},
	"classify": {usage: "classify <host-path>", help: "Show the platform of a file", args: 1},
	"help":     {usage: "help", help: "Show this help"},
	"exit":     {usage: "exit", help: "Leave the shell"},
}

var errNoLauncher = errors.New("application launcher not available")

// Execute routes a command to its implementation
func (s *Shell) Execute(ctx context.Context, name string, args []string) (string, error) {
	cmd, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command: %s (try help)", name)
	}
	if len(args) < cmd.args {
		return "", fmt.Errorf("usage: %s", cmd.usage)
	}

	switch name {
	case "ls":
		return s.list(args)
	case "cat":
		return s.store.ReadFile(s.resolve(args[0])), nil
	case "mkdir":
		return s.mkdir(args[0])
	case "touch":
		return s.touch(args[0])
	case "edit":
		return s.write(args[0], strings.Join(args[1:], " "))
	case "create":
		return s.create(args[0], strings.Join(args[1:], " "))
	case "find":
		return strings.Join(s.store.Find(args[0]), "\n"), nil
	case "glob":
		matches, err := s.store.Glob(s.resolve(args[0]))
		return strings.Join(matches, "\n"), err
	case "pwd":
		return s.session.Cwd, nil
	case "fsinfo":
		return s.fsinfo(), nil
	case "stats":
		return s.stats()
	case "run":
		return s.launch(ctx, args[0], args[1:])
	case "install":
		return s.install(ctx, args[0])
	case "classify":
		return s.classify(args[0])
	case "help":
		return s.help(), nil
	case "exit":
		return "", ErrExit
	default:
		return "", fmt.Errorf("unknown command: %s", name)
	}
}

func (s *Shell) list(args []string) (string, error) {
	dir := s.session.Cwd
	if len(args) > 0 {
		dir = s.resolve(args[0])
	}
	names := s.store.List(dir)
	if len(names) == 0 {
		return "(empty)", nil
	}
	for i, n := range names {
		if strings.HasSuffix(n, paths.Separator) {
			names[i] = s.styles.Dir.Render(n)
		}
	}
	return strings.Join(names, "  "), nil
}

func (s *Shell) mkdir(dir string) (string, error) {
	p := s.resolve(dir)
	if err := s.store.CreateDirectory(p); err != nil {
		return "", err
	}
	return s.styles.Success.Render("Created directory " + p), nil
}

func (s *Shell) touch(file string) (string, error) {
	p, created, err := s.store.Touch(s.resolve(file))
	if err != nil {
		return "", err
	}
	if !created {
		return p + " already exists", nil
	}
	return s.styles.Success.Render("Created file " + p), nil
}

func (s *Shell) create(file, content string) (string, error) {
	created, err := s.store.CreateFile(s.resolve(file), content)
	if err != nil {
		return "", err
	}
	return s.styles.Success.Render("Created file " + created), nil
}

func (s *Shell) write(file, content string) (string, error) {
	written, err := s.store.WriteFile(s.resolve(file), content)
	if err != nil {
		return "", err
	}
	return s.styles.Success.Render("Updated " + written), nil
}

var errNoMetrics = errors.New("runtime counters not available")

func (s *Shell) stats() (string, error) {
	if s.metrics == nil {
		return "", errNoMetrics
	}
	snap := s.metrics.Snapshot()
	lines := []string{
		s.styles.Heading.Render("Runtime"),
		fmt.Sprintf("Classifications:   %d", snap.Classifications),
		fmt.Sprintf("Dispatches:        %d", snap.Dispatches),
		fmt.Sprintf("Dispatch failures: %d", snap.DispatchFailures),
		fmt.Sprintf("Mutations:         %d", snap.Mutations),
		fmt.Sprintf("Protected denials: %d", snap.ProtectedDenials),
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Shell) fsinfo() string {
	info := s.store.Info()
	workers := "none"
	if len(info.NativeWorkers) > 0 {
		workers = strings.Join(info.NativeWorkers, ", ")
	}

	var b strings.Builder
	b.WriteString(s.styles.Heading.Render(info.Name))
	fmt.Fprintf(&b, "\nRoot: %s", info.Root)
	fmt.Fprintf(&b, "\nMounted: %t", info.Mounted)
	fmt.Fprintf(&b, "\nTXT support: %t", info.TxtSupport)
	fmt.Fprintf(&b, "\nProtected: %s", strings.Join(info.ProtectedPaths, ", "))
	fmt.Fprintf(&b, "\nNative workers: %s", workers)
	fmt.Fprintf(&b, "\nEntries: %d", info.Entries)
	return b.String()
}

func (s *Shell) launch(ctx context.Context, hostPath string, args []string) (string, error) {
	if s.apps == nil {
		return "", errNoLauncher
	}
	return s.outcome(s.apps.Launch(ctx, hostPath, args, nil))
}

func (s *Shell) install(ctx context.Context, hostPath string) (string, error) {
	if s.apps == nil {
		return "", errNoLauncher
	}
	return s.outcome(s.apps.Install(ctx, hostPath))
}

func (s *Shell) outcome(out *types.Outcome) (string, error) {
	if !out.Success {
		return strings.TrimRight(out.Output, "\n"), out.Err()
	}
	msg := s.styles.Success.Render(fmt.Sprintf("%s %s via %s", out.Platform, out.Op, out.Handler))
	if body := strings.TrimRight(out.Output, "\n"); body != "" {
		msg += "\n" + body
	}
	return msg, nil
}

func (s *Shell) classify(hostPath string) (string, error) {
	if s.apps == nil {
		return "", errNoLauncher
	}
	d := s.apps.Inspect(hostPath)
	line := fmt.Sprintf("%s: %s (%s)", hostPath, d.Platform, d.Method)
	if d.Format != "" {
		line += " format=" + d.Format
	}
	if d.MIME != "" {
		line += " mime=" + d.MIME
	}
	return line, nil
}

func (s *Shell) help() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(s.styles.Heading.Render("AOSFS commands"))
	for _, name := range names {
		c := commands[name]
		fmt.Fprintf(&b, "\n  %-28s %s", c.usage, c.help)
	}
	b.WriteString("\n\nDirectories must end with " + paths.DirSuffix + "; files are saved as " + paths.FileSuffix)
	return b.String()
}
