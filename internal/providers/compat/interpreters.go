package compat

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Command runs scripts with an external interpreter: bin [prefix...] script [args...]
type Command struct {
	bin    string
	prefix []string
	runner *Runner
}

// NewPython runs .py scripts with python3
func NewPython(bin string, runner *Runner) *Command {
	return &Command{bin: bin, runner: runner}
}

// NewJava runs .jar archives with java -jar
func NewJava(bin string, runner *Runner) *Command {
	return &Command{bin: bin, prefix: []string{"-jar"}, runner: runner}
}

// Run executes the script
func (c *Command) Run(ctx context.Context, scriptPath string, args []string) (*types.ProcessResult, error) {
	argv := make([]string, 0, len(c.prefix)+1+len(args))
	argv = append(argv, c.prefix...)
	argv = append(argv, scriptPath)
	argv = append(argv, args...)
	return c.runner.Run(ctx, c.bin, argv...)
}

// JavaScript runs .js files with node, or with an embedded ECMAScript VM
// when node is not installed
type JavaScript struct {
	node   string
	runner *Runner
	logger *zap.Logger
}

// NewJavaScript creates the JavaScript interpreter
func NewJavaScript(node string, runner *Runner, logger *zap.Logger) *JavaScript {
	return &JavaScript{
		node:   node,
		runner: runner,
		logger: logging.Component(logger, "javascript"),
	}
}

// Run executes the script
func (j *JavaScript) Run(ctx context.Context, scriptPath string, args []string) (*types.ProcessResult, error) {
	if j.runner.Has(j.node) {
		return j.runner.Run(ctx, j.node, append([]string{scriptPath}, args...)...)
	}
	j.logger.Info("node not found, using embedded JavaScript VM", zap.String("script", scriptPath))
	return runJavaScriptInProcess(ctx, scriptPath, args)
}

func runJavaScriptInProcess(ctx context.Context, scriptPath string, args []string) (*types.ProcessResult, error) {
	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	vm := goja.New()
	var (
		mu             sync.Mutex
		stdout, stderr strings.Builder
	)
	printer := func(w *strings.Builder) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, len(call.Arguments))
			for i, arg := range call.Arguments {
				parts[i] = arg.String()
			}
			mu.Lock()
			w.WriteString(strings.Join(parts, " "))
			w.WriteString("\n")
			mu.Unlock()
			return goja.Undefined()
		}
	}

	console := vm.NewObject()
	_ = console.Set("log", printer(&stdout))
	_ = console.Set("info", printer(&stdout))
	_ = console.Set("warn", printer(&stderr))
	_ = console.Set("error", printer(&stderr))
	_ = vm.Set("console", console)

	process := vm.NewObject()
	_ = process.Set("argv", append([]string{"node", scriptPath}, args...))
	_ = vm.Set("process", process)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt("context cancelled")
		case <-done:
		}
	}()

	res := &types.ProcessResult{}
	if _, err := vm.RunScript(scriptPath, string(src)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		res.ExitCode = 1
		mu.Lock()
		stderr.WriteString(err.Error())
		stderr.WriteString("\n")
		mu.Unlock()
	}

	mu.Lock()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	mu.Unlock()
	return res, nil
}
