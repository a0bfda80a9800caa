package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"mvdan.cc/sh/v3/shell"

	"github.com/GriffinCanCode/AlteronOS/internal/domain/app"
	"github.com/GriffinCanCode/AlteronOS/internal/domain/vfs"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/id"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/paths"
)

// ErrExit is returned by Exec for the exit command
var ErrExit = errors.New("exit")

// Shell is an interactive AOSFS session
type Shell struct {
	store   *vfs.Store
	apps    *app.Manager
	metrics *monitoring.Metrics
	session *Session
	styles  Styles
	logger  *zap.Logger
}

// New creates a shell rooted at the store's mount point. apps may be nil,
// which disables run, install and classify.
func New(store *vfs.Store, apps *app.Manager, logger *zap.Logger) *Shell {
	return &Shell{
		store: store,
		apps:  apps,
		session: &Session{
			ID:        id.NewSessionID(),
			Cwd:       store.Info().Root,
			StartedAt: time.Now(),
		},
		styles: DefaultStyles(),
		logger: logging.Component(logger, "terminal"),
	}
}

// WithStyles replaces the output styles
func (s *Shell) WithStyles(styles Styles) *Shell {
	s.styles = styles
	return s
}

// WithMetrics enables the stats command
func (s *Shell) WithMetrics(metrics *monitoring.Metrics) *Shell {
	s.metrics = metrics
	return s
}

// Session returns the session state
func (s *Shell) Session() SessionInfo {
	return s.session.Info()
}

// Run reads commands from in until exit, end of input or cancellation
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("Shell session started",
		zap.String("session", s.session.ID.String()),
		zap.String("cwd", s.session.Cwd))
	defer s.logger.Info("Shell session ended",
		zap.String("session", s.session.ID.String()),
		zap.Int("commands", s.session.Commands))

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, s.styles.Prompt.Render(s.prompt()))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		output, err := s.Exec(ctx, scanner.Text())
		if output != "" {
			fmt.Fprintln(out, output)
		}
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, s.styles.Error.Render("error: "+err.Error()))
		}
	}
}

// Exec runs one command line and returns its output
func (s *Shell) Exec(ctx context.Context, line string) (string, error) {
	argv, err := shell.Fields(line, func(string) string { return "" })
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	if len(argv) == 0 {
		return "", nil
	}
	s.session.Commands++
	return s.Execute(ctx, argv[0], argv[1:])
}

func (s *Shell) prompt() string {
	return fmt.Sprintf("aosfs:%s$ ", s.session.Cwd)
}

// resolve makes a virtual path absolute against the working directory
func (s *Shell) resolve(p string) string {
	p = paths.Normalize(p)
	if p == "" {
		return s.session.Cwd
	}
	if strings.Contains(p, ":") || strings.HasPrefix(p, paths.Separator) {
		return p
	}
	return path.Join(s.session.Cwd, p)
}
