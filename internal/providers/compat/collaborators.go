package compat

import (
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AlteronOS/internal/domain/dispatch"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/config"
)

// New wires every collaborator from configuration
func New(cfg config.CompatConfig, logger *zap.Logger) dispatch.Collaborators {
	runner := NewRunner(cfg.UsePTY, logger)
	return dispatch.Collaborators{
		Windows: NewWine(cfg.Wine, runner),
		Linux:   NewLinux(cfg.Dpkg, cfg.Bash, cfg.ExtractDir, runner, logger),
		MacOS:   NewDarling(cfg.Darling, runner),
		Interpreters: map[string]dispatch.Interpreter{
			dispatch.LangPython:     NewPython(cfg.Python, runner),
			dispatch.LangJavaScript: NewJavaScript(cfg.Node, runner, logger),
			dispatch.LangJava:       NewJava(cfg.Java, runner),
		},
	}
}
