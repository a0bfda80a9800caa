package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/config"
	"github.com/GriffinCanCode/AlteronOS/internal/system"
)

// newSystem builds the runtime for a command
var newSystem = system.New

type cli struct {
	sys *system.System
}

// NewRootCmd creates the alteron command tree. The returned func releases the
// system started by the command, whether or not the command failed, and may be
// called more than once.
func NewRootCmd() (*cobra.Command, func()) {
	c := &cli{}

	root := &cobra.Command{
		Use:   "alteron",
		Short: "Universal application launcher and AOSFS shell",
		Long: `alteron classifies Windows, Linux, macOS and cross-platform applications,
launches them through the matching compatibility layer, and hosts the
AOSFS virtual filesystem shell.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			sys, err := newSystem(cfg)
			if err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}
			c.sys = sys
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.classifyCmd(),
		c.runCmd(),
		c.installCmd(),
		c.scanCmd(),
		c.platformsCmd(),
		c.infoCmd(),
		c.fsinfoCmd(),
		c.shellCmd(),
	)
	return root, c.close
}

func (c *cli) close() {
	if c.sys != nil {
		c.sys.Close()
		c.sys = nil
	}
}
