package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/AlteronOS/internal/domain/sniffer"
	"github.com/GriffinCanCode/AlteronOS/internal/providers/formats"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

func (c *cli) classifyCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "classify <path>",
		Short: "Show which platform a file belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := c.sys.Apps.Inspect(args[0])
			if format != "" {
				return encode(cmd.OutOrStdout(), format, d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), describe(d))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, yaml, toml)")
	return cmd
}

func (c *cli) runCmd() *cobra.Command {
	var platform string
	cmd := &cobra.Command{
		Use:   "run <path> [args...]",
		Short: "Launch an application",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var override *types.Platform
			if platform != "" {
				p := types.ParsePlatform(platform)
				if p == types.PlatformUnknown && platform != string(types.PlatformUnknown) {
					return fmt.Errorf("unknown platform %q (supported: %s)", platform, strings.Join(types.SupportedPlatformNames(), ", "))
				}
				override = &p
			}
			out := c.sys.Apps.Launch(cmd.Context(), args[0], args[1:], override)
			return report(cmd.OutOrStdout(), out)
		},
	}
	// Everything after the path belongs to the application
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Override the detected platform")
	return cmd
}

func (c *cli) installCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <path>",
		Short: "Install a package (.msi, .deb, .dmg, .pkg)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := c.sys.Apps.Install(cmd.Context(), args[0])
			return report(cmd.OutOrStdout(), out)
		},
	}
}

func (c *cli) scanCmd() *cobra.Command {
	var (
		include string
		all     bool
	)
	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "List launchable files under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := c.sys.Sniffer.Scan(cmd.Context(), args[0], sniffer.ScanOptions{
				Include:     include,
				KeepUnknown: all,
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintln(w, mutedStyle.Render("No applications found"))
				return nil
			}
			for _, d := range found {
				fmt.Fprintf(w, "%s  %s\n", platformStyle.Render(fmt.Sprintf("%-14s", d.Platform)), d.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&include, "include", "i", "", "Only report files matching this ** pattern")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Also report files classified as unknown")
	return cmd
}

func (c *cli) platformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List platforms that can be launched right now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range c.sys.Apps.AvailablePlatforms() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func (c *cli) infoCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show compatibility layers, native workers and runtime counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := c.sys.Apps.SystemInfo()
			snap := c.sys.Metrics.Snapshot()
			if format != "" {
				return encode(cmd.OutOrStdout(), format, systemReport{SystemInfo: info, Metrics: snap})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headingStyle.Render("AlteronOS compatibility"))
			fmt.Fprintf(w, "Windows: %s\n", yesNo(info.WindowsAvailable))
			fmt.Fprintf(w, "Linux:   %s\n", yesNo(info.LinuxAvailable))
			fmt.Fprintf(w, "macOS:   %s\n", yesNo(info.MacOSAvailable))
			fmt.Fprintf(w, "Native workers: %s\n", listOrNone(info.Workers))
			fmt.Fprintf(w, "Features: %s\n", strings.Join(info.Features, ", "))
			printSnapshot(w, snap)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, yaml, toml)")
	return cmd
}

func (c *cli) fsinfoCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "fsinfo",
		Short: "Describe the AOSFS virtual filesystem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := c.sys.Store.Info()
			if format != "" {
				return encode(cmd.OutOrStdout(), format, info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headingStyle.Render(info.Name))
			fmt.Fprintf(w, "Root: %s\n", info.Root)
			fmt.Fprintf(w, "Protected: %s\n", strings.Join(info.ProtectedPaths, ", "))
			fmt.Fprintf(w, "Native workers: %s\n", listOrNone(info.NativeWorkers))
			fmt.Fprintf(w, "Entries: %d\n", info.Entries)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, yaml, toml)")
	return cmd
}

func (c *cli) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive AOSFS shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headingStyle.Render("AlteronOS terminal")+mutedStyle.Render("  (type help)"))
			return c.sys.Shell().Run(cmd.Context(), cmd.InOrStdin(), w)
		},
	}
}

func encode(w io.Writer, name string, v interface{}) error {
	f, err := formats.Parse(name)
	if err != nil {
		return err
	}
	out, err := formats.Encode(f, v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
