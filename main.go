package main

import (
	"context"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/df07/go-raycaster/web/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "raycaster",
		Short:        "Point-light ray caster for spheres, boxes and triangles",
		SilenceUsage: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newRenderCommand(),
		newScenesCommand(),
		newServeCommand(),
	)
	return cmd
}

type renderOpts struct {
	scene      string
	scenesDir  string
	width      int
	height     int
	integrator string
	twoSided   bool
	columns    int
}

// AddFlags binds the render flags to fs
func (o *renderOpts) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.scene, "scene", "default", "Scene id (see 'scenes') or path to a .yaml scene file")
	fs.StringVar(&o.scenesDir, "scenes-dir", "scenes", "Directory searched for yaml:<name> scenes")
	fs.IntVar(&o.width, "width", 0, "Image width; 0 keeps the scene's own size")
	fs.IntVar(&o.height, "height", 0, "Image height; 0 keeps the scene's own size")
	fs.StringVar(&o.integrator, "integrator", "raytrace", "Integrator: raytrace or normals")
	fs.BoolVar(&o.twoSided, "two-sided", false, "Shade back faces as if they were front faces")
	fs.IntVar(&o.columns, "columns", 80, "Width of the ASCII preview in characters")
}

func newRenderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene and print an ASCII preview",
		Long: `Render a builtin scene, a scene file from --scenes-dir ("yaml:<name>"),
or a scene file given by path, and print a luminance preview to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(opts.scene, opts.scenesDir, opts.width, opts.height)
			if err != nil {
				return err
			}

			rt, err := renderer.NewSceneRenderer(s, opts.integrator, opts.twoSided)
			if err != nil {
				return err
			}

			img, stats, err := rt.Render(cmd.Context())
			if err != nil {
				return err
			}
			klog.InfoS("Render completed", "scene", s.Name, "width", s.Width, "height", s.Height,
				"primitives", s.GetPrimitiveCount(), "lights", len(s.Lights),
				"litPixels", stats.LitPixels, "clippedPixels", stats.ClippedPixels,
				"duration", stats.Duration, "raysPerSecond", int(stats.RaysPerSecond()))

			_, err = fmt.Fprint(cmd.OutOrStdout(), renderer.ASCII(img, opts.columns))
			return err
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

// loadScene resolves a scene id or file path and applies a size override
func loadScene(id, scenesDir string, width, height int) (*scene.Scene, error) {
	if (width == 0) != (height == 0) {
		return nil, errors.New("--width and --height must be given together")
	}

	var s *scene.Scene
	var err error
	if strings.HasSuffix(id, ".yaml") || strings.HasSuffix(id, ".yml") {
		s, err = scene.LoadFile(id)
	} else {
		s, err = scene.Create(id, scenesDir)
	}
	if err != nil {
		return nil, err
	}

	if width != 0 {
		if err := s.SetCamera(s.CameraConfig, width, height); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func newScenesCommand() *cobra.Command {
	var scenesDir string

	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List builtin scenes and scene files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := scene.Discover(scenesDir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, group := range response.Groups {
				fmt.Fprintf(out, "%s:\n", group.Name)
				for _, info := range group.Scenes {
					fmt.Fprintf(out, "  %-20s %s\n", info.ID, info.Description)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scenesDir, "scenes-dir", "scenes", "Directory scanned for *.yaml scene files")
	return cmd
}

func newServeCommand() *cobra.Command {
	var port int
	var scenesDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scene listings and PNG renders over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port < 0 || port > 65535 {
				return errors.Errorf("invalid port %d", port)
			}
			return server.NewServer(port, scenesDir).Start(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "Port to serve on")
	cmd.Flags().StringVar(&scenesDir, "scenes-dir", "scenes", "Directory scanned for *.yaml scene files")
	return cmd
}
