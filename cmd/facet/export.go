package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		out      string
		size     float64
		radius   float64
		lat, lon int
	)
	cmd := &cobra.Command{
		Use:       "export cube|sphere",
		Short:     "Export a generated mesh as binary glTF",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"cube", "sphere"},
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.logger()
			if err != nil {
				return err
			}

			var m *models.Mesh
			switch args[0] {
			case "cube":
				m = models.CubeMesh(size)
			case "sphere":
				m = models.UVSphere(math3d.Zero3(), radius, lat, lon)
			}
			path := out
			if path == "" {
				path = args[0] + ".glb"
			}
			if err := models.SaveGLB(path, m); err != nil {
				return fmt.Errorf("export %s: %w", args[0], err)
			}
			log.Info("exported", "path", path, "vertices", m.VertexCount(), "faces", m.FaceCount())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "Output .glb file (default <shape>.glb)")
	f.Float64Var(&size, "size", 2, "Cube edge length")
	f.Float64Var(&radius, "radius", 1, "Sphere radius")
	f.IntVar(&lat, "lat", 8, "Sphere latitude segments")
	f.IntVar(&lon, "lon", 12, "Sphere longitude segments")
	return cmd
}
