package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weft/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [dir]",
		Short: "Resolve workspace dependencies, refresh links, and write the manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			lenient, _ := cmd.Flags().GetBool("lenient-versions")
			linkRoot, _ := cmd.Flags().GetString("link-root")
			manifestPath, _ := cmd.Flags().GetString("manifest")
			debug, _ := cmd.Flags().GetBool("debug")
			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				Dir:             dir,
				LinkRoot:        linkRoot,
				ManifestPath:    manifestPath,
				LenientVersions: lenient,
				Debug:           debug,
			})
		},
	}
	cmd.Flags().Bool("lenient-versions", false, "Report version lockstep violations as warnings instead of errors")
	cmd.Flags().String("link-root", "", "Override the linked-packages directory")
	cmd.Flags().String("manifest", "", "Override the resolution manifest path")
	return cmd
}
