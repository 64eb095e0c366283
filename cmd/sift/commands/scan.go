package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sift/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [roots...]",
		Short: "Recursively list files beneath each root, applying exclusion rules",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			excludeDirs, _ := cmd.Flags().GetStringArray("exclude-dir")
			excludeExts, _ := cmd.Flags().GetStringArray("exclude-ext")
			configPath, _ := cmd.Flags().GetString("config")
			countOnly, _ := cmd.Flags().GetBool("count")
			hash, _ := cmd.Flags().GetBool("hash")
			strict, _ := cmd.Flags().GetBool("strict")
			verbose, _ := cmd.Flags().GetBool("verbose")
			jsonLogs, _ := cmd.Flags().GetBool("json")

			return c.app.Scan(cmd.Context(), args, app.ScanOptions{
				ConfigPath:  configPath,
				ExcludeDirs: excludeDirs,
				ExcludeExts: excludeExts,
				CountOnly:   countOnly,
				Hash:        hash,
				Strict:      strict,
				Verbose:     verbose,
				JSON:        jsonLogs,
			})
		},
	}
	// StringArray, not StringSlice: exclusion patterns are regexes and may
	// contain commas.
	cmd.Flags().StringArrayP("exclude-dir", "d", nil, "Regex matched against a directory's full path; a match prunes the subtree (repeatable)")
	cmd.Flags().StringArrayP("exclude-ext", "e", nil, "Regex matched against a file's full path; a match skips the file (repeatable)")
	cmd.Flags().StringP("config", "c", "", "Path to a rules file (default: sift.yaml in the working directory, if present)")
	cmd.Flags().Bool("count", false, "Print only the per-root summary, not individual files")
	cmd.Flags().Bool("hash", false, "Print each file's xxhash64 next to its path")
	cmd.Flags().Bool("strict", false, "Exit non-zero if any entry could not be processed")
	cmd.Flags().BoolP("verbose", "v", false, "Enable per-entry debug traces")
	cmd.Flags().Bool("json", false, "Emit logs as JSON")
	return cmd
}
