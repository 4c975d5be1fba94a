// Package flags registers the shared cobra flags for analysis commands.
package flags

import "github.com/spf13/cobra"

// AnalyzeFlags collects everything the analyze command accepts.
// Policy-file values load first; explicitly set flags override them.
type AnalyzeFlags struct {
	Format      string
	Out         string
	PolicyFile  string
	Timezone    string
	FileOrder   string
	Dedupe      bool
	CountUnsent bool
	CountMedia  bool
	Top         int
}

// AddOutputFlags registers where and how results are written.
func AddOutputFlags(cmd *cobra.Command, f *AnalyzeFlags) {
	cmd.Flags().StringVarP(&f.Format, "format", "f", "text", "Output format: text, json, csv, transcript")
	cmd.Flags().StringVarP(&f.Out, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().IntVar(&f.Top, "top", 10, "Number of entries in top-sender and top-emoji rankings")
}

// AddPolicyFlags registers the analysis policy knobs.
func AddPolicyFlags(cmd *cobra.Command, f *AnalyzeFlags) {
	cmd.Flags().StringVarP(&f.PolicyFile, "policy", "p", "", "Path to a YAML policy file")
	cmd.Flags().StringVar(&f.Timezone, "timezone", "", "IANA timezone for export timestamps (default: UTC)")
	cmd.Flags().StringVar(&f.FileOrder, "file-order", "", "Export numbering convention: oldest_first or newest_first")
	cmd.Flags().BoolVar(&f.Dedupe, "dedupe", false, "Drop duplicate messages across overlapping export files")
	cmd.Flags().BoolVar(&f.CountUnsent, "count-unsent", false, "Count unsent-message placeholders toward volume")
	cmd.Flags().BoolVar(&f.CountMedia, "count-media", false, "Count media and shared posts toward volume")
}

// AddAnalyzeFlags registers the full analyze flag set.
func AddAnalyzeFlags(cmd *cobra.Command, f *AnalyzeFlags) {
	AddOutputFlags(cmd, f)
	AddPolicyFlags(cmd, f)
}
