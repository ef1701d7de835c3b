package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conform/internal/gitinfo"
	"conform/internal/match"
	"conform/internal/report"
	"conform/internal/rules"
	"conform/internal/walk"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a single artifact against the conventions",
}

var checkBranchCmd = &cobra.Command{
	Use:   "branch [name]",
	Short: "Check a branch name (current branch when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckBranch,
}

var checkCommitCmd = &cobra.Command{
	Use:   "commit [file]",
	Short: "Check a commit message headline (from a message file, --message, or .git/COMMIT_EDITMSG)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckCommit,
}

var checkIdentifierCmd = &cobra.Command{
	Use:   "identifier <name>",
	Short: "Check an identifier against its declared kind's casing class",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckIdentifier,
}

var checkPathCmd = &cobra.Command{
	Use:   "path <path>",
	Short: "Check the placement of an artifact path",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckPath,
}

func init() {
	checkCmd.AddCommand(checkBranchCmd)
	checkCmd.AddCommand(checkCommitCmd)
	checkCmd.AddCommand(checkIdentifierCmd)
	checkCmd.AddCommand(checkPathCmd)

	checkCmd.PersistentFlags().String("format", "pretty", "output format (pretty|json)")
	checkCommitCmd.Flags().String("message", "", "commit message text (overrides the file)")
	checkIdentifierCmd.Flags().String("kind", "variable", "identifier kind (variable|function|constant|class|signal|node)")
	checkPathCmd.Flags().String("kind", "", "artifact kind (script|scene|resource|texture|font; default: by extension)")
}

// runCheck validates one request and renders the result; shared tail of all
// check subcommands.
func runCheck(cmd *cobra.Command, label string, req rules.Request) error {
	eng, _, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	res := eng.Validate(cmd.Context(), req)

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		if err := report.JSON(os.Stdout, label, res); err != nil {
			return err
		}
	case "pretty":
		report.Pretty(os.Stdout, label, req.Input(), res, reportOptions(cmd))
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	exitChecked(res.OK)
	return nil
}

func runCheckBranch(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		var err error
		name, err = gitinfo.CurrentBranch(".")
		if err != nil {
			return err
		}
	}
	return runCheck(cmd, "branch", rules.BranchNameRequest{Raw: name})
}

func runCheckCommit(cmd *cobra.Command, args []string) error {
	msg, _ := cmd.Flags().GetString("message")
	switch {
	case msg != "":
		// как есть
	case len(args) == 1:
		var err error
		msg, err = gitinfo.CommitMessage(args[0])
		if err != nil {
			return err
		}
	default:
		var err error
		msg, err = gitinfo.StagedCommitMessage(".")
		if err != nil {
			return err
		}
	}
	return runCheck(cmd, "commit", rules.CommitMessageRequest{Raw: msg})
}

func runCheckIdentifier(cmd *cobra.Command, args []string) error {
	kindName, _ := cmd.Flags().GetString("kind")
	kind, ok := match.ParseIdentKind(kindName)
	if !ok {
		return fmt.Errorf("unknown identifier kind: %s", kindName)
	}
	return runCheck(cmd, "identifier", rules.IdentifierRequest{Name: args[0], Kind: kind})
}

func runCheckPath(cmd *cobra.Command, args []string) error {
	path := args[0]
	kindName, _ := cmd.Flags().GetString("kind")
	var kind match.ArtifactKind
	if kindName != "" {
		var ok bool
		kind, ok = match.ParseArtifactKind(kindName)
		if !ok {
			return fmt.Errorf("unknown artifact kind: %s", kindName)
		}
	} else {
		var ok bool
		kind, ok = walk.ClassifyPath(path)
		if !ok {
			return fmt.Errorf("cannot classify %s by extension, pass --kind", path)
		}
	}
	return runCheck(cmd, path, rules.PathRequest{
		Segments: splitSegments(path),
		Kind:     kind,
	})
}
