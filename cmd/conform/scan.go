package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conform/internal/cache"
	"conform/internal/engine"
	"conform/internal/report"
	"conform/internal/walk"
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Scan a project tree and check artifact placement",
	Long:  `Scan walks the project tree, classifies every recognized artifact by extension and validates its placement against the directory schema`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	scanCmd.Flags().Bool("no-cache", false, "disable the scan result cache")
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	eng, cfg, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd)

	var c *cache.Cache
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		c, err = cache.Open("conform")
		if err != nil {
			// Кеш — оптимизация; без него сканируем с нуля.
			log.Debug().Err(err).Msg("cache disabled")
			c = nil
		}
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	walker, err := walk.New(eng, walk.Options{
		Ignore: cfg.Scan.Ignore,
		Cache:  c,
		Jobs:   jobs,
		Log:    log,
	})
	if err != nil {
		return err
	}

	rep, err := walker.Scan(cmd.Context(), root)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	opts := reportOptions(cmd)
	switch format {
	case "json":
		for _, f := range rep.Files {
			if err := report.JSON(os.Stdout, f.RelPath, f.Result); err != nil {
				return err
			}
		}
	case "pretty":
		for _, f := range rep.Files {
			report.Pretty(os.Stdout, f.RelPath, f.RelPath, f.Result, opts)
		}
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	total := engine.Result{OK: true}
	for _, f := range rep.Files {
		total = total.Merge(f.Result)
	}
	errs, warns, _ := total.Counts()
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		report.Summary(os.Stdout, rep.Checked, rep.Skipped, errs, warns, opts.Color)
	}
	exitChecked(rep.OK())
	return nil
}
