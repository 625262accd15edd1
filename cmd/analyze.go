package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KaramelBytes/sheetstat/internal/analysis"
	"github.com/KaramelBytes/sheetstat/internal/chart"
	cfgpkg "github.com/KaramelBytes/sheetstat/internal/config"
	"github.com/KaramelBytes/sheetstat/internal/logging"
	"github.com/KaramelBytes/sheetstat/internal/table"
	"github.com/KaramelBytes/sheetstat/internal/utils"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Encoding: cfg.LogFormat}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if y, err := cfg.YAML(); err == nil {
		log.Debug("effective configuration", zap.String("config", y))
	}

	out := cmd.OutOrStdout()
	rep, err := analyzeFile(args[0], cfg, log)
	if err != nil {
		log.Error("analysis failed", zap.String("path", args[0]), zap.Error(err))
		if werr := utils.WriteJSON(out, analysis.ErrorReport(err)); werr != nil {
			return werr
		}
		return errReported
	}
	return writeReport(out, rep, cfg.OutputFormat)
}

func analyzeFile(path string, cfg *cfgpkg.Global, log *zap.Logger) (*analysis.Report, error) {
	t, err := table.Load(path)
	if err != nil {
		return nil, err
	}
	kinds := make([]string, 0, t.Width())
	for _, c := range t.Columns() {
		kinds = append(kinds, c.Name()+":"+c.Dtype())
	}
	log.Debug("table loaded",
		zap.String("table", t.Name),
		zap.Int("rows", t.Rows()),
		zap.Int("columns", t.Width()),
		zap.Strings("dtypes", kinds))

	opt := analysis.DefaultOptions()
	opt.GeneratePlots = cfg.GeneratePlots
	return analysis.Summarize(t, opt, chart.New(log), log)
}

func writeReport(w io.Writer, rep *analysis.Report, format string) error {
	if format == cfgpkg.FormatContent {
		return utils.WriteJSON(w, struct {
			Content []analysis.ContentBlock `json:"content"`
		}{rep.Content()})
	}
	return utils.WriteJSON(w, rep)
}
