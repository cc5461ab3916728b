// internal/export/export.go
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/agrotools/feedlot-calc/internal/model"
)

// Format represents the export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// scenarioFileVersion is bumped when the scenario file layout changes.
const scenarioFileVersion = 1

// ScenarioFile is the self-describing on-disk form of a scenario.
type ScenarioFile struct {
	Version    int                  `json:"version"`
	ExportedAt time.Time            `json:"exported_at"`
	Name       string               `json:"name,omitempty"`
	Params     model.ScenarioParams `json:"params"`
}

// Exporter writes scenarios and computed reports to disk.
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates a new exporter.
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// ExportScenario writes one scenario as self-describing JSON and returns the
// file path.
func (e *Exporter) ExportScenario(name string, params model.ScenarioParams, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, generateFilename("scenario_"+slugify(name), FormatJSON))

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create scenario file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(ScenarioFile{
		Version:    scenarioFileVersion,
		ExportedAt: time.Now().UTC(),
		Name:       name,
		Params:     params,
	}); err != nil {
		return "", fmt.Errorf("failed to encode scenario: %w", err)
	}

	e.logger.Info("Scenario exported",
		zap.String("file", outputPath),
		zap.String("name", name))
	return outputPath, nil
}

// ImportScenario reads a scenario file. Absent fields fall back to the
// documented defaults instead of failing; only malformed JSON is an error,
// and the caller recovers by keeping its current values.
func (e *Exporter) ImportScenario(path string) (string, model.ScenarioParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", model.ScenarioParams{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var raw struct {
		Name   string          `json:"name"`
		Params json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", model.ScenarioParams{}, fmt.Errorf("malformed scenario file: %w", err)
	}

	params := model.DefaultParams()
	if len(raw.Params) > 0 {
		// decoding over the defaults leaves absent fields untouched
		if err := json.Unmarshal(raw.Params, &params); err != nil {
			return "", model.ScenarioParams{}, fmt.Errorf("malformed scenario params: %w", err)
		}
	}

	e.logger.Info("Scenario imported",
		zap.String("file", path),
		zap.String("name", raw.Name))
	return raw.Name, params, nil
}

// Report bundles everything one evaluation produces for the export file.
type Report struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Params      model.ScenarioParams `json:"params"`
	Result      model.ProfitResult   `json:"result"`
	Herd        model.HerdResult     `json:"herd"`

	PurchaseAxis   []float64   `json:"purchase_axis"`
	SaleAxis       []float64   `json:"sale_axis"`
	Heatmap        [][]float64 `json:"heatmap"`
	BreakevenCurve []float64   `json:"breakeven_curve"`
	Sensitivity    []float64   `json:"sensitivity"`
}

// BuildReport runs the model and all three samplers for the given axes.
func BuildReport(params model.ScenarioParams, purchaseAxis, saleAxis model.Axis) Report {
	result := model.ComputeProfit(params)
	return Report{
		GeneratedAt:    time.Now().UTC(),
		Params:         params,
		Result:         result,
		Herd:           model.Herd(params, result),
		PurchaseAxis:   purchaseAxis.Values(),
		SaleAxis:       saleAxis.Values(),
		Heatmap:        model.HeatmapMatrix(params, purchaseAxis, saleAxis),
		BreakevenCurve: model.BreakevenCurve(params, purchaseAxis),
		Sensitivity:    model.SensitivityCurve(params, saleAxis),
	}
}

// ExportReport writes a computed report in the requested format.
func (e *Exporter) ExportReport(report Report, format Format, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, generateFilename("report", format))

	var err error
	switch format {
	case FormatCSV:
		err = e.exportReportCSV(report, outputPath)
	case FormatJSON:
		err = e.exportReportJSON(report, outputPath)
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return "", err
	}

	e.logger.Info("Report exported",
		zap.String("file", outputPath),
		zap.String("format", string(format)),
		zap.Int("heatmap_rows", len(report.Heatmap)))
	return outputPath, nil
}

func (e *Exporter) exportReportJSON(report Report, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// exportReportCSV writes the heatmap as a matrix: header row is the sale
// axis, each data row is the purchase price, its breakeven sale price, then
// the margins.
func (e *Exporter) exportReportCSV(report Report, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"purchase_price", "breakeven_sale_price"}
	for _, sale := range report.SaleAxis {
		header = append(header, formatFloat(sale))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, row := range report.Heatmap {
		record := make([]string, 0, len(row)+2)
		record = append(record, formatFloat(report.PurchaseAxis[i]), formatFloat(report.BreakevenCurve[i]))
		for _, margin := range row {
			record = append(record, formatFloat(margin))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// generateFilename creates a timestamped filename.
func generateFilename(prefix string, format Format) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s.%s", prefix, timestamp, format)
}

func slugify(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return "unnamed"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "unnamed"
	}
	return b.String()
}
