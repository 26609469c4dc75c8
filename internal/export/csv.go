package export

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/fundingdsl/internal/model"
)

var csvHeader = []string{"Platform", "Username", "Funding Type", "Active", "Custom URL", "Config"}

// CSVExporter renders one row per funding source, inactive ones included.
type CSVExporter struct{}

// Export implements the Exporter interface.
func (e *CSVExporter) Export(_ context.Context, w io.Writer, cfg *model.Configuration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range cfg.Sources {
		pairs := make([]string, 0, s.Config.Len())
		for _, setting := range s.Config {
			pairs = append(pairs, setting.Key+"="+setting.Value)
		}
		row := []string{
			string(s.Platform),
			s.Username,
			string(s.FundingType),
			strconv.FormatBool(s.IsActive),
			s.CustomURL,
			strings.Join(pairs, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
