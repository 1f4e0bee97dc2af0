package export

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/shembeark/registrations-backend/pkg/db/models"
)

var csvHeader = []string{"Cellphone", "Status", "Registration Date"}

// buildCSV renders the report attachment. Rows keep the order they were
// selected in, so the file reads oldest registration first.
func buildCSV(rows []models.Registration) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for i := range rows {
		record := []string{
			rows[i].Cellphone,
			"active",
			rows[i].RegistrationDate.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
