package export

import (
	"io"

	"github.com/bme-wacoisd/google-classroom/core/reconcile"

	json "github.com/goccy/go-json"
)

// WriteDiffJSON writes the full diff as indented JSON.
func WriteDiffJSON(w io.Writer, diff *reconcile.RosterDiff) error {
	data, err := json.MarshalIndent(diff, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
