package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/forestrie/go-logquery/client"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// resultView is the printed form of a QueryResult.
type resultView struct {
	Status    int             `json:"status" yaml:"status"`
	RequestID string          `json:"requestId,omitempty" yaml:"requestId,omitempty"`
	Progress  client.Progress `json:"progress" yaml:"progress"`
	Count     *int64          `json:"count,omitempty" yaml:"count,omitempty"`
	Data      any             `json:"data" yaml:"data"`
}

// printResult writes res in format. A non-2xx result is returned as an
// error after nothing has been printed.
func printResult[T any](w io.Writer, format string, res *client.QueryResult[T]) error {
	if err := res.Err(); err != nil {
		return err
	}

	view := resultView{
		Status:    res.StatusCode,
		RequestID: res.RequestID(),
		Progress:  res.Progress(),
		Data:      res.Data,
	}
	if n, err := res.Count(); err == nil {
		view.Count = &n
	}

	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
