package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// HandleOutput writes the value according to the template or format flag.
//
// A non-empty --template takes precedence and is executed against the
// value's JSON form, so it uses the JSON field names. Otherwise --format
// selects "json" (the default) or "yaml".
func HandleOutput(cmd *cobra.Command, value any) error {
	templateFlag, _ := cmd.Flags().GetString("template")
	formatFlag, _ := cmd.Flags().GetString("format")

	if templateFlag != "" {
		tmpl, err := template.New("output").Parse(templateFlag)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}

		// Templates see the same keys as the JSON output.
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		var fields any
		if err := json.Unmarshal(data, &fields); err != nil {
			return fmt.Errorf("failed to unmarshal JSON: %w", err)
		}

		if err := tmpl.Execute(cmd.OutOrStdout(), fields); err != nil {
			return fmt.Errorf("failed to execute template: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	var output []byte
	var err error

	switch formatFlag {
	case "yaml":
		output, err = yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	default:
		output, err = json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// WriteMetrics writes all metrics from the gatherer in the Prometheus
// text exposition format.
func WriteMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}
