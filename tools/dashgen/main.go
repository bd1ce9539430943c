package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshlee247/woocommerce-discord-monitor/tools/dashgen/dashboards"
	"github.com/joshlee247/woocommerce-discord-monitor/tools/dashgen/rules"
	"github.com/joshlee247/woocommerce-discord-monitor/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	artifacts, warnings, err := generate(cfg)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range artifacts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// generate builds and validates every enabled artifact.
func generate(cfg Config) ([]artifact, []string, error) {
	var (
		artifacts []artifact
		warnings  []string
		errs      []error
	)

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, nil, fmt.Errorf("building dashboard: %w", err)
		}

		res := validate.Dashboard(dash, KnownMetrics)
		warnings = append(warnings, res.Warnings...)
		if !res.Ok() {
			errs = append(errs, fmt.Errorf("dashboard: %s", strings.Join(res.Errors, "; ")))
		}

		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, nil, fmt.Errorf("marshaling dashboard: %w", err)
		}
		artifacts = append(artifacts, artifact{
			path: filepath.Join("grafana", "data", "wcm-overview.json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		recording, alerts := rules.RecordingRules(), rules.AlertRules()
		for _, rf := range []struct {
			name string
			cr   rules.PrometheusRule
		}{
			{"wcm-recording-rules.yaml", recording},
			{"wcm-alerts.yaml", alerts},
		} {
			name, cr := rf.name, rf.cr
			res := validate.Rules(cr, KnownMetrics)
			warnings = append(warnings, res.Warnings...)
			if !res.Ok() {
				errs = append(errs, fmt.Errorf("%s: %s", name, strings.Join(res.Errors, "; ")))
			}

			data, err := yaml.Marshal(cr)
			if err != nil {
				return nil, nil, fmt.Errorf("marshaling %s: %w", name, err)
			}
			artifacts = append(artifacts, artifact{
				path: filepath.Join("prometheus", name),
				data: append([]byte(generatedHeader), data...),
			})
		}

		// Same groups for a Prometheus that reads rule_files directly.
		data, err := yaml.Marshal(rules.Combine(recording, alerts))
		if err != nil {
			return nil, nil, fmt.Errorf("marshaling rule file: %w", err)
		}
		artifacts = append(artifacts, artifact{
			path: filepath.Join("prometheus", "rules", "wcm.rules.yaml"),
			data: append([]byte(generatedHeader), data...),
		})
	}

	return artifacts, warnings, errors.Join(errs...)
}
