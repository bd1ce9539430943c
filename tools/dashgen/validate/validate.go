// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse and reference only metrics the monitor exports.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/joshlee247/woocommerce-discord-monitor/tools/dashgen/rules"
)

// Histogram series suffixes resolved to their base metric name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation problems. Errors fail generation; warnings are
// reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every panel target of a built dashboard. dash is
// walked through its JSON form so row-nested panels are covered.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}

	titles := map[string]int{}
	walk(doc, func(obj map[string]any) {
		typ, _ := obj["type"].(string)
		if _, ok := obj["gridPos"]; !ok || typ == "" || typ == "row" {
			return
		}

		title, _ := obj["title"].(string)
		titles[title]++

		targets, _ := obj["targets"].([]any)
		if len(targets) == 0 {
			res.warnf("panel %q has no targets", title)
			return
		}
		for _, t := range targets {
			target, _ := t.(map[string]any)
			expr, _ := target["expr"].(string)
			if expr == "" {
				res.errorf("panel %q: target without expression", title)
				continue
			}
			res.checkExpr("panel "+quote(title), expr, known)
		}
	})

	for title, n := range titles {
		if n > 1 {
			res.warnf("panel title %q used %d times", title, n)
		}
	}
	return res
}

// Rules validates a PrometheusRule resource.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			switch {
			case r.Record != "" && r.Alert != "":
				res.errorf("group %q: rule sets both record %q and alert %q", g.Name, r.Record, r.Alert)
				continue
			case r.Record != "":
				if !known[r.Record] {
					res.warnf("recording rule %q is not in the known metrics set", r.Record)
				}
				res.checkExpr("record "+quote(r.Record), r.Expr, known)
			case r.Alert != "":
				if r.Labels["severity"] == "" {
					res.errorf("alert %q has no severity label", r.Alert)
				}
				res.checkExpr("alert "+quote(r.Alert), r.Expr, known)
			default:
				res.errorf("group %q: rule has neither record nor alert", g.Name)
			}
		}
	}
	return res
}

func (r *Result) checkExpr(where, expr string, known map[string]bool) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		r.errorf("%s: parsing %q: %v", where, expr, err)
		return
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[baseName(vs.Name, known)] {
			r.errorf("%s: unknown metric %q", where, vs.Name)
		}
		return nil
	})
}

func baseName(name string, known map[string]bool) string {
	if known[name] {
		return name
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return base
		}
	}
	return name
}

func walk(v any, fn func(map[string]any)) {
	switch t := v.(type) {
	case map[string]any:
		fn(t)
		for _, child := range t {
			walk(child, fn)
		}
	case []any:
		for _, child := range t {
			walk(child, fn)
		}
	}
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
