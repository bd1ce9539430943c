// Package rules generates the Prometheus recording and alert rules for the
// monitor, both as Prometheus Operator resources and as a plain rule file
// for servers that load rules from disk.
package rules

const (
	operatorAPIVersion = "monitoring.coreos.com/v1"
	operatorKind       = "PrometheusRule"

	// ruleSelectorLabel is what the in-cluster Prometheus selects rules by.
	ruleSelectorLabel = "system-rules-prometheus"
)

// PrometheusRule is the operator custom resource wrapping rule groups.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is evaluated as a unit; Interval falls back to the server's
// global evaluation interval when empty.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule sets exactly one of Record or Alert.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// RuleFile is the on-disk format read by prometheus --config.file rule_files.
type RuleFile struct {
	Groups []RuleGroup `yaml:"groups"`
}

func newPrometheusRule(name string, groups ...RuleGroup) PrometheusRule {
	return PrometheusRule{
		APIVersion: operatorAPIVersion,
		Kind:       operatorKind,
		Metadata: PrometheusRuleMetadata{
			Name:   name,
			Labels: map[string]string{"prometheus": ruleSelectorLabel},
		},
		Spec: PrometheusRuleSpec{Groups: groups},
	}
}

// Combine flattens the groups of several resources into one rule file, in
// argument order.
func Combine(crs ...PrometheusRule) RuleFile {
	var rf RuleFile
	for _, cr := range crs {
		rf.Groups = append(rf.Groups, cr.Spec.Groups...)
	}
	return rf
}
