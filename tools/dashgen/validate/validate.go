// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse and reference only known metric names.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/CyberSolo/UDAM/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation, warnings
// are reported.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses expr and returns the metric names it selects.
func Expr(expr string) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names, nil
}

// known reports whether name, or its histogram base name, is in known.
func known(name string, metrics map[string]bool) bool {
	if metrics[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && metrics[base] {
			return true
		}
	}
	return false
}

func checkExpr(where, expr string, metrics map[string]bool) Result {
	var res Result
	if strings.TrimSpace(expr) == "" {
		res.errorf("%s: empty expression", where)
		return res
	}
	names, err := Expr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL: %v", where, err)
		return res
	}
	if len(names) == 0 {
		res.warnf("%s: expression selects no metrics", where)
	}
	for _, name := range names {
		if !known(name, metrics) {
			res.errorf("%s: unknown metric %q", where, name)
		}
	}
	return res
}

// Dashboard validates every Prometheus target of every panel in d.
func Dashboard(d dashboard.Dashboard, metrics map[string]bool) Result {
	var res Result
	for _, p := range d.Panels {
		switch {
		case p.Panel != nil:
			res.merge(checkPanel(*p.Panel, metrics))
		case p.RowPanel != nil:
			for _, inner := range p.RowPanel.Panels {
				res.merge(checkPanel(inner, metrics))
			}
		}
	}
	return res
}

func checkPanel(p dashboard.Panel, metrics map[string]bool) Result {
	var res Result
	title := "untitled panel"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		res.warnf("panel %q: no targets", title)
		return res
	}

	for i, target := range p.Targets {
		raw, err := json.Marshal(target)
		if err != nil {
			res.errorf("panel %q target %d: %v", title, i, err)
			continue
		}
		var q struct {
			Expr string `json:"expr"`
		}
		if err := json.Unmarshal(raw, &q); err != nil {
			res.errorf("panel %q target %d: %v", title, i, err)
			continue
		}
		res.merge(checkExpr(fmt.Sprintf("panel %q target %d", title, i), q.Expr, metrics))
	}
	return res
}

// Rules validates every rule expression in cr. Recording rule names must be
// known so dashboards and alerts can reference them.
func Rules(cr rules.PrometheusRule, metrics map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Alert
			if r.Record != "" {
				name = r.Record
				if !metrics[r.Record] {
					res.errorf("group %q: recording rule %q is not a known metric", g.Name, r.Record)
				}
			}
			res.merge(checkExpr(fmt.Sprintf("group %q rule %q", g.Name, name), r.Expr, metrics))
		}
	}
	return res
}
