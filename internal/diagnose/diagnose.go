// Package diagnose provides health checks for a qualra algebra and,
// optionally, a constraint network loaded over it: domain/range coverage,
// the composition identity and associativity laws, and, when a network is
// attached, converse symmetry of its edges between distinct entities and
// equality-relation coverage of its entities' classes, surfaced as a
// categorized pass/warn/fail report. It does not run propagation.
package diagnose

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/qualra"
)

// Status represents the result of a health check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns a status indicator symbol for terminal output.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusWarn:
		return "⚠"
	case StatusFail:
		return "✗"
	default:
		return "?"
	}
}

// CheckResult represents the outcome of a single health check.
type CheckResult struct {
	Category string
	Name     string
	Status   Status
	Message  string
	Details  string
	FixHint  string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult

	Passed   int
	Warnings int
	Errors   int
}

// AddCheck adds a check result and updates summary counts.
func (r *Report) AddCheck(check CheckResult) {
	r.Checks = append(r.Checks, check)
	switch check.Status {
	case StatusPass:
		r.Passed++
	case StatusWarn:
		r.Warnings++
	case StatusFail:
		r.Errors++
	}
}

// Print writes the report to w, grouped by category.
func (r *Report) Print(w io.Writer, verbose bool) {
	categories := make(map[string][]CheckResult)
	var order []string
	for _, check := range r.Checks {
		if _, exists := categories[check.Category]; !exists {
			order = append(order, check.Category)
		}
		categories[check.Category] = append(categories[check.Category], check)
	}

	for _, cat := range order {
		_, _ = fmt.Fprintf(w, "\n%s\n", cat)
		for _, check := range categories[cat] {
			_, _ = fmt.Fprintf(w, "  %s %s\n", check.Status.Symbol(), check.Message)
			if verbose && check.Details != "" {
				for _, line := range strings.Split(check.Details, "\n") {
					_, _ = fmt.Fprintf(w, "      %s\n", line)
				}
			}
			if check.Status != StatusPass && check.FixHint != "" {
				_, _ = fmt.Fprintf(w, "      Fix: %s\n", check.FixHint)
			}
		}
	}

	_, _ = fmt.Fprintf(w, "\nSummary: %d passed, %d warnings, %d errors\n", r.Passed, r.Warnings, r.Errors)
}

// HasErrors reports whether any check failed.
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// Diagnoser runs health checks against a single algebra and, optionally, a
// network loaded over it.
type Diagnoser struct {
	algebra *qualra.Algebra
	network *qualra.Network
}

// New builds a Diagnoser for algebra. WithNetwork extends the checks it
// runs to cover a loaded network's edge bookkeeping.
func New(algebra *qualra.Algebra) *Diagnoser {
	return &Diagnoser{algebra: algebra}
}

// WithNetwork attaches a network to check alongside the algebra.
func (d *Diagnoser) WithNetwork(n *qualra.Network) *Diagnoser {
	d.network = n
	return d
}

// Run executes every check and returns the report.
func (d *Diagnoser) Run() *Report {
	report := &Report{}
	d.checkRelationCoverage(report)
	d.checkCompositionIdentity(report)
	d.checkAssociativity(report)
	if d.network != nil {
		d.checkNetworkTotalSymmetry(report)
		d.checkEntityEquality(report)
	}
	return report
}

func (d *Diagnoser) checkRelationCoverage(report *Report) {
	syms := d.algebra.Relations()
	var uncovered []string
	for _, sym := range syms {
		rel, err := d.algebra.RelationInfo(sym)
		if err != nil {
			uncovered = append(uncovered, string(sym))
			continue
		}
		if len(rel.Domain) == 0 || len(rel.Range) == 0 {
			uncovered = append(uncovered, string(sym))
		}
	}
	if len(uncovered) > 0 {
		report.AddCheck(CheckResult{
			Category: "Algebra",
			Name:     "domain_range_coverage",
			Status:   StatusFail,
			Message:  fmt.Sprintf("%d relations have no domain/range coverage", len(uncovered)),
			Details:  strings.Join(uncovered, ", "),
			FixHint:  "every relation must declare a non-empty domain and range",
		})
		return
	}
	report.AddCheck(CheckResult{
		Category: "Algebra",
		Name:     "domain_range_coverage",
		Status:   StatusPass,
		Message:  fmt.Sprintf("all %d relations declare domain and range classes", len(syms)),
	})
}

func (d *Diagnoser) checkCompositionIdentity(report *Report) {
	verdict := d.algebra.CheckCompositionIdentity()
	if !verdict.Pass {
		report.AddCheck(CheckResult{
			Category: "Algebra",
			Name:     "composition_identity",
			Status:   StatusFail,
			Message:  fmt.Sprintf("composition identity fails on %d pairs", len(verdict.Counterexamples)),
			Details:  formatCounterexamples(verdict.Counterexamples),
			FixHint:  "check the converse map and composition table agree: r;s = converse(converse(s);converse(r))",
		})
		return
	}
	report.AddCheck(CheckResult{
		Category: "Algebra",
		Name:     "composition_identity",
		Status:   StatusPass,
		Message:  "composition identity holds for every relation pair",
	})
}

func (d *Diagnoser) checkAssociativity(report *Report) {
	verdict := d.algebra.CheckAssociativity()
	if !verdict.Pass {
		report.AddCheck(CheckResult{
			Category: "Algebra",
			Name:     "associativity",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("associativity fails on %d triples", len(verdict.Counterexamples)),
			Details:  formatCounterexamples(verdict.Counterexamples),
			FixHint:  "an unsound composition table still loads, but propagation results may depend on evaluation order",
		})
		return
	}
	report.AddCheck(CheckResult{
		Category: "Algebra",
		Name:     "associativity",
		Status:   StatusPass,
		Message:  "associativity holds for every applicable relation triple",
	})
}

func (d *Diagnoser) checkNetworkTotalSymmetry(report *Report) {
	var asymmetric []string
	entities := d.network.Entities()
	for _, u := range entities {
		for _, v := range entities {
			if u.ID() == v.ID() {
				continue
			}
			forward := d.network.Edge(u.ID(), v.ID())
			backward := d.network.Edge(v.ID(), u.ID())
			if !forward.Converse().Equal(backward) {
				asymmetric = append(asymmetric, fmt.Sprintf("%s->%s", u.Name(), v.Name()))
			}
		}
	}
	if len(asymmetric) > 0 {
		report.AddCheck(CheckResult{
			Category: "Network",
			Name:     "converse_symmetry",
			Status:   StatusFail,
			Message:  fmt.Sprintf("%d edges are not the converse of their reverse", len(asymmetric)),
			Details:  strings.Join(asymmetric, ", "),
			FixHint:  "edges should only be mutated through AddConstraint/SetConstraint, which keep both directions in sync",
		})
		return
	}
	report.AddCheck(CheckResult{
		Category: "Network",
		Name:     "converse_symmetry",
		Status:   StatusPass,
		Message:  "every stored edge agrees with its reverse's converse",
	})
}

func (d *Diagnoser) checkEntityEquality(report *Report) {
	var uncovered []string
	for _, e := range d.network.Entities() {
		rs, err := d.algebra.EqualityForClasses(e.Classes())
		if err != nil || rs.IsEmpty() {
			uncovered = append(uncovered, e.Name())
		}
	}
	if len(uncovered) > 0 {
		report.AddCheck(CheckResult{
			Category: "Network",
			Name:     "entity_equality",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("%d entities have no equality relation for their classes", len(uncovered)),
			Details:  strings.Join(uncovered, ", "),
			FixHint:  "tag the entity with a class the algebra declares an equality relation for, or accept its self-edge reads as unconstrained",
		})
		return
	}
	report.AddCheck(CheckResult{
		Category: "Network",
		Name:     "entity_equality",
		Status:   StatusPass,
		Message:  "every entity's classes resolve to an equality relation",
	})
}

func formatCounterexamples(cs []qualra.Counterexample) string {
	var lines []string
	for i, c := range cs {
		if i >= 10 {
			lines = append(lines, fmt.Sprintf("... and %d more", len(cs)-10))
			break
		}
		lines = append(lines, fmt.Sprintf("(%s,%s,%s): %s != %s", c.R, c.S, c.T, c.Left, c.Right))
	}
	return strings.Join(lines, "\n")
}
