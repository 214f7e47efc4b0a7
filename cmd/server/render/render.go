// Package render formats sheet data for terminal output
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
)

// AttributeName resolves user input case-insensitively. Unknown names come
// back unchanged so the service can reject them.
func AttributeName(in string) sheet.AttributeName {
	for _, name := range sheet.AllAttributes() {
		if strings.EqualFold(string(name), in) {
			return name
		}
	}
	return sheet.AttributeName(in)
}

// Groups writes every category with its attributes
func Groups(w io.Writer, groups []*sheet.AttributeGroup) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\n", g.Label)
		for _, a := range g.Attributes {
			fmt.Fprintf(tw, "  %s\t%d\tSR %d\t%s\n", a.Name, a.Value, a.SR, rolled(a))
		}
	}
	_ = tw.Flush()
}

func rolled(a *sheet.Attribute) string {
	if a.Adjustment == nil || a.TotalSR == nil {
		return ""
	}
	return fmt.Sprintf("adj %+d\ttotal %d", *a.Adjustment, *a.TotalSR)
}

// Attribute writes a single attribute line
func Attribute(w io.Writer, a *sheet.Attribute) {
	fmt.Fprintf(w, "%s = %d (SR %d)\n", a.Name, a.Value, a.SR)
}

// Flow writes the roll flow state
func Flow(w io.Writer, f sheet.Flow) {
	var b strings.Builder
	fmt.Fprintf(&b, "state: %s", f.State)
	if f.Attribute != "" {
		fmt.Fprintf(&b, "  attribute: %s", f.Attribute)
	}
	if f.Method != "" {
		fmt.Fprintf(&b, "  method: %s", f.Method)
	}
	if f.ManualValue != nil {
		fmt.Fprintf(&b, "  value: %d", *f.ManualValue)
	}
	fmt.Fprintln(w, b.String())
}

// Outcome writes a roll result. now anchors the relative roll time.
func Outcome(w io.Writer, o *sheet.RollOutcome, now time.Time) {
	fmt.Fprintf(w, "%s rolled %d against %d (%s, %s)\n",
		o.Attribute, o.DieResult, o.EnteredStat, o.Method, humanize.RelTime(o.RolledAt, now, "ago", "from now"))
	fmt.Fprintf(w, "  SR %d  adjustment %+d  total SR %d\n", o.SR, o.Adjustment, o.TotalSR)
}

// Skill writes a saved skill line
func Skill(w io.Writer, s *sheet.Skill) {
	fmt.Fprintf(w, "%s (%s, %s, misc %d) SR %d\n", s.Name, s.BaseAttribute, s.Level, s.MiscBonus, s.ComputedSR)
}

// Skills writes all saved skills and their running total
func Skills(w io.Writer, skills []*sheet.Skill, totalSR int) {
	if len(skills) == 0 {
		fmt.Fprintln(w, "no skills saved")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range skills {
		fmt.Fprintf(tw, "%s\t%s\t%s\tmisc %d\tSR %d\n", s.Name, s.BaseAttribute, s.Level, s.MiscBonus, s.ComputedSR)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "total SR %d\n", totalSR)
}
