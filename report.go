package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	yml "gopkg.in/yaml.v3"

	rcs "github.com/tmaynard/rcs-go/lib"
)

// Report is the yaml-friendly projection of one parsed ,v file.
type Report struct {
	File    string         `yaml:"file"`
	Head    string         `yaml:"head"`
	Branch  string         `yaml:"branch,omitempty"`
	Access  []string       `yaml:"access,omitempty"`
	Symbols []SymbolReport `yaml:"symbols,omitempty"`
	Locks   []LockReport   `yaml:"locks,omitempty"`
	Strict  bool           `yaml:"strict"`
	Comment string         `yaml:"comment,omitempty"`
	Expand  string         `yaml:"expand,omitempty"`
	Desc    string         `yaml:"desc,omitempty"`
	Deltas  []DeltaReport  `yaml:"deltas"`
}

type SymbolReport struct {
	Name string `yaml:"name"`
	Rev  string `yaml:"rev"`
}

type LockReport struct {
	Owner string `yaml:"owner"`
	Rev   string `yaml:"rev"`
}

type DeltaReport struct {
	Rev      string   `yaml:"rev"`
	Date     string   `yaml:"date"`
	Author   string   `yaml:"author"`
	State    string   `yaml:"state,omitempty"`
	Branches []string `yaml:"branches,omitempty"`
	Next     string   `yaml:"next,omitempty"`
	CommitID string   `yaml:"commitid,omitempty"`
	Log      string   `yaml:"log"`
	Body     string   `yaml:"body"`
}

func NewReport(filename string, doc *rcs.RcsData) *Report {
	r := &Report{
		File:   filename,
		Head:   doc.Head.String(),
		Branch: doc.Branch.String(),
		Access: doc.Access,
		Strict: doc.Strict,
		Desc:   doc.Desc,
	}
	if doc.Comment != nil {
		r.Comment = *doc.Comment
	}
	if doc.Expand != nil {
		r.Expand = *doc.Expand
	}
	for _, s := range doc.Symbols {
		r.Symbols = append(r.Symbols, SymbolReport{Name: s.Name, Rev: s.Num.String()})
	}
	for _, l := range doc.Locks {
		r.Locks = append(r.Locks, LockReport{Owner: l.Owner, Rev: l.Num.String()})
	}
	for _, d := range doc.Deltas {
		r.Deltas = append(r.Deltas, newDeltaReport(d))
	}
	return r
}

func newDeltaReport(d *rcs.Delta) DeltaReport {
	dr := DeltaReport{
		Rev:    d.Num.String(),
		Date:   d.Date.String(),
		Author: d.Author,
		Next:   d.Next.String(),
		Log:    d.Log,
	}
	if d.State != nil {
		dr.State = *d.State
	}
	if d.CommitID != nil {
		dr.CommitID = *d.CommitID
	}
	for _, b := range d.Branches {
		dr.Branches = append(dr.Branches, b.String())
	}
	if d.Text.Kind == rcs.TextHead {
		dr.Body = fmt.Sprintf("head text, %d bytes", len(d.Text.Full))
	} else {
		dr.Body = fmt.Sprintf("diff, %d commands", len(d.Text.Diff))
	}
	return dr
}

// Print writes a human summary to stdout.
func (r *Report) Print() {
	color.Cyan("%s: head %s", r.File, r.Head)
	if r.Branch != "" {
		fmt.Printf("   branch: %s\n", r.Branch)
	}
	for _, s := range r.Symbols {
		fmt.Printf("   symbol: %-16s %s\n", s.Name, s.Rev)
	}
	for _, l := range r.Locks {
		fmt.Printf("   lock:   %-16s %s\n", l.Owner, l.Rev)
	}
	fmt.Printf("   %d revisions\n", len(r.Deltas))
}

// WriteYAML emits the full projection.
func (r *Report) WriteYAML(w io.Writer) error {
	return yml.NewEncoder(w).Encode(r)
}
