package diag

import "exprc/internal/source"

// Reporter принимает диагностики от лексера и парсера.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// ReportBuilder collects notes for one diagnostic before it is reported.
type ReportBuilder struct {
	to   Reporter
	d    Diagnostic
	done bool
}

func NewReportBuilder(r Reporter, sev Severity, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{to: r, d: New(sev, code, primary, msg)}
}

func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, primary, msg)
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b != nil {
		b.d = b.d.WithNote(sp, msg)
	}
	return b
}

// Emit reports the diagnostic. Later calls are no-ops, so a builder can be
// emitted from a deferred cleanup without double counting.
func (b *ReportBuilder) Emit() {
	if b == nil || b.done {
		return
	}
	b.done = true
	if b.to != nil {
		b.to.Report(b.d.Code, b.d.Severity, b.d.Primary, b.d.Message, b.d.Notes)
	}
}

// BagReporter collects into Bag; a nil Bag discards.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag != nil {
		d := New(sev, code, primary, msg)
		d.Notes = notes
		r.Bag.Add(d)
	}
}

type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string, []Note) {}
