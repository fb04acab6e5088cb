package driver

import (
	"context"
	"fmt"
	"time"

	"exprc/internal/ast"
	"exprc/internal/diag"
	"exprc/internal/ir"
	"exprc/internal/lexer"
	"exprc/internal/parser"
	"exprc/internal/pipeline"
	"exprc/internal/source"
	"exprc/internal/token"
	"exprc/internal/trace"
)

// Result holds everything produced for one file up to the requested stage.
// Tokens and Nodes are nil when the IR came from the cache.
type Result struct {
	Path    string
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Nodes   []ast.Node
	IR      []ir.Node
	Bag     *diag.Bag
	Timings pipeline.Timings
	Cached  bool
}

// File returns the loaded file, nil when loading failed.
func (r *Result) File() *source.File {
	if r == nil || r.FileSet == nil || r.Bag.HasCode(diag.IOLoadFileError) {
		return nil
	}
	return r.FileSet.Get(r.FileID)
}

// RunFile loads path and runs the pipeline up to last.
func RunFile(ctx context.Context, path string, last pipeline.Stage, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return run(ctx, fs, fileID, path, last, opts), nil
}

// RunSource runs the pipeline on in-memory text registered under name.
func RunSource(ctx context.Context, name, src string, last pipeline.Stage, opts Options) *Result {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(src))
	return run(ctx, fs, fileID, name, last, opts)
}

// run executes the stages for one already loaded file. It never fails:
// every problem ends up in the bag.
func run(ctx context.Context, fs *source.FileSet, fileID source.FileID, display string, last pipeline.Stage, opts Options) *Result {
	file := fs.Get(fileID)
	res := &Result{
		Path:    display,
		FileSet: fs,
		FileID:  fileID,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}

	fileSpan, ctx := trace.StartSpan(ctx, trace.ScopeModule, "file:"+display)
	defer func() {
		fileSpan.WithExtra("diagnostics", fmt.Sprint(res.Bag.Len())).End(cachedDetail(res.Cached))
	}()

	if last == pipeline.StageLower && opts.Cache != nil {
		if res.restore(ctx, file, opts) {
			pipeline.Emit(opts.Progress, pipeline.Event{File: display, Stage: last, Status: pipeline.StatusCached})
			return res
		}
	}

	reporter := diag.BagReporter{Bag: res.Bag}
	text := file.Text()

	res.stage(ctx, opts, pipeline.StageTokenize, func() string {
		res.Tokens = lexer.New(text, lexer.Options{
			Reporter:      reporter,
			File:          fileID,
			TrailingEOF:   opts.TrailingEOF,
			KeepErrorText: opts.KeepErrorText,
		}).Tokenize()
		return fmt.Sprintf("%d tokens", len(res.Tokens))
	})
	if last == pipeline.StageTokenize {
		return res
	}

	res.stage(ctx, opts, pipeline.StageParse, func() string {
		toks := res.Tokens
		if opts.StripTrivia {
			toks = parser.Significant(toks)
		}
		res.Nodes = parser.ParseWithReporter(toks, reporter)
		return fmt.Sprintf("%d nodes", len(res.Nodes))
	})
	if last == pipeline.StageParse {
		return res
	}

	res.stage(ctx, opts, pipeline.StageLower, func() string {
		res.IR = ir.ConvertToIR(res.Nodes)
		return fmt.Sprintf("%d exprs", len(res.IR))
	})

	if opts.Cache != nil {
		if err := opts.Cache.Put(cacheKey(file, opts), newPayload(res)); err != nil {
			trace.Error(trace.FromContext(ctx), trace.ScopeModule, "cache:put", err, trace.CurrentSpan(ctx).SpanID)
		}
	}
	return res
}

// stage wraps one pure step with progress, tracing and timing.
func (r *Result) stage(ctx context.Context, opts Options, stage pipeline.Stage, fn func() string) {
	progress := pipeline.Start(opts.Progress, r.Path, stage)
	span, _ := trace.StartSpan(ctx, trace.ScopePass, string(stage))

	start := time.Now()
	detail := fn()
	elapsed := time.Since(start)

	span.End(detail)
	progress.Finish(nil)
	r.Timings.Set(stage, elapsed)
	opts.Timer.Add(string(stage), elapsed)
}

func (r *Result) restore(ctx context.Context, file *source.File, opts Options) bool {
	var payload DiskPayload
	hit, err := opts.Cache.Get(cacheKey(file, opts), &payload)
	if err != nil {
		trace.Error(trace.FromContext(ctx), trace.ScopeModule, "cache:get", err, trace.CurrentSpan(ctx).SpanID)
		return false
	}
	if !hit {
		return false
	}
	nodes, diags, err := payload.restore(file.ID)
	if err != nil {
		trace.Error(trace.FromContext(ctx), trace.ScopeModule, "cache:decode", err, trace.CurrentSpan(ctx).SpanID)
		return false
	}
	r.IR = nodes
	for _, d := range diags {
		r.Bag.Add(d)
	}
	r.Cached = true
	return true
}

func cachedDetail(cached bool) string {
	if cached {
		return "cached"
	}
	return ""
}
