package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"exprc/internal/diag"
	"exprc/internal/pipeline"
	"exprc/internal/source"
	"exprc/internal/trace"
)

// SourceExt is the extension RunDir picks up.
const SourceExt = ".expr"

// ListSourceFiles возвращает отсортированный список всех *.expr файлов в директории.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// RunDir runs every *.expr file under dir in parallel. Results keep the
// sorted file order. A file that cannot be read gets an IOLoadFileError
// diagnostic instead of failing the run; only cancellation and directory
// walk errors are returned.
func RunDir(ctx context.Context, dir string, last pipeline.Stage, opts Options) (*source.FileSet, []*Result, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	dirSpan, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "dir:"+dir)
	defer dirSpan.End("")

	display := make([]string, len(files))
	for i, path := range files {
		display[i] = DisplayPath(dir, path)
	}
	pipeline.EmitQueued(opts.Progress, display)

	// FileSet не потокобезопасен: загружаем всё до запуска воркеров.
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	for i, path := range files {
		progress := pipeline.Start(opts.Progress, display[i], pipeline.StageLoad)
		fileIDs[i], loadErrors[i] = fileSet.Load(path)
		if loadErrors[i] != nil {
			// пустая виртуальная запись, чтобы диагностика ссылалась на путь
			fileIDs[i] = fileSet.AddVirtual(path, nil)
		}
		progress.Finish(loadErrors[i])
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErrors[i] != nil {
				results[i] = loadFailure(fileSet, fileIDs[i], display[i], loadErrors[i], opts)
				trace.Error(trace.FromContext(gctx), trace.ScopeModule, "load:"+display[i], loadErrors[i], dirSpan.ID())
				return nil
			}
			results[i] = run(gctx, fileSet, fileIDs[i], display[i], last, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func loadFailure(fs *source.FileSet, id source.FileID, display string, err error, opts Options) *Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: id}, "failed to load file: "+err.Error()))
	return &Result{Path: display, FileSet: fs, FileID: id, Bag: bag}
}

// DisplayPath is path relative to base with forward slashes, as shown in
// progress and output headers.
func DisplayPath(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}
