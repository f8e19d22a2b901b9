package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/RyanBlaney/sonido-tabs/augment"
	"github.com/RyanBlaney/sonido-tabs/logging"
	"github.com/RyanBlaney/sonido-tabs/tablature"
)

// FileError records a file that contributed no rows
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Report summarizes a corpus build
type Report struct {
	FilesVisited    int
	Failures        []FileError
	OriginalRows    int
	AugmentedRows   int
	Unaugmented     int // files whose label could not be transposed
	MalformedTokens int
	OutOfRangeFrets int
}

// Corpus is the ordered set of rows from one build
type Corpus struct {
	Rows   []Row
	Report Report
}

// WalkerOptions configures a Walker
type WalkerOptions struct {
	Extension string             // defaults to ".txt"
	Augmentor *augment.Augmentor // nil disables augmentation
	Label     LabelFunc          // defaults to FolderLabel
	Logger    logging.Logger     // defaults to the global logger
}

// Walker turns a directory of tablature files into a Corpus. It processes
// one file at a time; a Walker is not safe for concurrent use.
type Walker struct {
	extension string
	augmentor *augment.Augmentor
	label     LabelFunc
	parser    *tablature.Parser
	logger    logging.Logger
}

// NewWalker creates a walker from opts
func NewWalker(opts WalkerOptions) *Walker {
	logger := logging.OrGlobal(opts.Logger)

	ext := opts.Extension
	if ext == "" {
		ext = ".txt"
	}
	label := opts.Label
	if label == nil {
		label = FolderLabel
	}

	return &Walker{
		extension: ext,
		augmentor: opts.Augmentor,
		label:     label,
		parser:    tablature.NewParser(logger),
		logger:    logger.WithFields(logging.Fields{"component": "corpus_walker"}),
	}
}

// Walk visits every file under root with the configured extension, in
// directory-entry order. Unreadable files and directories are logged and
// recorded in the report; they never stop the walk.
func (w *Walker) Walk(root string) *Corpus {
	c := &Corpus{}
	w.logger.Info("Processing folder", logging.Fields{"folder": root})

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Error(err, "Failed to read path", logging.Fields{"path": path})
			c.Report.Failures = append(c.Report.Failures, FileError{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			w.logger.Info("Processing folder", logging.Fields{"folder": d.Name()})
			return nil
		}
		if !strings.HasSuffix(d.Name(), w.extension) {
			return nil
		}

		w.addFile(c, path)
		return nil
	})
	if err != nil {
		w.logger.Error(err, "Directory walk aborted", logging.Fields{"root": root})
	}

	w.logSummary(c)
	return c
}

// BuildFromFiles processes an explicit list of files in order
func (w *Walker) BuildFromFiles(paths []string) *Corpus {
	c := &Corpus{}
	for _, path := range paths {
		w.addFile(c, path)
	}
	w.logSummary(c)
	return c
}

// addFile parses one file and appends its original row followed by the
// augmented rows. A failed file adds nothing.
func (w *Walker) addFile(c *Corpus, path string) {
	c.Report.FilesVisited++
	label := w.label(path)

	res, err := w.parser.ParseFile(path)
	if err != nil {
		if isNotExist(err) {
			w.logger.Error(err, "File not found", logging.Fields{"file": path})
		} else {
			w.logger.Error(err, "An unexpected error occurred while processing file", logging.Fields{"file": path})
		}
		c.Report.Failures = append(c.Report.Failures, FileError{Path: path, Err: err})
		return
	}
	c.Report.MalformedTokens += len(res.Malformed)
	c.Report.OutOfRangeFrets += res.OutOfRange

	original := Row{Counts: res.Histogram.Vector(), Label: label, Source: path}
	c.Rows = append(c.Rows, original)
	c.Report.OriginalRows++
	w.logger.Info("Original result", logging.Fields{
		"file":   filepath.Base(path),
		"counts": original.Counts,
		"label":  label,
	})

	if w.augmentor == nil {
		return
	}

	variants, err := w.augmentor.Augment(original.Counts, label)
	if err != nil {
		w.logger.Warn("Skipping augmentation", logging.Fields{
			"file":  path,
			"label": label,
			"error": err.Error(),
		})
		c.Report.Unaugmented++
		return
	}

	for _, v := range variants {
		row := Row{Counts: v.Vector, Label: v.Label, Source: path, Shift: v.Shift}
		c.Rows = append(c.Rows, row)
		c.Report.AugmentedRows++
		w.logger.Info("Shifted result", logging.Fields{
			"counts": row.Counts,
			"label":  row.Label,
			"shift":  row.Shift,
		})
	}
}

func (w *Walker) logSummary(c *Corpus) {
	w.logger.Info("Corpus built", logging.Fields{
		"files":          c.Report.FilesVisited,
		"failed":         len(c.Report.Failures),
		"original_rows":  c.Report.OriginalRows,
		"augmented_rows": c.Report.AugmentedRows,
	})
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
