package jsonconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"zizutil/internal/fileutil"
	"zizutil/internal/logging"
)

// Location identifies a persisted config file by directory and file name.
type Location struct {
	Dir  string
	Name string
}

// Path joins the directory and file name using the host path convention.
func (l Location) Path() string {
	return filepath.Join(l.Dir, l.Name)
}

func (l Location) validate() error {
	if strings.TrimSpace(l.Dir) == "" {
		return fmt.Errorf("%w: config directory is empty", ErrValidation)
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: config file name is empty", ErrValidation)
	}
	return nil
}

// Options tunes a Reconciler. The zero value compares key sets, keeps no
// backups and takes no lock.
type Options struct {
	Logger *slog.Logger
	// TypeSetOnly skips the key-set comparison and instead compares the set
	// of distinct value kinds on each side. Suitable only for configs whose
	// keys all share interchangeable value kinds.
	TypeSetOnly bool
	// Backup copies an existing file to <path>.bak before it is replaced.
	Backup bool
	// Lock holds an advisory lock on <path>.lock for the duration of a call.
	Lock bool
}

// Reconciler restores a persisted config file to the shape of a default
// document. It keeps no state between calls.
type Reconciler struct {
	logger      *slog.Logger
	typeSetOnly bool
	backup      bool
	lock        bool
	write       func(path string, doc *Document) error
}

// New constructs a Reconciler.
func New(opts Options) *Reconciler {
	return &Reconciler{
		logger:      logging.NewComponentLogger(opts.Logger, "jsonconfig"),
		typeSetOnly: opts.TypeSetOnly,
		backup:      opts.Backup,
		lock:        opts.Lock,
		write:       writeDocument,
	}
}

// Ensure makes sure the file at loc exists and matches the shape of
// defaults, rewriting it with defaults when it is absent, corrupt, or
// mismatched. The returned state names the branch that was taken.
func (r *Reconciler) Ensure(defaults *Document, loc Location) (State, error) {
	if err := validateInputs(defaults, loc); err != nil {
		return StateValid, err
	}
	unlock, err := r.acquire(loc)
	if err != nil {
		return StateValid, err
	}
	defer unlock()
	return r.ensure(defaults, loc)
}

// Persist writes current to the file at loc. When the directory is missing
// the location is initialized through Ensure and the write is retried once.
func (r *Reconciler) Persist(defaults, current *Document, loc Location) error {
	if err := validateInputs(defaults, loc); err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("%w: current config is nil", ErrValidation)
	}
	unlock, err := r.acquire(loc)
	if err != nil {
		return err
	}
	defer unlock()

	path := loc.Path()
	err = r.write(path, current)
	if err == nil {
		r.logger.Debug("config persisted", logging.String(logging.FieldPath, path))
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	r.logger.Info("config directory missing; initializing before retry",
		logging.String(logging.FieldPath, path),
	)
	if _, err := r.ensure(defaults, loc); err != nil {
		return err
	}
	if err := r.write(path, current); err != nil {
		return err
	}
	r.logger.Debug("config persisted", logging.String(logging.FieldPath, path))
	return nil
}

// Load reconciles the file at loc and returns its resulting contents.
func (r *Reconciler) Load(defaults *Document, loc Location) (*Document, State, error) {
	state, err := r.Ensure(defaults, loc)
	if err != nil {
		return nil, state, err
	}
	doc, err := Read(loc)
	if err != nil {
		return nil, state, err
	}
	return doc, state, nil
}

// Read decodes the file at loc without reconciling it.
func Read(loc Location) (*Document, error) {
	if err := loc.validate(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(loc.Path())
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc.Path(), err)
	}
	return doc, nil
}

func validateInputs(defaults *Document, loc Location) error {
	if defaults == nil {
		return fmt.Errorf("%w: default config is nil", ErrValidation)
	}
	return loc.validate()
}

func (r *Reconciler) ensure(defaults *Document, loc Location) (State, error) {
	if err := os.MkdirAll(loc.Dir, 0o755); err != nil {
		return StateValid, fmt.Errorf("create config directory %q: %w", loc.Dir, err)
	}

	path := loc.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return StateValid, fmt.Errorf("read config: %w", err)
		}
		return r.rewrite(StateNoFile, defaults, path)
	}

	persisted, err := Decode(data)
	if err != nil {
		r.logger.Warn("config file corrupt; restoring defaults",
			logging.String(logging.FieldPath, path),
			logging.Error(err),
		)
		return r.rewrite(StateCorrupt, defaults, path)
	}

	state := r.compare(defaults, persisted)
	if state == StateValid {
		r.logger.Debug("config file valid", logging.String(logging.FieldPath, path))
		return StateValid, nil
	}
	return r.rewrite(state, defaults, path)
}

// compare resolves the first failing check, or StateValid.
func (r *Reconciler) compare(defaults, persisted *Document) State {
	if r.typeSetOnly {
		if !slices.Equal(defaults.KindSet(), persisted.KindSet()) {
			return StateTypeMismatch
		}
		return StateValid
	}

	if !defaults.SameKeys(persisted) {
		return StateKeyMismatch
	}
	for _, key := range defaults.Keys() {
		want, _ := defaults.Get(key)
		if want.Kind() == KindObject {
			continue
		}
		got, _ := persisted.Get(key)
		if !want.SameKind(got) {
			return StateTypeMismatch
		}
	}
	return StateValid
}

func (r *Reconciler) rewrite(state State, defaults *Document, path string) (State, error) {
	if r.backup && state != StateNoFile {
		if err := fileutil.CopyFile(path, path+".bak"); err != nil {
			r.logger.Warn("config backup failed",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
			)
		}
	}
	if err := r.write(path, defaults); err != nil {
		return state, err
	}
	r.logger.Info("config defaults written",
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldState, state.String()),
	)
	return state, nil
}
