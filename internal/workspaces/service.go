package workspaces

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"inkwell/internal/dnd"
	"inkwell/internal/logging"
)

// Folder is one member of a workspace definition.
type Folder struct {
	Path string `toml:"path"`
}

// Definition is the persisted shape of a composite workspace.
type Definition struct {
	GeneratedAt time.Time `toml:"generated_at"`
	Folders     []Folder  `toml:"folders"`
}

// Service synthesizes and reads persisted workspace definitions.
type Service struct {
	dir    string
	ext    string
	logger *slog.Logger
}

// NewService constructs a workspace service writing definitions under dir
// with the given file extension.
func NewService(dir, ext string, logger *slog.Logger) *Service {
	return &Service{dir: dir, ext: ext, logger: logging.NewComponentLogger(logger, "workspaces")}
}

// Create persists a new workspace definition whose members are exactly the
// given folders and returns the resource of its configuration file. It
// implements the drop handler's workspace-service contract.
func (s *Service) Create(_ context.Context, folders []dnd.Resource) (dnd.Resource, error) {
	if len(folders) == 0 {
		return dnd.Resource{}, errors.New("create workspace: no folders")
	}

	def := Definition{GeneratedAt: time.Now().UTC()}
	for _, folder := range folders {
		if folder.Scheme != "" && folder.Scheme != dnd.SchemeFile {
			return dnd.Resource{}, fmt.Errorf("create workspace: %s is not a filesystem folder", folder)
		}
		def.Folders = append(def.Folders, Folder{Path: folder.Path})
	}

	encoded, err := toml.Marshal(def)
	if err != nil {
		return dnd.Resource{}, fmt.Errorf("encode workspace: %w", err)
	}

	dir := filepath.Join(s.dir, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return dnd.Resource{}, fmt.Errorf("create workspace directory: %w", err)
	}
	path := filepath.Join(dir, "workspace"+s.ext)
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return dnd.Resource{}, fmt.Errorf("write workspace: %w", err)
	}

	s.logger.Info("composite workspace created",
		logging.String(logging.FieldPath, path),
		logging.Int(logging.FieldCount, len(def.Folders)))
	return dnd.FileResource(path), nil
}

// Load reads a workspace definition from disk. The drop handler never calls
// this; it exists for tooling that inspects generated workspaces.
func Load(path string) (*Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workspace: %w", err)
	}
	var def Definition
	if err := toml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse workspace: %w", err)
	}
	return &def, nil
}
