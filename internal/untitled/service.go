package untitled

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/dnd"
	"inkwell/internal/logging"
)

// Document is an untitled editor document with its own resource identity.
type Document struct {
	Resource  dnd.Resource
	CreatedAt time.Time
}

// Service mints and tracks untitled-document identities for the host.
type Service struct {
	mu     sync.Mutex
	docs   map[string]*Document
	logger *slog.Logger
}

// NewService constructs an empty untitled-document registry.
func NewService(logger *slog.Logger) *Service {
	return &Service{
		docs:   make(map[string]*Document),
		logger: logging.NewComponentLogger(logger, "untitled"),
	}
}

// CreateUntitled returns a fresh identity, never one that is already live.
// It implements the drop handler's untitled-service contract.
func (s *Service) CreateUntitled(_ context.Context) (dnd.Resource, error) {
	doc := s.create()
	return doc.Resource, nil
}

// CreateOrGet returns the registered document for res, or registers a new
// one. A nil res creates a fresh document.
func (s *Service) CreateOrGet(res *dnd.Resource) *Document {
	if res == nil {
		return s.create()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.docs[res.Path]; ok {
		return doc
	}
	doc := &Document{Resource: *res, CreatedAt: time.Now()}
	s.docs[res.Path] = doc
	return doc
}

// Get returns the registered document for res, if any.
func (s *Service) Get(res dnd.Resource) (*Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[res.Path]
	return doc, ok
}

// Release forgets a document identity, typically after its editor closes.
func (s *Service) Release(res dnd.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, res.Path)
}

func (s *Service) create() *Document {
	id := uuid.NewString()
	doc := &Document{Resource: dnd.UntitledResource(id), CreatedAt: time.Now()}

	s.mu.Lock()
	s.docs[id] = doc
	s.mu.Unlock()

	s.logger.Debug("untitled document created", logging.String(logging.FieldResource, doc.Resource.String()))
	return doc
}
