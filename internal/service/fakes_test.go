package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/repository/contract"
	"welllog-ai-be/internal/repository/specification"
	"welllog-ai-be/internal/repository/unitofwork"
	"welllog-ai-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory unit of work backing the service tests. Specifications are
// interpreted by type switch instead of SQL.

type fakeUnitOfWork struct {
	mu sync.Mutex

	files           map[uuid.UUID]*entity.WellFile
	curves          map[uuid.UUID]*entity.Curve
	interpretations map[uuid.UUID]*entity.Interpretation

	begun      int
	committed  int
	rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		files:           make(map[uuid.UUID]*entity.WellFile),
		curves:          make(map[uuid.UUID]*entity.Curve),
		interpretations: make(map[uuid.UUID]*entity.Interpretation),
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.begun++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.committed++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rolledBack++
	return nil
}

func (u *fakeUnitOfWork) WellFileRepository() contract.WellFileRepository {
	return &fakeWellFileRepository{uow: u}
}

func (u *fakeUnitOfWork) CurveRepository() contract.CurveRepository {
	return &fakeCurveRepository{uow: u}
}

func (u *fakeUnitOfWork) InterpretationRepository() contract.InterpretationRepository {
	return &fakeInterpretationRepository{uow: u}
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: newFakeUnitOfWork()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeWellFileRepository struct {
	uow *fakeUnitOfWork
}

func (r *fakeWellFileRepository) Create(ctx context.Context, file *entity.WellFile) error {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	copied := *file
	r.uow.files[file.Id] = &copied
	return nil
}

func (r *fakeWellFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	delete(r.uow.files, id)
	return nil
}

func (r *fakeWellFileRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WellFile, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if f, found := r.uow.files[byID.ID]; found {
				copied := *f
				return &copied, nil
			}
			return nil, nil
		}
	}
	return nil, fmt.Errorf("fake: unsupported specification")
}

func (r *fakeWellFileRepository) FindOneForUpdate(ctx context.Context, id uuid.UUID) (*entity.WellFile, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *fakeWellFileRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WellFile, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	out := make([]*entity.WellFile, 0, len(r.uow.files))
	for _, f := range r.uow.files {
		copied := *f
		out = append(out, &copied)
	}
	for _, spec := range specs {
		if order, ok := spec.(specification.OrderBy); ok && order.Field == "created_at" {
			sort.Slice(out, func(i, j int) bool {
				if order.Desc {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			})
		}
	}
	return out, nil
}

func (r *fakeWellFileRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return int64(len(r.uow.files)), nil
}

type fakeCurveRepository struct {
	uow *fakeUnitOfWork
}

func (r *fakeCurveRepository) CreateBatch(ctx context.Context, curves []*entity.Curve) error {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	for _, c := range curves {
		copied := *c
		r.uow.curves[c.Id] = &copied
	}
	return nil
}

func (r *fakeCurveRepository) DeleteAllByFileId(ctx context.Context, fileId uuid.UUID) error {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	for id, c := range r.uow.curves {
		if c.FileId == fileId {
			delete(r.uow.curves, id)
		}
	}
	return nil
}

func (r *fakeCurveRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Curve, error) {
	curves, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(curves) == 0 {
		return nil, nil
	}
	return curves[0], nil
}

func (r *fakeCurveRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Curve, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	var fileFilter *uuid.UUID
	orderByPosition := false
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByFileID:
			id := s.FileID
			fileFilter = &id
		case specification.OrderBy:
			if s.Field == "position" {
				orderByPosition = true
			}
		}
	}

	out := make([]*entity.Curve, 0)
	for _, c := range r.uow.curves {
		if fileFilter != nil && c.FileId != *fileFilter {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	if orderByPosition {
		sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	}
	return out, nil
}

func (r *fakeCurveRepository) FindAllMetadata(ctx context.Context, fileId uuid.UUID) ([]*entity.Curve, error) {
	curves, err := r.FindAll(ctx,
		specification.ByFileID{FileID: fileId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, err
	}
	for _, c := range curves {
		c.Depths = nil
		c.Values = nil
	}
	return curves, nil
}

func (r *fakeCurveRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	curves, err := r.FindAll(ctx, specs...)
	return int64(len(curves)), err
}

type fakeInterpretationRepository struct {
	uow *fakeUnitOfWork
}

func (r *fakeInterpretationRepository) Create(ctx context.Context, interpretation *entity.Interpretation) error {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	copied := *interpretation
	r.uow.interpretations[interpretation.Id] = &copied
	return nil
}

func (r *fakeInterpretationRepository) DeleteAllByFileId(ctx context.Context, fileId uuid.UUID) error {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	for id, it := range r.uow.interpretations {
		if it.FileId == fileId {
			delete(r.uow.interpretations, id)
		}
	}
	return nil
}

func (r *fakeInterpretationRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interpretation, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	var fileFilter *uuid.UUID
	newestFirst := false
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByFileID:
			id := s.FileID
			fileFilter = &id
		case specification.OrderBy:
			if s.Field == "created_at" && s.Desc {
				newestFirst = true
			}
		}
	}

	out := make([]*entity.Interpretation, 0)
	for _, it := range r.uow.interpretations {
		if fileFilter != nil && it.FileId != *fileFilter {
			continue
		}
		copied := *it
		out = append(out, &copied)
	}
	if newestFirst {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (r *fakeInterpretationRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	items, err := r.FindAll(ctx, specs...)
	return int64(len(items)), err
}

// fakeLLM records the prompts it receives and returns a canned reply.
type fakeLLM struct {
	reply   string
	err     error
	model   string
	prompts []string
	chats   [][]llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.chats = append(f.chats, history)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) ModelName() string {
	if f.model == "" {
		return "fake-model"
	}
	return f.model
}

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
