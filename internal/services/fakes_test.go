package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/providers/llm"
	"github.com/gridhire/gridhire/internal/utils"
)

var errNoMoreCalls = errors.New("no scripted llm calls left")

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type scriptedCall struct {
	resp string
	err  error
}

// scriptedLLM replays canned completions in order and records every request.
type scriptedLLM struct {
	mu    sync.Mutex
	queue []scriptedCall
	calls []llm.Request
}

func (p *scriptedLLM) Complete(_ context.Context, req llm.Request) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, req)
	if len(p.queue) == 0 {
		return "", errNoMoreCalls
	}
	next := p.queue[0]
	p.queue = p.queue[1:]
	return next.resp, next.err
}

func (p *scriptedLLM) Close() error { return nil }

type fakeTranscripts struct {
	mu       sync.Mutex
	inserted []*models.Transcript
	err      error
}

func (f *fakeTranscripts) Insert(_ context.Context, t *models.Transcript) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, t)
	return nil
}

type fakeReports struct {
	mu        sync.Mutex
	docs      []models.Report
	inserted  []*models.Report
	listCalls int
	insErr    error
	listErr   error
}

func newFakeReports() *fakeReports { return &fakeReports{} }

func (f *fakeReports) Insert(_ context.Context, rep *models.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insErr != nil {
		return f.insErr
	}
	rep.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, rep)
	f.docs = append(f.docs, *rep)
	return nil
}

func (f *fakeReports) List(_ context.Context, from, to *time.Time, limit int64) ([]models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Report{}
	for _, d := range f.docs {
		if from != nil && d.GeneratedAt.Before(*from) {
			continue
		}
		if to != nil && !d.GeneratedAt.Before(*to) {
			continue
		}
		out = append(out, d)
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeReports) GetByID(_ context.Context, id primitive.ObjectID) (*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.docs {
		if d.ID == id {
			cp := d
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

type fakeCache struct {
	mu      sync.Mutex
	store   map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache { return &fakeCache{store: map[string][]byte{}} }

func (f *fakeCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = b
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.store, k)
		f.deleted = append(f.deleted, k)
	}
	return nil
}
