// Package proxy provides a caching read-through proxy for repository.TodoRepository.
//
// The proxy exposes the exact same interface as the repository it wraps, so
// callers cannot tell whether they are talking to the database or to the
// cache. Writes pass through and invalidate, reads are served from the cache
// when possible.
package proxy

import (
	"context"
	"sync"

	"patternlab/internal/model"
	"patternlab/internal/repository"
)

// CachingTodoRepository wraps another TodoRepository and caches FindByID
// results. Safe for concurrent use.
type CachingTodoRepository struct {
	next repository.TodoRepository

	mu    sync.RWMutex
	cache map[string]model.Todo

	hits   int
	misses int
}

// NewCachingTodoRepository wraps next with a read-through cache.
func NewCachingTodoRepository(next repository.TodoRepository) *CachingTodoRepository {
	return &CachingTodoRepository{
		next:  next,
		cache: make(map[string]model.Todo),
	}
}

var _ repository.TodoRepository = (*CachingTodoRepository)(nil)

// Create passes through and primes the cache with the stored record.
func (p *CachingTodoRepository) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	stored, err := p.next.Create(ctx, todo)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.cache[stored.ID] = *stored
	p.mu.Unlock()
	return stored, nil
}

// FindByID serves from cache when possible, otherwise delegates and fills.
func (p *CachingTodoRepository) FindByID(ctx context.Context, id string) (*model.Todo, error) {
	p.mu.RLock()
	cached, ok := p.cache[id]
	p.mu.RUnlock()
	if ok {
		p.mu.Lock()
		p.hits++
		p.mu.Unlock()
		out := cached
		return &out, nil
	}

	todo, err := p.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.misses++
	p.cache[todo.ID] = *todo
	p.mu.Unlock()

	out := *todo
	return &out, nil
}

// List always delegates; paging results are not cached.
func (p *CachingTodoRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Todo], error) {
	return p.next.List(ctx, pq)
}

// Update passes through and refreshes the cached record.
func (p *CachingTodoRepository) Update(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	stored, err := p.next.Update(ctx, todo)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.cache[stored.ID] = *stored
	p.mu.Unlock()
	return stored, nil
}

// Delete passes through and evicts.
func (p *CachingTodoRepository) Delete(ctx context.Context, id string) error {
	if err := p.next.Delete(ctx, id); err != nil {
		return err
	}
	p.mu.Lock()
	delete(p.cache, id)
	p.mu.Unlock()
	return nil
}

// Stats reports cache hits and misses recorded by FindByID.
func (p *CachingTodoRepository) Stats() (hits, misses int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hits, p.misses
}
