// Package memory holds the in-process repository. Parsed schedules live only
// for the lifetime of the server; there is no cross-session persistence.
package memory

import (
	"context"
	"sync"

	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
)

type scheduleRepositoryImpl struct {
	mu     sync.RWMutex
	byID   map[string]schedule.ParsedSchedule
	byHash map[string]string // content hash -> schedule id
}

func NewScheduleRepository() schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{
		byID:   make(map[string]schedule.ParsedSchedule),
		byHash: make(map[string]string),
	}
}

// Save implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Save(ctx context.Context, parsed schedule.ParsedSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[parsed.ID] = parsed
	r.byHash[parsed.ContentHash] = parsed.ID
	return nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.ParsedSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parsed, ok := r.byID[id]
	if !ok {
		return schedule.ParsedSchedule{}, schedule.ErrScheduleNotFound
	}
	return parsed, nil
}

// GetByContentHash implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByContentHash(ctx context.Context, hash string) (schedule.ParsedSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byHash[hash]
	if !ok {
		return schedule.ParsedSchedule{}, schedule.ErrScheduleNotFound
	}
	return r.byID[id], nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	parsed, ok := r.byID[id]
	if !ok {
		return schedule.ErrScheduleNotFound
	}
	delete(r.byID, id)
	delete(r.byHash, parsed.ContentHash)
	return nil
}
