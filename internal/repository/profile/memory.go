package profileRepo

import (
	"context"
	"sort"
	"sync"

	"github.com/defff666/cryptodivebot/internal/entity"
)

// MemoryRepo is an in-process IProfileRepo with the same semantics as the
// SQL implementation. It backs the unit tests and single-process setups
// that run without postgres.
type MemoryRepo struct {
	mu       sync.Mutex
	profiles map[int64]*entity.Profile
	likes    map[int64]map[int64]bool
	matches  map[int64]map[int64]bool
}

func NewMemory() *MemoryRepo {
	return &MemoryRepo{
		profiles: make(map[int64]*entity.Profile),
		likes:    make(map[int64]map[int64]bool),
		matches:  make(map[int64]map[int64]bool),
	}
}

func (r *MemoryRepo) Get(ctx context.Context, id int64) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, p *entity.Profile) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.profiles[p.ID]
	copied := *p
	if ok {
		copied.Coins = existing.Coins
		copied.Blocked = existing.Blocked
	}
	r.profiles[p.ID] = &copied
	return !ok, nil
}

func (r *MemoryRepo) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return entity.ErrNotFound
	}
	p.Blocked = blocked
	return nil
}

func (r *MemoryRepo) IncrementCoins(ctx context.Context, id int64, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return entity.ErrNotFound
	}
	p.Coins += delta
	if p.Coins < 0 {
		p.Coins = 0
	}
	return nil
}

func (r *MemoryRepo) GetLikes(ctx context.Context, id int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedIDs(r.likes[id]), nil
}

func (r *MemoryRepo) GetMatches(ctx context.Context, id int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedIDs(r.matches[id]), nil
}

func (r *MemoryRepo) CreateLike(ctx context.Context, likerID, targetID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.likes[likerID] == nil {
		r.likes[likerID] = make(map[int64]bool)
	}
	r.likes[likerID][targetID] = true

	if !r.likes[targetID][likerID] {
		return false, nil
	}
	if r.matches[likerID][targetID] {
		return false, nil
	}

	if r.matches[likerID] == nil {
		r.matches[likerID] = make(map[int64]bool)
	}
	if r.matches[targetID] == nil {
		r.matches[targetID] = make(map[int64]bool)
	}
	r.matches[likerID][targetID] = true
	r.matches[targetID][likerID] = true
	return true, nil
}

func (r *MemoryRepo) FindCandidate(ctx context.Context, filter entity.CandidateFilter) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var best *entity.Profile
	for _, p := range r.profiles {
		if !filter.Matches(p) {
			continue
		}
		if best == nil || p.ID < best.ID {
			best = p
		}
	}
	if best == nil {
		return nil, nil
	}
	copied := *best
	return &copied, nil
}

func (r *MemoryRepo) CountActive(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, p := range r.profiles {
		if !p.Blocked {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepo) SumMatchDegrees(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sum int64
	for _, set := range r.matches {
		sum += int64(len(set))
	}
	return sum, nil
}

func (r *MemoryRepo) ListActiveIDs(ctx context.Context) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []int64
	for id, p := range r.profiles {
		if !p.Blocked {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// CorruptMatchEdge removes one direction of a match edge. Test hook for the
// odd-degree detection in stats.
func (r *MemoryRepo) CorruptMatchEdge(userID, targetID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.matches[userID], targetID)
}

func sortedIDs(set map[int64]bool) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
