package memory

import (
	"time"

	"welllog-ai-be/pkg/prompt"

	"github.com/patrickmn/go-cache"
)

// GroundingRepository keeps per-file chat grounding snapshots in memory so
// repeated chat turns against the same file skip the database round trips.
type GroundingRepository struct {
	cache *cache.Cache
}

func NewGroundingRepository() *GroundingRepository {
	// Entries expire after 15 minutes; expired items purge every 5 minutes.
	c := cache.New(15*time.Minute, 5*time.Minute)
	return &GroundingRepository{
		cache: c,
	}
}

func (r *GroundingRepository) Save(fileID string, grounding *prompt.ChatGrounding) {
	r.cache.Set(fileID, grounding, cache.DefaultExpiration)
}

func (r *GroundingRepository) Get(fileID string) (*prompt.ChatGrounding, bool) {
	if x, found := r.cache.Get(fileID); found {
		return x.(*prompt.ChatGrounding), true
	}
	return nil, false
}

func (r *GroundingRepository) Delete(fileID string) {
	r.cache.Delete(fileID)
}
