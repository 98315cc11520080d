package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"ai-facilitator-be/pkg/conversation"
)

// ConversationRepository keeps live state machines in memory. Conversations
// are evicted after two hours without access; eviction closes the machine so
// its inactivity timer does not leak.
type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	c := cache.New(2*time.Hour, 10*time.Minute)
	c.OnEvicted(func(_ string, v interface{}) {
		if m, ok := v.(*conversation.Machine); ok {
			m.Close()
		}
	})
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Save(m *conversation.Machine) {
	r.cache.Set(m.Id().String(), m, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(conversationId string) (*conversation.Machine, bool) {
	if x, found := r.cache.Get(conversationId); found {
		return x.(*conversation.Machine), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(conversationId string) {
	r.cache.Delete(conversationId)
}
