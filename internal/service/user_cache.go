package service

import (
	"context"
	"fmt"
	"time"

	"sessionauth/internal/cache"
	"sessionauth/internal/model"
)

const userCacheTTL = 5 * time.Minute

// cachedUser is the public projection of a user. The password hash is
// never cached, so flows that check passwords must read the repository.
type cachedUser struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type userCache struct {
	cache *cache.Client
}

func (c userCache) key(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (c userCache) get(ctx context.Context, id uint) (*model.User, bool) {
	var cached cachedUser
	if !c.cache.GetJSON(ctx, c.key(id), &cached) || cached.ID != id {
		return nil, false
	}
	return &model.User{
		ID:        cached.ID,
		Email:     cached.Email,
		FirstName: cached.FirstName,
		LastName:  cached.LastName,
	}, true
}

func (c userCache) set(ctx context.Context, user *model.User) {
	c.cache.SetJSON(ctx, c.key(user.ID), cachedUser{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, userCacheTTL)
}

func (c userCache) evict(ctx context.Context, id uint) {
	c.cache.Delete(ctx, c.key(id))
}
