package statistics

import (
	"log"
	"sync"
	"time"

	"github.com/KarimAldeen/MenuDeck/app/repository"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/cache"
)

const (
	CacheKeyRestaurantsTotal  = "statistics:restaurants:total"
	CacheKeyRestaurantsActive = "statistics:restaurants:active"
	CacheKeyMenuItemsTotal    = "statistics:menu_items:total"
	CacheKeyUsersTotal        = "statistics:users:total"
	CacheExpiration           = 30 * time.Minute
)

// OverviewData holds the cached platform totals for the admin dashboard.
type OverviewData struct {
	TotalRestaurants    int `json:"total_restaurants"`
	ActiveSubscriptions int `json:"active_subscriptions"`
	TotalMenuItems      int `json:"total_menu_items"`
	TotalUsers          int `json:"total_users"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache checks whether the cache refresh interval elapsed.
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached totals when the interval elapsed.
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Failed to update statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// UpdateStatisticsCache recomputes the totals from the database and stores
// them in Redis.
func UpdateStatisticsCache() error {
	repos := repository.GetGlobalRepositories()

	totalRestaurants, err := repos.Restaurant.Count()
	if err != nil {
		return err
	}
	activeRestaurants, err := repos.Restaurant.CountActive()
	if err != nil {
		return err
	}
	totalItems, err := repos.MenuItem.Count()
	if err != nil {
		return err
	}
	totalUsers, err := repos.User.Count()
	if err != nil {
		return err
	}

	if err := cache.Set(CacheKeyRestaurantsTotal, totalRestaurants, CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyRestaurantsActive, activeRestaurants, CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyMenuItemsTotal, totalItems, CacheExpiration); err != nil {
		return err
	}
	return cache.Set(CacheKeyUsersTotal, totalUsers, CacheExpiration)
}

// GetOverview returns the platform totals, preferring the Redis cache and
// falling back to live queries on a cache miss.
func GetOverview() OverviewData {
	var data OverviewData
	var miss bool

	if v, err := cache.GetInt(CacheKeyRestaurantsTotal); err == nil {
		data.TotalRestaurants = v
	} else {
		miss = true
	}
	if v, err := cache.GetInt(CacheKeyRestaurantsActive); err == nil {
		data.ActiveSubscriptions = v
	} else {
		miss = true
	}
	if v, err := cache.GetInt(CacheKeyMenuItemsTotal); err == nil {
		data.TotalMenuItems = v
	} else {
		miss = true
	}
	if v, err := cache.GetInt(CacheKeyUsersTotal); err == nil {
		data.TotalUsers = v
	} else {
		miss = true
	}

	if miss {
		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Failed to refresh statistics cache: %v", err)
			return data
		}
		return GetOverview()
	}

	return data
}
